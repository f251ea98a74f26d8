package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/excheck/check"
	"github.com/gnolang/excheck/internal/coverage"
	"github.com/gnolang/excheck/internal/pattern"
	"github.com/gnolang/excheck/scanner"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [paths...]",
	Short: "Print a per-match verdict table",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		rows, err := buildSummaryRows(args)
		if err != nil {
			logger.Fatal("Failed to build summary", zap.Error(err))
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"File", "Match", "Verdict", "Missing case", "Redundant arms"})
		table.SetAutoWrapText(false)
		for _, row := range rows {
			table.Append(row)
		}
		table.Render()
	},
}

// buildSummaryRows checks every document reachable from the paths and
// flattens the verdicts into table rows.
func buildSummaryRows(paths []string) ([][]string, error) {
	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for _, file := range files {
		docs, err := check.LoadDocuments(file)
		if err != nil {
			return nil, err
		}
		for _, doc := range docs {
			rows = append(rows, summaryRow(file, doc))
		}
	}
	return rows, nil
}

func summaryRow(file string, doc check.Document) []string {
	sh, err := doc.Scrutinee.Shape()
	if err != nil {
		return []string{file, doc.Name, "invalid", err.Error(), ""}
	}
	arms := make([]pattern.Arm, len(doc.Arms))
	for i, a := range doc.Arms {
		arms[i] = a.Arm()
	}
	verdict, err := coverage.Check(sh, arms)
	if err != nil {
		return []string{file, doc.Name, "invalid", err.Error(), ""}
	}

	missing := ""
	result := "exhaustive"
	if !verdict.Exhaustive {
		result = "not exhaustive"
		missing = verdict.Counterexample.String()
	}
	redundant := ""
	for i, idx := range verdict.Redundant {
		if i > 0 {
			redundant += ", "
		}
		redundant += fmt.Sprintf("%d", idx+1)
	}
	return []string{file, doc.Name, result, missing, redundant}
}

func collectFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			if !seen[path] {
				seen[path] = true
				files = append(files, path)
			}
			continue
		}
		scanned, err := scanner.New(path).Scan()
		if err != nil {
			return nil, err
		}
		for _, file := range scanned {
			if !seen[file.Path] {
				seen[file.Path] = true
				files = append(files, file.Path)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
