package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	tt "github.com/gnolang/excheck/internal/types"
)

// rule set
const (
	MissingCase      = "missing-case"
	RedundantArm     = "redundant-arm"
	MalformedPattern = "malformed-pattern"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	infoStyle    = color.New(color.FgHiBlue, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
	noteStyle    = color.New(color.FgGreen)
)

// issueFormatter is the interface that wraps the Format method.
// Implementations are responsible for rendering one class of issue.
type issueFormatter interface {
	Format(issue tt.Issue) string
}

// getFormatter is a factory function that returns the appropriate
// issueFormatter for the given rule. Unknown rules fall back to the
// general formatter.
func getFormatter(rule string) issueFormatter {
	switch rule {
	case MissingCase:
		return &missingCaseFormatter{}
	case RedundantArm:
		return &redundantArmFormatter{}
	default:
		return &generalFormatter{}
	}
}

// Format renders a slice of issues into a human-readable report,
// picking a per-rule formatter for each issue.
func Format(issues []tt.Issue) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatHeader(issue))
		builder.WriteString(getFormatter(issue.Rule).Format(issue))
		builder.WriteString("\n")
	}
	return builder.String()
}

// formatHeader creates the header line for an issue, e.g.
// "error: missing-case\n --> robot.yaml (move command)".
func formatHeader(issue tt.Issue) string {
	return severityStyle(issue.Severity).Sprint(issue.Severity.String()+": ") +
		ruleStyle.Sprint(issue.Rule) + "\n" +
		lineStyle.Sprint(" --> ") + fileStyle.Sprint(locationOf(issue)) + "\n"
}

func severityStyle(s tt.Severity) *color.Color {
	switch s {
	case tt.SeverityError:
		return errorStyle
	case tt.SeverityWarning:
		return warningStyle
	default:
		return infoStyle
	}
}

func locationOf(issue tt.Issue) string {
	loc := issue.Filename
	if issue.Match != "" {
		loc = fmt.Sprintf("%s (%s)", loc, issue.Match)
	}
	return loc
}
