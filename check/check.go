package check

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gnolang/excheck/internal/coverage"
	"github.com/gnolang/excheck/internal/pattern"
	tt "github.com/gnolang/excheck/internal/types"
)

// rule names reported by the runner.
const (
	RuleMissingCase      = "missing-case"
	RuleRedundantArm     = "redundant-arm"
	RuleMalformedPattern = "malformed-pattern"
)

// defaultSeverities is the host policy applied when the configuration
// file says nothing: a hole in the match is an error, a useless arm is
// a warning.
var defaultSeverities = map[string]tt.Severity{
	RuleMissingCase:      tt.SeverityError,
	RuleRedundantArm:     tt.SeverityWarning,
	RuleMalformedPattern: tt.SeverityError,
}

// Runner applies the coverage engine to match documents and converts
// verdicts into issues under the configured severity policy. A Runner
// holds no per-document state and is safe for concurrent use.
type Runner struct {
	severities map[string]tt.Severity
	ignored    map[string]bool
}

// New builds a runner from an optional configuration file. An empty
// path keeps the default severities.
func New(configPath string) (*Runner, error) {
	r := &Runner{
		severities: make(map[string]tt.Severity, len(defaultSeverities)),
		ignored:    make(map[string]bool),
	}
	for rule, severity := range defaultSeverities {
		r.severities[rule] = severity
	}

	if configPath == "" {
		return r, nil
	}
	config, err := parseConfigurationFile(configPath)
	if err != nil {
		return nil, err
	}
	for rule, cfg := range config.Rules {
		if _, ok := defaultSeverities[rule]; !ok {
			continue
		}
		if cfg.Severity == tt.SeverityOff {
			r.ignored[rule] = true
			continue
		}
		r.severities[rule] = cfg.Severity
	}
	return r, nil
}

// IgnoreRule suppresses all issues for the given rule.
func (r *Runner) IgnoreRule(rule string) {
	r.ignored[rule] = true
}

// CheckFile loads every match document in the file and checks each one.
func (r *Runner) CheckFile(path string) ([]tt.Issue, error) {
	docs, err := LoadDocuments(path)
	if err != nil {
		return nil, err
	}

	var issues []tt.Issue
	for _, doc := range docs {
		docIssues, err := r.CheckDocument(path, doc)
		if err != nil {
			return nil, err
		}
		issues = append(issues, docIssues...)
	}
	return issues, nil
}

// CheckDocument runs the engine on one match document. A malformed
// pattern becomes an issue for that document alone rather than an
// error, so one bad match never hides verdicts for its neighbors.
func (r *Runner) CheckDocument(filename string, doc Document) ([]tt.Issue, error) {
	sh, err := doc.Scrutinee.Shape()
	if err != nil {
		return r.emit(nil, filename, doc.Name, tt.Issue{
			Rule:    RuleMalformedPattern,
			Message: "invalid scrutinee description: " + err.Error(),
			Arm:     -1,
		}), nil
	}
	arms := make([]pattern.Arm, len(doc.Arms))
	for i, a := range doc.Arms {
		arms[i] = a.Arm()
	}

	verdict, err := coverage.Check(sh, arms)
	if err != nil {
		var malformed *pattern.MalformedError
		if errors.As(err, &malformed) {
			return r.emit(nil, filename, doc.Name, tt.Issue{
				Rule:    RuleMalformedPattern,
				Message: err.Error(),
				Arm:     -1,
			}), nil
		}
		return nil, fmt.Errorf("%s: match %q: %w", filename, doc.Name, err)
	}

	var issues []tt.Issue
	if !verdict.Exhaustive {
		issues = r.emit(issues, filename, doc.Name, tt.Issue{
			Rule:    RuleMissingCase,
			Message: fmt.Sprintf("match on %s is not exhaustive: missing case `%s`", scrutineeName(doc), verdict.Counterexample),
			Note:    "add an arm for this case, or a trailing wildcard arm",
			Arm:     -1,
		})
	}
	for _, idx := range verdict.Redundant {
		issues = r.emit(issues, filename, doc.Name, tt.Issue{
			Rule:    RuleRedundantArm,
			Message: "arm matches no value left uncovered by earlier arms",
			Arm:     idx,
		})
	}
	return issues, nil
}

func (r *Runner) emit(issues []tt.Issue, filename, match string, issue tt.Issue) []tt.Issue {
	if r.ignored[issue.Rule] {
		return issues
	}
	issue.Filename = filename
	issue.Match = match
	issue.Severity = r.severities[issue.Rule]
	return append(issues, issue)
}

func scrutineeName(doc Document) string {
	if doc.Scrutinee.Name != "" {
		return doc.Scrutinee.Name
	}
	return doc.Scrutinee.Kind
}

// Config represents the overall configuration with a name and a map of
// per-rule settings.
type Config struct {
	Name  string                   `yaml:"name"`
	Rules map[string]tt.ConfigRule `yaml:"rules"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}
	return config, nil
}
