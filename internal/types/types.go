package types

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Severity is the reporting level the host policy assigns to an issue.
// Whether a non-exhaustive match is an error, a warning or suppressed
// is decided at this boundary, never inside the engine.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	SeverityOff
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityOff:
		return "off"
	}
	return "unknown"
}

// UnmarshalYAML accepts the textual severity names used in config files.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch name {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	case "off":
		*s = SeverityOff
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// ConfigRule carries the per-rule settings from the configuration file.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Issue represents a problem reported for one match document.
type Issue struct {
	Rule     string
	Severity Severity
	Filename string
	Match    string // name of the match document
	Message  string
	Note     string
	Arm      int // arm index for arm-scoped rules, -1 otherwise
}
