package formatter

import (
	"strings"

	tt "github.com/gnolang/excheck/internal/types"
)

type missingCaseFormatter struct{}

func (f *missingCaseFormatter) Format(issue tt.Issue) string {
	var builder strings.Builder
	builder.WriteString("  " + messageStyle.Sprint(issue.Message) + "\n")
	if issue.Note != "" {
		builder.WriteString("  " + noteStyle.Sprint("note: "+issue.Note) + "\n")
	}
	return builder.String()
}
