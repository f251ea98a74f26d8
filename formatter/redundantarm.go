package formatter

import (
	"fmt"
	"strings"

	tt "github.com/gnolang/excheck/internal/types"
)

type redundantArmFormatter struct{}

func (f *redundantArmFormatter) Format(issue tt.Issue) string {
	var builder strings.Builder
	builder.WriteString("  " + messageStyle.Sprint(issue.Message))
	if issue.Arm >= 0 {
		builder.WriteString(messageStyle.Sprint(fmt.Sprintf(" (arm %d)", issue.Arm+1)))
	}
	builder.WriteString("\n")
	if issue.Note != "" {
		builder.WriteString("  " + noteStyle.Sprint("note: "+issue.Note) + "\n")
	}
	return builder.String()
}
