package formatter

import (
	tt "github.com/gnolang/excheck/internal/types"
)

// generalFormatter renders any issue without a dedicated formatter.
type generalFormatter struct{}

func (f *generalFormatter) Format(issue tt.Issue) string {
	out := "  " + messageStyle.Sprint(issue.Message) + "\n"
	if issue.Note != "" {
		out += "  " + noteStyle.Sprint("note: "+issue.Note) + "\n"
	}
	return out
}
