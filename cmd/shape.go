package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gnolang/excheck/internal/gotypes"
	"github.com/gnolang/excheck/internal/space"
)

var shapeCmd = &cobra.Command{
	Use:   "shape <package> <type>",
	Short: "Derive the value-space shape of a Go type",
	Long: `Loads a Go package and prints the value-space shape the checker would
use for the given type: enums for bool and const-enum types, products
for structs, sums for closed marker-method interfaces, open otherwise.
Example) excheck shape ./traffic Light`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println("error: Please provide a package pattern and a type name")
			os.Exit(1)
		}

		sh, err := gotypes.LoadShape(args[0], args[1])
		if err != nil {
			logger.Fatal("Failed to derive shape", zap.Error(err))
		}
		fmt.Println(renderShape(sh, 0))
	},
}

func renderShape(sh *space.Shape, depth int) string {
	indent := strings.Repeat("  ", depth)
	switch sh.Kind {
	case space.KindEnum:
		return fmt.Sprintf("%senum %s {%s}", indent, sh.Name, strings.Join(sh.Tags, ", "))
	case space.KindProduct:
		var b strings.Builder
		fmt.Fprintf(&b, "%sproduct %s {", indent, sh.Name)
		for _, f := range sh.Fields {
			fmt.Fprintf(&b, "\n%s  %s:\n%s", indent, f.Name, renderShape(f.Shape, depth+2))
		}
		if len(sh.Fields) > 0 {
			fmt.Fprintf(&b, "\n%s", indent)
		}
		b.WriteString("}")
		return b.String()
	case space.KindSum:
		var b strings.Builder
		fmt.Fprintf(&b, "%ssum %s {", indent, sh.Name)
		for _, a := range sh.Alts {
			fmt.Fprintf(&b, "\n%s  %s:\n%s", indent, a.Name, renderShape(a.Payload, depth+2))
		}
		fmt.Fprintf(&b, "\n%s}", indent)
		if sh.Implicit {
			b.WriteString(" (implicit extra state)")
		}
		return b.String()
	case space.KindOpen:
		return fmt.Sprintf("%sopen %s", indent, sh.Name)
	}
	return indent + "unknown"
}
