package cmd

import (
	"fmt"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seacanal/internal/seqio"
	"github.com/katalvlaran/seacanal/pattern"
)

// printResult writes the separator line followed by one line per pattern.
func printResult(cmd *cobra.Command, found []pattern.Pattern, colored bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, seqio.Separator)
	for _, line := range seqio.Format(found) {
		fmt.Fprintln(out, paint(line, len(found) > 0, colored))
	}
}

func paint(s string, ok, colored bool) string {
	if !colored {
		return s
	}
	if ok {
		return color.Green.Sprint(s)
	}
	return color.Red.Sprint(s)
}
