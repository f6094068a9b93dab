package cmd

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seacanal/internal/logger"
	"github.com/katalvlaran/seacanal/internal/seqio"
	"github.com/katalvlaran/seacanal/pattern"
)

// sample is one built-in demonstration input.
type sample struct {
	seq       []int64
	relations []string
}

var samples = []sample{
	{seq: []int64{1, 4, 3, 6, 5}},
	{seq: []int64{1, 2, 4, 8}},
	{seq: []int64{1, 10, 19, 28}},
	{seq: []int64{2, 4, 2, 4}},
	{seq: []int64{1, 2, 4, 5, 25}},
	{seq: []int64{1, 2, 4, 7, 11}},
	{seq: []int64{1, 2, 16, 2, 3, 81, 3}, relations: []string{"^4", "root 4"}},
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Run the search over built-in sequences",
	Long: `Sample runs the search over a fixed set of sequences and prints each
input next to the cycle found for it. Search flags apply to every sample.

Example:
  seacanal sample --no-meta`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	rows := make([][2]string, 0, len(samples))
	width := 0
	for _, s := range samples {
		sc := cfg.Search
		sc.Relations = append(append([]string(nil), sc.Relations...), s.relations...)

		a, err := newAnalyzer(s.seq, &sc)
		if err != nil {
			return err
		}
		bound := sc.MaxLength
		if bound == 0 {
			bound = seqio.DefaultBound(len(s.seq))
		}

		var found []pattern.Pattern
		if p, ok := a.FindAnyPattern(bound); ok {
			found = []pattern.Pattern{p}
		}

		log.WithSequence(len(s.seq)).WithSearch(&sc, bound).Debugw("Sample searched", "found", len(found) > 0)

		in := formatSeq(s.seq)
		width = max(width, runewidth.StringWidth(in))
		rows = append(rows, [2]string{in, seqio.Format(found)[0]})
	}

	out := cmd.OutOrStdout()
	for _, r := range rows {
		fmt.Fprintf(out, "%s  →  %s\n", runewidth.FillRight(r[0], width), paint(r[1], r[1] != seqio.NoPattern, cfg.Output.Color))
	}
	return nil
}

func formatSeq(seq []int64) string {
	parts := make([]string, len(seq))
	for i, v := range seq {
		parts[i] = fmt.Sprint(v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
