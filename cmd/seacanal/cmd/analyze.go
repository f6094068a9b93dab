package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seacanal/analyzer"
	"github.com/katalvlaran/seacanal/internal/config"
	"github.com/katalvlaran/seacanal/internal/logger"
	"github.com/katalvlaran/seacanal/internal/seqio"
	"github.com/katalvlaran/seacanal/pattern"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	var seq []int64
	if len(args) > 0 {
		seq, err = seqio.ParseArgs(args)
	} else {
		seq, err = seqio.ReadLine(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}

	a, err := newAnalyzer(seq, &cfg.Search)
	if err != nil {
		return err
	}

	bound := cfg.Search.MaxLength
	if bound == 0 {
		bound = seqio.DefaultBound(len(seq))
	}
	log.WithSequence(len(seq)).WithSearch(&cfg.Search, bound).Debug("Searching for cycles")

	var found []pattern.Pattern
	if cfg.Search.All {
		found = a.FindPatterns(bound)
	} else if p, ok := a.FindAnyPattern(bound); ok {
		found = []pattern.Pattern{p}
	}

	if len(found) > 0 {
		log.WithCycleLength(found[0].Len()).Infow("Cycle found", "count", len(found))
	} else {
		log.Infow("No cycle found", "max_length", bound)
	}

	printResult(cmd, found, cfg.Output.Color)
	return nil
}

// newAnalyzer builds an Analyzer from the search settings.
func newAnalyzer(seq []int64, sc *config.SearchConfig) (*analyzer.Analyzer, error) {
	cfg := config.Config{Search: *sc}
	rels, err := cfg.Relations()
	if err != nil {
		return nil, err
	}

	opts := []analyzer.Option{analyzer.WithParallelism(sc.Parallelism)}
	if len(rels) > 0 {
		opts = append(opts, analyzer.WithRelations(rels...))
	}
	if sc.Meta {
		opts = append(opts, analyzer.WithMeta())
	}
	return analyzer.New(seq, opts...), nil
}
