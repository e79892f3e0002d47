package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcqgen/internal/app"
	"github.com/abhisek/mcqgen/internal/llm"
	"github.com/abhisek/mcqgen/internal/mcq"
	"github.com/abhisek/mcqgen/internal/store"
)

// runApp opens the store, builds the generator, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{EventRepo: eventRepo}

	gen, err := newGenerator(cmd.Context(), eventRepo)
	if err != nil {
		// The app still starts and shows the error where generation would be.
		opts.ConfigErr = err
	} else {
		opts.Generator = gen
	}

	return app.Run(opts)
}

// newGenerator resolves the provider configuration from the environment and
// builds a generator that logs to eventRepo.
func newGenerator(ctx context.Context, eventRepo store.EventRepo) (*mcq.LLMGenerator, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := llm.ResolveConfig()
	if err != nil {
		return nil, err
	}
	provider, err := llm.NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, fmt.Errorf("LLM provider: %w", err)
	}

	genCfg := mcq.DefaultConfig()
	genCfg.Timeout = cfg.Timeout
	return mcq.New(provider, genCfg, mcq.WithEventRepo(eventRepo)), nil
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "warning: "+format+"\n", args...)
}
