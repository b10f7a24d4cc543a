package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sandeepan/tutora/internal/app"
	"github.com/sandeepan/tutora/internal/catalog"
	"github.com/sandeepan/tutora/internal/content"
	"github.com/sandeepan/tutora/internal/llm"
	"github.com/sandeepan/tutora/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	cat, err := catalog.LoadDefault()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Subject catalog invalid:", err)
		fmt.Fprintln(os.Stderr, "Falling back to the built-in catalog.")
		cat = catalog.Default()
	}

	eventRepo := st.EventRepo()

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("no generation provider configured: %w\n\nSet GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY", err)
	}

	return app.Run(app.Options{
		Service:   content.NewService(provider, content.DefaultConfig()),
		EventRepo: eventRepo,
		Catalog:   cat,
		ModelID:   provider.ModelID(),
	})
}
