package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivanz/interq/internal/app"
	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/config"
	"github.com/ivanz/interq/internal/hint"
	"github.com/ivanz/interq/internal/narrator"
	"github.com/ivanz/interq/internal/store"
)

// runApp opens the store, loads the question bank and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	b, err := bank.LoadFile(resolveBankPath(cmd, cfg))
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	return app.Run(app.Options{
		Store:   st,
		Bank:    b,
		Speaker: narrator.New(),
		Hints:   hint.Opener{Dir: cfg.KnowledgeDir},
		Volume:  cfg.Volume,
	})
}
