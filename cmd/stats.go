package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ivanz/interq/internal/bank"
	"github.com/ivanz/interq/internal/config"
	"github.com/ivanz/interq/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats <name>",
	Short: "Print a profile's progress summary",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printStats(cmd, args[0])
	},
}

func printStats(cmd *cobra.Command, name string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	ok, err := st.UserExists(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no profile named %q", name)
	}

	b, err := bank.LoadFile(resolveBankPath(cmd, cfg))
	if err != nil {
		return fmt.Errorf("load question bank: %w", err)
	}

	progress, err := st.Progress(name)
	if err != nil {
		return err
	}
	rep := stats.Build(progress, b.Ranges())

	last, err := st.LastEnter(name)
	if err != nil {
		return err
	}
	secs, err := st.Duration(name)
	if err != nil {
		return err
	}
	sessions, err := st.SessionCount(name)
	if err != nil {
		return err
	}

	fmt.Println(name)
	fmt.Println("  last visit:     ", stats.LastVisit(last, time.Now()))
	fmt.Println("  interview hours:", stats.Hours(secs))
	fmt.Println("  sessions:       ", sessions)
	fmt.Printf("  answered:        %d of %d (%.1f%%)\n",
		rep.RightAnswers, rep.TotalQuestions, rep.CompletionPercent)
	for _, t := range bank.Themes() {
		frac, ok := rep.PerTheme[t]
		if !ok {
			continue
		}
		fmt.Printf("  %-18s %3.0f%%\n", t.String(), frac*100)
	}
	return nil
}
