package cmd

import (
	"fmt"

	"github.com/matheuskafuri/newsforge/internal/headline"
	"github.com/matheuskafuri/newsforge/internal/shell"
	"github.com/spf13/cobra"
)

var flagCount int

var generateCmd = &cobra.Command{
	Use:   "generate [category]",
	Short: "Print headlines and exit",
	Long: `Generate headlines for a category (tech, sports, funny, mystery) or
"random" and print them one per line. The category defaults to random.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		selector := headline.Random
		if len(args) == 1 {
			selector = args[0]
		}
		sel, err := headline.ParseSelector(selector)
		if err != nil {
			return err
		}

		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		headlines, err := s.gen.GenerateN(sel, flagCount)
		if err != nil {
			return fmt.Errorf("generating headlines: %w", err)
		}
		for _, h := range headlines {
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", h.Category.Label(), h.Text)
		}
		return nil
	},
}

var flagDemoCount int

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the quick demo without prompting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		count := s.cfg.GetDemoCount()
		if cmd.Flags().Changed("count") {
			count = flagDemoCount
		}
		if count <= 0 {
			return fmt.Errorf("--count must be positive, got %d", count)
		}

		sh := shell.New(s.gen, s.hist, cmd.InOrStdin(), cmd.OutOrStdout(),
			shell.WithLogger(s.log),
			shell.WithDemoCount(count),
			shell.WithNoColor(s.cfg.NoColor),
		)
		defer sh.Close()
		return sh.QuickDemo()
	},
}

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List headline categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		r := s.gen.Registry()
		for _, c := range headline.AllCategories() {
			bank, _ := r.Bank(c)
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %d subjects, %d actions, %d objects, %d templates\n",
				c, len(bank.Subjects), len(bank.Actions), len(bank.Objects), len(r.Templates(c)))
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().IntVarP(&flagCount, "count", "n", 1, "number of headlines to generate")
	demoCmd.Flags().IntVarP(&flagDemoCount, "count", "n", 0, "number of demo headlines (default from config)")
}
