package cmd

import (
	"github.com/matheuskafuri/newsforge/internal/tui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the full-screen headline interface",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		return tui.Run(tui.RunOpts{
			Generator: s.gen,
			History:   s.hist,
			Logger:    s.log,
		})
	},
}
