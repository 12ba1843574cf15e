package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/matheuskafuri/newsforge/internal/shell"
	"github.com/spf13/cobra"
)

func runLauncher(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sh := shell.New(s.gen, s.hist, cmd.InOrStdin(), cmd.OutOrStdout(),
		shell.WithLogger(s.log),
		shell.WithDemoCount(s.cfg.GetDemoCount()),
		shell.WithNoColor(s.cfg.NoColor),
	)
	defer sh.Close()

	return sh.Launch(ctx)
}
