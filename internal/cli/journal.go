package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"
)

func journalCmd() *cli.Command {
	return &cli.Command{
		Name:  "journal",
		Usage: "Drain and print recorded session transitions",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rt, err := newRuntime(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			if rt.journal == nil {
				return errors.New("journal requires a redis address")
			}

			transitions, err := rt.journal.Drain(ctx)
			if err != nil {
				return fmt.Errorf("drain journal: %w", err)
			}

			out := stdout(cmd)
			for _, t := range transitions {
				line := fmt.Sprintf("%s %s %s -> %s attempt=%d", t.At.Format(time.RFC3339), t.URL, t.From, t.To, t.Attempt)
				if t.Message != "" {
					line += fmt.Sprintf(" message=%q", t.Message)
				}
				if _, err := fmt.Fprintln(out, line); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
