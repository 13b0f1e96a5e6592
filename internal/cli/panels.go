package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/urfave/cli/v3"

	fetcher "github.com/spacemagneto/panel-fetcher"
	"github.com/spacemagneto/panel-fetcher/internal/console"
	"github.com/spacemagneto/panel-fetcher/internal/panels"
)

func interactiveFlag() cli.Flag {
	return &cli.BoolFlag{
		Name:    flagInteractive,
		Aliases: []string{"i"},
		Usage:   "open the panel in an interactive view with retry",
	}
}

func profileCmd() *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Show the profile of the logged-in user",
		Flags: []cli.Flag{interactiveFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPanel(ctx, cmd, panels.Profile())
		},
	}
}

func channelsCmd() *cli.Command {
	return &cli.Command{
		Name:  "channels",
		Usage: "List the channels visible to the user",
		Flags: []cli.Flag{interactiveFlag()},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPanel(ctx, cmd, panels.Channels())
		},
	}
}

// runPanel fetches the panel's resource once and prints the rendered view, or hosts the
// session in an interactive program when requested.
func runPanel[T any](ctx context.Context, cmd *cli.Command, panel panels.Panel[T]) error {
	rt, err := newRuntime(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	if cmd.Bool(flagInteractive) {
		notifier := fetcher.NewNotifier()

		session, err := panel.NewSession(rt.client, rt.logger, append(rt.observers, notifier)...)
		if err != nil {
			return err
		}

		model := console.New[T](ctx, panel.Title, session, panel.Renderer, notifier)
		_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()

		return err
	}

	session, err := panel.NewSession(rt.client, rt.logger, rt.observers...)
	if err != nil {
		return err
	}

	if err := session.Attach(ctx); err != nil {
		return err
	}
	defer session.Detach()

	if err := session.Wait(ctx); err != nil {
		return err
	}

	view := session.Render(panel.Renderer)
	if errView, ok := view.(fetcher.ErrorView); ok {
		return fmt.Errorf("%s: %s", panel.Title, errView.Message)
	}

	_, err = fmt.Fprintln(stdout(cmd), view.String())

	return err
}
