package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bingo/internal/tui"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for entering songs, generating and marking cards and managing playlists.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			app.debugf("запуск TUI")
			return tui.NewApp(ctx, app.State).Run()
		},
	}
}
