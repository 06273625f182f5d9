package main

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bingo/internal/config"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var (
		configPath string
		seed       int64
		debug      bool
	)

	rootCmd := &cobra.Command{
		Use:           "bingo",
		Short:         "Music bingo card generator",
		Long:          `Build a song pool, save it as a named playlist and print 5x5 music bingo cards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			cfg, err := config.LoadConfig(configPath)
			if err != nil {
				log.Fatalf("Ошибка загрузки конфигурации: %v", err)
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}

			initialized, err := NewApplication(ctx, cfg, app.In)
			if err != nil {
				log.Fatalf("Ошибка инициализации: %v", err)
			}
			*app = *initialized

			if debug {
				if err := app.EnableDebug(cfg.DataDir); err != nil {
					log.Fatalf("Ошибка открытия отладочного журнала: %v", err)
				}
			}
			app.debugf("команда %q, хранилище %s, seed %d", cmd.CommandPath(), cfg.StoreBackend, cfg.Seed)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "path to the YAML config file")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for card generation (0 means random)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "write a debug log to "+debugLogFile+" in the data directory")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createPlaylistCommand(ctx))
	rootCmd.AddCommand(app.createGenerateCommand())
	rootCmd.AddCommand(app.createTUICommand(ctx))

	return rootCmd
}
