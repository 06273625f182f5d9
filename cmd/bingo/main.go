package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/hazadus/go-bingo/internal/bingo"
	"github.com/hazadus/go-bingo/internal/card"
	"github.com/hazadus/go-bingo/internal/config"
	"github.com/hazadus/go-bingo/internal/metadata"
	"github.com/hazadus/go-bingo/internal/store"
)

const (
	defaultConfigPath = "~/.bingo.yaml"
	debugLogFile      = "bingo-debug.log"
)

// Application хранит зависимости, общие для всех команд
type Application struct {
	Config *config.Config
	Store  store.Store
	State  *bingo.State
	In     io.Reader // источник ввода для песен и подтверждений

	YouTube *metadata.YouTubeImporter

	debugLog *log.Logger
	closers  []io.Closer
}

// NewApplication создает приложение: открывает хранилище и загружает плейлисты
func NewApplication(ctx context.Context, cfg *config.Config, in io.Reader) (*Application, error) {
	st, err := store.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия хранилища: %w", err)
	}

	state, err := bingo.New(ctx, st, card.NewGenerator(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки плейлистов: %w", err)
	}

	state.SetCardCount(cfg.CardCount)

	return &Application{
		Config: cfg,
		Store:  st,
		State:  state,
		In:     in,

		YouTube: metadata.NewYouTubeImporter(),
	}, nil
}

// EnableDebug включает запись отладочного журнала в файл
func (app *Application) EnableDebug(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	file, err := os.OpenFile(filepath.Join(dir, debugLogFile), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	app.debugLog = log.New(file, "bingo ", log.LstdFlags|log.Lmicroseconds)
	app.closers = append(app.closers, file)
	return nil
}

func (app *Application) debugf(format string, args ...any) {
	if app.debugLog != nil {
		app.debugLog.Printf(format, args...)
	}
}

// Close освобождает ресурсы приложения
func (app *Application) Close() {
	for _, c := range app.closers {
		c.Close()
	}
}

func main() {
	// Контекст отменяется по Ctrl+C или SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	app := &Application{In: os.Stdin}
	rootCmd := app.createRootCommand(ctx)

	err := rootCmd.Execute()
	app.Close()
	stop()

	if err != nil {
		fmt.Printf("❌ Ошибка: %v\n", err)
		os.Exit(1)
	}
}
