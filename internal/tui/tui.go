// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-bingo/internal/bingo"
	"github.com/hazadus/go-bingo/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	ctx   context.Context
	state *bingo.State
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(ctx context.Context, state *bingo.State) *App {
	return &App{
		ctx:   ctx,
		state: state,
	}
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	// Создаем модель для Bubble Tea
	model := app.NewMainModel(tuiApp.ctx, tuiApp.state)

	// Создаем программу Bubble Tea
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(tuiApp.ctx))

	// Запускаем программу
	_, err := p.Run()
	return err
}
