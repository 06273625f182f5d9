// Package app содержит основную логику TUI приложения
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-bingo/internal/bingo"
	"github.com/hazadus/go-bingo/internal/tui/cards"
	"github.com/hazadus/go-bingo/internal/tui/playlists"
	"github.com/hazadus/go-bingo/internal/tui/songs"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// SongsScreen - экран ввода песен
	SongsScreen ScreenType = iota
	// CardsScreen - экран карточек
	CardsScreen
	// PlaylistsScreen - экран плейлистов
	PlaylistsScreen
	numScreens
)

var screenNames = []string{"Песни", "Карточки", "Плейлисты"}

var (
	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).Padding(0, 2)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 2)
	tabBarStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, true, false).
				BorderForeground(lipgloss.Color("240"))
)

// MainModel представляет главную модель TUI
type MainModel struct {
	state          *bingo.State
	currentScreen  ScreenType
	songsModel     *songs.Model
	cardsModel     *cards.Model
	playlistsModel *playlists.Model
}

// NewMainModel создает новую главную модель
func NewMainModel(ctx context.Context, state *bingo.State) *MainModel {
	return &MainModel{
		state:          state,
		currentScreen:  SongsScreen,
		songsModel:     songs.NewModel(state),
		cardsModel:     cards.NewModel(state),
		playlistsModel: playlists.NewModel(ctx, state),
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(m.songsModel.Init(), m.cardsModel.Init(), m.playlistsModel.Init())
}

// CurrentScreen возвращает активный экран
func (m *MainModel) CurrentScreen() ScreenType {
	return m.currentScreen
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Глобальные горячие клавиши
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			m.switchScreen(1)
			return m, nil
		case "shift+tab":
			m.switchScreen(-1)
			return m, nil
		}

	case playlists.PlaylistLoadedMsg:
		// Пул изменился, обновляем остальные экраны
		m.songsModel.RefreshData()
		m.cardsModel.RefreshData()
		return m, nil

	case tea.WindowSizeMsg:
		// Размеры окна нужны всем экранам, а не только активному
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: msg.Height - 3}
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.songsModel, cmd = m.songsModel.Update(inner)
		cmds = append(cmds, cmd)
		m.cardsModel, cmd = m.cardsModel.Update(inner)
		cmds = append(cmds, cmd)
		m.playlistsModel, cmd = m.playlistsModel.Update(inner)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)
	}

	// Передаем сообщение активной модели
	var cmd tea.Cmd
	switch m.currentScreen {
	case SongsScreen:
		m.songsModel, cmd = m.songsModel.Update(msg)
	case CardsScreen:
		m.cardsModel, cmd = m.cardsModel.Update(msg)
	case PlaylistsScreen:
		m.playlistsModel, cmd = m.playlistsModel.Update(msg)
	}

	return m, cmd
}

func (m *MainModel) switchScreen(delta int) {
	m.currentScreen = (m.currentScreen + ScreenType(delta) + numScreens) % numScreens

	// Экран мог устареть, пока был неактивен
	switch m.currentScreen {
	case SongsScreen:
		m.songsModel.RefreshData()
	case CardsScreen:
		m.cardsModel.RefreshData()
	case PlaylistsScreen:
		m.playlistsModel.RefreshData()
	}
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var body string
	switch m.currentScreen {
	case SongsScreen:
		body = m.songsModel.View()
	case CardsScreen:
		body = m.cardsModel.View()
	case PlaylistsScreen:
		body = m.playlistsModel.View()
	default:
		return "Неизвестный экран"
	}

	return m.tabsView() + "\n" + body
}

func (m *MainModel) tabsView() string {
	tabs := make([]string, len(screenNames))
	for i, name := range screenNames {
		if ScreenType(i) == m.currentScreen {
			tabs[i] = activeTabStyle.Render(name)
		} else {
			tabs[i] = inactiveTabStyle.Render(name)
		}
	}

	title := activeTabStyle.Render("🎵 " + m.state.Title())
	bar := lipgloss.JoinHorizontal(lipgloss.Top, append([]string{title}, tabs...)...)
	return tabBarStyle.Render(bar) + "\n" + inactiveTabStyle.Render("Tab/Shift+Tab: экраны • Ctrl+C: выход")
}
