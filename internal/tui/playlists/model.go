// Package playlists содержит модель экрана сохраненных плейлистов для TUI
package playlists

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-bingo/internal/bingo"
	"github.com/hazadus/go-bingo/internal/data"
	"github.com/hazadus/go-bingo/internal/tui/styles"
	"github.com/hazadus/go-bingo/internal/utils"
)

// PlaylistLoadedMsg отправляется после загрузки плейлиста в пул
type PlaylistLoadedMsg struct {
	Name string
}

// playlistItem реализует интерфейс list.Item для плейлиста
type playlistItem struct {
	playlist data.Playlist
	selected bool
}

func (i playlistItem) FilterValue() string {
	return i.playlist.Name
}

// playlistItemDelegate реализует отображение элементов списка
type playlistItemDelegate struct{}

func (d playlistItemDelegate) Height() int                             { return 1 }
func (d playlistItemDelegate) Spacing() int                            { return 0 }
func (d playlistItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d playlistItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(playlistItem)
	if !ok {
		return
	}

	mark := " "
	if i.selected {
		mark = "*"
	}
	count := len(i.playlist.Songs)
	str := fmt.Sprintf("%s %-40s %d %s", mark, utils.TruncateString(i.playlist.Name, 40),
		count, utils.Pluralize(count, "песня", "песни", "песен"))

	fn := styles.Item.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return styles.SelectedItem.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана плейлистов
type Model struct {
	ctx        context.Context
	state      *bingo.State
	input      textinput.Model
	list       list.Model
	confirming string // имя плейлиста, ожидающего подтверждения удаления
	status     styles.Status
}

// NewModel создает новую модель экрана плейлистов
func NewModel(ctx context.Context, state *bingo.State) *Model {
	input := textinput.New()
	input.Placeholder = "Имя плейлиста"
	input.CharLimit = 100
	input.Width = 40
	input.Focus()
	input.PromptStyle = styles.Focused
	input.TextStyle = styles.Focused

	l := list.New(nil, playlistItemDelegate{}, 0, 0)
	l.Title = "Сохраненные плейлисты"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Label
	l.Styles.PaginationStyle = styles.Pagination
	l.Styles.HelpStyle = styles.ListHelp

	m := &Model{
		ctx:   ctx,
		state: state,
		input: input,
		list:  l,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// RefreshData перечитывает плейлисты и имя из состояния
func (m *Model) RefreshData() {
	playlists := m.state.Playlists()
	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		items[i] = playlistItem{playlist: p, selected: p.Name == m.state.Selected()}
	}
	m.list.SetItems(items)

	if m.input.Value() != m.state.PlaylistName() {
		m.input.SetValue(m.state.PlaylistName())
	}
}

// Confirming возвращает имя плейлиста, ожидающего подтверждения удаления
func (m *Model) Confirming() string {
	return m.confirming
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(max(msg.Height-12, 5))
		return m, nil

	case tea.KeyMsg:
		if m.confirming != "" {
			return m.updateConfirm(msg)
		}

		switch msg.String() {
		case "ctrl+s":
			m.save()
			return m, nil

		case "esc":
			m.toggleFocus()
			return m, nil
		}

		if !m.input.Focused() {
			switch msg.String() {
			case "enter":
				return m, m.load()
			case "d", "delete":
				if item, ok := m.list.SelectedItem().(playlistItem); ok {
					m.confirming = item.playlist.Name
				}
				return m, nil
			case "i":
				m.toggleFocus()
				return m, nil
			}
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.SetPlaylistName(m.input.Value())
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (*Model, tea.Cmd) {
	name := m.confirming
	switch msg.String() {
	case "y", "Y":
		m.confirming = ""
		// Подтверждение уже получено от пользователя
		if _, err := m.state.DeletePlaylist(m.ctx, name, nil); err != nil {
			m.status.Err(err)
			return m, nil
		}
		m.RefreshData()
		m.status.Info(fmt.Sprintf("Плейлист удален: %s", name))
	case "n", "N", "esc":
		m.confirming = ""
		m.status.Info("Удаление отменено")
	}
	return m, nil
}

func (m *Model) toggleFocus() {
	if m.input.Focused() {
		m.input.Blur()
		m.input.PromptStyle = styles.Blurred
		m.input.TextStyle = styles.Blurred
		return
	}
	m.input.Focus()
	m.input.PromptStyle = styles.Focused
	m.input.TextStyle = styles.Focused
}

func (m *Model) save() {
	m.state.SetPlaylistName(m.input.Value())
	name, err := m.state.SavePlaylist(m.ctx)
	if err != nil {
		m.status.Err(err)
		return
	}
	m.RefreshData()
	m.status.Info(fmt.Sprintf("Плейлист сохранен: %s", name))
}

func (m *Model) load() tea.Cmd {
	item, ok := m.list.SelectedItem().(playlistItem)
	if !ok {
		return nil
	}
	if err := m.state.LoadPlaylist(item.playlist.Name); err != nil {
		m.status.Err(err)
		return nil
	}
	m.RefreshData()
	count := len(m.state.Songs())
	m.status.Info(fmt.Sprintf("Плейлист загружен: %s (%d %s)", item.playlist.Name,
		count, utils.Pluralize(count, "песня", "песни", "песен")))

	name := item.playlist.Name
	return func() tea.Msg {
		return PlaylistLoadedMsg{Name: name}
	}
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Плейлисты"))
	b.WriteString("\n\n  ")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())

	if m.confirming != "" {
		b.WriteString("\n")
		b.WriteString(styles.Error.Render(fmt.Sprintf("Удалить плейлист %q? (y/n)", m.confirming)))
	} else if status := m.status.View(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	b.WriteString("\n")
	if m.input.Focused() {
		b.WriteString(styles.Help.Render("Ctrl+S: сохранить пул • Esc: к списку"))
	} else {
		b.WriteString(styles.Help.Render("Enter: загрузить • d: удалить • Ctrl+S: сохранить пул • i/Esc: к имени"))
	}
	return b.String()
}
