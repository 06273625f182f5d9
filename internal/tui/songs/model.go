// Package songs содержит модель экрана ввода песен для TUI
package songs

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hazadus/go-bingo/internal/bingo"
	"github.com/hazadus/go-bingo/internal/tui/styles"
	"github.com/hazadus/go-bingo/internal/utils"
)

// songItem реализует интерфейс list.Item для песни из пула
type songItem struct {
	index int
	song  string
}

func (i songItem) FilterValue() string {
	return i.song
}

// songItemDelegate реализует отображение элементов списка
type songItemDelegate struct{}

func (d songItemDelegate) Height() int                             { return 1 }
func (d songItemDelegate) Spacing() int                            { return 0 }
func (d songItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songItemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	str := fmt.Sprintf("%-4d %s", i.index+1, utils.TruncateString(i.song, 60))

	fn := styles.Item.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return styles.SelectedItem.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет модель экрана ввода песен
type Model struct {
	state    *bingo.State
	textarea textarea.Model
	list     list.Model
	status   styles.Status
}

// NewModel создает новую модель экрана песен
func NewModel(state *bingo.State) *Model {
	ta := textarea.New()
	ta.Placeholder = "Вставьте песни, по одной на строку"
	ta.ShowLineNumbers = false
	ta.SetWidth(60)
	ta.SetHeight(8)
	ta.Focus()

	l := list.New(nil, songItemDelegate{}, 0, 0)
	l.Title = "Пул песен"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = styles.Label
	l.Styles.PaginationStyle = styles.Pagination
	l.Styles.HelpStyle = styles.ListHelp

	m := &Model{
		state:    state,
		textarea: ta,
		list:     l,
	}
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textarea.Blink
}

// RefreshData перечитывает пул и буфер ввода из состояния
func (m *Model) RefreshData() {
	songs := m.state.Songs()
	items := make([]list.Item, len(songs))
	for i, song := range songs {
		items[i] = songItem{index: i, song: song}
	}
	m.list.SetItems(items)
	m.list.Title = fmt.Sprintf("Пул песен (%d)", len(songs))

	if m.textarea.Value() != m.state.Input() {
		m.textarea.SetValue(m.state.Input())
	}
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.textarea.SetWidth(msg.Width - 4)
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(max(msg.Height-m.textarea.Height()-10, 5))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+l":
			m.loadSongs()
			return m, nil

		case "ctrl+x":
			m.state.ClearSongs()
			m.textarea.Reset()
			m.RefreshData()
			m.status.Info("Пул песен и карточки очищены")
			return m, nil

		case "esc":
			// Переключаем фокус между полем ввода и списком
			if m.textarea.Focused() {
				m.textarea.Blur()
				return m, nil
			}
			return m, m.textarea.Focus()
		}

		if !m.textarea.Focused() {
			switch msg.String() {
			case "d", "delete":
				m.removeSelected()
				return m, nil
			case "i":
				return m, m.textarea.Focus()
			}
			var cmd tea.Cmd
			m.list, cmd = m.list.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	m.state.SetInput(m.textarea.Value())
	return m, cmd
}

func (m *Model) loadSongs() {
	m.state.SetInput(m.textarea.Value())
	added := m.state.LoadSongs()
	m.textarea.Reset()
	m.RefreshData()
	m.status.Info(fmt.Sprintf("Добавлено %d %s, всего в пуле: %d",
		added, utils.Pluralize(added, "песня", "песни", "песен"), len(m.state.Songs())))
}

func (m *Model) removeSelected() {
	item, ok := m.list.SelectedItem().(songItem)
	if !ok {
		return
	}
	if err := m.state.RemoveSong(item.index); err != nil {
		m.status.Err(err)
		return
	}
	m.RefreshData()
	m.status.Info(fmt.Sprintf("Песня удалена: %s", item.song))
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Песни"))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())

	if status := m.status.View(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	b.WriteString("\n")
	if m.textarea.Focused() {
		b.WriteString(styles.Help.Render("Ctrl+L: загрузить песни • Ctrl+X: очистить • Esc: к списку"))
	} else {
		b.WriteString(styles.Help.Render("d: удалить песню • i/Esc: к полю ввода • Ctrl+X: очистить"))
	}
	return b.String()
}
