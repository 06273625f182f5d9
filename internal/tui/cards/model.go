// Package cards содержит модель экрана карточек бинго для TUI
package cards

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/hazadus/go-bingo/internal/bingo"
	"github.com/hazadus/go-bingo/internal/card"
	"github.com/hazadus/go-bingo/internal/tui/styles"
	"github.com/hazadus/go-bingo/internal/utils"
)

const (
	cellWidth = 16
	cellLines = 3
)

var (
	cellStyle = lipgloss.NewStyle().
			Width(cellWidth).
			Height(cellLines).
			Align(lipgloss.Center, lipgloss.Center).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))
	freeCellStyle   = cellStyle.Foreground(lipgloss.Color("205")).Bold(true)
	markedCellStyle = cellStyle.Background(lipgloss.Color("22")).Foreground(lipgloss.Color("230"))
	cardTitleStyle  = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)
	serialStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// Model представляет модель экрана карточек
type Model struct {
	state  *bingo.State
	card   int // индекс показанной карточки
	cursor int // индекс клетки под курсором
	status styles.Status
}

// NewModel создает новую модель экрана карточек
func NewModel(state *bingo.State) *Model {
	return &Model{
		state:  state,
		cursor: card.CenterIndex,
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// RefreshData приводит индекс карточки в соответствие с состоянием
func (m *Model) RefreshData() {
	if n := len(m.state.Cards()); m.card >= n {
		m.card = max(n-1, 0)
	}
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "+", "=":
		n := m.state.SetCardCount(m.state.CardCount() + 1)
		m.status.Info(fmt.Sprintf("Количество карточек: %d", n))

	case "-", "_":
		n := m.state.SetCardCount(m.state.CardCount() - 1)
		m.status.Info(fmt.Sprintf("Количество карточек: %d", n))

	case "g":
		if err := m.state.GenerateCards(); err != nil {
			m.status.Err(err)
			return m, nil
		}
		m.card = 0
		n := len(m.state.Cards())
		m.status.Info(fmt.Sprintf("Сгенерировано %d %s", n, utils.Pluralize(n, "карточка", "карточки", "карточек")))

	case "up", "k":
		m.moveCursor(-card.GridSize)
	case "down", "j":
		m.moveCursor(card.GridSize)
	case "left", "h":
		if m.cursor%card.GridSize > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor%card.GridSize < card.GridSize-1 {
			m.cursor++
		}

	case "[":
		if m.card > 0 {
			m.card--
		}
	case "]":
		if m.card < len(m.state.Cards())-1 {
			m.card++
		}

	case " ", "space", "enter":
		if _, err := m.state.ToggleCell(m.card, m.cursor); err != nil {
			m.status.Err(err)
			return m, nil
		}
		m.status.Clear()

	case "r":
		m.replaceCell()
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if next := m.cursor + delta; next >= 0 && next < card.Size {
		m.cursor = next
	}
}

func (m *Model) replaceCell() {
	replaced, err := m.state.ReplaceCell(m.card, m.cursor)
	switch {
	case err != nil:
		m.status.Err(err)
	case !replaced:
		m.status.Info("Нет песен для замены: все песни пула уже есть в карточке")
	default:
		c, _ := m.state.Card(m.card)
		m.status.Info(fmt.Sprintf("Клетка заменена: %s", c.Cells[m.cursor]))
	}
}

// Cursor возвращает индекс клетки под курсором
func (m *Model) Cursor() int {
	return m.cursor
}

// CardIndex возвращает индекс показанной карточки
func (m *Model) CardIndex() int {
	return m.card
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Карточки"))
	b.WriteString("\n")
	b.WriteString(styles.Label.Render(fmt.Sprintf("  Песен в пуле: %d • Карточек к генерации: %d • Отмечено клеток: %d",
		len(m.state.Songs()), m.state.CardCount(), m.state.MarkedCount())))
	b.WriteString("\n\n")

	cards := m.state.Cards()
	if len(cards) == 0 {
		b.WriteString(styles.Blurred.Render("  Карточек пока нет. Добавьте минимум 24 песни и нажмите g."))
	} else {
		b.WriteString(m.renderCard(cards[m.card]))
	}

	if status := m.status.View(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	b.WriteString("\n")
	b.WriteString(styles.Help.Render("+/-: количество • g: сгенерировать • стрелки: клетка • пробел: отметить • r: заменить • [/]: карточка"))
	return b.String()
}

func (m *Model) renderCard(c card.Card) string {
	rows := make([]string, 0, card.GridSize)
	for row := 0; row < card.GridSize; row++ {
		cells := make([]string, 0, card.GridSize)
		for col, song := range c.Row(row) {
			cells = append(cells, m.renderCell(row*card.GridSize+col, song))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	grid := lipgloss.JoinVertical(lipgloss.Left, rows...)

	width := lipgloss.Width(grid)
	title := cardTitleStyle.Width(width).Render(m.state.Title())
	footer := serialStyle.Width(width).Render(fmt.Sprintf("Карточка %d из %d • № %s",
		m.card+1, len(m.state.Cards()), c.Serial))

	return lipgloss.JoinVertical(lipgloss.Left, title, grid, footer)
}

func (m *Model) renderCell(index int, song string) string {
	style := cellStyle
	switch {
	case m.state.IsMarked(m.card, index):
		style = markedCellStyle
	case card.IsFree(index):
		style = freeCellStyle
	}
	if index == m.cursor {
		style = style.BorderForeground(lipgloss.Color("205")).BorderStyle(lipgloss.ThickBorder())
	}

	return style.Render(strings.Join(utils.WrapCell(song, cellWidth, cellLines), "\n"))
}
