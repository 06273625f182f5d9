// Package styles содержит общие стили lipgloss для экранов TUI
package styles

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

var (
	Title        = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0, 0, 2)
	Label        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	Focused      = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	Blurred      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	Help         = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0, 0, 2)
	Error        = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0, 0, 2)
	Success      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Margin(1, 0, 0, 2)
	Item         = lipgloss.NewStyle().PaddingLeft(4)
	SelectedItem = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	Pagination   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	ListHelp     = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
)

// Status хранит последнее сообщение для строки состояния экрана
type Status struct {
	text  string
	isErr bool
}

// Info задает информационное сообщение
func (s *Status) Info(text string) {
	s.text, s.isErr = text, false
}

// Err задает сообщение об ошибке
func (s *Status) Err(err error) {
	if err == nil {
		s.Clear()
		return
	}
	s.text, s.isErr = err.Error(), true
}

// Clear очищает строку состояния
func (s *Status) Clear() {
	s.text, s.isErr = "", false
}

// Text возвращает текст сообщения
func (s Status) Text() string {
	return s.text
}

// IsErr сообщает, является ли сообщение ошибкой
func (s Status) IsErr() bool {
	return s.isErr
}

// View отображает строку состояния
func (s Status) View() string {
	switch {
	case s.text == "":
		return ""
	case s.isErr:
		return Error.Render("❌ " + s.text)
	default:
		return Success.Render("✅ " + s.text)
	}
}
