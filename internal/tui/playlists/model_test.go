package playlists

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-test/deep"
	"github.com/hazadus/go-bingo/internal/bingo"
	"github.com/hazadus/go-bingo/internal/card"
	"github.com/hazadus/go-bingo/internal/store"
)

func newTestState(t *testing.T) *bingo.State {
	t.Helper()
	state, err := bingo.New(context.Background(), store.NewMemory(), card.NewGenerator(1))
	if err != nil {
		t.Fatalf("Ошибка создания состояния: %v", err)
	}
	return state
}

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *Model, keys ...tea.KeyMsg) (*Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func TestSavePlaylist(t *testing.T) {
	state := newTestState(t)
	state.AddSongs("A\nB")
	model := NewModel(context.Background(), state)

	model, _ = press(model, key("Party"), tea.KeyMsg{Type: tea.KeyCtrlS})

	playlists := state.Playlists()
	if len(playlists) != 1 || playlists[0].Name != "Party" {
		t.Fatalf("Ожидался плейлист Party, получено %+v", playlists)
	}
	if len(model.list.Items()) != 1 {
		t.Errorf("Список должен обновиться, получено %d элементов", len(model.list.Items()))
	}
	if model.status.IsErr() {
		t.Errorf("Неожиданная ошибка: %s", model.status.Text())
	}
}

func TestSaveValidation(t *testing.T) {
	state := newTestState(t)
	model := NewModel(context.Background(), state)

	model, _ = press(model, tea.KeyMsg{Type: tea.KeyCtrlS})
	if model.status.Text() != bingo.ErrEmptyName.Error() {
		t.Errorf("Ожидалась ошибка пустого имени, получено %q", model.status.Text())
	}

	model, _ = press(model, key("Party"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if model.status.Text() != bingo.ErrEmptyPool.Error() {
		t.Errorf("Ожидалась ошибка пустого пула, получено %q", model.status.Text())
	}
	if len(state.Playlists()) != 0 {
		t.Error("Плейлист не должен сохраниться")
	}
}

func TestLoadPlaylist(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)
	state.AddSongs("A\nB")
	state.SetPlaylistName("Party")
	if _, err := state.SavePlaylist(ctx); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}
	state.ClearSongs()
	state.AddSongs("X")
	state.SetPlaylistName("")

	model := NewModel(ctx, state)
	model, cmd := press(model, tea.KeyMsg{Type: tea.KeyEsc}, tea.KeyMsg{Type: tea.KeyEnter})

	if diff := deep.Equal(state.Songs(), []string{"A", "B"}); diff != nil {
		t.Errorf("Пул должен замениться плейлистом: %v", diff)
	}
	if model.input.Value() != "Party" {
		t.Errorf("Имя плейлиста должно подставиться в поле, получено %q", model.input.Value())
	}
	if cmd == nil {
		t.Fatal("Ожидалась команда с PlaylistLoadedMsg")
	}
	if msg, ok := cmd().(PlaylistLoadedMsg); !ok || msg.Name != "Party" {
		t.Errorf("Неожиданное сообщение: %#v", msg)
	}
}

func TestDeleteConfirmation(t *testing.T) {
	ctx := context.Background()
	state := newTestState(t)
	state.AddSongs("A")
	state.SetPlaylistName("Party")
	if _, err := state.SavePlaylist(ctx); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	model := NewModel(ctx, state)
	model, _ = press(model, tea.KeyMsg{Type: tea.KeyEsc}, key("d"))
	if model.Confirming() != "Party" {
		t.Fatalf("Ожидался запрос подтверждения, получено %q", model.Confirming())
	}
	if !strings.Contains(model.View(), "(y/n)") {
		t.Error("В представлении должен быть запрос подтверждения")
	}

	// Отказ оставляет плейлист
	model, _ = press(model, key("n"))
	if model.Confirming() != "" || len(state.Playlists()) != 1 {
		t.Error("После отказа плейлист должен остаться")
	}

	// Подтверждение удаляет плейлист, пул не меняется
	model, _ = press(model, key("d"), key("y"))
	if len(state.Playlists()) != 0 {
		t.Error("Плейлист должен быть удален")
	}
	if diff := deep.Equal(state.Songs(), []string{"A"}); diff != nil {
		t.Errorf("Пул не должен меняться: %v", diff)
	}
	if len(model.list.Items()) != 0 {
		t.Errorf("Список должен быть пуст, получено %d", len(model.list.Items()))
	}
}

func TestTypingInListDoesNotEditName(t *testing.T) {
	state := newTestState(t)
	model := NewModel(context.Background(), state)

	model, _ = press(model, tea.KeyMsg{Type: tea.KeyEsc}, key("x"))
	if model.input.Value() != "" || state.PlaylistName() != "" {
		t.Error("В режиме списка символы не должны попадать в имя")
	}

	model, _ = press(model, key("i"), key("x"))
	if state.PlaylistName() != "x" {
		t.Errorf("Ожидалось имя x, получено %q", state.PlaylistName())
	}
}
