// Package bingo содержит состояние приложения музыкального бинго и операции над ним
package bingo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/hazadus/go-bingo/internal/card"
	"github.com/hazadus/go-bingo/internal/config"
	"github.com/hazadus/go-bingo/internal/data"
	"github.com/hazadus/go-bingo/internal/store"
)

// DefaultTitle выводится на карточках, если имя плейлиста не задано
const DefaultTitle = "Playlist"

// Ошибки проверки пользовательского ввода
var (
	ErrNotEnoughSongs   = card.ErrNotEnoughSongs
	ErrEmptyName        = errors.New("введите имя плейлиста для сохранения")
	ErrEmptyPool        = errors.New("нет песен для сохранения")
	ErrPlaylistNotFound = data.ErrPlaylistNotFound
	ErrSongIndex        = errors.New("песни с таким номером нет в списке")
	ErrCardIndex        = errors.New("карточки с таким номером нет")
	ErrCellIndex        = errors.New("клетки с таким номером нет")
	ErrFreeCell         = errors.New("свободную клетку нельзя заменить")
)

// Confirm запрашивает у пользователя подтверждение удаления плейлиста
type Confirm func(name string) bool

// State хранит пул песен, карточки, отметки и плейлисты.
// Методы не потокобезопасны: все операции выполняются по одной.
type State struct {
	store     store.Store
	generator *card.Generator
	appData   *data.AppData

	songs  []string
	known  map[string]struct{}
	cards  []card.Card
	marked map[int]map[int]struct{}

	selected     string
	input        string
	playlistName string
	cardCount    int
}

// New создает состояние и один раз читает плейлисты из хранилища
func New(ctx context.Context, st store.Store, generator *card.Generator) (*State, error) {
	appData := data.NewAppData()
	if err := appData.LoadData(ctx, st); err != nil {
		return nil, err
	}

	return &State{
		store:     st,
		generator: generator,
		appData:   appData,
		known:     make(map[string]struct{}),
		marked:    make(map[int]map[int]struct{}),
		cardCount: config.DefaultCardCount,
	}, nil
}

// SetInput задает содержимое буфера ввода песен
func (s *State) SetInput(text string) {
	s.input = text
}

// Input возвращает содержимое буфера ввода песен
func (s *State) Input() string {
	return s.input
}

// LoadSongs добавляет в пул песни из буфера ввода и очищает его
func (s *State) LoadSongs() int {
	added := s.AddSongs(s.input)
	s.input = ""
	return added
}

// AddSongs добавляет в пул новые песни из текста, по одной на строку.
// Пустые строки и уже известные песни пропускаются. Возвращает количество добавленных.
func (s *State) AddSongs(text string) int {
	added := 0
	for _, line := range strings.Split(text, "\n") {
		song := strings.TrimSpace(line)
		if song == "" {
			continue
		}
		if _, ok := s.known[song]; ok {
			continue
		}
		s.known[song] = struct{}{}
		s.songs = append(s.songs, song)
		added++
	}
	return added
}

// ClearSongs очищает пул, карточки и буфер ввода. Плейлисты не затрагиваются.
func (s *State) ClearSongs() {
	s.setSongs(nil)
	s.clearCards()
	s.input = ""
}

// RemoveSong удаляет песню из пула по позиции. Карточки не меняются.
func (s *State) RemoveSong(index int) error {
	if index < 0 || index >= len(s.songs) {
		return fmt.Errorf("%w: %d", ErrSongIndex, index)
	}
	delete(s.known, s.songs[index])
	s.songs = append(s.songs[:index:index], s.songs[index+1:]...)
	return nil
}

// Songs возвращает копию пула песен
func (s *State) Songs() []string {
	songs := make([]string, len(s.songs))
	copy(songs, s.songs)
	return songs
}

// SetCardCount задает количество карточек, ограничивая его диапазоном [1, 50]
func (s *State) SetCardCount(n int) int {
	s.cardCount = config.ClampCardCount(n)
	return s.cardCount
}

// CardCount возвращает количество карточек для генерации
func (s *State) CardCount() int {
	return s.cardCount
}

// GenerateCards генерирует новый набор карточек и сбрасывает все отметки.
// При нехватке песен состояние не меняется.
func (s *State) GenerateCards() error {
	if len(s.songs) < card.SongsPerCard {
		return ErrNotEnoughSongs
	}

	cards, err := s.generator.GenerateMany(s.songs, s.cardCount)
	if err != nil {
		return err
	}

	s.cards = cards
	s.marked = make(map[int]map[int]struct{})
	return nil
}

// Cards возвращает копию текущих карточек
func (s *State) Cards() []card.Card {
	cards := make([]card.Card, len(s.cards))
	for i, c := range s.cards {
		cards[i] = c.Clone()
	}
	return cards
}

// Card возвращает копию карточки по индексу
func (s *State) Card(cardIndex int) (card.Card, error) {
	if err := s.checkCard(cardIndex); err != nil {
		return card.Card{}, err
	}
	return s.cards[cardIndex].Clone(), nil
}

// ToggleCell переключает отметку клетки и возвращает новое состояние отметки
func (s *State) ToggleCell(cardIndex, cellIndex int) (bool, error) {
	if err := s.checkCell(cardIndex, cellIndex); err != nil {
		return false, err
	}

	cells, ok := s.marked[cardIndex]
	if !ok {
		cells = make(map[int]struct{})
		s.marked[cardIndex] = cells
	}

	if _, ok := cells[cellIndex]; ok {
		delete(cells, cellIndex)
		return false, nil
	}
	cells[cellIndex] = struct{}{}
	return true, nil
}

// IsMarked сообщает, отмечена ли клетка
func (s *State) IsMarked(cardIndex, cellIndex int) bool {
	_, ok := s.marked[cardIndex][cellIndex]
	return ok
}

// Marked возвращает отсортированные индексы отмеченных клеток карточки
func (s *State) Marked(cardIndex int) []int {
	cells := make([]int, 0, len(s.marked[cardIndex]))
	for cell := range s.marked[cardIndex] {
		cells = append(cells, cell)
	}
	sort.Ints(cells)
	return cells
}

// MarkedCount возвращает количество отмеченных клеток во всех карточках
func (s *State) MarkedCount() int {
	total := 0
	for _, cells := range s.marked {
		total += len(cells)
	}
	return total
}

// ReplaceCell заменяет песню в клетке случайной песней из пула, которой еще нет
// в этой карточке. Возвращает false, если подходящей замены нет.
func (s *State) ReplaceCell(cardIndex, cellIndex int) (bool, error) {
	if err := s.checkCell(cardIndex, cellIndex); err != nil {
		return false, err
	}
	if card.IsFree(cellIndex) {
		return false, ErrFreeCell
	}

	current := s.cards[cardIndex]
	available := make([]string, 0, len(s.songs))
	for _, song := range s.songs {
		if song != card.FreeSpace && !current.Contains(song) {
			available = append(available, song)
		}
	}
	if len(available) == 0 {
		return false, nil
	}

	replaced := current.Clone()
	replaced.Cells[cellIndex] = available[s.generator.Intn(len(available))]
	s.cards[cardIndex] = replaced
	return true, nil
}

// SetPlaylistName задает содержимое поля имени плейлиста
func (s *State) SetPlaylistName(name string) {
	s.playlistName = name
}

// PlaylistName возвращает содержимое поля имени плейлиста
func (s *State) PlaylistName() string {
	return s.playlistName
}

// Title возвращает заголовок карточек
func (s *State) Title() string {
	if title := strings.TrimSpace(s.playlistName); title != "" {
		return title
	}
	return DefaultTitle
}

// SavePlaylist сохраняет текущий пул под именем из поля имени плейлиста
func (s *State) SavePlaylist(ctx context.Context) (string, error) {
	name := strings.TrimSpace(s.playlistName)
	if name == "" {
		return "", ErrEmptyName
	}
	if len(s.songs) == 0 {
		return "", ErrEmptyPool
	}

	updated := s.appData.Clone()
	updated.AddPlaylist(name, s.songs)
	if err := s.persist(ctx, updated); err != nil {
		return "", err
	}

	s.selected = name
	return name, nil
}

// LoadPlaylist заменяет пул песнями сохраненного плейлиста
func (s *State) LoadPlaylist(name string) error {
	playlist, err := s.appData.PlaylistByName(name)
	if err != nil {
		return err
	}

	s.setSongs(playlist.Songs)
	s.clearCards()
	s.input = ""
	s.playlistName = playlist.Name
	s.selected = name
	return nil
}

// DeletePlaylist удаляет плейлист после подтверждения.
// Возвращает false, если пользователь отказался. nil confirm означает,
// что подтверждение уже получено (например, флаг --yes).
func (s *State) DeletePlaylist(ctx context.Context, name string, confirm Confirm) (bool, error) {
	if _, err := s.appData.PlaylistByName(name); err != nil {
		return false, err
	}
	if confirm != nil && !confirm(name) {
		return false, nil
	}

	updated := s.appData.Clone()
	if err := updated.DeletePlaylistByName(name); err != nil {
		return false, err
	}
	if err := s.persist(ctx, updated); err != nil {
		return false, err
	}

	if s.selected == name {
		s.selected = ""
	}
	return true, nil
}

// Playlists возвращает сохраненные плейлисты, отсортированные по имени
func (s *State) Playlists() []data.Playlist {
	names := s.appData.Names()
	playlists := make([]data.Playlist, 0, len(names))
	for _, name := range names {
		playlist, _ := s.appData.PlaylistByName(name)
		songs := make([]string, len(playlist.Songs))
		copy(songs, playlist.Songs)
		playlists = append(playlists, data.Playlist{Name: playlist.Name, Songs: songs})
	}
	return playlists
}

// Playlist возвращает сохраненный плейлист по имени
func (s *State) Playlist(name string) (data.Playlist, error) {
	playlist, err := s.appData.PlaylistByName(name)
	if err != nil {
		return data.Playlist{}, err
	}
	songs := make([]string, len(playlist.Songs))
	copy(songs, playlist.Songs)
	return data.Playlist{Name: playlist.Name, Songs: songs}, nil
}

// Selected возвращает имя выбранного плейлиста или пустую строку
func (s *State) Selected() string {
	return s.selected
}

// persist записывает плейлисты в хранилище и только после успеха применяет их
func (s *State) persist(ctx context.Context, updated *data.AppData) error {
	if err := updated.SaveData(ctx, s.store); err != nil {
		return err
	}
	s.appData = updated
	return nil
}

func (s *State) setSongs(songs []string) {
	s.songs = make([]string, 0, len(songs))
	s.known = make(map[string]struct{}, len(songs))
	for _, song := range songs {
		if _, ok := s.known[song]; ok {
			continue
		}
		s.known[song] = struct{}{}
		s.songs = append(s.songs, song)
	}
}

func (s *State) clearCards() {
	s.cards = nil
	s.marked = make(map[int]map[int]struct{})
}

func (s *State) checkCard(cardIndex int) error {
	if cardIndex < 0 || cardIndex >= len(s.cards) {
		return fmt.Errorf("%w: %d", ErrCardIndex, cardIndex)
	}
	return nil
}

func (s *State) checkCell(cardIndex, cellIndex int) error {
	if err := s.checkCard(cardIndex); err != nil {
		return err
	}
	if cellIndex < 0 || cellIndex >= card.Size {
		return fmt.Errorf("%w: %d", ErrCellIndex, cellIndex)
	}
	return nil
}
