// Package card содержит генератор карточек музыкального бинго
package card

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

const (
	// FreeSpace - значение свободной клетки в центре карточки
	FreeSpace = "FREE"
	// GridSize - размер стороны сетки карточки
	GridSize = 5
	// Size - количество клеток в карточке
	Size = GridSize * GridSize
	// CenterIndex - индекс свободной клетки (построчно, с нуля)
	CenterIndex = 12
	// SongsPerCard - количество песен в одной карточке
	SongsPerCard = Size - 1
)

// ErrNotEnoughSongs возвращается, если в пуле меньше песен, чем нужно для карточки
var ErrNotEnoughSongs = errors.New("для генерации карточек нужно минимум 24 уникальные песни")

// Card представляет одну карточку бинго 5x5
type Card struct {
	Serial string   // Серийный номер карточки
	Cells  []string // 25 клеток построчно, Cells[CenterIndex] == FreeSpace
}

// Contains сообщает, есть ли песня в карточке
func (c Card) Contains(song string) bool {
	for _, cell := range c.Cells {
		if cell == song {
			return true
		}
	}
	return false
}

// Clone возвращает независимую копию карточки
func (c Card) Clone() Card {
	cells := make([]string, len(c.Cells))
	copy(cells, c.Cells)
	return Card{Serial: c.Serial, Cells: cells}
}

// Row возвращает клетки строки с номером row
func (c Card) Row(row int) []string {
	return c.Cells[row*GridSize : (row+1)*GridSize]
}

// IsFree сообщает, является ли клетка свободной
func IsFree(cellIndex int) bool {
	return cellIndex == CenterIndex
}

// Generator генерирует карточки из пула песен.
// Все случайные решения берутся из одного источника, поэтому при
// одинаковом seed результат воспроизводим.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator создает генератор. Нулевой seed означает случайное зерно.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = trueRandSeed()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

func trueRandSeed() (seed int64) {
	err := binary.Read(cryptorand.Reader, binary.LittleEndian, &seed)
	if err == nil && seed != 0 {
		return
	}
	return time.Now().UnixNano()
}

// Generate создает одну карточку из пула
func (g *Generator) Generate(pool []string) (Card, error) {
	if len(pool) < SongsPerCard {
		return Card{}, ErrNotEnoughSongs
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	g.rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	// Пул уникален, но проверку дублей оставляем
	selected := make([]string, 0, SongsPerCard)
	seen := make(map[string]struct{}, SongsPerCard)
	for i := 0; i < len(shuffled) && len(selected) < SongsPerCard; i++ {
		if _, ok := seen[shuffled[i]]; ok {
			continue
		}
		seen[shuffled[i]] = struct{}{}
		selected = append(selected, shuffled[i])
	}
	if len(selected) < SongsPerCard {
		return Card{}, ErrNotEnoughSongs
	}

	cells := make([]string, 0, Size)
	cells = append(cells, selected[:CenterIndex]...)
	cells = append(cells, FreeSpace)
	cells = append(cells, selected[CenterIndex:]...)

	return Card{Serial: g.serial(), Cells: cells}, nil
}

// GenerateMany создает count независимых карточек
func (g *Generator) GenerateMany(pool []string, count int) ([]Card, error) {
	cards := make([]Card, 0, count)
	for i := 0; i < count; i++ {
		c, err := g.Generate(pool)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Intn возвращает случайное число в [0, n) из источника генератора
func (g *Generator) Intn(n int) int {
	return g.rng.Intn(n)
}

func (g *Generator) serial() string {
	id, err := uuid.NewRandomFromReader(g.rng)
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
