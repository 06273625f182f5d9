// Package data содержит сохраняемые данные приложения: именованные плейлисты
package data

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-bingo/internal/store"
)

// PlaylistsKey - ключ пространства имен приложения в хранилище
const PlaylistsKey = "djBingoPlaylists"

// ErrPlaylistNotFound возвращается, если плейлиста с таким именем нет
var ErrPlaylistNotFound = errors.New("плейлист не найден")

// Playlist - именованный снимок пула песен
type Playlist struct {
	Name  string   `yaml:"name"`
	Songs []string `yaml:"songs"`
}

// AppData хранит все сохраненные плейлисты по имени
type AppData struct {
	Playlists map[string]Playlist `yaml:",inline"`
}

// NewAppData создает новую структуру AppData
func NewAppData() *AppData {
	return &AppData{
		Playlists: make(map[string]Playlist),
	}
}

// LoadData загружает плейлисты из хранилища
func (d *AppData) LoadData(ctx context.Context, st store.Store) error {
	raw, err := st.Get(ctx, PlaylistsKey)
	if err != nil {
		// Если ключа нет, инициализируем пустыми данными
		if errors.Is(err, store.ErrNotFound) {
			*d = *NewAppData()
			return nil
		}
		return fmt.Errorf("ошибка чтения плейлистов: %w", err)
	}

	loaded := NewAppData()
	if len(raw) > 0 {
		if err := yaml.Unmarshal(raw, loaded); err != nil {
			return fmt.Errorf("ошибка разбора плейлистов: %w", err)
		}
	}
	if loaded.Playlists == nil {
		loaded.Playlists = make(map[string]Playlist)
	}

	*d = *loaded
	return nil
}

// SaveData полностью перезаписывает плейлисты в хранилище
func (d *AppData) SaveData(ctx context.Context, st store.Store) error {
	raw, err := yaml.Marshal(d)
	if err != nil {
		return fmt.Errorf("ошибка сериализации плейлистов: %w", err)
	}
	if err := st.Put(ctx, PlaylistsKey, raw); err != nil {
		return fmt.Errorf("ошибка записи плейлистов: %w", err)
	}
	return nil
}

// AddPlaylist добавляет плейлист или перезаписывает существующий с тем же именем
func (d *AppData) AddPlaylist(name string, songs []string) {
	snapshot := make([]string, len(songs))
	copy(snapshot, songs)
	d.Playlists[name] = Playlist{Name: name, Songs: snapshot}
}

// PlaylistByName возвращает плейлист по имени
func (d *AppData) PlaylistByName(name string) (*Playlist, error) {
	playlist, ok := d.Playlists[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	return &playlist, nil
}

// DeletePlaylistByName удаляет плейлист по имени
func (d *AppData) DeletePlaylistByName(name string) error {
	if _, ok := d.Playlists[name]; !ok {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	delete(d.Playlists, name)
	return nil
}

// Names возвращает имена плейлистов в алфавитном порядке
func (d *AppData) Names() []string {
	names := make([]string, 0, len(d.Playlists))
	for name := range d.Playlists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clone возвращает глубокую копию данных
func (d *AppData) Clone() *AppData {
	clone := NewAppData()
	for name, playlist := range d.Playlists {
		songs := make([]string, len(playlist.Songs))
		copy(songs, playlist.Songs)
		clone.Playlists[name] = Playlist{Name: playlist.Name, Songs: songs}
	}
	return clone
}
