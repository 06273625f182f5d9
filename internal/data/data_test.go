package data

import (
	"context"
	"errors"
	"testing"

	"github.com/go-test/deep"
	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-bingo/internal/store"
)

func TestLoadDataMissingKey(t *testing.T) {
	appData := NewAppData()
	appData.AddPlaylist("stale", []string{"A"})

	if err := appData.LoadData(context.Background(), store.NewMemory()); err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}
	if len(appData.Playlists) != 0 {
		t.Errorf("Ожидались пустые данные, получено %d плейлистов", len(appData.Playlists))
	}
}

func TestLoadDataEmptyValue(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	if err := st.Put(ctx, PlaylistsKey, nil); err != nil {
		t.Fatalf("Ошибка записи: %v", err)
	}

	appData := NewAppData()
	if err := appData.LoadData(ctx, st); err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}
	if appData.Playlists == nil || len(appData.Playlists) != 0 {
		t.Errorf("Ожидалась пустая инициализированная карта, получено %v", appData.Playlists)
	}
}

func TestLoadDataInvalid(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()
	if err := st.Put(ctx, PlaylistsKey, []byte("party: [unclosed")); err != nil {
		t.Fatalf("Ошибка записи: %v", err)
	}

	if err := NewAppData().LoadData(ctx, st); err == nil {
		t.Error("Ожидалась ошибка разбора")
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	appData := NewAppData()
	appData.AddPlaylist("Party", []string{"B", "A", "C"})
	appData.AddPlaylist("Chill", []string{"X"})

	if err := appData.SaveData(ctx, st); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	loaded := NewAppData()
	if err := loaded.LoadData(ctx, st); err != nil {
		t.Fatalf("Ошибка загрузки: %v", err)
	}

	if diff := deep.Equal(loaded.Playlists, appData.Playlists); diff != nil {
		t.Errorf("Данные после загрузки отличаются: %v", diff)
	}
}

func TestStoredDocumentShape(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemory()

	appData := NewAppData()
	appData.AddPlaylist("Party", []string{"A", "B"})
	if err := appData.SaveData(ctx, st); err != nil {
		t.Fatalf("Ошибка сохранения: %v", err)
	}

	raw, err := st.Get(ctx, PlaylistsKey)
	if err != nil {
		t.Fatalf("Ошибка чтения: %v", err)
	}

	// Документ - отображение имени плейлиста в {name, songs}
	var doc map[string]struct {
		Name  string   `yaml:"name"`
		Songs []string `yaml:"songs"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		t.Fatalf("Ошибка разбора документа: %v", err)
	}
	if doc["Party"].Name != "Party" || len(doc["Party"].Songs) != 2 {
		t.Errorf("Неожиданная структура документа: %s", raw)
	}
}

func TestAddPlaylistOverwritesAndSnapshots(t *testing.T) {
	appData := NewAppData()

	songs := []string{"A", "B"}
	appData.AddPlaylist("Party", songs)
	songs[0] = "changed"

	playlist, err := appData.PlaylistByName("Party")
	if err != nil {
		t.Fatalf("Ошибка поиска: %v", err)
	}
	if playlist.Songs[0] != "A" {
		t.Errorf("Плейлист должен хранить снимок песен, получено: %v", playlist.Songs)
	}

	appData.AddPlaylist("Party", []string{"C"})
	playlist, _ = appData.PlaylistByName("Party")
	if diff := deep.Equal(playlist.Songs, []string{"C"}); diff != nil {
		t.Errorf("Плейлист должен перезаписываться: %v", diff)
	}
	if len(appData.Playlists) != 1 {
		t.Errorf("Ожидался 1 плейлист, получено %d", len(appData.Playlists))
	}
}

func TestDeletePlaylistByName(t *testing.T) {
	appData := NewAppData()
	appData.AddPlaylist("Party", []string{"A"})

	if err := appData.DeletePlaylistByName("Party"); err != nil {
		t.Fatalf("Ошибка удаления: %v", err)
	}
	if _, err := appData.PlaylistByName("Party"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("Ожидалась ErrPlaylistNotFound, получено: %v", err)
	}
	if err := appData.DeletePlaylistByName("Party"); !errors.Is(err, ErrPlaylistNotFound) {
		t.Errorf("Ожидалась ErrPlaylistNotFound при повторном удалении, получено: %v", err)
	}
}

func TestNamesAndClone(t *testing.T) {
	appData := NewAppData()
	appData.AddPlaylist("b", []string{"1"})
	appData.AddPlaylist("a", []string{"2"})
	appData.AddPlaylist("c", []string{"3"})

	if diff := deep.Equal(appData.Names(), []string{"a", "b", "c"}); diff != nil {
		t.Errorf("Имена должны быть отсортированы: %v", diff)
	}

	clone := appData.Clone()
	clone.Playlists["a"].Songs[0] = "changed"
	delete(clone.Playlists, "b")

	if appData.Playlists["a"].Songs[0] != "2" {
		t.Error("Clone должен копировать песни")
	}
	if _, ok := appData.Playlists["b"]; !ok {
		t.Error("Clone должен копировать карту")
	}
}
