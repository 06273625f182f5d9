package metadata

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/kkdai/youtube/v2"
)

// topicSuffix добавляется YouTube к именам автоматически созданных каналов исполнителей
const topicSuffix = " - Topic"

// PlaylistGetter получает плейлист YouTube по ссылке
type PlaylistGetter interface {
	GetPlaylistContext(ctx context.Context, url string) (*youtube.Playlist, error)
}

// YouTubeImporter получает названия песен из плейлиста YouTube.
// Скачивается только список видео, медиа не загружается.
type YouTubeImporter struct {
	client PlaylistGetter
}

// NewYouTubeImporter создает импортер с клиентом YouTube по умолчанию
func NewYouTubeImporter() *YouTubeImporter {
	return NewYouTubeImporterWithClient(&youtube.Client{})
}

// NewYouTubeImporterWithClient создает импортер с заданным клиентом
func NewYouTubeImporterWithClient(client PlaylistGetter) *YouTubeImporter {
	return &YouTubeImporter{client: client}
}

// PlaylistSongs возвращает название плейлиста и названия песен в порядке плейлиста
func (i *YouTubeImporter) PlaylistSongs(ctx context.Context, playlistURL string) (string, []string, error) {
	playlist, err := i.client.GetPlaylistContext(ctx, playlistURL)
	if err != nil {
		return "", nil, fmt.Errorf("ошибка получения плейлиста YouTube: %w", err)
	}

	songs := make([]string, 0, len(playlist.Videos))
	for _, entry := range playlist.Videos {
		// Удаленные и приватные видео приходят без названия
		if entry == nil || strings.TrimSpace(entry.Title) == "" {
			continue
		}
		if title := EntryMetadata(entry.Author, entry.Title).SongTitle(); title != "" {
			songs = append(songs, title)
		}
	}
	return playlist.Title, songs, nil
}

// EntryMetadata строит метаданные из автора и названия видео.
// Если название уже в формате "Artist - Title", автор не добавляется.
func EntryMetadata(author, title string) TrackMetadata {
	metadata := parseSongTitle(title)
	if metadata.Artist == "" {
		metadata.Artist = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(author), topicSuffix))
	}
	return metadata
}

// IsYouTubePlaylistURL сообщает, указывает ли source на плейлист YouTube
func IsYouTubePlaylistURL(source string) bool {
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	host = strings.TrimPrefix(host, "m.")
	host = strings.TrimPrefix(host, "music.")
	if host != "youtube.com" && host != "youtu.be" {
		return false
	}
	return u.Query().Get("list") != ""
}
