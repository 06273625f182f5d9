// Package metadata предоставляет функционал для получения названий песен из аудио файлов
package metadata

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dhowden/tag"
)

// audioExtensions - расширения файлов, которые считаются аудио
var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".m4a":  true,
	".ogg":  true,
	".wav":  true,
}

// TrackMetadata хранит метаданные трека
type TrackMetadata struct {
	Artist string
	Title  string
}

// SongTitle возвращает название песни для бинго в формате "Artist - Title"
func (m TrackMetadata) SongTitle() string {
	artist := strings.TrimSpace(m.Artist)
	title := strings.TrimSpace(m.Title)
	switch {
	case artist == "":
		return title
	case title == "":
		return artist
	default:
		return artist + " - " + title
	}
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractFromReader извлекает метаданные из io.ReadSeeker
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) TrackMetadata {
	// Сбрасываем reader в начало
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return e.getDefaultMetadata(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil || strings.TrimSpace(metadata.Title()) == "" {
		return e.getDefaultMetadata(source)
	}

	return TrackMetadata{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
	}
}

// ExtractFromFile извлекает метаданные из файла
func (e *Extractor) ExtractFromFile(filePath string) TrackMetadata {
	file, err := os.Open(filePath)
	if err != nil {
		return e.getDefaultMetadata(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// ScanDir рекурсивно обходит каталог и возвращает названия песен из аудио файлов
func (e *Extractor) ScanDir(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о каталоге: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s не является каталогом", dir)
	}

	var paths []string
	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if IsAudioFile(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка обхода каталога: %w", err)
	}

	sort.Strings(paths)

	songs := make([]string, 0, len(paths))
	for _, path := range paths {
		if title := e.ExtractFromFile(path).SongTitle(); title != "" {
			songs = append(songs, title)
		}
	}
	return songs, nil
}

// IsAudioFile сообщает, похож ли файл на аудио по расширению
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// getDefaultMetadata берет название песни из имени файла без расширения
func (e *Extractor) getDefaultMetadata(source string) TrackMetadata {
	name := filepath.Base(source)
	return parseSongTitle(strings.TrimSuffix(name, filepath.Ext(name)))
}

// parseSongTitle разбирает строку "Artist - Title" по первому разделителю.
// Без разделителя вся строка считается названием.
func parseSongTitle(s string) TrackMetadata {
	artist, title, ok := strings.Cut(s, " - ")
	if !ok {
		return TrackMetadata{Title: strings.TrimSpace(s)}
	}
	return TrackMetadata{Artist: strings.TrimSpace(artist), Title: strings.TrimSpace(title)}
}
