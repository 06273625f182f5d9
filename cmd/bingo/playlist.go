package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-bingo/internal/metadata"
	"github.com/hazadus/go-bingo/internal/utils"
)

// createPlaylistCommand создает группу команд playlist с привязкой к экземпляру приложения
func (app *Application) createPlaylistCommand(ctx context.Context) *cobra.Command {
	playlistCmd := &cobra.Command{
		Use:   "playlist",
		Short: "Manage saved playlists",
		Long:  `List, show, save, import and delete named playlists kept in the store.`,
	}

	playlistCmd.AddCommand(app.createPlaylistListCommand())
	playlistCmd.AddCommand(app.createPlaylistShowCommand())
	playlistCmd.AddCommand(app.createPlaylistSaveCommand(ctx))
	playlistCmd.AddCommand(app.createPlaylistImportCommand(ctx))
	playlistCmd.AddCommand(app.createPlaylistDeleteCommand(ctx))

	return playlistCmd
}

func (app *Application) createPlaylistListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved playlists",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			app.listPlaylists()
		},
	}
}

func (app *Application) listPlaylists() {
	playlists := app.State.Playlists()
	if len(playlists) == 0 {
		fmt.Println("📚 Сохраненных плейлистов нет. Сохраните пул командой 'playlist save'.")
		return
	}

	fmt.Printf("📚 Найдено плейлистов: %d\n\n", len(playlists))
	for _, playlist := range playlists {
		count := len(playlist.Songs)
		fmt.Printf("   %-40s %d %s\n", utils.TruncateString(playlist.Name, 40),
			count, utils.Pluralize(count, "песня", "песни", "песен"))
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'bingo generate [NAME]' для печати карточек")
}

func (app *Application) createPlaylistShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show songs of a saved playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.showPlaylist(args[0])
		},
	}
}

func (app *Application) showPlaylist(name string) error {
	playlist, err := app.State.Playlist(name)
	if err != nil {
		return err
	}

	count := len(playlist.Songs)
	fmt.Printf("🎵 %s: %d %s\n\n", playlist.Name, count, utils.Pluralize(count, "песня", "песни", "песен"))
	for i, song := range playlist.Songs {
		fmt.Printf("%4d. %s\n", i+1, song)
	}
	return nil
}

func (app *Application) createPlaylistSaveCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "save [name] [file]",
		Short: "Save songs from a file or stdin as a playlist",
		Long: `Read songs one per line from FILE (or stdin when FILE is omitted or "-")
and save them under NAME. Blank lines and duplicates are skipped.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(_ *cobra.Command, args []string) error {
			path := ""
			if len(args) == 2 {
				path = args[1]
			}
			text, err := readSongs(path, app.In)
			if err != nil {
				return err
			}
			return app.savePlaylist(ctx, args[0], text)
		},
	}
}

func (app *Application) createPlaylistImportCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "import [name] [dir or YouTube playlist URL]",
		Short: "Save song titles from audio file tags or a YouTube playlist",
		Long: `Walk DIR recursively and read "Artist - Title" from the tags of every audio file,
or read video titles of a YouTube playlist URL (no media is downloaded), and save them under NAME.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			songs, err := app.importSongs(ctx, args[1])
			if err != nil {
				return err
			}
			return app.savePlaylist(ctx, args[0], strings.Join(songs, "\n"))
		},
	}
}

// importSongs получает названия песен из каталога или плейлиста YouTube
func (app *Application) importSongs(ctx context.Context, source string) ([]string, error) {
	if metadata.IsYouTubePlaylistURL(source) {
		fmt.Printf("🌐 Загружаем плейлист YouTube: %s\n", source)
		title, songs, err := app.YouTube.PlaylistSongs(ctx, source)
		if err != nil {
			return nil, err
		}
		fmt.Printf("📺 %s: найдено видео: %d\n", title, len(songs))
		app.debugf("плейлист YouTube %q: %d видео", title, len(songs))
		return songs, nil
	}

	fmt.Printf("🔍 Сканируем каталог: %s\n", source)
	songs, err := metadata.NewExtractor().ScanDir(source)
	if err != nil {
		return nil, err
	}
	app.debugf("найдено %d аудиофайлов в %s", len(songs), source)
	return songs, nil
}

func (app *Application) savePlaylist(ctx context.Context, name, text string) error {
	app.State.ClearSongs()
	app.State.SetInput(text)
	app.State.LoadSongs()
	app.State.SetPlaylistName(name)

	saved, err := app.State.SavePlaylist(ctx)
	if err != nil {
		return err
	}

	count := len(app.State.Songs())
	fmt.Printf("✅ Плейлист %q сохранен: %d %s\n", saved, count, utils.Pluralize(count, "песня", "песни", "песен"))
	app.debugf("плейлист %q сохранен, песен: %d", saved, count)
	return nil
}

func (app *Application) createPlaylistDeleteCommand(ctx context.Context) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.deletePlaylist(ctx, args[0], yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without confirmation")

	return cmd
}

func (app *Application) deletePlaylist(ctx context.Context, name string, yes bool) error {
	confirm := confirmDelete(app.In)
	if yes {
		confirm = nil
	}

	deleted, err := app.State.DeletePlaylist(ctx, name, confirm)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Println("🚫 Удаление отменено")
		return nil
	}

	fmt.Printf("🗑️  Плейлист %q удален\n", name)
	app.debugf("плейлист %q удален", name)
	return nil
}
