package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-bingo/internal/card"
	"github.com/hazadus/go-bingo/internal/utils"
)

const (
	printCellWidth = 18
	printCellLines = 3
)

var (
	cardTitleStyle = lipgloss.NewStyle().Bold(true)
	printCellStyle = lipgloss.NewStyle().Width(printCellWidth).Align(lipgloss.Center)
	printFreeStyle = printCellStyle.Bold(true)
)

// createGenerateCommand создает команду generate с привязкой к экземпляру приложения
func (app *Application) createGenerateCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "generate [playlist name]",
		Short: "Print bingo cards for a saved playlist",
		Long:  `Load a saved playlist and print COUNT randomized 5x5 bingo cards with a free center cell.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("count") {
				app.State.SetCardCount(count)
			}
			return app.generateCards(args[0])
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of cards (1-50)")

	return cmd
}

func (app *Application) generateCards(name string) error {
	if err := app.State.LoadPlaylist(name); err != nil {
		return err
	}
	if err := app.State.GenerateCards(); err != nil {
		return err
	}

	cards := app.State.Cards()
	app.debugf("сгенерировано карточек: %d для %q", len(cards), name)

	for i, c := range cards {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(cardTitleStyle.Render(fmt.Sprintf("🎵 %s • карточка %d из %d", app.State.Title(), i+1, len(cards))))
		fmt.Println(renderCard(c))
		fmt.Printf("№ %s\n", c.Serial)
	}
	return nil
}

// renderCard отображает карточку таблицей 5x5
func renderCard(c card.Card) string {
	rows := make([][]string, 0, card.GridSize)
	for row := 0; row < card.GridSize; row++ {
		cells := make([]string, 0, card.GridSize)
		for _, song := range c.Row(row) {
			cells = append(cells, strings.Join(utils.WrapCell(song, printCellWidth, printCellLines), "\n"))
		}
		rows = append(rows, cells)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderRow(true).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row*card.GridSize+col == card.CenterIndex {
				return printFreeStyle
			}
			return printCellStyle
		}).
		Rows(rows...).
		String()
}
