package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Belphemur/tvfinder/internal/client"
	"github.com/Belphemur/tvfinder/internal/models"
	"github.com/Belphemur/tvfinder/internal/parser"
)

const summaryWidth = 60

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <term...>",
		Short: "Search the show directory",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			term := strings.Join(args, " ")

			return ctx.withClient(func(c client.Client) error {
				shows, err := c.SearchShows(cmd.Context(), term)
				if err != nil {
					return fmt.Errorf("search %q: %w", term, err)
				}

				if jsonOutput {
					return writeJSON(cmd, shows)
				}
				if len(shows) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No shows found")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderShowTable(shows))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the shows as JSON")
	return cmd
}

func renderShowTable(shows []models.Show) string {
	rows := make([][]string, 0, len(shows))
	for _, show := range shows {
		rows = append(rows, []string{
			strconv.Itoa(show.ID),
			show.Name,
			show.Image,
			truncate(parser.SummaryText(show.Summary), summaryWidth),
		})
	}
	return renderTable(
		[]string{"ID", "Name", "Image", "Summary"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
	)
}
