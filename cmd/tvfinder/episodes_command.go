package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Belphemur/tvfinder/internal/client"
	"github.com/Belphemur/tvfinder/internal/models"
	"github.com/Belphemur/tvfinder/internal/ui"
)

func newEpisodesCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "episodes <show-id>",
		Short: "List the episodes of a show",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			showID, err := ui.ParseShowID(args[0])
			if err != nil {
				return err
			}

			return ctx.withClient(func(c client.Client) error {
				episodes, err := c.GetEpisodesOfShow(cmd.Context(), showID)
				if err != nil {
					return fmt.Errorf("episodes of show %d: %w", showID, err)
				}

				if jsonOutput {
					return writeJSON(cmd, episodes)
				}
				if len(episodes) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No episodes found")
					return nil
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderEpisodeTable(episodes))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print the episodes as JSON")
	return cmd
}

func renderEpisodeTable(episodes []models.Episode) string {
	rows := make([][]string, 0, len(episodes))
	for _, ep := range episodes {
		rows = append(rows, []string{
			strconv.Itoa(ep.ID),
			strconv.Itoa(ep.Season),
			strconv.Itoa(ep.Number),
			ep.Name,
		})
	}
	return renderTable(
		[]string{"ID", "Season", "Number", "Name"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignRight, alignLeft},
	)
}
