package main

import (
	"github.com/spf13/cobra"

	"dconn.dev/showcase/internal/fetch"
	"dconn.dev/showcase/internal/showcase"
	"dconn.dev/showcase/internal/tui"
)

// browseCmd runs the terminal front end
var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse showcase projects in the terminal",
	Long: `Opens an interactive terminal view of the showcase projects.

Keys:
  tab / right / l        next category
  shift+tab / left / h   previous category
  1-5                    pick a category
  r                      retry after a failed fetch
  q / ctrl+c             quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := fetch.NewClient(cfg.APIBaseURL,
			fetch.WithTimeout(cfg.FetchTimeout),
			fetch.WithLogger(logger.Named("fetch")))
		ctrl := showcase.NewController(client, logger)
		return tui.Run(cmd.Context(), ctrl)
	},
}
