package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func bookmarksCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "bookmarks",
		Short: "Manage bookmarks for --device",
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List bookmarked venue IDs",
			RunE: func(_ *cobra.Command, _ []string) error {
				ids, err := newClient().Bookmarks(context.Background())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(ids)
				}
				if len(ids) == 0 {
					fmt.Fprintln(stdout, "No bookmarks.")
					return nil
				}
				for _, id := range ids {
					fmt.Fprintln(stdout, id)
				}
				return nil
			},
		},
		&cobra.Command{
			Use:     "toggle <business-id>",
			Short:   "Bookmark a venue, or remove an existing bookmark",
			Example: `  harz bookmarks toggle v-sky-bar --device my-phone`,
			Args:    cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				on, err := newClient().ToggleBookmark(context.Background(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(map[string]any{"business_id": args[0], "bookmarked": on})
				}
				if on {
					fmt.Fprintf(stdout, "Bookmarked %s.\n", args[0])
				} else {
					fmt.Fprintf(stdout, "Removed bookmark %s.\n", args[0])
				}
				return nil
			},
		},
	)

	return root
}
