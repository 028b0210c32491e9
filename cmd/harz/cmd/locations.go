package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func locationsCmd() *cobra.Command {
	var popular bool

	cmd := &cobra.Command{
		Use:   "locations [query]",
		Short: "List reference cities",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			locs, err := newClient().Locations(context.Background(), query, popular)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(locs)
			}
			if len(locs) == 0 {
				fmt.Fprintln(stdout, "No cities found.")
				return nil
			}
			tw := newTabWriter(stdout)
			tw.writef("ID\tNAME\tCOUNTRY\tTIMEZONE\n")
			for i := range locs {
				tw.writef("%s\t%s\t%s\t%s\n", locs[i].ID, locs[i].Name, locs[i].Country, locs[i].Timezone)
			}
			return tw.finish()
		},
	}

	cmd.Flags().BoolVar(&popular, "popular", false, "only popular cities")
	cmd.AddCommand(&cobra.Command{
		Use:   "resolve <lat> <lng>",
		Short: "Name the city containing a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			lat, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parsing latitude: %w", err)
			}
			lng, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parsing longitude: %w", err)
			}
			city, err := newClient().ResolveCity(context.Background(), lat, lng)
			if err != nil {
				return err
			}
			fmt.Fprintln(stdout, city)
			return nil
		},
	})
	return cmd
}
