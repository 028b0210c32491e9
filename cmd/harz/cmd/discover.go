package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/happy-arz/internal/api/client"
)

// positionFlags are shared by the discovery commands.
type positionFlags struct {
	category string
	city     string
	lat      float64
	lng      float64
}

func (f *positionFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.category, "category", "", "category filter (Restaurant, Bar, Spa, Cafe, Nightclub, Hotel, Other)")
	cmd.Flags().StringVar(&f.city, "city", "", "city ID to browse (see harz locations)")
	cmd.Flags().Float64Var(&f.lat, "lat", 0, "GPS latitude")
	cmd.Flags().Float64Var(&f.lng, "lng", 0, "GPS longitude")
	cmd.MarkFlagsRequiredTogether("lat", "lng")
}

func (f *positionFlags) params(cmd *cobra.Command, search string) *apiclient.DiscoverParams {
	return &apiclient.DiscoverParams{
		Search:      search,
		Category:    f.category,
		City:        f.city,
		Lat:         f.lat,
		Lng:         f.lng,
		HasPosition: cmd.Flags().Changed("lat"),
	}
}

func discoverCmd() *cobra.Command {
	var (
		pos    positionFlags
		search string
	)

	cmd := &cobra.Command{
		Use:   "discover",
		Short: "List venues ranked by live discount",
		Long: "Lists active venues: live discounts first, then any discount, then\n" +
			"verified venues, then by rating.",
		Example: `  harz discover --city bangkok
  harz discover --lat 13.7563 --lng 100.5018 --category Bar
  harz discover -q rooftop --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Discover(context.Background(), pos.params(cmd, search))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			printResultHeader(res.City, res.Degraded)
			if len(res.Businesses) == 0 {
				fmt.Fprintln(stdout, "No venues found.")
				return nil
			}
			return printRankedTable(res.Businesses)
		},
	}

	pos.register(cmd)
	cmd.Flags().StringVarP(&search, "query", "q", "", "search name, description and address")
	return cmd
}

func mapCmd() *cobra.Command {
	var (
		pos    positionFlags
		search string
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "List venues split into with and without discount, nearest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Map(context.Background(), pos.params(cmd, search))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			printResultHeader(res.City, res.Degraded)
			fmt.Fprintln(stdout, "With discount:")
			if err := printRankedTable(res.WithDiscount); err != nil {
				return err
			}
			fmt.Fprintln(stdout)
			fmt.Fprintln(stdout, "Without discount:")
			return printRankedTable(res.WithoutDiscount)
		},
	}

	pos.register(cmd)
	cmd.Flags().StringVarP(&search, "query", "q", "", "search name, description and address")
	return cmd
}

func savedCmd() *cobra.Command {
	var pos positionFlags

	cmd := &cobra.Command{
		Use:   "saved",
		Short: "List bookmarked venues for --device",
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := newClient().Saved(context.Background(), pos.params(cmd, ""))
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			if len(res.Businesses) == 0 {
				fmt.Fprintln(stdout, "No saved venues.")
				return nil
			}
			return printRankedTable(res.Businesses)
		},
	}

	pos.register(cmd)
	return cmd
}

func printResultHeader(city string, degraded bool) {
	if city != "" {
		fmt.Fprintf(stdout, "Near %s\n", city)
	}
	if degraded {
		fmt.Fprintln(stdout, "(nearby places unavailable; showing verified venues only)")
	}
}
