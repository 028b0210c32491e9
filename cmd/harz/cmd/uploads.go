package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	apiclient "github.com/donaldgifford/happy-arz/internal/api/client"
)

func uploadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a venue spreadsheet, replacing the verified set",
		Long: "Uploads a CSV, TSV or XLSX spreadsheet. When at least one row is valid\n" +
			"the verified set is replaced; every run is recorded in the history.",
		Example: `  harz upload venues.xlsx
  harz upload venues.csv --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			res, err := newClient().Upload(context.Background(), args[0], data)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(res)
			}
			return printUploadResult(res)
		},
	}
}

func uploadsCmd() *cobra.Command {
	var (
		since    string
		fileName string
		limit    int
		offset   int
	)

	cmd := &cobra.Command{
		Use:   "uploads",
		Short: "Show the upload history",
		Example: `  harz uploads --limit 10
  harz uploads --since 2026-01-01T00:00:00Z --file venues`,
		RunE: func(_ *cobra.Command, _ []string) error {
			params := &apiclient.ListUploadsParams{FileName: fileName, Limit: limit, Offset: offset}
			if since != "" {
				t, err := time.Parse(time.RFC3339, since)
				if err != nil {
					return fmt.Errorf("parsing --since: %w", err)
				}
				params.Since = t
			}

			h, err := newClient().UploadHistory(context.Background(), params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(h)
			}
			if len(h.Entries) == 0 {
				fmt.Fprintln(stdout, "No uploads found.")
				return nil
			}
			return printHistory(h)
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "only uploads at or after this RFC 3339 time")
	cmd.Flags().StringVar(&fileName, "file", "", "file name substring")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "pagination offset")
	return cmd
}

func verifiedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verified",
		Short: "List the current verified venues",
		RunE: func(_ *cobra.Command, _ []string) error {
			businesses, err := newClient().Verified(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(businesses)
			}
			if len(businesses) == 0 {
				fmt.Fprintln(stdout, "No verified venues.")
				return nil
			}
			return printBusinessTable(businesses)
		},
	}
}
