package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/pkg/ingest"
)

var (
	ingestPersist     bool
	ingestContentType string
	ingestJSON        bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <file>",
	Short: "Parse a venue spreadsheet, optionally replacing the verified set",
	Long: "Parses a CSV, TSV or XLSX venue spreadsheet and reports the valid rows\n" +
		"and row errors. With --persist the verified set is replaced and the run\n" +
		"is recorded in the upload history, exactly as an API upload would be.",
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().BoolVar(&ingestPersist, "persist", false, "replace the verified set in the configured store")
	ingestCmd.Flags().StringVar(&ingestContentType, "content-type", "", "override format detection (for example text/csv)")
	ingestCmd.Flags().BoolVar(&ingestJSON, "json", false, "output as JSON")
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	fileName := filepath.Base(path)

	out := cmd.OutOrStdout()

	if !ingestPersist {
		res, err := ingest.ParseUpload(data, ingestContentType, fileName, ingestOptions(&cfg.Ingestion))
		if err != nil {
			return err
		}
		if ingestJSON {
			return writeJSON(out, res)
		}
		return printIngestResult(out, res, nil)
	}

	st, closeStore, err := openStore(cmd.Context(), &cfg.Database, log)
	if err != nil {
		return err
	}
	defer closeStore()

	svc := newService(cfg, st, nil, log)
	res, err := svc.Upload(cmd.Context(), discovery.Upload{
		FileName:    fileName,
		ContentType: ingestContentType,
		Data:        data,
	})
	if err != nil {
		return err
	}
	if ingestJSON {
		return writeJSON(out, res)
	}
	return printIngestResult(out, res.Result, res)
}

func printIngestResult(w io.Writer, res *ingest.Result, persisted *discovery.UploadResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Rows:\t%d\n", res.Summary.Total)
	fmt.Fprintf(tw, "Processed:\t%d\n", res.Summary.Processed)
	fmt.Fprintf(tw, "Errors:\t%d\n", res.Summary.Errors)
	if persisted != nil {
		fmt.Fprintf(tw, "Replaced:\t%v\n", persisted.Replaced)
		fmt.Fprintf(tw, "History ID:\t%s\n", persisted.History.ID)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Businesses) > 0 {
		fmt.Fprintln(w)
		tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tDISCOUNT\tADDRESS")
		for i := range res.Businesses {
			b := &res.Businesses[i]
			discount := "-"
			if d := b.CurrentDiscount; d != nil {
				discount = fmt.Sprintf("%d%% %s-%s", d.Percentage, d.ValidFrom, d.ValidTo)
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", b.ID, b.Name, b.Category, discount, b.Location.Address)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	for _, e := range res.Errors {
		fmt.Fprintln(w, "error:", e)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
