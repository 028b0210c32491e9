package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/pkg/geo"
	"github.com/donaldgifford/happy-arz/pkg/ranker"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

var stdout io.Writer = os.Stdout

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printRankedTable(ranked []ranker.Ranked) error {
	tw := newTabWriter(stdout)
	tw.writef("ID\tNAME\tCATEGORY\tRATING\tDISCOUNT\tDISTANCE\tSAVED\n")
	for i := range ranked {
		r := &ranked[i]
		distance := "-"
		if r.DistanceKm != nil {
			distance = geo.FormatKm(*r.DistanceKm)
		}
		saved := ""
		if r.IsBookmarked {
			saved = "*"
		}
		tw.writef("%s\t%s\t%s\t%.1f\t%s\t%s\t%s\n",
			r.ID,
			truncate(r.Name, 32),
			r.Category,
			r.Rating,
			discountLabel(r.CurrentDiscount, r.DiscountLive),
			distance,
			saved,
		)
	}
	return tw.finish()
}

func printBusinessTable(businesses []domain.Business) error {
	tw := newTabWriter(stdout)
	tw.writef("ID\tNAME\tCATEGORY\tDISCOUNT\tACTIVE\tADDRESS\n")
	for i := range businesses {
		b := &businesses[i]
		tw.writef("%s\t%s\t%s\t%s\t%v\t%s\n",
			b.ID,
			truncate(b.Name, 32),
			b.Category,
			discountLabel(b.CurrentDiscount, false),
			b.IsActive,
			truncate(b.Location.Address, 40),
		)
	}
	return tw.finish()
}

func discountLabel(d *domain.Discount, live bool) string {
	if d == nil {
		return "-"
	}
	label := fmt.Sprintf("%d%% %s-%s", d.Percentage, d.ValidFrom, d.ValidTo)
	if live {
		label += " (live)"
	}
	return label
}

func printUploadResult(res *discovery.UploadResult) error {
	tw := newTabWriter(stdout)
	tw.writef("File:\t%s\n", res.History.FileName)
	tw.writef("Rows:\t%d\n", res.Summary.Total)
	tw.writef("Processed:\t%d\n", res.Summary.Processed)
	tw.writef("Errors:\t%d\n", res.Summary.Errors)
	tw.writef("Replaced:\t%v\n", res.Replaced)
	if err := tw.finish(); err != nil {
		return err
	}
	for _, e := range res.Errors {
		if _, err := fmt.Fprintln(stdout, "error:", e); err != nil {
			return err
		}
	}
	return nil
}

func printHistory(h *discovery.History) error {
	tw := newTabWriter(stdout)
	tw.writef("TIME\tFILE\tROWS\tPROCESSED\tERRORS\n")
	for i := range h.Entries {
		e := &h.Entries[i]
		tw.writef("%s\t%s\t%d\t%d\t%d\n",
			e.Timestamp.Format("2006-01-02 15:04:05"),
			truncate(e.FileName, 40),
			e.TotalRows,
			e.ProcessedRows,
			e.Errors,
		)
	}
	if h.Stats != nil {
		tw.writef("\nTotal uploads:\t%d\n", h.Stats.Uploads)
		tw.writef("Rows processed:\t%d\n", h.Stats.ProcessedRows)
		tw.writef("Row errors:\t%d\n", h.Stats.ErrorRows)
	}
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
