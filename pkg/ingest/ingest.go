// Package ingest turns admin spreadsheet uploads into verified businesses.
//
// The pipeline is partial-failure tolerant: each data row is validated and
// mapped independently, bad rows are reported in Result.Errors and the batch
// continues. Only whole-file problems (empty input, invalid encoding, no
// header, unsupported format) are returned as errors.
package ingest

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// File-level errors. Callers surface these as a single upload failure and
// persist nothing.
var (
	ErrEmptyInput        = errors.New("ingest: empty input")
	ErrInvalidEncoding   = errors.New("ingest: input is not valid UTF-8")
	ErrNoHeader          = errors.New("ingest: no header row")
	ErrUnsupportedFormat = errors.New("ingest: unsupported file format")
)

// Defaults applied to optional columns.
const (
	DefaultRating     = 4.0
	DefaultPercentage = 20
	DefaultCategory   = domain.CategoryOther
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options configures a parse run. The zero value is usable.
type Options struct {
	// Delimiter forces the field separator. Zero auto-detects: tab when the
	// header line contains one, comma otherwise.
	Delimiter rune

	// DefaultRating is used when the rating column is absent or unparseable.
	DefaultRating float64

	// DefaultPercentage is used for synthesized discounts without a
	// percentage column.
	DefaultPercentage int

	// VerifiedBy is recorded in each business's verification metadata.
	VerifiedBy string

	// Now stamps verification metadata. Defaults to time.Now.
	Now func() time.Time
}

func (o Options) withDefaults() Options {
	if o.DefaultRating == 0 {
		o.DefaultRating = DefaultRating
	}
	if o.DefaultPercentage == 0 {
		o.DefaultPercentage = DefaultPercentage
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}

// Result is the outcome of one parse run.
type Result struct {
	Businesses []domain.Business    `json:"businesses"`
	Errors     []string             `json:"errors"`
	Summary    domain.UploadSummary `json:"summary"`
}

// record is one non-blank spreadsheet line.
type record struct {
	line  int
	cells []string
	err   error
}

// Parse reads delimited text (CSV or TSV) whose first non-blank line is the
// header.
func Parse(raw []byte, opts Options) (*Result, error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrEmptyInput
	}
	if !utf8.Valid(raw) {
		return nil, ErrInvalidEncoding
	}

	delim := opts.Delimiter
	if delim == 0 {
		delim = detectDelimiter(raw)
	}

	return process(readDelimited(raw, delim), opts.withDefaults())
}

// detectDelimiter inspects the first non-blank line.
func detectDelimiter(raw []byte) rune {
	for line := range bytes.SplitSeq(raw, []byte("\n")) {
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		if bytes.ContainsRune(line, '\t') {
			return '\t'
		}
		return ','
	}
	return ','
}

// readDelimited parses raw one physical line at a time, so a broken quote
// can only spoil its own row. Records never span lines.
func readDelimited(raw []byte, delim rune) []record {
	var out []record
	for i, line := range bytes.Split(raw, []byte("\n")) {
		line = bytes.TrimSuffix(line, []byte("\r"))
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}
		cells, err := readLine(line, delim)
		if err != nil {
			out = append(out, record{line: i + 1, err: err})
			continue
		}
		if blank(cells) {
			continue
		}
		out = append(out, record{line: i + 1, cells: cells})
	}
	return out
}

// readLine parses a single line strictly. Stray quotes inside unquoted
// fields are tolerated; an unterminated or misplaced quoted field is not.
func readLine(line []byte, delim rune) ([]string, error) {
	cells, err := parseLine(line, delim, false)
	if errors.Is(err, csv.ErrBareQuote) {
		cells, err = parseLine(line, delim, true)
	}
	if err != nil {
		var pe *csv.ParseError
		if errors.As(err, &pe) {
			return nil, pe.Err
		}
		return nil, err
	}
	return cells, nil
}

func parseLine(line []byte, delim rune, lazy bool) ([]string, error) {
	r := csv.NewReader(bytes.NewReader(line))
	r.Comma = delim
	r.FieldsPerRecord = -1
	r.LazyQuotes = lazy
	return r.Read()
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// process runs the per-row pipeline over records. The first record is the
// header.
func process(records []record, opts Options) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrNoHeader
	}
	if records[0].err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrNoHeader, records[0].line, records[0].err)
	}

	h := newHeader(records[0].cells)
	b := newBuilder(h, opts)

	res := &Result{
		Businesses: []domain.Business{},
		Errors:     []string{},
	}
	for _, rec := range records[1:] {
		res.Summary.Total++

		biz, msg := b.build(rec)
		if msg != "" {
			res.Summary.Errors++
			res.Errors = append(res.Errors, fmt.Sprintf("Row %d: %s", rec.line, msg))
			continue
		}
		res.Summary.Processed++
		res.Businesses = append(res.Businesses, biz)
	}
	return res, nil
}
