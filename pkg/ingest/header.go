package ingest

import (
	"strings"

	"golang.org/x/text/cases"
)

// Field is a canonical spreadsheet column.
type Field string

// Canonical fields recognized in upload headers.
const (
	FieldName           Field = "name"
	FieldDescription    Field = "description"
	FieldAddress        Field = "address"
	FieldImage          Field = "image"
	FieldTelephone      Field = "telephone"
	FieldWebsite        Field = "website"
	FieldGoogleMarker   Field = "googleMarker"
	FieldCategory       Field = "category"
	FieldHappyHourStart Field = "happyHourStart"
	FieldHappyHourEnd   Field = "happyHourEnd"
	FieldLogo           Field = "logo"
	FieldOpenHours      Field = "open"
	FieldRemark         Field = "remark"
	FieldUpdate         Field = "update"
	FieldRating         Field = "rating"
	FieldPercentage     Field = "percentage"
	FieldLatitude       Field = "latitude"
	FieldLongitude      Field = "longitude"
)

// RequiredFields must be present in the header and non-blank on every row.
var RequiredFields = []Field{FieldName, FieldDescription, FieldAddress}

// aliases maps folded header spellings to canonical fields.
var aliases = map[string]Field{
	"name":               FieldName,
	"description":        FieldDescription,
	"address":            FieldAddress,
	"picture":            FieldImage,
	"image":              FieldImage,
	"telephone":          FieldTelephone,
	"phone":              FieldTelephone,
	"website":            FieldWebsite,
	"googlemarker":       FieldGoogleMarker,
	"category":           FieldCategory,
	"businesscategory":   FieldCategory,
	"happyhourstart":     FieldHappyHourStart,
	"happyhourend":       FieldHappyHourEnd,
	"logo":               FieldLogo,
	"open":               FieldOpenHours,
	"openhours":          FieldOpenHours,
	"remark":             FieldRemark,
	"remarks":            FieldRemark,
	"update":             FieldUpdate,
	"lastupdate":         FieldUpdate,
	"rating":             FieldRating,
	"discount":           FieldPercentage,
	"discountpercentage": FieldPercentage,
	"percentage":         FieldPercentage,
	"latitude":           FieldLatitude,
	"lat":                FieldLatitude,
	"longitude":          FieldLongitude,
	"lng":                FieldLongitude,
	"lon":                FieldLongitude,
}

var folder = cases.Fold()

// foldHeader lowercases a header name the Unicode way and drops spaces,
// underscores and dashes, so "Happy Hour Start", "happy_hour_start" and
// "happyHourStart" all fold to the same key.
func foldHeader(h string) string {
	h = folder.String(strings.TrimSpace(h))
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '_', '-':
			return -1
		}
		return r
	}, h)
}

// LookupField returns the canonical field for a header name.
func LookupField(header string) (Field, bool) {
	f, ok := aliases[foldHeader(header)]
	return f, ok
}

// header is the resolved layout of an upload's first row.
type header struct {
	names   []string
	columns map[Field]int
}

// newHeader resolves column positions. When two columns map to the same
// field the first one wins.
func newHeader(names []string) *header {
	h := &header{
		names:   make([]string, len(names)),
		columns: make(map[Field]int, len(names)),
	}
	for i, n := range names {
		h.names[i] = strings.TrimSpace(n)
		f, ok := LookupField(n)
		if !ok {
			continue
		}
		if _, dup := h.columns[f]; !dup {
			h.columns[f] = i
		}
	}
	return h
}

// value returns the trimmed cell for f, or "" when the column is absent.
func (h *header) value(cells []string, f Field) string {
	i, ok := h.columns[f]
	if !ok || i >= len(cells) {
		return ""
	}
	return strings.TrimSpace(cells[i])
}

// original maps header names to raw cell values for audit.
func (h *header) original(cells []string) map[string]string {
	out := make(map[string]string, len(h.names))
	for i, n := range h.names {
		if n == "" || i >= len(cells) {
			continue
		}
		out[n] = cells[i]
	}
	return out
}
