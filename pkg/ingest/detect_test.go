package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		contentType string
		fileName    string
		want        Format
		wantErr     bool
	}{
		{name: "csv", contentType: "text/csv", want: FormatText},
		{name: "csv with charset", contentType: "text/csv; charset=utf-8", want: FormatText},
		{name: "tsv", contentType: "text/tab-separated-values", want: FormatText},
		{name: "plain", contentType: "text/plain", want: FormatText},
		{name: "xlsx", contentType: ContentTypeXLSX, want: FormatXLSX},
		{name: "octet stream uses extension", contentType: "application/octet-stream", fileName: "venues.xlsx", want: FormatXLSX},
		{name: "no content type uses extension", fileName: "venues.TSV", want: FormatText},
		{name: "json rejected", contentType: "application/json", fileName: "venues.csv", wantErr: true},
		{name: "unknown extension", fileName: "venues.pdf", wantErr: true},
		{name: "malformed content type", contentType: "text/", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Detect(tt.contentType, tt.fileName)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnsupportedFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseUpload_TSVContentType(t *testing.T) {
	t.Parallel()

	raw := []byte("name\tdescription\taddress\nA, Ltd\tB, C\tSilom, Bangkok\n")
	res, err := ParseUpload(raw, ContentTypeTSV, "venues.tsv", Options{})
	require.NoError(t, err)
	require.Len(t, res.Businesses, 1)
	assert.Equal(t, "A, Ltd", res.Businesses[0].Name)
	assert.Equal(t, "Silom, Bangkok", res.Businesses[0].Location.Address)
}

func TestLookupField(t *testing.T) {
	t.Parallel()

	tests := map[string]Field{
		"Name":              FieldName,
		"  ADDRESS ":        FieldAddress,
		"Picture":           FieldImage,
		"googleMarker":      FieldGoogleMarker,
		"Google marker":     FieldGoogleMarker,
		"Business Category": FieldCategory,
		"happy_hour_end":    FieldHappyHourEnd,
		"Open Hours":        FieldOpenHours,
		"Remarks":           FieldRemark,
		"Last Update":       FieldUpdate,
		"lon":               FieldLongitude,
	}
	for in, want := range tests {
		got, ok := LookupField(in)
		assert.True(t, ok, in)
		assert.Equal(t, want, got, in)
	}

	_, ok := LookupField("favourite drink")
	assert.False(t, ok)
}
