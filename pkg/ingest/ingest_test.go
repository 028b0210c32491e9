package ingest_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/happy-arz/pkg/happyhour"
	"github.com/donaldgifford/happy-arz/pkg/ingest"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

var fixedNow = time.Date(2025, 6, 13, 9, 0, 0, 0, time.UTC)

func opts() ingest.Options {
	return ingest.Options{
		VerifiedBy: "admin",
		Now:        func() time.Time { return fixedNow },
	}
}

func tsv(lines ...[]string) []byte {
	var sb strings.Builder
	for _, l := range lines {
		sb.WriteString(strings.Join(l, "\t"))
		sb.WriteString("\n")
	}
	return []byte(sb.String())
}

var templateHeader = []string{
	"Name", "Description", "Address", "Google marker", "Picture", "Logo", "Open",
	"Happy Hour Start", "Happy Hour End", "Telephone", "Remark", "Update",
}

func pastelRow() []string {
	return []string{
		"Pastel Rooftop Bar and mediterranean",
		"Rooftop bar with Mediterranean cuisine and stunning city views",
		"22nd floor, Aira Hotel, 14 Sukhumvit 11, Bangkok 10110",
		"https://www.pastelbangkok.com/",
		"https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg",
		"",
		"Open Every Day from 5:00PM – 1:00AM",
		"5:00 PM",
		"7:00 PM",
		"095-703-5679",
		"",
		"UPDATE 13/6/2025",
	}
}

func TestParse_TemplateSpreadsheet(t *testing.T) {
	t.Parallel()

	junker := pastelRow()
	junker[0] = "Junker and Bar"
	junker[2] = "   "

	res, err := ingest.Parse(tsv(templateHeader, pastelRow(), junker), opts())
	require.NoError(t, err)

	assert.Equal(t, domain.UploadSummary{Total: 2, Processed: 1, Errors: 1}, res.Summary)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Row 3: missing required field(s): address", res.Errors[0])

	require.Len(t, res.Businesses, 1)
	b := res.Businesses[0]
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Pastel Rooftop Bar and mediterranean", b.Name)
	assert.Equal(t, "https://images.pexels.com/photos/1581384/pexels-photo-1581384.jpeg", b.Image)
	assert.Equal(t, domain.CategoryOther, b.Category)
	assert.InDelta(t, ingest.DefaultRating, b.Rating, 1e-9)
	assert.True(t, b.IsActive)
	assert.True(t, b.IsVerified)
	assert.False(t, b.Location.HasCoordinates())

	require.NotNil(t, b.CurrentDiscount)
	assert.True(t, b.CurrentDiscount.IsActive)
	assert.Equal(t, "17:00", b.CurrentDiscount.ValidFrom)
	assert.Equal(t, "19:00", b.CurrentDiscount.ValidTo)
	assert.Equal(t, ingest.DefaultPercentage, b.CurrentDiscount.Percentage)
	assert.Equal(t, b.ID, b.CurrentDiscount.BusinessID)
	assert.NotEmpty(t, b.CurrentDiscount.ID)

	v := b.Verification
	require.NotNil(t, v)
	assert.Equal(t, domain.SourceSpreadsheet, v.Source)
	assert.Equal(t, fixedNow, v.VerifiedAt)
	assert.Equal(t, "admin", v.VerifiedBy)
	assert.Equal(t, "https://www.pastelbangkok.com/", v.GoogleMarker)
	assert.Equal(t, "https://www.pastelbangkok.com/", v.Website)
	assert.Equal(t, "095-703-5679", v.Telephone)
	assert.Equal(t, "Open Every Day from 5:00PM – 1:00AM", v.OpenHours)
	assert.Equal(t, "UPDATE 13/6/2025", v.LastUpdate)
	assert.Equal(t, "Pastel Rooftop Bar and mediterranean", v.OriginalData["Name"])
	assert.Equal(t, "5:00 PM", v.OriginalData["Happy Hour Start"])
}

func TestParse_HappyHourRoundTrip(t *testing.T) {
	t.Parallel()

	raw := []byte("name,description,address,happyHourStart,happyHourEnd\n" +
		"Sirocco,Sky bar,1055 Silom Rd,17:00,19:00\n")

	res, err := ingest.Parse(raw, opts())
	require.NoError(t, err)
	require.Len(t, res.Businesses, 1)

	d := res.Businesses[0].CurrentDiscount
	require.NotNil(t, d)
	assert.True(t, d.IsActive)
	assert.True(t, happyhour.IsCurrentlyActive(d, time.Date(2025, 6, 13, 18, 0, 0, 0, time.Local)))
	assert.False(t, happyhour.IsCurrentlyActive(d, time.Date(2025, 6, 13, 20, 0, 0, 0, time.Local)))
}

func TestParse_OptionalColumns(t *testing.T) {
	t.Parallel()

	raw := []byte("Name,Description,Address,Business Category,Rating,Happy_Hour_Start,happy-hour-end,Discount Percentage,Lat,Lng,Phone,Website,Google Marker\n" +
		`"Sirocco","Sky bar, with views","1055 Silom Rd",bar,4.3,17:00,19:00,30%,13.7217,100.5154,02-624-9555,https://lebua.com,https://maps.example/sirocco` + "\n")

	res, err := ingest.Parse(raw, opts())
	require.NoError(t, err)
	require.Empty(t, res.Errors)
	require.Len(t, res.Businesses, 1)

	b := res.Businesses[0]
	assert.Equal(t, "Sky bar, with views", b.Description)
	assert.Equal(t, domain.CategoryBar, b.Category)
	assert.InDelta(t, 4.3, b.Rating, 1e-9)
	assert.InDelta(t, 13.7217, b.Location.Latitude, 1e-9)
	assert.InDelta(t, 100.5154, b.Location.Longitude, 1e-9)
	require.NotNil(t, b.CurrentDiscount)
	assert.Equal(t, 30, b.CurrentDiscount.Percentage)
	assert.Equal(t, "02-624-9555", b.Verification.Telephone)
	assert.Equal(t, "https://lebua.com", b.Verification.Website)
	assert.Equal(t, "https://maps.example/sirocco", b.Verification.GoogleMarker)
}

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	raw := []byte("name,description,address,category,rating,happyHourStart,happyHourEnd,latitude\n" +
		"A,desc,addr,Karaoke,n/a,17:00,,north\n" +
		"B,desc,addr,SPA,NaN,sunset,late,13.7\n")

	res, err := ingest.Parse(raw, opts())
	require.NoError(t, err)
	require.Len(t, res.Businesses, 2)

	a := res.Businesses[0]
	assert.Equal(t, domain.CategoryOther, a.Category)
	assert.InDelta(t, 4.0, a.Rating, 1e-9)
	assert.Nil(t, a.CurrentDiscount, "only one happy hour column set")
	assert.InDelta(t, 0.0, a.Location.Latitude, 1e-9)

	b := res.Businesses[1]
	assert.Equal(t, domain.CategorySpa, b.Category)
	assert.InDelta(t, 4.0, b.Rating, 1e-9)
	require.NotNil(t, b.CurrentDiscount)
	assert.Equal(t, "sunset", b.CurrentDiscount.ValidFrom, "unrecognized times are kept as written")
	assert.Equal(t, "late", b.CurrentDiscount.ValidTo)
}

func TestParse_ConfiguredDefaults(t *testing.T) {
	t.Parallel()

	o := opts()
	o.DefaultRating = 3.5
	o.DefaultPercentage = 15

	raw := []byte("name,description,address,happyHourStart,happyHourEnd\nA,B,C,16:00,18:00\n")
	res, err := ingest.Parse(raw, o)
	require.NoError(t, err)
	require.Len(t, res.Businesses, 1)
	assert.InDelta(t, 3.5, res.Businesses[0].Rating, 1e-9)
	assert.Equal(t, 15, res.Businesses[0].CurrentDiscount.Percentage)
}

func TestParse_DiscountPercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want int
	}{
		{name: "integer", cell: "35", want: 35},
		{name: "percent suffix", cell: "40 %", want: 40},
		{name: "fraction rounds", cell: "12.6", want: 13},
		{name: "upper bound", cell: "100", want: 100},
		{name: "blank uses default", cell: "", want: ingest.DefaultPercentage},
		{name: "text uses default", cell: "half", want: ingest.DefaultPercentage},
		{name: "negative uses default", cell: "-5", want: ingest.DefaultPercentage},
		{name: "above 100 uses default", cell: "150", want: ingest.DefaultPercentage},
		{name: "huge uses default", cell: "1e30", want: ingest.DefaultPercentage},
		{name: "infinity uses default", cell: "Inf", want: ingest.DefaultPercentage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			raw := "name,description,address,happyHourStart,happyHourEnd,discount\n" +
				"A,B,C,16:00,18:00," + tt.cell + "\n"
			res, err := ingest.Parse([]byte(raw), opts())
			require.NoError(t, err)
			require.Len(t, res.Businesses, 1)
			require.NotNil(t, res.Businesses[0].CurrentDiscount)
			assert.Equal(t, tt.want, res.Businesses[0].CurrentDiscount.Percentage)
		})
	}
}

func TestParse_RowErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		raw        string
		wantErrors []string
		wantSum    domain.UploadSummary
	}{
		{
			name:       "column count mismatch",
			raw:        "name,description,address\nA,B,C\nonly,two\n",
			wantErrors: []string{"Row 3: column count mismatch (expected 3, got 2)"},
			wantSum:    domain.UploadSummary{Total: 2, Processed: 1, Errors: 1},
		},
		{
			name:       "mismatch and missing count once",
			raw:        "name,description,address\n,,C,extra\n",
			wantErrors: []string{"Row 2: column count mismatch (expected 3, got 4)"},
			wantSum:    domain.UploadSummary{Total: 1, Processed: 0, Errors: 1},
		},
		{
			name:       "several missing fields",
			raw:        "name,description,address\n ,,C\n",
			wantErrors: []string{"Row 2: missing required field(s): name, description"},
			wantSum:    domain.UploadSummary{Total: 1, Processed: 0, Errors: 1},
		},
		{
			name: "required column absent from header",
			raw:  "name,description\nA,B\nC,D\n",
			wantErrors: []string{
				"Row 2: missing required field(s): address",
				"Row 3: missing required field(s): address",
			},
			wantSum: domain.UploadSummary{Total: 2, Processed: 0, Errors: 2},
		},
		{
			name:       "blank lines keep spreadsheet line numbers",
			raw:        "name,description,address\n\nA,B,C\n\nD,,F\n",
			wantErrors: []string{"Row 5: missing required field(s): description"},
			wantSum:    domain.UploadSummary{Total: 2, Processed: 1, Errors: 1},
		},
		{
			name: "unterminated quote spoils only its own row",
			raw:  "name,description,address\nA,\"broken desc,Addr A\nB,desc,Addr B\nC,desc,Addr C\nD,desc,Addr D\n",
			wantErrors: []string{
				"Row 2: malformed row: " + csv.ErrQuote.Error(),
			},
			wantSum: domain.UploadSummary{Total: 4, Processed: 3, Errors: 1},
		},
		{
			name:       "bare quote inside unquoted field is kept",
			raw:        "name,description,address\nJoe's \"Best\" Bar,desc,Addr\r\n",
			wantErrors: []string{},
			wantSum:    domain.UploadSummary{Total: 1, Processed: 1, Errors: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := ingest.Parse([]byte(tt.raw), opts())
			require.NoError(t, err)
			assert.Equal(t, tt.wantErrors, res.Errors)
			assert.Equal(t, tt.wantSum, res.Summary)
			assert.Len(t, res.Businesses, tt.wantSum.Processed)
		})
	}
}

func TestParse_FileErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     []byte
		wantErr error
	}{
		{name: "nil", raw: nil, wantErr: ingest.ErrEmptyInput},
		{name: "whitespace", raw: []byte(" \n\t\n"), wantErr: ingest.ErrEmptyInput},
		{name: "bom only", raw: []byte("\xEF\xBB\xBF"), wantErr: ingest.ErrEmptyInput},
		{name: "invalid utf8", raw: []byte("name,description\n\xff\xfe,x\n"), wantErr: ingest.ErrInvalidEncoding},
		{name: "blank header cells", raw: []byte(",,,\n, ,\n"), wantErr: ingest.ErrNoHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res, err := ingest.Parse(tt.raw, opts())
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, res)
		})
	}
}

func TestParse_HeaderOnly(t *testing.T) {
	t.Parallel()

	res, err := ingest.Parse([]byte("name,description,address\n"), opts())
	require.NoError(t, err)
	assert.Equal(t, domain.UploadSummary{}, res.Summary)
	assert.NotNil(t, res.Businesses)
	assert.NotNil(t, res.Errors)
}

func TestParse_BOMAndCRLF(t *testing.T) {
	t.Parallel()

	raw := []byte("\xEF\xBB\xBFname,description,address\r\nA,B,C\r\n")
	res, err := ingest.Parse(raw, opts())
	require.NoError(t, err)
	require.Len(t, res.Businesses, 1)
	assert.Equal(t, "A", res.Businesses[0].Name)
	assert.Equal(t, "C", res.Businesses[0].Location.Address)
}

func TestParse_Delimiter(t *testing.T) {
	t.Parallel()

	t.Run("tab auto detected", func(t *testing.T) {
		t.Parallel()
		res, err := ingest.Parse([]byte("name\tdescription\taddress\nA, Ltd\tB\tC\n"), opts())
		require.NoError(t, err)
		require.Len(t, res.Businesses, 1)
		assert.Equal(t, "A, Ltd", res.Businesses[0].Name)
	})

	t.Run("forced delimiter", func(t *testing.T) {
		t.Parallel()
		o := opts()
		o.Delimiter = ';'
		res, err := ingest.Parse([]byte("name;description;address\nA;B;C\n"), o)
		require.NoError(t, err)
		assert.Len(t, res.Businesses, 1)
	})
}

func TestParse_IDs(t *testing.T) {
	t.Parallel()

	raw := []byte("name,description,address\nA,first,Street 1\nA,second,Street 1\nB,third,Street 1\n")

	first, err := ingest.Parse(raw, opts())
	require.NoError(t, err)
	second, err := ingest.Parse(raw, opts())
	require.NoError(t, err)

	require.Len(t, first.Businesses, 3)
	seen := map[string]bool{}
	for i, b := range first.Businesses {
		assert.False(t, seen[b.ID], "duplicate id %s", b.ID)
		seen[b.ID] = true
		assert.Equal(t, b.ID, second.Businesses[i].ID, "ids are stable across runs")
	}
}
