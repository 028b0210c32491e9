package ingest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/donaldgifford/happy-arz/pkg/happyhour"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// businessNamespace scopes the name-based UUIDs generated for uploaded rows.
var businessNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://happyarz.app/businesses"))

// builder maps validated rows onto businesses. It tracks the IDs issued in
// the current batch so repeated name/address pairs stay unique.
type builder struct {
	h    *header
	opts Options
	seen map[string]int
}

func newBuilder(h *header, opts Options) *builder {
	return &builder{h: h, opts: opts, seen: make(map[string]int)}
}

// build returns the business for rec, or a row-level error message.
func (b *builder) build(rec record) (domain.Business, string) {
	if rec.err != nil {
		return domain.Business{}, fmt.Sprintf("malformed row: %v", rec.err)
	}
	if len(rec.cells) != len(b.h.names) {
		return domain.Business{}, fmt.Sprintf(
			"column count mismatch (expected %d, got %d)", len(b.h.names), len(rec.cells),
		)
	}

	var missing []string
	for _, f := range RequiredFields {
		if b.h.value(rec.cells, f) == "" {
			missing = append(missing, string(f))
		}
	}
	if len(missing) > 0 {
		return domain.Business{}, "missing required field(s): " + strings.Join(missing, ", ")
	}

	get := func(f Field) string { return b.h.value(rec.cells, f) }

	name := get(FieldName)
	address := get(FieldAddress)
	id := b.nextID(name, address)

	biz := domain.Business{
		ID:          id,
		Name:        name,
		Description: get(FieldDescription),
		Image:       get(FieldImage),
		Category:    parseCategory(get(FieldCategory)),
		Rating:      parseRating(get(FieldRating), b.opts.DefaultRating),
		Location: domain.Location{
			Latitude:  parseCoordinate(get(FieldLatitude), 90),
			Longitude: parseCoordinate(get(FieldLongitude), 180),
			Address:   address,
		},
		IsActive:   true,
		IsVerified: true,
	}

	start, end := get(FieldHappyHourStart), get(FieldHappyHourEnd)
	if start != "" && end != "" {
		biz.CurrentDiscount = b.discount(id, start, end, get(FieldPercentage))
	}

	website := get(FieldWebsite)
	marker := get(FieldGoogleMarker)
	if website == "" {
		website = marker
	}
	biz.Verification = &domain.VerificationData{
		Source:       domain.SourceSpreadsheet,
		VerifiedAt:   b.opts.Now(),
		VerifiedBy:   b.opts.VerifiedBy,
		OriginalData: b.h.original(rec.cells),
		GoogleMarker: marker,
		Logo:         get(FieldLogo),
		Telephone:    get(FieldTelephone),
		Website:      website,
		Remarks:      get(FieldRemark),
		LastUpdate:   get(FieldUpdate),
		OpenHours:    get(FieldOpenHours),
	}

	return biz, ""
}

func (b *builder) nextID(name, address string) string {
	key := strings.ToLower(name) + "\x00" + strings.ToLower(address)
	n := b.seen[key]
	b.seen[key] = n + 1
	if n > 0 {
		key = fmt.Sprintf("%s\x00%d", key, n)
	}
	return uuid.NewSHA1(businessNamespace, []byte(key)).String()
}

func (b *builder) discount(businessID, start, end, pct string) *domain.Discount {
	from := normalizeOrRaw(start)
	to := normalizeOrRaw(end)
	percentage := parsePercentage(pct, b.opts.DefaultPercentage)

	return &domain.Discount{
		ID:          uuid.NewSHA1(uuid.MustParse(businessID), []byte("happy-hour")).String(),
		BusinessID:  businessID,
		Title:       "Happy Hour",
		Description: fmt.Sprintf("%d%% off from %s to %s", percentage, from, to),
		Percentage:  percentage,
		ValidFrom:   from,
		ValidTo:     to,
		IsActive:    true,
	}
}

// normalizeOrRaw keeps unrecognized times as written; the evaluator degrades
// them leniently.
func normalizeOrRaw(s string) string {
	if v, ok := happyhour.NormalizeClock(s); ok {
		return v
	}
	return s
}

func parseCategory(s string) domain.Category {
	if c, ok := domain.LookupCategory(s); ok {
		return c
	}
	return DefaultCategory
}

func parseRating(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}
	return v
}

// parsePercentage accepts 0-100 with an optional "%" suffix; anything else
// gets the default.
func parsePercentage(s string, def int) int {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || f < 0 || f > 100 {
		return def
	}
	return int(math.Round(f))
}

// parseCoordinate returns 0 (unknown) for blank, unparseable or out of
// range values.
func parseCoordinate(s string, limit float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > limit {
		return 0
	}
	return v
}
