// Package discovery combines the verified store, the nearby-places source and
// bookmarks into the ranked discover, map and saved views, and runs
// spreadsheet uploads into the verified set.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/happy-arz/internal/locations"
	"github.com/donaldgifford/happy-arz/internal/metrics"
	"github.com/donaldgifford/happy-arz/internal/places"
	"github.com/donaldgifford/happy-arz/internal/store"
	"github.com/donaldgifford/happy-arz/internal/telemetry"
	"github.com/donaldgifford/happy-arz/pkg/happyhour"
	"github.com/donaldgifford/happy-arz/pkg/ingest"
	"github.com/donaldgifford/happy-arz/pkg/ranker"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// ErrUnknownCity is returned when a request names a city ID that is not in
// the reference list.
var ErrUnknownCity = errors.New("unknown city")

// Request is the caller's discovery context.
type Request struct {
	Search   string
	Category string

	// Latitude/Longitude are a live GPS fix. They are ignored when City is
	// set.
	Latitude  *float64
	Longitude *float64

	// City is a manually selected reference city ID.
	City string

	// Owner scopes bookmarks. Empty means no bookmark overlay.
	Owner string
}

// Result is a ranked discovery list.
type Result struct {
	Businesses []ranker.Ranked `json:"businesses"`
	City       string          `json:"city,omitempty"`
	// Degraded is set when the nearby-places source failed and only verified
	// businesses are shown.
	Degraded bool `json:"degraded,omitempty"`
}

// MapResult is the map screen's partitioned list.
type MapResult struct {
	ranker.MapView
	City     string `json:"city,omitempty"`
	Degraded bool   `json:"degraded,omitempty"`
}

// Service orchestrates the discovery views and uploads.
type Service struct {
	store  store.Store
	places places.Source
	log    *slog.Logger
	tracer trace.Tracer
	now    func() time.Time

	ingestOpts   ingest.Options
	radiusMeters int

	// uploadMu serializes verified-set replacement within this process.
	uploadMu sync.Mutex
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		s.log = l
	}
}

// WithPlaces sets the nearby-places source. Without one, discovery shows
// verified businesses only.
func WithPlaces(p places.Source) Option {
	return func(s *Service) {
		s.places = p
	}
}

// WithClock overrides the wall clock used for live-discount evaluation.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIngestOptions sets the defaults applied to uploaded rows.
func WithIngestOptions(o ingest.Options) Option {
	return func(s *Service) {
		s.ingestOpts = o
	}
}

// WithRadiusMeters sets the nearby-places search radius.
func WithRadiusMeters(m int) Option {
	return func(s *Service) {
		s.radiusMeters = m
	}
}

// NewService creates a Service backed by st.
func NewService(st store.Store, opts ...Option) *Service {
	s := &Service{
		store:        st,
		log:          slog.Default(),
		tracer:       telemetry.Tracer("discovery"),
		now:          time.Now,
		radiusMeters: places.DefaultRadiusMeters,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// position resolves where the user is and whether distances apply.
type position struct {
	lat, lng float64
	known    bool
	gps      *ranker.Origin
	city     string
}

func (s *Service) resolve(req *Request) (position, error) {
	if req.City != "" {
		c, ok := locations.ByID(req.City)
		if !ok {
			return position{}, fmt.Errorf("%w: %q", ErrUnknownCity, req.City)
		}
		return position{
			lat:   c.Coordinates.Latitude,
			lng:   c.Coordinates.Longitude,
			known: true,
			city:  c.Name,
		}, nil
	}
	if req.Latitude != nil && req.Longitude != nil {
		lat, lng := *req.Latitude, *req.Longitude
		return position{
			lat:   lat,
			lng:   lng,
			known: true,
			gps:   &ranker.Origin{Latitude: lat, Longitude: lng},
			city:  locations.CityFor(lat, lng),
		}, nil
	}
	return position{}, nil
}

// candidates is the combined candidate set for one request.
type candidates struct {
	businesses []domain.Business
	bookmarks  []string
	degraded   bool
}

// gather fetches verified businesses, nearby places and bookmarks in
// parallel. A places failure is logged and degrades to verified only; store
// failures abort.
func (s *Service) gather(ctx context.Context, req *Request, pos position) (*candidates, error) {
	var (
		verified  []domain.Business
		nearby    []domain.Business
		bookmarks []string
		degraded  bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		verified, err = s.store.GetVerifiedBusinesses(gctx)
		if err != nil {
			return fmt.Errorf("loading verified businesses: %w", err)
		}
		return nil
	})

	if s.places != nil && pos.known {
		g.Go(func() error {
			var err error
			nearby, err = s.places.Nearby(gctx, places.NearbyRequest{
				Latitude:     pos.lat,
				Longitude:    pos.lng,
				RadiusMeters: s.radiusMeters,
				Type:         places.PlaceTypeFor(req.Category),
				Query:        req.Search,
			})
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				s.log.Warn("nearby places lookup failed, showing verified only", "error", err)
				metrics.PlacesErrorsTotal.Inc()
				nearby, degraded = nil, true
			}
			return nil
		})
	}

	if req.Owner != "" {
		g.Go(func() error {
			var err error
			bookmarks, err = s.store.ListBookmarkedIDs(gctx, req.Owner)
			if err != nil {
				return fmt.Errorf("loading bookmarks: %w", err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	combined := make([]domain.Business, 0, len(verified)+len(nearby))
	combined = append(combined, verified...)
	combined = append(combined, nearby...)
	combined = dedupe(combined)

	return &candidates{
		businesses: ranker.WithBookmarks(combined, bookmarks),
		bookmarks:  bookmarks,
		degraded:   degraded,
	}, nil
}

// dedupe drops later businesses whose ID was already seen, so a verified
// record shadows the nearby-places result for the same venue.
func dedupe(bs []domain.Business) []domain.Business {
	seen := make(map[string]struct{}, len(bs))
	return slices.DeleteFunc(bs, func(b domain.Business) bool {
		if _, ok := seen[b.ID]; ok {
			return true
		}
		seen[b.ID] = struct{}{}
		return false
	})
}

// Discover returns the ranked discovery list.
func (s *Service) Discover(ctx context.Context, req *Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "discovery.Discover")
	defer span.End()
	start := time.Now()
	defer func() {
		metrics.RankingDuration.WithLabelValues("discover").Observe(time.Since(start).Seconds())
	}()

	pos, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	c, err := s.gather(ctx, req, pos)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	ranked := ranker.Rank(c.businesses, ranker.Query{
		Search:   req.Search,
		Category: req.Category,
		GPS:      pos.gps,
	}, s.now())

	metrics.RankedBusinesses.Observe(float64(len(ranked)))
	span.SetAttributes(
		attribute.Int("happyarz.candidates", len(c.businesses)),
		attribute.Int("happyarz.ranked", len(ranked)),
		attribute.Bool("happyarz.degraded", c.degraded),
	)

	return &Result{Businesses: ranked, City: pos.city, Degraded: c.degraded}, nil
}

// Map returns the map view: ranked businesses split by whether they have a
// discount, nearest first when a GPS fix is present.
func (s *Service) Map(ctx context.Context, req *Request) (*MapResult, error) {
	ctx, span := s.tracer.Start(ctx, "discovery.Map")
	defer span.End()
	start := time.Now()
	defer func() {
		metrics.RankingDuration.WithLabelValues("map").Observe(time.Since(start).Seconds())
	}()

	pos, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	c, err := s.gather(ctx, req, pos)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	ranked := ranker.Rank(c.businesses, ranker.Query{
		Search:   req.Search,
		Category: req.Category,
		GPS:      pos.gps,
	}, s.now())
	metrics.RankedBusinesses.Observe(float64(len(ranked)))

	return &MapResult{
		MapView:  ranker.PartitionForMap(ranked),
		City:     pos.city,
		Degraded: c.degraded,
	}, nil
}

// Saved returns the owner's bookmarked businesses that are still known,
// filtered by category.
func (s *Service) Saved(ctx context.Context, req *Request) (*Result, error) {
	ctx, span := s.tracer.Start(ctx, "discovery.Saved")
	defer span.End()
	start := time.Now()
	defer func() {
		metrics.RankingDuration.WithLabelValues("saved").Observe(time.Since(start).Seconds())
	}()

	if req.Owner == "" {
		return nil, store.ErrEmptyOwner
	}

	pos, err := s.resolve(req)
	if err != nil {
		return nil, err
	}

	// Saved places are never narrowed by search or type at the source.
	all := *req
	all.Search, all.Category = "", ""
	c, err := s.gather(ctx, &all, pos)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	saved := ranker.Saved(c.businesses, c.bookmarks, req.Category, s.now())
	metrics.RankedBusinesses.Observe(float64(len(saved)))

	return &Result{Businesses: saved, City: pos.city, Degraded: c.degraded}, nil
}

// Bookmarks returns the owner's bookmarked business IDs.
func (s *Service) Bookmarks(ctx context.Context, owner string) ([]string, error) {
	return s.store.ListBookmarkedIDs(ctx, owner)
}

// ToggleBookmark flips the owner's bookmark on businessID and returns the new
// state.
func (s *Service) ToggleBookmark(ctx context.Context, owner, businessID string) (bool, error) {
	on, err := s.store.ToggleBookmark(ctx, owner, businessID)
	if err != nil {
		return false, err
	}

	state := "removed"
	if on {
		state = "added"
	}
	metrics.BookmarkTogglesTotal.WithLabelValues(state).Inc()
	s.log.Debug("bookmark toggled", "owner", owner, "business_id", businessID, "state", state)
	return on, nil
}

// Verified returns the current verified set in upload order.
func (s *Service) Verified(ctx context.Context) ([]domain.Business, error) {
	return s.store.GetVerifiedBusinesses(ctx)
}

// CountLiveDiscounts returns how many active verified businesses have a
// discount that is live at the service clock.
func (s *Service) CountLiveDiscounts(ctx context.Context) (int, error) {
	verified, err := s.store.GetVerifiedBusinesses(ctx)
	if err != nil {
		return 0, fmt.Errorf("loading verified businesses: %w", err)
	}

	now := s.now()
	n := 0
	for i := range verified {
		if verified[i].IsActive && happyhour.IsCurrentlyActive(verified[i].CurrentDiscount, now) {
			n++
		}
	}
	return n, nil
}

// RefreshLiveDiscounts updates the live-discount gauge.
func (s *Service) RefreshLiveDiscounts(ctx context.Context) error {
	n, err := s.CountLiveDiscounts(ctx)
	if err != nil {
		return err
	}
	metrics.LiveDiscounts.Set(float64(n))
	return nil
}
