package discovery

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/donaldgifford/happy-arz/internal/metrics"
	"github.com/donaldgifford/happy-arz/internal/store"
	"github.com/donaldgifford/happy-arz/pkg/ingest"
	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// Upload is one spreadsheet submitted for ingestion.
type Upload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// UploadResult is the outcome of an ingestion run.
type UploadResult struct {
	*ingest.Result
	History domain.UploadHistoryEntry `json:"history"`
	// Replaced reports whether the verified set was replaced. A run with no
	// valid rows keeps the previous set.
	Replaced bool `json:"replaced"`
}

// Upload parses u and, when at least one row is valid, replaces the verified
// set with the result. Every run that gets past file-level validation
// appends one history entry. File-level errors return the ingest sentinel
// errors and persist nothing.
func (s *Service) Upload(ctx context.Context, u Upload) (*UploadResult, error) {
	ctx, span := s.tracer.Start(ctx, "discovery.Upload")
	defer span.End()
	span.SetAttributes(
		attribute.String("happyarz.file_name", u.FileName),
		attribute.Int("happyarz.bytes", len(u.Data)),
	)

	start := time.Now()
	defer func() {
		metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	}()

	opts := s.ingestOpts
	if opts.Now == nil {
		opts.Now = s.now
	}

	res, err := ingest.ParseUpload(u.Data, u.ContentType, u.FileName, opts)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("rejected").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.log.Warn("upload rejected", "file", u.FileName, "error", err)
		return nil, err
	}

	metrics.IngestionRowsTotal.WithLabelValues("processed").Add(float64(res.Summary.Processed))
	metrics.IngestionRowsTotal.WithLabelValues("error").Add(float64(res.Summary.Errors))
	span.SetAttributes(
		attribute.Int("happyarz.rows.total", res.Summary.Total),
		attribute.Int("happyarz.rows.processed", res.Summary.Processed),
		attribute.Int("happyarz.rows.errors", res.Summary.Errors),
	)

	out, err := s.persist(ctx, u.FileName, res)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failed").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	metrics.UploadsTotal.WithLabelValues("ok").Inc()
	s.log.Info("upload processed",
		"file", u.FileName,
		"total", res.Summary.Total,
		"processed", res.Summary.Processed,
		"errors", res.Summary.Errors,
		"replaced", out.Replaced,
	)
	return out, nil
}

func (s *Service) persist(ctx context.Context, fileName string, res *ingest.Result) (*UploadResult, error) {
	s.uploadMu.Lock()
	defer s.uploadMu.Unlock()

	out := &UploadResult{Result: res}

	if len(res.Businesses) > 0 {
		if err := s.store.ReplaceVerifiedBusinesses(ctx, res.Businesses); err != nil {
			return nil, fmt.Errorf("replacing verified businesses: %w", err)
		}
		out.Replaced = true
		metrics.VerifiedBusinesses.Set(float64(len(res.Businesses)))
	}

	entry := domain.NewUploadHistoryEntry(fileName, res.Summary, s.now())
	if err := s.store.AppendUploadHistory(ctx, &entry); err != nil {
		return nil, fmt.Errorf("recording upload history: %w", err)
	}
	out.History = entry

	return out, nil
}

// History is the upload history page plus aggregate counts.
type History struct {
	Entries []domain.UploadHistoryEntry `json:"entries"`
	Stats   *domain.UploadStats         `json:"stats"`
}

// UploadHistory returns history entries matching q, newest first, with
// aggregate statistics over the whole history.
func (s *Service) UploadHistory(ctx context.Context, q *store.HistoryQuery) (*History, error) {
	entries, err := s.store.ListUploadHistory(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("listing upload history: %w", err)
	}
	stats, err := s.store.GetUploadStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading upload stats: %w", err)
	}
	return &History{Entries: entries, Stats: stats}, nil
}
