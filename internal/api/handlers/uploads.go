package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/happy-arz/internal/discovery"
	"github.com/donaldgifford/happy-arz/internal/store"
	"github.com/donaldgifford/happy-arz/pkg/ingest"
)

// DefaultMaxUploadBytes caps spreadsheet request bodies.
const DefaultMaxUploadBytes = 10 << 20

// Uploader ingests spreadsheets and reports upload history.
type Uploader interface {
	Upload(ctx context.Context, u discovery.Upload) (*discovery.UploadResult, error)
	UploadHistory(ctx context.Context, q *store.HistoryQuery) (*discovery.History, error)
}

// UploadsHandler handles spreadsheet upload endpoints.
type UploadsHandler struct {
	svc Uploader
}

// NewUploadsHandler creates a new UploadsHandler.
func NewUploadsHandler(svc Uploader) *UploadsHandler {
	return &UploadsHandler{svc: svc}
}

// --- Input/Output types ---

// UploadInput is a raw spreadsheet body.
type UploadInput struct {
	FileName    string `query:"filename"     doc:"Original file name, recorded in history and used to detect the format"`
	ContentType string `header:"Content-Type" doc:"text/csv, text/tab-separated-values, text/plain or the xlsx MIME type"`
	RawBody     []byte
}

// UploadOutput is the ingestion result.
type UploadOutput struct {
	Body *discovery.UploadResult
}

// ListUploadsInput filters the upload history.
type ListUploadsInput struct {
	Since    time.Time `query:"since"    doc:"Only uploads at or after this time (RFC 3339)"`
	FileName string    `query:"filename" doc:"Case-insensitive file name substring"`
	Limit    int       `query:"limit"    doc:"Number of results (default 50)"                minimum:"0" maximum:"500"`
	Offset   int       `query:"offset"   doc:"Pagination offset"                             minimum:"0"`
}

// ListUploadsOutput is the upload history page with aggregate counts.
type ListUploadsOutput struct {
	Body *discovery.History
}

// --- Handlers ---

// Upload ingests a spreadsheet and replaces the verified set with its valid
// rows. Row errors are reported in the body; file-level errors are 400s.
func (h *UploadsHandler) Upload(ctx context.Context, input *UploadInput) (*UploadOutput, error) {
	fileName := input.FileName
	if fileName == "" {
		fileName = "upload"
	}

	res, err := h.svc.Upload(ctx, discovery.Upload{
		FileName:    fileName,
		ContentType: input.ContentType,
		Data:        input.RawBody,
	})
	if err != nil {
		if isFileError(err) {
			return nil, huma.Error400BadRequest("invalid spreadsheet: " + err.Error())
		}
		return nil, huma.Error500InternalServerError("upload failed: " + err.Error())
	}

	return &UploadOutput{Body: res}, nil
}

// List returns upload history, newest first.
func (h *UploadsHandler) List(ctx context.Context, input *ListUploadsInput) (*ListUploadsOutput, error) {
	q := &store.HistoryQuery{
		FileName: input.FileName,
		Limit:    input.Limit,
		Offset:   input.Offset,
	}
	if !input.Since.IsZero() {
		q.Since = &input.Since
	}

	hist, err := h.svc.UploadHistory(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing uploads failed: " + err.Error())
	}
	return &ListUploadsOutput{Body: hist}, nil
}

func isFileError(err error) bool {
	return errors.Is(err, ingest.ErrEmptyInput) ||
		errors.Is(err, ingest.ErrInvalidEncoding) ||
		errors.Is(err, ingest.ErrNoHeader) ||
		errors.Is(err, ingest.ErrUnsupportedFormat)
}

// RegisterUploadRoutes registers upload endpoints with the Huma API.
// maxBytes caps the request body; 0 uses DefaultMaxUploadBytes.
func RegisterUploadRoutes(api huma.API, h *UploadsHandler, maxBytes int64) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}

	uploadDescription := "Parses a CSV, TSV or xlsx spreadsheet and replaces the verified set with its valid rows. " +
		"Accepted content types: " + strings.Join(ingest.ContentTypes, ", ") + "."

	huma.Register(api, huma.Operation{
		OperationID:  "upload-spreadsheet",
		Method:       http.MethodPost,
		Path:         "/api/v1/uploads",
		Summary:      "Upload verified businesses",
		Description:  uploadDescription,
		Tags:         []string{"uploads"},
		MaxBodyBytes: maxBytes,
		Errors:       []int{http.StatusBadRequest, http.StatusRequestEntityTooLarge},
	}, h.Upload)

	huma.Register(api, huma.Operation{
		OperationID: "list-uploads",
		Method:      http.MethodGet,
		Path:        "/api/v1/uploads",
		Summary:     "Upload history",
		Description: "Returns upload history newest first, with aggregate processed and error counts.",
		Tags:        []string{"uploads"},
	}, h.List)
}
