// Package domain defines the core business types for Happy Arz.
package domain

import (
	"slices"
	"strings"
	"time"
)

// Category is the venue category shown in discovery filters.
type Category string

// Category constants.
const (
	CategoryRestaurant Category = "Restaurant"
	CategoryBar        Category = "Bar"
	CategorySpa        Category = "Spa"
	CategoryCafe       Category = "Cafe"
	CategoryNightclub  Category = "Nightclub"
	CategoryHotel      Category = "Hotel"
	CategoryOther      Category = "Other"
)

// CategoryAll is the filter sentinel that matches every category. It is never
// stored on a business.
const CategoryAll = "All"

// Categories lists the known categories in display order.
var Categories = []Category{
	CategoryRestaurant,
	CategoryBar,
	CategorySpa,
	CategoryCafe,
	CategoryNightclub,
	CategoryHotel,
	CategoryOther,
}

// IsKnown reports whether c is exactly one of the known categories.
func (c Category) IsKnown() bool {
	return slices.Contains(Categories, c)
}

// LookupCategory matches s against the known categories ignoring case and
// surrounding whitespace, returning the canonical spelling.
func LookupCategory(s string) (Category, bool) {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

// VerificationSource records where a verified business came from.
type VerificationSource string

// Verification source constants.
const (
	SourceSpreadsheet VerificationSource = "spreadsheet"
	SourceManual      VerificationSource = "manual"
	SourceAPI         VerificationSource = "api"
)

// Location is the position and display address of a business.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// HasCoordinates reports whether the location carries a usable position.
// Spreadsheet rows without coordinate columns produce 0,0.
func (l Location) HasCoordinates() bool {
	return l.Latitude != 0 || l.Longitude != 0
}

// Discount is a recurring daily percentage offer tied to one business.
type Discount struct {
	ID          string `json:"id"`
	BusinessID  string `json:"business_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Percentage  int    `json:"percentage"`
	ValidFrom   string `json:"valid_from"` // HH:MM, 24-hour
	ValidTo     string `json:"valid_to"`   // HH:MM, 24-hour
	IsActive    bool   `json:"is_active"`
}

// VerificationData holds audit details attached by the ingestion pipeline.
type VerificationData struct {
	Source       VerificationSource `json:"source"`
	VerifiedAt   time.Time          `json:"verified_at"`
	VerifiedBy   string             `json:"verified_by,omitempty"`
	OriginalData map[string]string  `json:"original_data,omitempty"`
	GoogleMarker string             `json:"google_marker,omitempty"`
	Logo         string             `json:"logo,omitempty"`
	Telephone    string             `json:"telephone,omitempty"`
	Website      string             `json:"website,omitempty"`
	Remarks      string             `json:"remarks,omitempty"`
	LastUpdate   string             `json:"last_update,omitempty"`
	OpenHours    string             `json:"open_hours,omitempty"`
}

// Business is a venue shown in discovery.
type Business struct {
	ID          string   `json:"id"          db:"id"`
	Name        string   `json:"name"        db:"name"`
	Description string   `json:"description" db:"description"`
	Image       string   `json:"image"       db:"image"`
	Category    Category `json:"category"    db:"category"`
	Rating      float64  `json:"rating"      db:"rating"`
	Location    Location `json:"location"`

	IsActive   bool `json:"is_active"   db:"is_active"`
	IsVerified bool `json:"is_verified" db:"is_verified"`

	// IsBookmarked is an overlay computed per request, never persisted.
	IsBookmarked bool `json:"is_bookmarked"`

	CurrentDiscount *Discount         `json:"current_discount,omitempty" db:"discount"`
	Verification    *VerificationData `json:"verification,omitempty"     db:"verification"`
}

// HasDiscount reports whether any discount is configured, live or not.
func (b *Business) HasDiscount() bool {
	return b.CurrentDiscount != nil
}

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationOption is a named city used for manual location selection.
type LocationOption struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Country     string      `json:"country"`
	Coordinates Coordinates `json:"coordinates"`
	Timezone    string      `json:"timezone"`
	IsPopular   bool        `json:"is_popular,omitempty"`
}

// UploadSummary counts the rows of one ingestion run.
type UploadSummary struct {
	Total     int `json:"total"`
	Processed int `json:"processed"`
	Errors    int `json:"errors"`
}

// UploadHistoryEntry is one append-only record per ingestion run.
type UploadHistoryEntry struct {
	ID            string    `json:"id"             db:"id"`
	Timestamp     time.Time `json:"timestamp"      db:"uploaded_at"`
	FileName      string    `json:"file_name"      db:"file_name"`
	TotalRows     int       `json:"total_rows"     db:"total_rows"`
	ProcessedRows int       `json:"processed_rows" db:"processed_rows"`
	Errors        int       `json:"errors"         db:"error_rows"`
}

// NewUploadHistoryEntry builds a history entry from a run summary.
func NewUploadHistoryEntry(fileName string, s UploadSummary, at time.Time) UploadHistoryEntry {
	return UploadHistoryEntry{
		Timestamp:     at,
		FileName:      fileName,
		TotalRows:     s.Total,
		ProcessedRows: s.Processed,
		Errors:        s.Errors,
	}
}

// UploadStats aggregates the upload history for the admin dashboard.
type UploadStats struct {
	Uploads       int        `json:"uploads"`
	ProcessedRows int        `json:"processed_rows"`
	ErrorRows     int        `json:"error_rows"`
	LastUpload    *time.Time `json:"last_upload,omitempty"`
}
