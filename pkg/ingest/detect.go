package ingest

import (
	"fmt"
	"mime"
	"path/filepath"
	"slices"
	"strings"
)

// Format is the container format of an upload.
type Format string

// Supported upload formats.
const (
	FormatText Format = "text"
	FormatXLSX Format = "xlsx"
)

// Accepted upload content types.
const (
	ContentTypeCSV  = "text/csv"
	ContentTypeTSV  = "text/tab-separated-values"
	ContentTypeText = "text/plain"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// ContentTypes lists every accepted upload content type.
var ContentTypes = []string{ContentTypeCSV, ContentTypeTSV, ContentTypeText, ContentTypeXLSX}

// Detect picks the upload format from the content type, falling back to the
// file extension when the content type is missing or generic.
func Detect(contentType, fileName string) (Format, error) {
	if contentType != "" {
		mt, _, err := mime.ParseMediaType(contentType)
		if err != nil {
			return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, contentType)
		}
		switch {
		case mt == ContentTypeXLSX:
			return FormatXLSX, nil
		case slices.Contains(ContentTypes, mt):
			return FormatText, nil
		case mt == "application/octet-stream":
		default:
			return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, mt)
		}
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv", ".tsv", ".txt":
		return FormatText, nil
	case ".xlsx":
		return FormatXLSX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, fileName)
	}
}

// ParseUpload detects the format of an uploaded file and parses it.
func ParseUpload(data []byte, contentType, fileName string, opts Options) (*Result, error) {
	format, err := Detect(contentType, fileName)
	if err != nil {
		return nil, err
	}
	if format == FormatXLSX {
		return ParseXLSX(data, opts)
	}
	if opts.Delimiter == 0 && (strings.HasPrefix(contentType, ContentTypeTSV) ||
		strings.EqualFold(filepath.Ext(fileName), ".tsv")) {
		opts.Delimiter = '\t'
	}
	return Parse(data, opts)
}
