// Package handlers implements the happy-arz HTTP API: ranked discovery,
// the map and saved views, bookmarks, spreadsheet uploads with their
// history, the verified set, reference locations and the health probes.
//
// API operations are registered with huma; probes are plain echo handlers.
package handlers

// StatusResponse is the probe response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
