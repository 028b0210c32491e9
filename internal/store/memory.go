package store

import (
	"context"
	"maps"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/donaldgifford/happy-arz/pkg/types"
)

// MemoryStore is a process-local Store used when no database is configured
// and in tests. State is lost on restart.
type MemoryStore struct {
	mu        sync.RWMutex
	verified  []domain.Business
	history   []domain.UploadHistoryEntry
	bookmarks map[string][]string
	now       func() time.Time
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bookmarks: make(map[string][]string),
		now:       time.Now,
	}
}

// Ping always succeeds.
func (*MemoryStore) Ping(context.Context) error { return nil }

// Migrate is a no-op.
func (*MemoryStore) Migrate(context.Context) error { return nil }

// GetVerifiedBusinesses returns a copy of the verified set.
func (m *MemoryStore) GetVerifiedBusinesses(context.Context) ([]domain.Business, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Business, len(m.verified))
	for i := range m.verified {
		out[i] = cloneBusiness(m.verified[i])
	}
	return out, nil
}

// ReplaceVerifiedBusinesses swaps in a copy of businesses.
func (m *MemoryStore) ReplaceVerifiedBusinesses(_ context.Context, businesses []domain.Business) error {
	next := make([]domain.Business, len(businesses))
	for i := range businesses {
		next[i] = cloneBusiness(businesses[i])
		next[i].IsVerified = true
		next[i].IsBookmarked = false
	}

	m.mu.Lock()
	m.verified = next
	m.mu.Unlock()
	return nil
}

// AppendUploadHistory records e, filling in its ID and timestamp when unset.
func (m *MemoryStore) AppendUploadHistory(_ context.Context, e *domain.UploadHistoryEntry) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = m.now()
	}

	m.mu.Lock()
	m.history = append(m.history, *e)
	m.mu.Unlock()
	return nil
}

// ListUploadHistory applies q the same way the SQL query does.
func (m *MemoryStore) ListUploadHistory(
	_ context.Context,
	q *HistoryQuery,
) ([]domain.UploadHistoryEntry, error) {
	if q == nil {
		q = &HistoryQuery{}
	}

	m.mu.RLock()
	entries := slices.Clone(m.history)
	m.mu.RUnlock()

	needle := strings.ToLower(q.FileName)
	entries = slices.DeleteFunc(entries, func(e domain.UploadHistoryEntry) bool {
		if q.Since != nil && e.Timestamp.Before(*q.Since) {
			return true
		}
		return needle != "" && !strings.Contains(strings.ToLower(e.FileName), needle)
	})

	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].ID < entries[j].ID
	})

	limit := q.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	start := min(max(q.Offset, 0), len(entries))
	end := min(start+limit, len(entries))
	return entries[start:end], nil
}

// GetUploadStats aggregates the whole upload history.
func (m *MemoryStore) GetUploadStats(context.Context) (*domain.UploadStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := &domain.UploadStats{Uploads: len(m.history)}
	for i := range m.history {
		e := &m.history[i]
		st.ProcessedRows += e.ProcessedRows
		st.ErrorRows += e.Errors
		if st.LastUpload == nil || e.Timestamp.After(*st.LastUpload) {
			ts := e.Timestamp
			st.LastUpload = &ts
		}
	}
	return st, nil
}

// ListBookmarkedIDs returns owner's bookmarks, oldest first.
func (m *MemoryStore) ListBookmarkedIDs(_ context.Context, owner string) ([]string, error) {
	if owner == "" {
		return nil, ErrEmptyOwner
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	ids := slices.Clone(m.bookmarks[owner])
	if ids == nil {
		ids = []string{}
	}
	return ids, nil
}

// ToggleBookmark removes the bookmark when present, otherwise appends it.
func (m *MemoryStore) ToggleBookmark(_ context.Context, owner, businessID string) (bool, error) {
	if owner == "" {
		return false, ErrEmptyOwner
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	ids := m.bookmarks[owner]
	if i := slices.Index(ids, businessID); i >= 0 {
		m.bookmarks[owner] = slices.Delete(ids, i, i+1)
		return false, nil
	}
	m.bookmarks[owner] = append(ids, businessID)
	return true, nil
}

func cloneBusiness(b domain.Business) domain.Business {
	if b.CurrentDiscount != nil {
		d := *b.CurrentDiscount
		b.CurrentDiscount = &d
	}
	if b.Verification != nil {
		v := *b.Verification
		v.OriginalData = maps.Clone(v.OriginalData)
		b.Verification = &v
	}
	return b
}
