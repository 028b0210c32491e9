package store

// SQL query constants organized by entity.
// All SQL lives here; PostgresStore methods reference these constants.

// replaceLockKey serializes verified-set replacement across processes.
const replaceLockKey int64 = 0x6861707079 // "happy"

// Verified business queries.
const (
	querySelectVerified = `
		SELECT id, name, description, image, category, rating,
			latitude, longitude, address, is_active, discount, verification
		FROM verified_businesses
		ORDER BY position`

	queryLockReplace = `SELECT pg_advisory_xact_lock($1)`

	queryDeleteVerified = `DELETE FROM verified_businesses`
)

// verifiedColumns is the COPY column list for verified_businesses.
var verifiedColumns = []string{
	"id", "position", "name", "description", "image", "category", "rating",
	"latitude", "longitude", "address", "is_active", "discount", "verification",
}

// Upload history queries.
const (
	queryInsertHistory = `
		INSERT INTO upload_history (
			id, uploaded_at, file_name, total_rows, processed_rows, error_rows
		) VALUES ($1, $2, $3, $4, $5, $6)`

	queryUploadStats = `
		SELECT COUNT(*),
			COALESCE(SUM(processed_rows), 0),
			COALESCE(SUM(error_rows), 0),
			MAX(uploaded_at)
		FROM upload_history`
)

// Bookmark queries.
const (
	querySelectBookmarks = `
		SELECT business_id FROM bookmarks
		WHERE owner = $1
		ORDER BY created_at, business_id`

	queryDeleteBookmark = `DELETE FROM bookmarks WHERE owner = $1 AND business_id = $2`

	queryInsertBookmark = `
		INSERT INTO bookmarks (owner, business_id) VALUES ($1, $2)
		ON CONFLICT (owner, business_id) DO NOTHING`
)
