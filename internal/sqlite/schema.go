package sqlite

// createKV holds one row per key. Values are the serialized blobs written by
// the store adapter; the backend never inspects them.
const createKV = `CREATE TABLE IF NOT EXISTS kv (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

const (
	selectValue = `SELECT value FROM kv WHERE key = ?`

	upsertValue = `INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`
)
