package db

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// entriesSchema returns the statements that create the entries table and its
// indexes. The layout matches the hosted backend's data_entries table.
func entriesSchema(table string) []string {
	name := pgx.Identifier{table}.Sanitize()
	indexName := pgx.Identifier{"idx_" + table + "_timestamp"}.Sanitize()
	typeIndexName := pgx.Identifier{"idx_" + table + "_entry_type"}.Sanitize()

	return []string{
		fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id BIGSERIAL PRIMARY KEY,
			entry_type VARCHAR(20) NOT NULL,
			title VARCHAR(255),
			content TEXT,
			file_path VARCHAR(500),
			file_url VARCHAR(500),
			location_lat DECIMAL(10, 8),
			location_lng DECIMAL(11, 8),
			location_name VARCHAR(255),
			timestamp TIMESTAMPTZ DEFAULT NOW(),
			metadata JSONB
		);
	`, name),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s(timestamp DESC);`, indexName, name),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s(entry_type);`, typeIndexName, name),
	}
}
