package db

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var quotedIdentifier = regexp.MustCompile(`"(?:[^"]|"")*"`)

func TestEntriesSchemaDefaultTable(t *testing.T) {
	stmts := entriesSchema("data_entries")
	require.Len(t, stmts, 3)

	assert.Contains(t, stmts[0], `CREATE TABLE IF NOT EXISTS "data_entries"`)
	assert.Contains(t, stmts[1], `"idx_data_entries_timestamp" ON "data_entries"(timestamp DESC)`)
	assert.Contains(t, stmts[2], `"idx_data_entries_entry_type" ON "data_entries"(entry_type)`)
}

func TestEntriesSchemaQuotesCustomTable(t *testing.T) {
	stmts := entriesSchema(`field "notes"; DROP TABLE users`)

	quoted := `"field ""notes""; DROP TABLE users"`
	assert.Contains(t, stmts[0], "CREATE TABLE IF NOT EXISTS "+quoted+" (")
	for _, stmt := range stmts[1:] {
		assert.Contains(t, stmt, " ON "+quoted+"(")
	}
	// the table name only ever appears inside quoted identifiers
	for _, stmt := range stmts {
		assert.NotContains(t, quotedIdentifier.ReplaceAllString(stmt, ""), "DROP TABLE")
	}
}
