package db

// SchemaSQL is the complete schema for fresh waymark installs. The
// store is a single string-keyed blob table; the application owns the
// shape of each value (JSON documents, plain string for the
// passphrase). Tests use this schema via GetSchemaSQL so repository
// code and schema cannot drift apart silently.
const SchemaSQL = `
-- Key-value blob store (progress, locked states, audit log, passphrase)
CREATE TABLE IF NOT EXISTS kv (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`

// GetSchemaSQL returns the schema for use in tests.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema creates all tables if they don't exist
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	_, err = database.Exec(SchemaSQL)
	return err
}
