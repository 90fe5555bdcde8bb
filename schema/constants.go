package schema

// DatabaseBackend represents the database backend for the cache and history stores.
type DatabaseBackend string

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends lists all valid database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// Display formats for calendar days and recent-commit timestamps.
const (
	DayFormat   = "2006-01-02"
	ClockFormat = "01/02 15:04"
)

// ExportSchemaVersion identifies the layout of the JSON export document.
const ExportSchemaVersion = "1.0"

// ShortHashLen is the number of hex characters kept from a commit hash.
const ShortHashLen = 8

// MaxRecentCommits bounds the recent-commit list kept per repository.
const MaxRecentCommits = 10

// MaxRecentDisplay is the number of cross-repository commits shown on the dashboard.
const MaxRecentDisplay = 15

// MaxMessageWidth is the widest a commit subject is rendered on the dashboard.
const MaxMessageWidth = 40
