package constants

const (
	AppName           = "coachdesk"
	DefaultConfigPath = "~/.config/coachdesk/coachdesk.db"
	Version           = "v0.3.0"

	// DateFormat is the date key format used for sessions and calendar cells (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the time-of-day format used for slots and sessions (HH:MM)
	TimeFormat = "15:04"

	// MinutesPerDay bounds session end times; sessions never cross midnight
	MinutesPerDay = 24 * 60

	// UnknownClientLabel is shown for sessions whose client is missing from the catalog
	UnknownClientLabel = "Unbekannter Klient"

	// CancelNotePrefix precedes the cancellation reason recorded in a session's notes
	CancelNotePrefix = "Abgesagt"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "coachdesk-"
	BackupFileSuffix = ".db"

	// Log constants
	LogDirName  = "logs"
	LogFileName = "coachdesk.log"
)
