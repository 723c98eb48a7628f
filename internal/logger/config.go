package logger

// LogConfig controls level, format, destination and rotation for all named
// loggers.
type LogConfig struct {
	Level      string // trace, debug, info, warn, error
	Format     string // json or text
	Output     string // file, stdout or both
	LogPath    string // directory for log files, relative to the repo root
	AppFile    string
	AuditFile  string
	ErrorFile  string
	MaxSize    int  // MB per file before rotation
	MaxBackups int  // rotated files kept
	MaxAge     int  // days before rotated files are removed
	Compress   bool // gzip rotated files
}

// DefaultConfig returns the configuration used when Init is called with nil.
func DefaultConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		Format:     "text",
		Output:     "both",
		LogPath:    "logs",
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
		MaxSize:    50,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}
}
