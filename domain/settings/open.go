package settings

import "log/slog"

// Open returns the SQLite store at path, or a memory store if it cannot be
// opened. The second return value names the backend in use.
func Open(path string, logger *slog.Logger) (Backend, string) {
	s, err := OpenSQLStore(path, ClickySchema(), logger)
	if err != nil {
		if logger != nil {
			logger.Warn("settings database unavailable, using memory store", "path", path, "error", err)
		}
		return NewMemoryStore(ClickySchema()), memoryBackend
	}
	return s, sqliteBackend
}
