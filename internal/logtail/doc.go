// Package logtail reads the end of roster's log file and renders zap JSON
// lines for humans.
//
// # Reading
//
// Read and Tail keep the last N lines in a ring buffer sized N, so the
// file is scanned once with O(N) memory regardless of its size. A
// non-positive N returns everything. A missing file is not an error.
//
//	lines, err := logtail.Read(cfg.LogFile, 50)
//
// # Formatting
//
// Format turns
//
//	{"level":"info","ts":"2026-10-16T10:00:00Z","logger":"directory","msg":"fetched users","count":30}
//
// into
//
//	2026-10-16T10:00:00Z INFO [directory] fetched users count=30
//
// Extra fields are sorted by key; caller and stacktrace are dropped. Lines
// that are not JSON objects pass through unchanged. A Palette colors each
// part with lipgloss; the zero Palette prints plain text.
package logtail
