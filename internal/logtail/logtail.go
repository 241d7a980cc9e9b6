package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no lines.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	lines, err := Tail(file, maxLines)
	if err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}
	return lines, nil
}

// Tail keeps the last maxLines lines of r in a ring buffer.
func Tail(r io.Reader, maxLines int) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var all []string
		for scanner.Scan() {
			all = append(all, scanner.Text())
		}
		return all, scanner.Err()
	}

	ring := make([]string, maxLines)
	count, next := 0, 0
	for scanner.Scan() {
		ring[next] = scanner.Text()
		next = (next + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if count < maxLines {
		return ring[:count:count], nil
	}
	lines := make([]string, 0, count)
	lines = append(lines, ring[next:]...)
	lines = append(lines, ring[:next]...)
	return lines, nil
}

// Entry is one decoded JSON log line.
type Entry struct {
	Time    string
	Level   string
	Logger  string
	Message string
	Fields  map[string]any
}

var reservedKeys = map[string]bool{
	"ts": true, "level": true, "logger": true, "msg": true, "caller": true, "stacktrace": true,
}

// Parse decodes a zap JSON line. ok is false for lines that are not JSON
// objects.
func Parse(line string) (Entry, bool) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, false
	}
	entry := Entry{
		Time:    stringField(raw, "ts"),
		Level:   strings.ToUpper(stringField(raw, "level")),
		Logger:  stringField(raw, "logger"),
		Message: stringField(raw, "msg"),
		Fields:  map[string]any{},
	}
	for k, v := range raw {
		if !reservedKeys[k] {
			entry.Fields[k] = v
		}
	}
	return entry, true
}

func stringField(raw map[string]any, key string) string {
	if v, ok := raw[key].(string); ok {
		return v
	}
	return ""
}

// Palette colors the parts of a formatted line. The zero value prints plain
// text.
type Palette struct {
	Time   lipgloss.Style
	Logger lipgloss.Style
	Key    lipgloss.Style
	Levels map[string]lipgloss.Style
}

// DefaultPalette is used by `roster logs` on a terminal.
func DefaultPalette() Palette {
	return Palette{
		Time:   lipgloss.NewStyle().Foreground(lipgloss.Color("#808080")),
		Logger: lipgloss.NewStyle().Foreground(lipgloss.Color("#87AFFF")),
		Key:    lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
		Levels: map[string]lipgloss.Style{
			"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")).Bold(true),
			"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#5FD75F")).Bold(true),
			"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
			"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		},
	}
}

// Format renders a log line as "ts LEVEL [logger] msg key=value ...".
// Fields are sorted by key. Lines that are not JSON are returned unchanged.
func Format(line string, p Palette) string {
	entry, ok := Parse(line)
	if !ok {
		return line
	}

	var b strings.Builder
	if entry.Time != "" {
		b.WriteString(p.Time.Render(entry.Time))
		b.WriteByte(' ')
	}
	if entry.Level != "" {
		style, ok := p.Levels[entry.Level]
		if !ok {
			style = lipgloss.NewStyle()
		}
		b.WriteString(style.Render(entry.Level))
		b.WriteByte(' ')
	}
	if entry.Logger != "" {
		b.WriteString(p.Logger.Render("[" + entry.Logger + "]"))
		b.WriteByte(' ')
	}
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Fields))
	for k := range entry.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s%v", p.Key.Render(k+"="), entry.Fields[k])
	}
	return b.String()
}

// FormatLines applies Format to each line.
func FormatLines(lines []string, p Palette) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Format(line, p)
	}
	return out
}
