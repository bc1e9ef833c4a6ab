package runlog

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// FileStore implements Store using a flat append-only log file.
type FileStore struct {
	path string
}

// NewFileStore returns a FileStore that reads and writes the given
// log file.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Log appends a summary line followed by one detail line per size.
// Blank line separates runs.
func (f *FileStore) Log(e Entry) error {
	if err := os.MkdirAll(filepath.Dir(f.path), DirPerm); err != nil {
		return err
	}
	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, FilePerm)
	if err != nil {
		return err
	}
	defer file.Close()

	ts := e.Time.Format(time.RFC3339)

	summary := fmt.Sprintf("%s  name=%s  dir=%q  generated=%d/%d",
		ts, e.Name, e.Dir, e.Generated(), len(e.Items))
	if e.BundleErr != "" {
		summary += fmt.Sprintf("  bundle_error=%q", e.BundleErr)
	} else {
		summary += fmt.Sprintf("  bundle=%q", e.BundlePath)
	}
	fmt.Fprintln(file, summary)

	for i, it := range e.Items {
		status := "ok"
		if it.Err != "" {
			status = "error: " + it.Err
		}
		fmt.Fprintf(file, "%s    size[%d] %s %dpx %s\n", ts, i+1, it.Name, it.Px, status)
	}

	fmt.Fprintln(file)
	return nil
}

func (f *FileStore) Entries(limit int) ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	content := strings.TrimRight(string(data), "\n\r ")
	if content == "" {
		return nil, nil
	}

	var entries []Entry
	for _, block := range strings.Split(content, "\n\n") {
		if e, ok := parseBlock(block); ok {
			entries = append(entries, e)
		}
	}
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

func (f *FileStore) Clear() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *FileStore) Path() string {
	return f.path
}

// parseBlock reconstructs an Entry from a summary line plus detail
// lines. Malformed blocks are skipped.
func parseBlock(block string) (Entry, bool) {
	lines := strings.Split(strings.TrimSpace(block), "\n")
	if len(lines) == 0 {
		return Entry{}, false
	}

	first := lines[0]
	tsEnd := strings.Index(first, "  ")
	if tsEnd < 0 {
		return Entry{}, false
	}
	ts, err := time.Parse(time.RFC3339, first[:tsEnd])
	if err != nil {
		return Entry{}, false
	}

	e := Entry{
		Time:       ts,
		Name:       extractField(first, "name"),
		Dir:        extractQuoted(first, "dir"),
		BundlePath: extractQuoted(first, "bundle"),
		BundleErr:  extractQuoted(first, "bundle_error"),
	}

	for _, line := range lines[1:] {
		if it, ok := parseSizeLine(line); ok {
			e.Items = append(e.Items, it)
		}
	}
	return e, true
}

// parseSizeLine parses a detail line like:
//
//	2025-01-01T00:00:00Z    size[2] icon_16x16@2x.png 32px ok
func parseSizeLine(line string) (Item, bool) {
	idx := strings.Index(line, "size[")
	if idx < 0 {
		return Item{}, false
	}
	rest := line[idx+5:]
	bracket := strings.Index(rest, "] ")
	if bracket < 0 {
		return Item{}, false
	}
	rest = rest[bracket+2:]

	fields := strings.SplitN(rest, " ", 3)
	if len(fields) < 3 {
		return Item{}, false
	}
	px, err := strconv.Atoi(strings.TrimSuffix(fields[1], "px"))
	if err != nil {
		return Item{}, false
	}

	it := Item{Name: fields[0], Px: px}
	if strings.HasPrefix(fields[2], "error: ") {
		it.Err = strings.TrimPrefix(fields[2], "error: ")
	}
	return it, true
}

// extractField returns the bare value of key=value on a summary line,
// "" when absent. Values end at the double-space field separator.
func extractField(line, key string) string {
	idx := strings.Index(line, key+"=")
	if idx < 0 {
		return ""
	}
	val := line[idx+len(key)+1:]
	if end := strings.Index(val, "  "); end >= 0 {
		val = val[:end]
	}
	return val
}

// extractQuoted returns the unquoted value of key="value".
func extractQuoted(line, key string) string {
	idx := strings.Index(line, key+`="`)
	if idx < 0 {
		return ""
	}
	raw := line[idx+len(key)+1:]
	val, err := strconv.QuotedPrefix(raw)
	if err != nil {
		return ""
	}
	unquoted, err := strconv.Unquote(val)
	if err != nil {
		return ""
	}
	return unquoted
}
