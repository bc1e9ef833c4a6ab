// Package runlog records generation runs: one entry per run with a
// detail line per icon size, mirroring what the console printed.
// Logging is best-effort and must never fail a run.
package runlog

import "time"

const (
	LogFileName = "mkicns.log"
	DBFileName  = "mkicns.db"

	DirPerm  = 0755
	FilePerm = 0644
)

// Item is one size outcome within a logged run.
type Item struct {
	Name string
	Px   int
	Err  string // empty on success
}

// Entry is a single logged run.
type Entry struct {
	Time       time.Time
	Name       string
	Dir        string
	BundlePath string // empty when bundling failed or was skipped
	BundleErr  string
	Items      []Item
}

// Generated returns how many size entries in e succeeded.
func (e Entry) Generated() int {
	n := 0
	for _, it := range e.Items {
		if it.Err == "" {
			n++
		}
	}
	return n
}

// Store abstracts run-history storage. FileStore keeps a flat text
// log; SQLiteStore keeps a queryable database.
type Store interface {
	Log(e Entry) error
	// Entries returns logged runs, oldest first; limit keeps only the
	// most recent N, 0 means all.
	Entries(limit int) ([]Entry, error)
	Clear() error
	Path() string
}
