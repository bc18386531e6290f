package folio

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
)

// ExportSnapshot writes the stored posts to w as indented JSON.
func ExportSnapshot(s *PostStore, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Load())
}

// ImportSnapshot decodes a JSON post list from r and writes it, replacing the
// current snapshot. It returns the number of posts imported; a failed write
// is returned, not just logged.
func ImportSnapshot(s *PostStore, r io.Reader) (int, error) {
	var posts []Post
	if err := json.NewDecoder(r).Decode(&posts); err != nil {
		return 0, fmt.Errorf("decode snapshot: %w", err)
	}
	for i, p := range posts {
		if p.ID == "" {
			return 0, fmt.Errorf("decode snapshot: post %d has no id", i)
		}
	}
	if posts == nil {
		posts = []Post{}
	}
	if err := s.Write(posts); err != nil {
		return 0, err
	}
	return len(posts), nil
}

// WriteBackup writes the snapshot to a timestamped file in dir and returns its path.
func WriteBackup(s *PostStore, dir string, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}
	path := filepath.Join(dir, "posts-"+now.UTC().Format("20060102-150405")+".json")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create backup: %w", err)
	}
	if err := ExportSnapshot(s, f); err != nil {
		f.Close()
		return "", fmt.Errorf("write backup: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close backup: %w", err)
	}
	return path, nil
}

// StartBackupScheduler runs WriteBackup on the given cron schedule. An empty
// schedule disables backups. The returned func stops the scheduler and waits for
// a running backup to finish.
func (a *App) StartBackupScheduler(schedule, dir string) (func(), error) {
	if schedule == "" {
		return func() {}, nil
	}
	c := cron.New()
	_, err := c.AddFunc(schedule, func() {
		path, err := WriteBackup(a.Store, dir, time.Now())
		if err != nil {
			a.Logger.Errorf("snapshot backup: %v", err)
			return
		}
		a.Logger.Infof("snapshot backup written to %s", path)
	})
	if err != nil {
		return nil, fmt.Errorf("folio: invalid backup schedule %q: %w", schedule, err)
	}
	c.Start()
	return func() { <-c.Stop().Done() }, nil
}
