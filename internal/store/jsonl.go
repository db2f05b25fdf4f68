package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// JSONL is a Store backed by an append-only JSONL file. Each line is a
// JSON-serialized Record. The file is synced after every Append.
//
// Session identity: "<unix-timestamp>-<pid>.jsonl".
type JSONL struct {
	file      *os.File
	mu        sync.Mutex
	idx       *fileIndex
	sessionID string
	startedAt time.Time
	pos       int64 // current write position in the file
}

// NewJSONL creates (or reopens) the session JSONL log in dir. dir is created
// with os.MkdirAll if it does not exist.
func NewJSONL(dir string) (*JSONL, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("store: mkdir %q: %w", dir, err)
	}
	now := time.Now()
	sessionID := fmt.Sprintf("%d-%d", now.Unix(), os.Getpid())
	path := filepath.Join(dir, sessionID+".jsonl")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	pos, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("store: seek: %w", err)
	}
	return &JSONL{
		file:      f,
		idx:       newFileIndex(),
		sessionID: sessionID,
		startedAt: now,
		pos:       pos,
	}, nil
}

// Path returns the session file path.
func (j *JSONL) Path() string { return j.file.Name() }

// Append serializes rec as a JSON line, writes it to the file, and syncs.
// It is safe to call from multiple goroutines.
func (j *JSONL) Append(rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}
	data = append(data, '\n')

	j.mu.Lock()
	defer j.mu.Unlock()

	lineOffset := j.pos
	if _, err := j.file.Write(data); err != nil {
		return fmt.Errorf("store: write: %w", err)
	}
	if err := j.file.Sync(); err != nil {
		return fmt.Errorf("store: sync: %w", err)
	}
	lineLen := int64(len(data))
	j.pos += lineLen
	j.idx.onAppend(rec, lineOffset, lineLen)
	return nil
}

// Close closes the underlying file.
func (j *JSONL) Close() error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.file.Close()
}

// Fires returns summaries for every command fired in this session. The
// returned slice is a copy and safe to mutate.
func (j *JSONL) Fires() ([]FireSummary, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	result := make([]FireSummary, len(j.idx.fires))
	copy(result, j.idx.fires)
	return result, nil
}

// FireLog reads the full record of the n-th fire (1-based) back from the
// file using the in-memory byte-offset index.
func (j *JSONL) FireLog(n int) (Record, error) {
	j.mu.Lock()
	if n < 1 || n > len(j.idx.ranges) {
		j.mu.Unlock()
		return Record{}, fmt.Errorf("store: fire %d not found", n)
	}
	r := j.idx.ranges[n-1]
	j.mu.Unlock()

	buf := make([]byte, r.end-r.start)
	if _, err := j.file.ReadAt(buf, r.start); err != nil {
		return Record{}, fmt.Errorf("store: read fire %d: %w", n, err)
	}
	var rec Record
	if err := json.Unmarshal(buf, &rec); err != nil {
		return Record{}, fmt.Errorf("store: decode fire %d: %w", n, err)
	}
	return rec, nil
}

// SessionSummary returns counts for the current session derived from the
// in-memory index.
func (j *JSONL) SessionSummary() (SessionSummary, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	bySet := make(map[string]int, len(j.idx.firesBySet))
	for k, v := range j.idx.firesBySet {
		bySet[k] = v
	}
	return SessionSummary{
		SessionID:  j.sessionID,
		StartedAt:  j.startedAt,
		KeyDowns:   j.idx.keyDowns,
		KeyUps:     j.idx.keyUps,
		Fires:      len(j.idx.fires),
		FiresBySet: bySet,
		LastFire:   j.idx.lastFire().At,
	}, nil
}

// ReadFile decodes every record in a session log. Malformed lines are
// logged and skipped.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var recs []Record
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		data := sc.Bytes()
		if len(strings.TrimSpace(string(data))) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(data, &rec); err != nil {
			log.Warn().Err(err).Str("file", path).Int("line", line).Msg("store: skipping malformed line")
			continue
		}
		recs = append(recs, rec)
	}
	if err := sc.Err(); err != nil {
		return recs, fmt.Errorf("store: read %q: %w", path, err)
	}
	return recs, nil
}

// sessionFiles returns the .jsonl names in dir, oldest first.
func sessionFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".jsonl") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files) // timestamp-prefixed names sort chronologically
	return files, nil
}

// Latest returns the path of the newest session log in dir.
func Latest(dir string) (string, error) {
	files, err := sessionFiles(dir)
	if err != nil {
		return "", fmt.Errorf("store: read dir %q: %w", dir, err)
	}
	if len(files) == 0 {
		return "", fmt.Errorf("store: no session logs in %q", dir)
	}
	return filepath.Join(dir, files[len(files)-1]), nil
}

// EnforceRetention removes the oldest session log files in dir, keeping at
// most maxKeep files. If maxKeep is 0, no files are removed. Returns nil if
// dir does not exist or is empty.
func EnforceRetention(dir string, maxKeep int) error {
	if maxKeep <= 0 {
		return nil
	}
	return Prune(dir, maxKeep)
}

// Prune removes the oldest session log files in dir until at most keep
// remain. keep 0 removes them all. Returns nil if dir does not exist.
func Prune(dir string, keep int) error {
	if keep < 0 {
		keep = 0
	}
	files, err := sessionFiles(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("store: read dir %q: %w", dir, err)
	}

	toDelete := len(files) - keep
	for i := 0; i < toDelete; i++ {
		path := filepath.Join(dir, files[i])
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("store: remove %q: %w", path, err)
		}
	}
	return nil
}
