package migration

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	migrationFileRe = regexp.MustCompile(`^(\d+)_(.+)\.(up|down)\.sql$`)
	slugInvalidRe   = regexp.MustCompile(`[^a-z0-9]+`)
)

// Entry is one versioned migration with its up and down halves
type Entry struct {
	Version uint64
	Name    string
	HasUp   bool
	HasDown bool
}

// FileName returns the base file name for the given direction
func (e Entry) FileName(direction string) string {
	return fmt.Sprintf("%06d_%s.%s.sql", e.Version, e.Name, direction)
}

// List returns the migrations in fsys ordered by version
func List(fsys fs.FS) ([]Entry, error) {
	dirEntries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations: %w", err)
	}

	byVersion := make(map[uint64]*Entry)
	for _, de := range dirEntries {
		if de.IsDir() {
			continue
		}
		match := migrationFileRe.FindStringSubmatch(de.Name())
		if match == nil {
			continue
		}
		version, err := strconv.ParseUint(match[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid migration version in %s: %w", de.Name(), err)
		}
		e, ok := byVersion[version]
		if !ok {
			e = &Entry{Version: version, Name: match[2]}
			byVersion[version] = e
		}
		if match[3] == "up" {
			e.HasUp = true
		} else {
			e.HasDown = true
		}
	}

	entries := make([]Entry, 0, len(byVersion))
	for _, e := range byVersion {
		entries = append(entries, *e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Version < entries[j].Version })
	return entries, nil
}

// Embedded lists the migrations compiled into the binary
func Embedded() ([]Entry, error) {
	sub, err := fs.Sub(files, SourceDir)
	if err != nil {
		return nil, err
	}
	return List(sub)
}

// Create writes an empty up/down pair to dir, numbered after the highest existing version
func Create(dir, name string) (Entry, error) {
	slug := Slug(name)
	if slug == "" {
		return Entry{}, fmt.Errorf("migration name %q has no usable characters", name)
	}

	existing, err := List(os.DirFS(dir))
	if err != nil {
		return Entry{}, err
	}
	var next uint64 = 1
	if n := len(existing); n > 0 {
		next = existing[n-1].Version + 1
	}

	entry := Entry{Version: next, Name: slug, HasUp: true, HasDown: true}
	upPath := filepath.Join(dir, entry.FileName("up"))
	downPath := filepath.Join(dir, entry.FileName("down"))

	header := fmt.Sprintf("-- %06d %s\n", entry.Version, slug)
	if err := os.WriteFile(upPath, []byte(header), 0o644); err != nil {
		return Entry{}, fmt.Errorf("failed to write %s: %w", upPath, err)
	}
	if err := os.WriteFile(downPath, []byte(header), 0o644); err != nil {
		_ = os.Remove(upPath)
		return Entry{}, fmt.Errorf("failed to write %s: %w", downPath, err)
	}
	return entry, nil
}

// Slug lowercases name and collapses every run of other characters to one underscore
func Slug(name string) string {
	return strings.Trim(slugInvalidRe.ReplaceAllString(strings.ToLower(name), "_"), "_")
}
