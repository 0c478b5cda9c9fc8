// Package jsonstore provides a JSON file-based implementation of
// domain.BlobStore. Each logical key (projects, tasks, theme) lives in
// its own file under the data directory and is always written in full.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/ksaito/pmdash/internal/domain"
)

// File names for the three logical keys.
const (
	projectsFile = "projects.json"
	tasksFile    = "tasks.json"
	themeFile    = "theme.json"
)

// Store implements domain.BlobStore using one JSON file per key.
type Store struct {
	logger       domain.Logger
	dir          string
	lockPath     string
	defaultTheme domain.Theme
}

// New creates a new Store rooted at dir. The directory does not need
// to exist; it is created on first write. logger may be nil.
func New(dir string, logger domain.Logger) *Store {
	return &Store{
		dir:          dir,
		lockPath:     filepath.Join(dir, ".lock"),
		logger:       logger,
		defaultTheme: domain.DefaultTheme,
	}
}

// SetDefaultTheme overrides the theme returned before any theme has
// been persisted.
func (s *Store) SetDefaultTheme(theme domain.Theme) {
	if theme.IsValid() {
		s.defaultTheme = theme
	}
}

// LoadProjects returns the persisted projects collection. A missing or
// unparsable file yields an empty collection.
func (s *Store) LoadProjects() ([]domain.Project, error) {
	var projects []domain.Project
	if err := s.load(projectsFile, &projects); err != nil {
		return nil, err
	}
	if projects == nil {
		projects = []domain.Project{}
	}
	return projects, nil
}

// SaveProjects overwrites the persisted projects collection.
func (s *Store) SaveProjects(projects []domain.Project) error {
	return s.save(projectsFile, projects)
}

// LoadTasks returns the persisted tasks collection. A missing or
// unparsable file yields an empty collection.
func (s *Store) LoadTasks() ([]domain.Task, error) {
	var tasks []domain.Task
	if err := s.load(tasksFile, &tasks); err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

// SaveTasks overwrites the persisted tasks collection.
func (s *Store) SaveTasks(tasks []domain.Task) error {
	return s.save(tasksFile, tasks)
}

// LoadTheme returns the persisted theme, or the default when the file
// is missing, unparsable, or holds an unknown value.
func (s *Store) LoadTheme() (domain.Theme, error) {
	var theme domain.Theme
	if err := s.load(themeFile, &theme); err != nil {
		return s.defaultTheme, err
	}
	if !theme.IsValid() {
		if theme != "" {
			s.warnf("ignoring unknown theme %q", theme)
		}
		return s.defaultTheme, nil
	}
	return theme, nil
}

// SaveTheme overwrites the persisted theme.
func (s *Store) SaveTheme(theme domain.Theme) error {
	return s.save(themeFile, theme)
}

// load reads the named key into v under a shared lock. Missing and
// unparsable files leave v at its zero value; unparsable content is
// logged, not propagated, so a corrupt key degrades to defaults.
func (s *Store) load(name string, v any) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", name, err)
	}

	if err := json.Unmarshal(content, v); err != nil {
		s.warnf("unparsable %s, falling back to defaults: %v", name, err)
	}
	return nil
}

// save serializes v and overwrites the named key under an exclusive
// lock, writing to a temp file and renaming for atomicity.
func (s *Store) save(name string, v any) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	content, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(s.dir, 0o750); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

func (s *Store) warnf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Warn("store", fmt.Sprintf(format, args...))
	}
}

// Ensure Store implements BlobStore.
var _ domain.BlobStore = (*Store)(nil)
