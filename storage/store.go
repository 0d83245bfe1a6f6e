// Package storage reads and writes save files and the ranking file.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"hexagon/meta"
)

// ErrIOFailure is returned when a file cannot be read or written.
var ErrIOFailure = errors.New("io failure")

// Store is the persistence the game and the ranking need.
type Store interface {
	SaveGame(name, text string) error
	LoadGame(name string) (string, error)
	LoadRanking() (string, error)
	WriteRanking(text string) error
}

// FileStore keeps saves as <Dir>/<name>.save and the ranking as <Dir>/ranking.txt.
type FileStore struct {
	Dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		dir = "."
	}
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create directory: %w", ErrIOFailure, err)
	}
	return &FileStore{Dir: dir}, nil
}

// SaveGame overwrites the save file called name.
func (s *FileStore) SaveGame(name, text string) error {
	path, err := s.savePath(name)
	if err != nil {
		return err
	}
	return s.overwrite(path, text)
}

// LoadGame returns the contents of the save file called name.
func (s *FileStore) LoadGame(name string) (string, error) {
	path, err := s.savePath(name)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read save file: %w", ErrIOFailure, err)
	}
	return string(data), nil
}

// LoadRanking returns the ranking text. A missing file is an empty ranking.
func (s *FileStore) LoadRanking() (string, error) {
	data, err := os.ReadFile(s.rankingPath())
	if errors.Is(err, fs.ErrNotExist) {
		log.Debug().Msgf("No ranking file in %s, starting a new one", s.Dir)
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("%w: failed to read ranking file: %w", ErrIOFailure, err)
	}
	return string(data), nil
}

// WriteRanking overwrites the ranking file.
func (s *FileStore) WriteRanking(text string) error {
	return s.overwrite(s.rankingPath(), text)
}

func (s *FileStore) savePath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: invalid save name %q", ErrIOFailure, name)
	}
	return filepath.Join(s.Dir, name+meta.SAVE_FILE_EXTENSION), nil
}

func (s *FileStore) rankingPath() string {
	return filepath.Join(s.Dir, meta.RANKING_FILE_NAME)
}

func (s *FileStore) overwrite(path, text string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: failed to create %s: %w", ErrIOFailure, filepath.Base(path), err)
	}
	defer f.Close()

	_, err = f.WriteString(text)
	if err != nil {
		return fmt.Errorf("%w: failed to write %s: %w", ErrIOFailure, filepath.Base(path), err)
	}
	return nil
}
