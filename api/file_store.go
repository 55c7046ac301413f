package api

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

const boardFileMode fs.FileMode = 0o644

// FileStore keeps each board in its own text file; the key is
// the file path.
type FileStore struct {
	side  int
	mu    sync.Mutex
	locks map[string]*pathLock
}

// A pathLock is dropped from the map once its last holder or
// waiter releases it.
type pathLock struct {
	mu   sync.Mutex
	refs int
}

var _ BoardStore = (*FileStore)(nil)

func NewFileStore(side int) *FileStore {
	return &FileStore{
		side:  side,
		locks: make(map[string]*pathLock),
	}
}

func (fst *FileStore) CreateBoard(_ context.Context, path string, board mb.Board) error {
	unlock := fst.lock(path)
	defer unlock()

	return writeFileAtomic(path, []byte(mb.Encode(board)))
}

func (fst *FileStore) LoadBoard(_ context.Context, path string) (mb.Board, error) {
	unlock := fst.lock(path)
	defer unlock()

	return fst.read(path)
}

func (fst *FileStore) UpdateBoard(_ context.Context, path string, update func(mb.Board) (mb.Board, error)) (mb.Board, error) {
	unlock := fst.lock(path)
	defer unlock()

	board, err := fst.read(path)
	if err != nil {
		return mb.Board{}, err
	}

	updated, err := update(board)
	if err != nil {
		return board, err
	}

	if err := writeFileAtomic(path, []byte(mb.Encode(updated))); err != nil {
		return board, err
	}
	return updated, nil
}

func (fst *FileStore) read(path string) (mb.Board, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return mb.Board{}, cerr.ErrBoardNotFound(path)
		}
		return mb.Board{}, fmt.Errorf("could not read %s: %w", path, err)
	}
	return mb.Decode(fst.side, string(content))
}

// lock blocks until the caller holds path and returns the
// func that releases it. Locks only serialize callers inside
// this process.
func (fst *FileStore) lock(path string) func() {
	key := filepath.Clean(path)

	fst.mu.Lock()
	pl, prs := fst.locks[key]
	if !prs {
		pl = &pathLock{}
		fst.locks[key] = pl
	}
	pl.refs++
	fst.mu.Unlock()

	pl.mu.Lock()
	return func() {
		pl.mu.Unlock()

		fst.mu.Lock()
		pl.refs--
		if pl.refs == 0 {
			delete(fst.locks, key)
		}
		fst.mu.Unlock()
	}
}

// The board is written to a temporary file next to path and
// renamed over it, so readers see either the old or the new
// board and never a partial one.
func writeFileAtomic(path string, content []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	tmpName := tmp.Name()

	cleanup := func(err error) error {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if _, err := tmp.Write(content); err != nil {
		return cleanup(err)
	}
	if err := tmp.Sync(); err != nil {
		return cleanup(err)
	}
	if err := tmp.Chmod(boardFileMode); err != nil {
		return cleanup(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not write %s: %w", path, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	return nil
}
