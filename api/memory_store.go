package api

import (
	"context"

	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// MemoryStore keeps boards in process. Boards are lost when the
// process exits.
type MemoryStore struct {
	manager mb.BoardManager
}

var _ BoardStore = (*MemoryStore)(nil)

func NewMemoryStore(manager mb.BoardManager) *MemoryStore {
	return &MemoryStore{manager: manager}
}

func (ms *MemoryStore) CreateBoard(_ context.Context, key string, board mb.Board) error {
	ms.manager.PutBoard(key, board)
	return nil
}

func (ms *MemoryStore) LoadBoard(_ context.Context, key string) (mb.Board, error) {
	return ms.manager.GetBoard(key)
}

func (ms *MemoryStore) UpdateBoard(_ context.Context, key string, update func(mb.Board) (mb.Board, error)) (mb.Board, error) {
	return ms.manager.UpdateBoard(key, update)
}
