package sqlc

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
	mb "github.com/saeidalz13/battleship-board/models/battleship"
)

// BoardStore keeps boards in Postgres in their text format,
// keyed by board id.
type BoardStore struct {
	db      *sql.DB
	queries *Queries
	side    int
}

func NewBoardStore(db *sql.DB, queries *Queries, side int) *BoardStore {
	return &BoardStore{db: db, queries: queries, side: side}
}

func (bs *BoardStore) CreateBoard(ctx context.Context, boardId string, board mb.Board) error {
	err := bs.queries.UpsertBoard(ctx, UpsertBoardParams{
		ID:         boardId,
		SideLength: int32(board.Side()),
		Content:    mb.Encode(board),
	})
	if err != nil {
		return fmt.Errorf("failed to save board %s: %w", boardId, err)
	}
	return nil
}

func (bs *BoardStore) LoadBoard(ctx context.Context, boardId string) (mb.Board, error) {
	row, err := bs.queries.GetBoard(ctx, boardId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Board{}, cerr.ErrBoardNotFound(boardId)
		}
		return mb.Board{}, fmt.Errorf("failed to load board %s: %w", boardId, err)
	}
	return mb.Decode(bs.side, row.Content)
}

// UpdateBoard locks the row for the length of the transaction
// so concurrent placements on the same board queue up behind
// each other. Nothing is written when update fails.
func (bs *BoardStore) UpdateBoard(ctx context.Context, boardId string, update func(mb.Board) (mb.Board, error)) (mb.Board, error) {
	tx, err := bs.db.BeginTx(ctx, nil)
	if err != nil {
		return mb.Board{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := bs.queries.WithTx(tx)
	row, err := q.GetBoardForUpdate(ctx, boardId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mb.Board{}, cerr.ErrBoardNotFound(boardId)
		}
		return mb.Board{}, fmt.Errorf("failed to load board %s: %w", boardId, err)
	}

	board, err := mb.Decode(bs.side, row.Content)
	if err != nil {
		return mb.Board{}, err
	}

	updated, err := update(board)
	if err != nil {
		return board, err
	}

	n, err := q.UpdateBoardContent(ctx, UpdateBoardContentParams{
		ID:      boardId,
		Content: mb.Encode(updated),
	})
	if err != nil {
		return board, fmt.Errorf("failed to save board %s: %w", boardId, err)
	}
	if n != 1 {
		return board, cerr.ErrBoardNotFound(boardId)
	}

	if err := tx.Commit(); err != nil {
		return board, fmt.Errorf("failed to commit board %s: %w", boardId, err)
	}
	return updated, nil
}
