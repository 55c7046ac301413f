package battleship

import (
	"sync"

	cerr "github.com/saeidalz13/battleship-board/internal/error"
)

type BoardManager interface {
	GetBoard(boardId string) (Board, error)
	PutBoard(boardId string, board Board)
	UpdateBoard(boardId string, update func(Board) (Board, error)) (Board, error)
}

// UpdateBoard holds the board's own lock for the whole
// read-modify-write so two placements on one board never
// interleave.
type managedBoard struct {
	mu    sync.Mutex
	board Board
}

type BattleshipBoardManager struct {
	boards map[string]*managedBoard
	mu     sync.RWMutex
}

var _ BoardManager = (*BattleshipBoardManager)(nil)

func NewBattleshipBoardManager() *BattleshipBoardManager {
	return &BattleshipBoardManager{
		boards: make(map[string]*managedBoard, 10),
	}
}

func (bbm *BattleshipBoardManager) GetBoard(boardId string) (Board, error) {
	mb, err := bbm.find(boardId)
	if err != nil {
		return Board{}, err
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()
	return mb.board, nil
}

// PutBoard stores board under boardId, replacing whatever
// was there.
func (bbm *BattleshipBoardManager) PutBoard(boardId string, board Board) {
	bbm.mu.Lock()
	mb, prs := bbm.boards[boardId]
	if !prs {
		bbm.boards[boardId] = &managedBoard{board: board}
		bbm.mu.Unlock()
		return
	}
	bbm.mu.Unlock()

	mb.mu.Lock()
	mb.board = board
	mb.mu.Unlock()
}

// UpdateBoard replaces the board with the result of update.
// If update fails the stored board is kept and returned.
func (bbm *BattleshipBoardManager) UpdateBoard(boardId string, update func(Board) (Board, error)) (Board, error) {
	mb, err := bbm.find(boardId)
	if err != nil {
		return Board{}, err
	}

	mb.mu.Lock()
	defer mb.mu.Unlock()

	updated, err := update(mb.board)
	if err != nil {
		return mb.board, err
	}
	mb.board = updated
	return updated, nil
}

func (bbm *BattleshipBoardManager) find(boardId string) (*managedBoard, error) {
	bbm.mu.RLock()
	mb, prs := bbm.boards[boardId]
	bbm.mu.RUnlock()
	if !prs {
		return nil, cerr.ErrBoardNotFound(boardId)
	}
	return mb, nil
}
