package sqlc

import (
	"database/sql"
	"time"
)

const (
	QuerierCtxTimeout = time.Second * 10
)

type DbManager struct {
	Analytics *AnalyticsManager
	Boards    *BoardStore
}

func NewDbManager(db *sql.DB, side int) DbManager {
	queries := New(db)
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
		Boards:    NewBoardStore(db, queries, side),
	}
}
