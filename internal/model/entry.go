package model

import (
	"time"
)

type Entry struct {
	ID       int64     `db:"id" json:"id"`
	WorkerID int64     `db:"worker_id" json:"worker_id"`
	Minutes  int       `db:"minutes" json:"minutes"`
	Message  string    `db:"message" json:"message"`
	Date     time.Time `db:"date" json:"date"`
}

// EntryPatch holds the fields of a partial entry update. Nil means
// "leave unchanged".
type EntryPatch struct {
	WorkerID *int64     `json:"worker_id"`
	Minutes  *int       `json:"minutes"`
	Message  *string    `json:"message"`
	Date     *time.Time `json:"date"`
}
