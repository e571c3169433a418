package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/rubytogether/time-card/internal/model"
)

var (
	ErrEntryNotFound = errors.New("entry not found")
)

type EntryRepository interface {
	Create(entry *model.Entry) error
	ByID(id int64) (*model.Entry, error)
	Update(id int64, patch model.EntryPatch) (*model.Entry, error)
	Delete(id int64) error
	Entries() ([]*model.Entry, error)
	ByWorker(workerID int64) ([]*model.Entry, error)
	Between(start, end time.Time) ([]*model.Entry, error)
}

type entryRepository struct {
	db *sqlx.DB
}

func NewEntryRepository(db *sqlx.DB) EntryRepository {
	return &entryRepository{db: db}
}

// Create persists the entry and fills in its store-assigned id.
func (r *entryRepository) Create(entry *model.Entry) error {
	query := `INSERT INTO entries (worker_id, minutes, message, date)
	          VALUES ($1, $2, $3, $4) RETURNING id`

	err := r.db.Get(&entry.ID, query, entry.WorkerID, entry.Minutes, entry.Message, entry.Date)
	if err != nil {
		return fmt.Errorf("create entry: %w", err)
	}

	return nil
}

func (r *entryRepository) ByID(id int64) (*model.Entry, error) {
	entry := &model.Entry{}
	query := `SELECT * FROM entries WHERE id = $1`

	err := r.db.Get(entry, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, err
	}

	return entry, nil
}

// Update applies a partial patch in one statement; nil patch fields keep
// the stored value, so concurrent patches to different fields both land.
func (r *entryRepository) Update(id int64, patch model.EntryPatch) (*model.Entry, error) {
	query := `UPDATE entries SET
	          worker_id = COALESCE($1, worker_id),
	          minutes   = COALESCE($2, minutes),
	          message   = COALESCE($3, message),
	          date      = COALESCE($4, date)
	          WHERE id = $5`

	result, err := r.db.Exec(query, patch.WorkerID, patch.Minutes, patch.Message, patch.Date, id)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrEntryNotFound
	}

	return r.ByID(id)
}

func (r *entryRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *entryRepository) Entries() ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT * FROM entries ORDER BY id ASC`

	err := r.db.Select(&entries, query)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *entryRepository) ByWorker(workerID int64) ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT * FROM entries WHERE worker_id = $1 ORDER BY date ASC`

	err := r.db.Select(&entries, query, workerID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

// Between returns entries with start <= date < end, ordered by worker then
// date. Report grouping depends on this ordering.
func (r *entryRepository) Between(start, end time.Time) ([]*model.Entry, error) {
	var entries []*model.Entry
	query := `SELECT * FROM entries WHERE date >= $1 AND date < $2
	          ORDER BY worker_id ASC, date ASC`

	err := r.db.Select(&entries, query, start, end)
	if err != nil {
		return nil, err
	}

	return entries, nil
}
