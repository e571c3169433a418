package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rubytogether/time-card/internal/model"
)

var (
	ErrWorkerNotFound = errors.New("worker not found")
)

type WorkerRepository interface {
	FindOrCreate(userName string) (*model.Worker, error)
	ByID(id int64) (*model.Worker, error)
	Update(id int64, userName string) (*model.Worker, error)
	Workers() ([]*model.Worker, error)
}

type workerRepository struct {
	db *sqlx.DB
}

func NewWorkerRepository(db *sqlx.DB) WorkerRepository {
	return &workerRepository{db: db}
}

// FindOrCreate resolves a worker by name, creating it on first mention.
// The insert ignores the unique-constraint conflict and the row is re-read
// afterwards, so two concurrent first mentions both resolve to the same
// worker instead of one of them failing.
func (r *workerRepository) FindOrCreate(userName string) (*model.Worker, error) {
	worker := &model.Worker{}
	query := `SELECT * FROM workers WHERE user_name = $1`

	err := r.db.Get(worker, query, userName)
	if err == nil {
		return worker, nil
	}
	if err != sql.ErrNoRows {
		return nil, fmt.Errorf("find worker %q: %w", userName, err)
	}

	_, err = r.db.Exec(`INSERT INTO workers (user_name) VALUES ($1) ON CONFLICT (user_name) DO NOTHING`, userName)
	if err != nil {
		return nil, fmt.Errorf("create worker %q: %w", userName, err)
	}

	err = r.db.Get(worker, query, userName)
	if err != nil {
		return nil, fmt.Errorf("reload worker %q: %w", userName, err)
	}

	return worker, nil
}

func (r *workerRepository) ByID(id int64) (*model.Worker, error) {
	worker := &model.Worker{}
	query := `SELECT * FROM workers WHERE id = $1`

	err := r.db.Get(worker, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrWorkerNotFound
	}
	if err != nil {
		return nil, err
	}

	return worker, nil
}

func (r *workerRepository) Update(id int64, userName string) (*model.Worker, error) {
	query := `UPDATE workers SET user_name = $1 WHERE id = $2`

	result, err := r.db.Exec(query, userName, id)
	if err != nil {
		return nil, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrWorkerNotFound
	}

	return &model.Worker{ID: id, UserName: userName}, nil
}

func (r *workerRepository) Workers() ([]*model.Worker, error) {
	var workers []*model.Worker
	query := `SELECT * FROM workers ORDER BY id ASC`

	err := r.db.Select(&workers, query)
	if err != nil {
		return nil, err
	}

	return workers, nil
}
