package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/rubytogether/time-card/internal/model"
	"github.com/rubytogether/time-card/internal/notify"
	"github.com/rubytogether/time-card/internal/repository"
	"github.com/rubytogether/time-card/internal/validation"
)

// CreateEntryInput is the submission shape for a new entry. Minutes and
// Date are pointers so a missing field is distinguishable from a zero one.
type CreateEntryInput struct {
	Worker  string     `json:"worker"`
	Minutes *int       `json:"minutes"`
	Message string     `json:"message"`
	Date    *time.Time `json:"date"`
}

type EntryService struct {
	entries  repository.EntryRepository
	workers  repository.WorkerRepository
	notifier notify.Notifier
	now      func() time.Time
}

// NewEntryService wires the entry workflow. notifier may be nil when no
// webhook is configured.
func NewEntryService(entries repository.EntryRepository, workers repository.WorkerRepository, notifier notify.Notifier) *EntryService {
	return &EntryService{
		entries:  entries,
		workers:  workers,
		notifier: notifier,
		now:      time.Now,
	}
}

// Create validates the submission, resolves (or creates) the worker by
// name, persists the entry, and fires the notification. A failed
// notification is logged and swallowed; the entry is already saved.
func (s *EntryService) Create(input CreateEntryInput) (*model.Entry, error) {
	err := validation.ValidateNewEntry(input.Worker, input.Minutes, input.Message)
	if err != nil {
		return nil, err
	}

	worker, err := s.workers.FindOrCreate(input.Worker)
	if err != nil {
		return nil, err
	}

	date := s.now()
	if input.Date != nil {
		date = *input.Date
	}

	entry := &model.Entry{
		WorkerID: worker.ID,
		Minutes:  *input.Minutes,
		Message:  input.Message,
		Date:     date,
	}
	err = s.entries.Create(entry)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		err = s.notifier.EntryCreated(context.Background(), worker, entry)
		if err != nil {
			slog.Warn("entry notification failed", "error", err, "entry_id", entry.ID)
		}
	}

	return entry, nil
}

func (s *EntryService) ByID(id int64) (*model.Entry, *model.Worker, error) {
	entry, err := s.entries.ByID(id)
	if err != nil {
		return nil, nil, err
	}

	worker, err := s.workers.ByID(entry.WorkerID)
	if err != nil {
		return nil, nil, err
	}

	return entry, worker, nil
}

func (s *EntryService) Update(id int64, patch model.EntryPatch) (*model.Entry, error) {
	err := validation.ValidateEntryPatch(patch.Minutes, patch.Message)
	if err != nil {
		return nil, err
	}

	return s.entries.Update(id, patch)
}

func (s *EntryService) Delete(id int64) error {
	return s.entries.Delete(id)
}

func (s *EntryService) Entries() ([]*model.Entry, error) {
	return s.entries.Entries()
}
