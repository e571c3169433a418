package service

import (
	"github.com/rubytogether/time-card/internal/model"
	"github.com/rubytogether/time-card/internal/repository"
	"github.com/rubytogether/time-card/internal/validation"
)

type WorkerService struct {
	workers repository.WorkerRepository
	entries repository.EntryRepository
}

func NewWorkerService(workers repository.WorkerRepository, entries repository.EntryRepository) *WorkerService {
	return &WorkerService{
		workers: workers,
		entries: entries,
	}
}

func (s *WorkerService) Workers() ([]*model.Worker, error) {
	return s.workers.Workers()
}

func (s *WorkerService) ByID(id int64) (*model.Worker, []*model.Entry, error) {
	worker, err := s.workers.ByID(id)
	if err != nil {
		return nil, nil, err
	}

	entries, err := s.entries.ByWorker(id)
	if err != nil {
		return nil, nil, err
	}

	return worker, entries, nil
}

func (s *WorkerService) Rename(id int64, userName string) (*model.Worker, error) {
	err := validation.ValidateWorkerName(userName)
	if err != nil {
		return nil, err
	}

	return s.workers.Update(id, userName)
}
