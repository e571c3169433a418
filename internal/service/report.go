package service

import (
	"github.com/rubytogether/time-card/internal/report"
	"github.com/rubytogether/time-card/internal/repository"
)

type ReportService struct {
	entries repository.EntryRepository
	workers repository.WorkerRepository
}

func NewReportService(entries repository.EntryRepository, workers repository.WorkerRepository) *ReportService {
	return &ReportService{
		entries: entries,
		workers: workers,
	}
}

// Monthly builds the report for a calendar month.
func (s *ReportService) Monthly(year, month int) (*report.Report, error) {
	win, err := report.Monthly(year, month)
	if err != nil {
		return nil, err
	}
	return s.build(win)
}

// Biweekly builds the report for the anchored 14-day period containing the
// reference date.
func (s *ReportService) Biweekly(year, month, day int) (*report.Report, error) {
	win, err := report.Biweekly(year, month, day)
	if err != nil {
		return nil, err
	}
	return s.build(win)
}

func (s *ReportService) build(win report.Window) (*report.Report, error) {
	entries, err := s.entries.Between(win.Start, win.End)
	if err != nil {
		return nil, err
	}
	return report.Build(win, entries, s.workers.ByID)
}
