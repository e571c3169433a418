package report

import (
	"github.com/rubytogether/time-card/internal/model"
)

// RatePerMinute is the fixed billing rate in dollars per logged minute.
const RatePerMinute = 2.5

// Group is one worker's slice of a report: their entries in the window,
// in date order, plus the minute total.
type Group struct {
	Worker  *model.Worker  `json:"worker"`
	Entries []*model.Entry `json:"entries"`
	Minutes int            `json:"minutes"`
}

// Report is the ephemeral aggregate built for a single request: a window
// plus one group per worker with at least one entry in it.
type Report struct {
	Window Window
	Groups []Group
}

// WorkerResolver maps a worker id to its Worker record.
type WorkerResolver func(id int64) (*model.Worker, error)

// Build groups entries by worker and sums their minutes. Entries must
// already be sorted by worker_id then date (the repository's query order);
// grouping runs of equal worker_id on sorted input preserves that order
// without re-sorting. Workers with no entries in the window do not appear.
func Build(win Window, entries []*model.Entry, resolve WorkerResolver) (*Report, error) {
	r := &Report{Window: win}
	for i := 0; i < len(entries); {
		j := i
		for j < len(entries) && entries[j].WorkerID == entries[i].WorkerID {
			j++
		}
		worker, err := resolve(entries[i].WorkerID)
		if err != nil {
			return nil, err
		}
		group := Group{Worker: worker, Entries: entries[i:j]}
		for _, e := range group.Entries {
			group.Minutes += e.Minutes
		}
		r.Groups = append(r.Groups, group)
		i = j
	}
	return r, nil
}
