package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rubytogether/time-card/internal/model"
	"github.com/rubytogether/time-card/internal/repository"
	"github.com/rubytogether/time-card/internal/service"
)

type WorkerHandler struct {
	workerService *service.WorkerService
}

func NewWorkerHandler(workerService *service.WorkerService) *WorkerHandler {
	return &WorkerHandler{
		workerService: workerService,
	}
}

// workerWithEntries is the show-route shape: the worker's fields with
// their entries embedded.
type workerWithEntries struct {
	*model.Worker
	Entries []*model.Entry `json:"entries"`
}

func (h *WorkerHandler) List(w http.ResponseWriter, r *http.Request) {
	workers, err := h.workerService.Workers()
	if err != nil {
		respondError(w, err)
		return
	}
	if workers == nil {
		workers = []*model.Worker{}
	}
	respondJSON(w, http.StatusOK, workers)
}

func (h *WorkerHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, repository.ErrWorkerNotFound)
		return
	}

	worker, entries, err := h.workerService.ByID(id)
	if err != nil {
		respondError(w, err)
		return
	}
	if entries == nil {
		entries = []*model.Entry{}
	}

	respondJSON(w, http.StatusOK, workerWithEntries{Worker: worker, Entries: entries})
}

func (h *WorkerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, repository.ErrWorkerNotFound)
		return
	}

	var body struct {
		UserName string `json:"user_name"`
	}
	err = json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed JSON body"})
		return
	}

	worker, err := h.workerService.Rename(id, body.UserName)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, worker)
}
