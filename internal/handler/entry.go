package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/rubytogether/time-card/internal/model"
	"github.com/rubytogether/time-card/internal/repository"
	"github.com/rubytogether/time-card/internal/service"
)

type EntryHandler struct {
	entryService *service.EntryService
}

func NewEntryHandler(entryService *service.EntryService) *EntryHandler {
	return &EntryHandler{
		entryService: entryService,
	}
}

// entryWithWorker is the show-route shape: the entry's fields with the
// owning worker embedded.
type entryWithWorker struct {
	*model.Entry
	Worker *model.Worker `json:"worker"`
}

// List serves the index route: every entry as JSON.
func (h *EntryHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.entryService.Entries()
	if err != nil {
		respondError(w, err)
		return
	}
	if entries == nil {
		entries = []*model.Entry{}
	}
	respondJSON(w, http.StatusOK, entries)
}

// Create logs a new entry and redirects to its resource.
func (h *EntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateEntryInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed JSON body"})
		return
	}

	entry, err := h.entryService.Create(input)
	if err != nil {
		respondError(w, err)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/entries/%d", entry.ID), http.StatusSeeOther)
}

func (h *EntryHandler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, repository.ErrEntryNotFound)
		return
	}

	entry, worker, err := h.entryService.ByID(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entryWithWorker{Entry: entry, Worker: worker})
}

func (h *EntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, repository.ErrEntryNotFound)
		return
	}

	var patch model.EntryPatch
	err = json.NewDecoder(r.Body).Decode(&patch)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, map[string]string{"error": "malformed JSON body"})
		return
	}

	entry, err := h.entryService.Update(id, patch)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (h *EntryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondError(w, repository.ErrEntryNotFound)
		return
	}

	err = h.entryService.Delete(id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
