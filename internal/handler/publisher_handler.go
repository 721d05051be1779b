package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gameborrow/internal/models"
)

// Publisher member lists are never serialized; see models.Publisher.

func (h *Handlers) GetPublishers(w http.ResponseWriter, r *http.Request) {
	publishers, err := h.PublisherService.GetAll(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if publishers == nil {
		publishers = []models.Publisher{}
	}

	WriteResponse(w, http.StatusOK, "Data was fetched", publishers)
}

func (h *Handlers) GetPublisher(w http.ResponseWriter, r *http.Request) {
	publisher, err := h.PublisherService.GetByID(r.Context(), mux.Vars(r)["publisherId"])
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteResponse(w, http.StatusNoContent, "Publisher is not found", nil)
			return
		}
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusOK, "Data was fetched", publisher)
}

func (h *Handlers) CreatePublisher(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req models.CreatePublisherRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	publisher, err := h.PublisherService.Create(r.Context(), userID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusCreated, "Publisher was added", CreatedResponse{ID: publisher.ID})
}

func (h *Handlers) PatchPublisher(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var upd models.PublisherUpdate
	if err := h.decode(r, &upd); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.PublisherService.Update(r.Context(), userID, mux.Vars(r)["publisherId"], upd); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, "Publisher was updated", nil)
}

func (h *Handlers) AddPublisherUser(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req models.AddPublisherUserRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.PublisherService.AddUser(r.Context(), userID, mux.Vars(r)["publisherId"], req.Email); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, "User was added to the publisher", nil)
}
