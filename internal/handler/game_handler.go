package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"gameborrow/internal/models"
)

type CreatedResponse struct {
	ID string `json:"_id"`
}

type ImageResponse struct {
	ImageURI string `json:"imageURI"`
}

func (h *Handlers) GetGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.GameService.GetAll(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if games == nil {
		games = []models.Game{}
	}

	WriteResponse(w, http.StatusOK, "Data was fetched", games)
}

func (h *Handlers) GetGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.GameService.GetByID(r.Context(), mux.Vars(r)["gameId"])
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			WriteResponse(w, http.StatusNoContent, "Game is not found", nil)
			return
		}
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusOK, "Data was fetched", game)
}

func (h *Handlers) CreateGame(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req models.CreateGameRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	game, err := h.GameService.Create(r.Context(), userID, req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusCreated, "Game was added", CreatedResponse{ID: game.ID})
}

func (h *Handlers) PatchGame(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var upd models.GameUpdate
	if err := h.decode(r, &upd); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.GameService.Update(r.Context(), userID, mux.Vars(r)["gameId"], upd); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, "Game was updated", nil)
}

func (h *Handlers) DeleteGame(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.GameService.Delete(r.Context(), userID, mux.Vars(r)["gameId"]); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, "Deleted", nil)
}

// UploadGameImage accepts a multipart form with the file in the "image" field.
func (h *Handlers) UploadGameImage(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		h.fail(w, r, fmt.Errorf("file is too large or the form is malformed: %w", models.ErrValidation))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.fail(w, r, fmt.Errorf("image file is required: %w", models.ErrValidation))
		return
	}
	defer file.Close()

	if contentType := header.Header.Get("Content-Type"); !strings.HasPrefix(contentType, "image/") {
		h.fail(w, r, fmt.Errorf("unsupported content type %q: %w", contentType, models.ErrValidation))
		return
	}

	uri, err := h.GameService.AddImage(r.Context(), userID, mux.Vars(r)["gameId"], header.Filename, file, header.Size)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusCreated, "Image was added", ImageResponse{ImageURI: uri})
}
