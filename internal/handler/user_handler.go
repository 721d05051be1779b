package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"gameborrow/internal/models"
)

type SignUpResponse struct {
	User CreatedResponse `json:"user"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

func (h *Handlers) SignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	user, err := h.UserService.SignUp(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusCreated, "New user was added to the database", SignUpResponse{
		User: CreatedResponse{ID: user.ID},
	})
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	token, err := h.UserService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusOK, "User was verified", LoginResponse{Token: token})
}

func (h *Handlers) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	if err := h.UserService.VerifyEmail(r.Context(), mux.Vars(r)["token"]); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, "User was verified", nil)
}

func (h *Handlers) RequestPasswordToken(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordTokenRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.UserService.RequestPasswordReset(r.Context(), req.Email); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, "New password verification token was set", nil)
}

func (h *Handlers) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordResetRequest
	if err := h.decode(r, &req); err != nil {
		h.fail(w, r, err)
		return
	}

	if err := h.UserService.ResetPassword(r.Context(), mux.Vars(r)["token"], req.Password); err != nil {
		h.fail(w, r, err)
		return
	}

	WriteResponse(w, http.StatusNoContent, "Password was updated", nil)
}
