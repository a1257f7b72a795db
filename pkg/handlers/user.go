package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"pennyledger/pkg/user"
)

type SignUpForm struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RepeatPassword string `json:"repeatPassword"`
}

type SignInForm struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserHandler struct {
	Service user.ServiceInterface
	Logger  *slog.Logger
}

func NewUserHandler(service user.ServiceInterface, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		Service: service,
		Logger:  logger,
	}
}

func (h *UserHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	if req.Password != req.RepeatPassword {
		writeError(w, http.StatusBadRequest, typeError, "passwords do not match")
		return
	}

	u, err := h.Service.SignUp(req.Name, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			writeError(w, http.StatusBadRequest, typeError, err.Error())
		case errors.Is(err, user.ErrEmailTaken):
			writeError(w, http.StatusConflict, typeError, err.Error())
		default:
			h.Logger.Error("sign-up", "error", err)
			writeError(w, http.StatusInternalServerError, typeError, "internal server error")
		}
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusCreated, u); ok {
		h.Logger.Info("sign-up", "user", u.ID)
	}
}

func (h *UserHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInForm
	if ok := DecodeJSONBody(w, r, &req); !ok {
		return
	}

	u, token, err := h.Service.SignIn(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrValidation):
			writeError(w, http.StatusBadRequest, typeError, err.Error())
		case errors.Is(err, user.ErrNotFound):
			writeError(w, http.StatusNotFound, typeMessage, "user not found")
		case errors.Is(err, user.ErrBadPassword):
			writeError(w, http.StatusUnauthorized, typeMessage, "invalid password")
		default:
			h.Logger.Error("sign-in", "error", err)
			writeError(w, http.StatusInternalServerError, typeError, "internal server error")
		}
		return
	}

	if ok := writeJSON(w, h.Logger, http.StatusOK, map[string]string{
		"name":  u.Name,
		"token": token,
	}); ok {
		h.Logger.Info("sign-in", "user", u.ID)
	}
}

func DecodeJSONBody(w http.ResponseWriter, r *http.Request, req any) bool {
	if r.Header.Get("Content-Type") != "application/json" {
		writeError(w, http.StatusBadRequest, typeError, "invalid Content-Type")
		return false
	}

	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		writeError(w, http.StatusBadRequest, typeError, "bad json")
		return false
	}

	return true
}
