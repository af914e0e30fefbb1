package http

import (
	"errors"
	"net/http"

	"github.com/tidylist/tidylist/internal/todo/service"
	"github.com/tidylist/tidylist/pkg/httpx"
	"github.com/tidylist/tidylist/pkg/slogx"
	"github.com/tidylist/tidylist/pkg/todosdk"
)

// RegisterHandler creates a new account. The response body is an empty
// object; the client logs in afterwards to obtain a token.
type RegisterHandler struct {
	AuthService *service.AuthService
}

func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.CredentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.AuthService.Register(ctx, req.Username, req.Password); err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrUsernameTaken):
			httpx.WriteError(w, http.StatusConflict, "username already taken")
		default:
			log.Error("failed to register user", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to register")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, struct{}{})
}

// LoginHandler verifies credentials and returns an access token.
type LoginHandler struct {
	AuthService *service.AuthService
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req todosdk.CredentialsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			httpx.WriteError(w, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
		default:
			log.Error("failed to log in user", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "failed to log in")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, todosdk.TokenResponse{Token: token})
}
