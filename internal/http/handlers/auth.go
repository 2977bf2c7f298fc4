package handlers

import (
	"net/http"
	"time"

	"github.com/Vipul160305/placetrack/internal/app"
	"github.com/Vipul160305/placetrack/internal/common"
	"github.com/Vipul160305/placetrack/internal/domain/account"
	"github.com/Vipul160305/placetrack/internal/http/middleware"
	"github.com/Vipul160305/placetrack/internal/http/response"
)

const (
	authRateLimit  = 20
	authRateWindow = 15 * time.Minute
)

type AuthHandler struct {
	auth    *app.AuthService
	limiter middleware.Limiter
}

func NewAuthHandler(auth *app.AuthService, limiter middleware.Limiter) *AuthHandler {
	return &AuthHandler{auth: auth, limiter: limiter}
}

type registerRequest struct {
	Name     string   `json:"name"`
	Email    string   `json:"email"`
	Password string   `json:"password"`
	Branch   string   `json:"branch,omitempty"`
	CGPA     float64  `json:"cgpa,omitempty"`
	Skills   []string `json:"skills,omitempty"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Account   *account.Account `json:"account"`
	Token     string           `json:"token"`
	ExpiresAt time.Time        `json:"expires_at"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if !h.allow(r) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many auth attempts", nil))
		return
	}
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	session, err := h.auth.Register(r.Context(), app.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Branch:   req.Branch,
		CGPA:     req.CGPA,
		Skills:   req.Skills,
	})
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, sessionResponse{Account: session.Account, Token: session.Token, ExpiresAt: session.ExpiresAt})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if !h.allow(r) {
		response.Error(w, common.NewError(common.CodeRateLimited, "too many auth attempts", nil))
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	session, err := h.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, sessionResponse{Account: session.Account, Token: session.Token, ExpiresAt: session.ExpiresAt})
}

func (h *AuthHandler) allow(r *http.Request) bool {
	if h.limiter == nil {
		return true
	}
	return h.limiter.Allow("auth:"+middleware.ClientIP(r), authRateLimit, authRateWindow)
}
