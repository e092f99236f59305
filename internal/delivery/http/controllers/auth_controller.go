package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"symposiumadmin/internal/delivery/http/helpers"
	"symposiumadmin/internal/delivery/http/middleware"
	"symposiumadmin/internal/domain"
)

type AuthController struct {
	Logger       *slog.Logger
	Service      domain.AuthService
	CookieTTL    time.Duration
	SecureCookie bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, cookieTTL time.Duration, secureCookie bool) *AuthController {
	return &AuthController{
		Logger:       logger,
		Service:      svc,
		CookieTTL:    cookieTTL,
		SecureCookie: secureCookie,
	}
}

// LoginRequest is the request body for POST /api/admin/login.
type LoginRequest struct {
	Passkey string `json:"passkey"`
}

// Validate implements helpers.Validator.
func (r *LoginRequest) Validate() []string {
	if r.Passkey == "" {
		return []string{"passkey is required"}
	}
	return nil
}

// LoginResponse is the success response for POST /api/admin/login.
type LoginResponse struct {
	Success bool `json:"success"`
}

// Login godoc
// @Summary Admin login
// @Description Verifies the shared admin passkey and sets the http-only admin_token session cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body controllers.LoginRequest true "Admin passkey"
// @Success 200 {object} controllers.LoginResponse
// @Failure 400 {object} helpers.ErrorResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /api/admin/login [post]
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	credential, err := c.Service.Login(r.Context(), req.Passkey)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			helpers.WriteError(w, http.StatusUnauthorized, "invalid passkey")
			return
		}
		writeServiceError(w, r, c.Logger, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    credential,
		Path:     "/",
		MaxAge:   int(c.CookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Success: true})
}

// Logout godoc
// @Summary Admin logout
// @Description Expires the admin_token session cookie.
// @Tags auth
// @Produce json
// @Success 200 {object} controllers.LoginResponse
// @Router /api/admin/logout [post]
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.SecureCookie,
		SameSite: http.SameSiteStrictMode,
	})
	helpers.WriteJSON(w, http.StatusOK, LoginResponse{Success: true})
}

// MeResponse is the success response for GET /api/admin/me.
type MeResponse struct {
	Authenticated bool `json:"authenticated"`
}

// Me godoc
// @Summary Admin session check
// @Description Reports whether the current session cookie is a valid admin credential.
// @Tags auth
// @Produce json
// @Success 200 {object} controllers.MeResponse
// @Failure 401 {object} helpers.ErrorResponse
// @Router /api/admin/me [get]
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	// The auth gate has already verified the credential.
	helpers.WriteJSON(w, http.StatusOK, MeResponse{Authenticated: true})
}
