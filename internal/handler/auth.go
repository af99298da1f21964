package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/ankitmav/venue-booking/internal/auth"
	"github.com/ankitmav/venue-booking/internal/config"
	"github.com/ankitmav/venue-booking/internal/notify"
	"github.com/ankitmav/venue-booking/internal/repository"
)

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg    config.Config
	Users  UserStore
	Tokens *auth.TokenService
	Mail   notify.Mailer
}

func NewAuthHandler(cfg config.Config, users UserStore, tokens *auth.TokenService, mail notify.Mailer) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: users, Tokens: tokens, Mail: mail}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
type refreshReq struct {
	RefreshToken string `json:"refreshToken"`
}
type forgotReq struct {
	Email string `json:"email"`
}
type resetReq struct {
	Password string `json:"password"`
}

type userPart struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
type authResp struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         userPart `json:"user"`
}

// Register creates a user and returns a token pair immediately.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.Name, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "user already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	access, err := h.Tokens.IssueAccess(uid, "user")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := h.Tokens.IssueRefresh(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}

	return c.JSON(http.StatusCreated, authResp{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		User:         userPart{ID: uid, Name: req.Name, Email: req.Email, Role: "user"},
	})
}

// Login verifies credentials and returns a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email and password are required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !auth.VerifyPassword(u.PasswordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := h.Tokens.IssueAccess(u.ID, u.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	refresh, err := h.Tokens.IssueRefresh(u.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue refresh failed"})
	}

	return c.JSON(http.StatusOK, authResp{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		User:         userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role},
	})
}

// Refresh validates a refresh token and mints a new access token. The
// refresh token itself is not rotated and there is no server-side blacklist;
// it stays valid until its own expiry.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "refresh token is required"})
	}

	uid, err := h.Tokens.VerifyRefresh(strings.TrimSpace(req.RefreshToken))
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	// The embedded role may be stale, so the current one is read back before
	// minting a new access token.
	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid refresh token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	access, err := h.Tokens.IssueAccess(u.ID, u.Role)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"accessToken": access.Token})
}

// ForgotPassword mints a one-time reset token, stores its hash on the user
// and mails the reset link. The mail send is best-effort: a dead relay is
// logged but the caller still gets a success response, and the token stays
// valid so a retry can pick it up.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	tok, err := auth.NewResetToken(h.Cfg.ResetTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue reset token failed"})
	}
	if err := h.Users.SetResetToken(ctx, u.ID, auth.HashResetRaw(tok.Raw), tok.Exp); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save reset token failed"})
	}

	resetURL := h.Cfg.FrontendURL + "/reset-password/" + tok.Raw
	if err := h.Mail.SendPasswordReset(ctx, u.Email, resetURL); err != nil {
		log.Printf("mailer: password reset to %s failed: %v", u.Email, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "password reset email sent"})
}

// ResetPassword consumes the reset token from the URL and replaces the
// password. An unknown, expired or already-used token leaves the password
// untouched.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	token := c.Param("token")
	var req resetReq
	if err := c.Bind(&req); err != nil || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	err := h.Users.ResetPassword(ctx, auth.HashResetRaw(token), req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenInvalid) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid or expired reset token"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reset password failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "password reset successful"})
}

// Me returns the authenticated user's public profile.
func (h *AuthHandler) Me(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), dbTimeout)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}
	return c.JSON(http.StatusOK, userPart{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role})
}
