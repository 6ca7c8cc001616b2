package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"docledger/internal/application/command"
	"docledger/internal/application/services"
)

type AuthHandler struct {
	auth *services.AuthService
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup registers a user --> POST /signup
func (h *AuthHandler) Signup(c echo.Context) error {
	cmd := new(command.SignupCommand)
	if err := c.Bind(cmd); err != nil {
		return badRequest(c, "invalid request payload")
	}

	user, token, err := h.auth.Signup(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	setSessionCookie(c, token, h.auth.SessionTTL())
	return c.JSON(http.StatusCreated, user)
}

// Login opens a session --> POST /login
func (h *AuthHandler) Login(c echo.Context) error {
	cmd := new(command.LoginCommand)
	if err := c.Bind(cmd); err != nil {
		return badRequest(c, "invalid request payload")
	}

	user, token, err := h.auth.Login(c.Request().Context(), cmd)
	if err != nil {
		return writeError(c, err)
	}

	setSessionCookie(c, token, h.auth.SessionTTL())
	return c.JSON(http.StatusOK, user)
}

// Logout drops the session --> DELETE /logout
func (h *AuthHandler) Logout(c echo.Context) error {
	if token := sessionToken(c); token != "" {
		if err := h.auth.Logout(c.Request().Context(), token); err != nil {
			return writeError(c, err)
		}
	}
	clearSessionCookie(c)
	return c.NoContent(http.StatusNoContent)
}

// Check reports the logged-in identity --> GET /check
func (h *AuthHandler) Check(c echo.Context) error {
	token := sessionToken(c)
	if token == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not authenticated"})
	}

	user, err := h.auth.Check(c.Request().Context(), token)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, user)
}
