package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AsanTolepov/softwash/internal/apierror"
	"github.com/AsanTolepov/softwash/internal/auth"
	"github.com/AsanTolepov/softwash/internal/dto"
	"github.com/AsanTolepov/softwash/internal/middleware"
)

type AuthHandler struct {
	resolver *auth.Resolver
	secret   string
	ttl      time.Duration
}

func NewAuthHandler(resolver *auth.Resolver, secret string, ttl time.Duration) *AuthHandler {
	return &AuthHandler{resolver: resolver, secret: secret, ttl: ttl}
}

// Login resolves the credential pair across all three tiers and, on
// success, returns a bearer token wrapping the resolved session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	if !h.resolver.Login(req.Username, req.Password) {
		c.JSON(http.StatusUnauthorized, apierror.New("invalid credentials"))
		return
	}

	session := h.resolver.Current()
	token, err := middleware.IssueToken(session, h.secret, h.ttl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, apierror.New("internal server error"))
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(h.ttl.Seconds()),
		Session:   dto.NewSessionResponse(session),
	})
}

// Logout clears the persisted session. The bearer token itself stays
// valid until expiry; the client discards it.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.resolver.Logout()
	c.Status(http.StatusNoContent)
}

// Me echoes the session carried by the bearer token.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewSessionResponse(middleware.GetSession(c)))
}
