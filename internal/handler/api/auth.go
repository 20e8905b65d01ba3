package api

import (
	"net/http"

	"thejulge/internal/domain/account"
	"thejulge/internal/handler/dto/request"
	"thejulge/internal/handler/dto/response"
	"thejulge/internal/handler/httperr"
	"thejulge/internal/handler/middleware"
	"thejulge/internal/infra"
	"thejulge/internal/usecase/commands"
	"thejulge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	auth     commands.AuthCommands
	profiles queries.ProfileQueries
}

func NewAuthHandler(auth commands.AuthCommands, profiles queries.ProfileQueries) *AuthHandler {
	return &AuthHandler{auth: auth, profiles: profiles}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request body", nil)
		return
	}

	profile, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		// the remote reports bad credentials as a rejection; surface its
		// message under 401 rather than the generic conflict mapping
		if infra.IsKind(err, infra.KindRejected) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, infra.RemoteMessage(err), nil)
			return
		}
		abortGatewayError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req request.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request body", nil)
		return
	}

	role, err := account.NewRole(req.Type)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "type must be employee or employer", nil)
		return
	}

	profile, err := h.auth.Signup(c.Request.Context(), req.Email, req.Password, role)
	if err != nil {
		abortGatewayError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, response.FromProfile(profile))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context()); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "failed to clear session", nil)
		return
	}
	c.Status(http.StatusNoContent)
}

// Me returns the signed-in account's profile.
func (h *AuthHandler) Me(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	profile, err := h.profiles.GetProfile(c.Request.Context(), ident.AccountID)
	if err != nil {
		abortGatewayError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}
