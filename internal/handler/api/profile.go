package api

import (
	"net/http"

	"thejulge/internal/handler/dto/request"
	"thejulge/internal/handler/dto/response"
	"thejulge/internal/handler/httperr"
	"thejulge/internal/handler/middleware"
	"thejulge/internal/pkg/errs"
	"thejulge/internal/usecase/commands"
	"thejulge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errNotProfileOwner = errs.New("profile does not belong to the signed-in account")

type ProfileHandler struct {
	queries  queries.ProfileQueries
	commands commands.ProfileCommands
}

func NewProfileHandler(q queries.ProfileQueries, cmd commands.ProfileCommands) *ProfileHandler {
	return &ProfileHandler{queries: q, commands: cmd}
}

func (h *ProfileHandler) GetUser(c *gin.Context) {
	profile, err := h.queries.GetProfile(c.Request.Context(), c.Param("user_id"))
	if err != nil {
		abortGatewayError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}

// UpdateUser edits the caller's own profile only.
func (h *ProfileHandler) UpdateUser(c *gin.Context) {
	ident := middleware.GetIdentity(c)
	if ident.AccountID != c.Param("user_id") {
		httperr.AbortWithError(c, http.StatusForbidden, errNotProfileOwner, "본인의 프로필만 수정할 수 있습니다.", nil)
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request body", nil)
		return
	}

	profile, err := h.commands.Update(c.Request.Context(), ident, commands.UpdateProfileParams{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
		Bio:     req.Bio,
	})
	if err != nil {
		abortGatewayError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, response.FromProfile(profile))
}
