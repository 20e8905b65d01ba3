package api

import (
	"errors"
	"net/http"

	"thejulge/internal/domain/application"
	"thejulge/internal/handler/dto/request"
	"thejulge/internal/handler/dto/response"
	"thejulge/internal/handler/httperr"
	"thejulge/internal/handler/middleware"
	"thejulge/internal/usecase/commands"
	"thejulge/internal/usecase/confirm"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	commands commands.ApplicationCommands
}

func NewApplicationHandler(cmd commands.ApplicationCommands) *ApplicationHandler {
	return &ApplicationHandler{commands: cmd}
}

// transitionProposal is the staged action behind the confirmation gate.
type transitionProposal struct {
	ShopID        string
	NoticeID      string
	ApplicationID string
	To            application.Status
}

func (h *ApplicationHandler) Submit(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	app, err := h.commands.Submit(c.Request.Context(), ident, c.Param("shop_id"), c.Param("notice_id"))
	if err != nil {
		h.abortCommandError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, response.FromApplication(app))
}

// UpdateStatus handles withdraw (canceled, by the applicant) and decide
// (accepted/rejected, by the employer). The transition is gated: a request
// without confirmed=true stages the action and answers 428, and the caller
// repeats the request with confirmed=true to execute it.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	ident := middleware.GetIdentity(c)

	var req request.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request body", nil)
		return
	}

	to, err := application.ParseStatus(req.Status)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "unknown application status", nil)
		return
	}

	gate := confirm.NewGate[transitionProposal]()
	if err := gate.Propose(transitionProposal{
		ShopID:        c.Param("shop_id"),
		NoticeID:      c.Param("notice_id"),
		ApplicationID: c.Param("application_id"),
		To:            to,
	}); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error", nil)
		return
	}

	if !req.Confirmed {
		_ = gate.Abandon()
		c.JSON(http.StatusPreconditionRequired, gin.H{
			"message":   confirmPrompt(to),
			"confirmed": false,
		})
		return
	}

	proposal, err := gate.Confirm()
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "internal server error", nil)
		return
	}

	var app *application.Application
	if proposal.To == application.StatusCanceled {
		app, err = h.commands.Withdraw(c.Request.Context(), ident, proposal.ShopID, proposal.NoticeID)
	} else {
		app, err = h.commands.Decide(c.Request.Context(), ident, proposal.ShopID, proposal.NoticeID, proposal.ApplicationID, proposal.To)
	}
	if err != nil {
		// app carries the rolled-back local state when the transition was
		// attempted and failed remotely
		var detail any
		if app != nil {
			detail = response.FromApplication(app)
		}
		h.abortCommandError(c, err, detail)
		return
	}

	c.JSON(http.StatusOK, response.FromApplication(app))
}

func confirmPrompt(to application.Status) string {
	switch to {
	case application.StatusCanceled:
		return "신청을 취소하시겠어요?"
	case application.StatusAccepted:
		return "신청을 승인하시겠어요?"
	case application.StatusRejected:
		return "신청을 거절하시겠어요?"
	default:
		return "진행하시겠어요?"
	}
}

func (h *ApplicationHandler) abortCommandError(c *gin.Context, err error, detail any) {
	switch {
	case errors.Is(err, commands.ErrAuthRequired):
		httperr.AbortWithError(c, http.StatusUnauthorized, err, "로그인이 필요합니다.", detail)
	case errors.Is(err, commands.ErrRoleNotAllowed):
		httperr.AbortWithError(c, http.StatusForbidden, err, "이 작업을 수행할 권한이 없습니다.", detail)
	case errors.Is(err, commands.ErrProfileIncomplete):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "내 프로필을 먼저 등록해 주세요.", detail)
	case errors.Is(err, commands.ErrNoticeInactive):
		httperr.AbortWithError(c, http.StatusConflict, err, "마감된 공고에는 신청할 수 없습니다.", detail)
	case errors.Is(err, commands.ErrAlreadyApplied):
		httperr.AbortWithError(c, http.StatusConflict, err, "이미 신청한 공고입니다.", detail)
	case errors.Is(err, commands.ErrNotApplied), errors.Is(err, commands.ErrApplicationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "신청 내역을 찾을 수 없습니다.", detail)
	case errors.Is(err, commands.ErrTransitionNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, "이미 처리된 신청입니다.", detail)
	case errors.Is(err, commands.ErrInvalidDecision):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "승인 또는 거절만 가능합니다.", detail)
	default:
		abortGatewayError(c, err, detail)
	}
}
