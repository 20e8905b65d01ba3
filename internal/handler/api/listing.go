package api

import (
	"net/http"

	"thejulge/internal/handler/dto/request"
	"thejulge/internal/handler/httperr"
	"thejulge/internal/handler/middleware"
	"thejulge/internal/usecase"
	"thejulge/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// ListingHandler exposes the listing feeds. Every mutation answers with the
// resulting feed snapshot, so the client never needs a follow-up read.
type ListingHandler struct {
	orchestrator *usecase.ListingOrchestrator
}

func NewListingHandler(orchestrator *usecase.ListingOrchestrator) *ListingHandler {
	return &ListingHandler{orchestrator: orchestrator}
}

func (h *ListingHandler) GetFeed(c *gin.Context) {
	c.JSON(http.StatusOK, h.orchestrator.Snapshot(c.Request.Context()))
}

// ApplyFilter replaces the search filter and reloads from page 1. A grid load
// failure is not a request failure: it surfaces inside the snapshot as a
// dismissible notice while the other feeds keep their data.
func (h *ListingHandler) ApplyFilter(c *gin.Context) {
	var req request.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request body", nil)
		return
	}

	_ = h.orchestrator.ApplyFilter(c.Request.Context(), queries.NoticeFilter{
		Addresses:    req.Addresses,
		Keyword:      req.Keyword,
		StartsAtGte:  req.StartsAtGte,
		HourlyPayGte: req.HourlyPayGte,
		Sort:         queries.Sort(req.Sort),
	})

	c.JSON(http.StatusOK, h.orchestrator.Snapshot(c.Request.Context()))
}

func (h *ListingHandler) SetPage(c *gin.Context) {
	var req request.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "invalid request body", nil)
		return
	}

	_ = h.orchestrator.SetPage(c.Request.Context(), req.Page)

	c.JSON(http.StatusOK, h.orchestrator.Snapshot(c.Request.Context()))
}

// Refresh reloads the recommendation strip for the current identity. The
// client calls it on mount and after every login or logout.
func (h *ListingHandler) Refresh(c *gin.Context) {
	h.orchestrator.Refresh(c.Request.Context(), middleware.GetIdentity(c))
	c.JSON(http.StatusOK, h.orchestrator.Snapshot(c.Request.Context()))
}

func (h *ListingHandler) DismissError(c *gin.Context) {
	h.orchestrator.DismissGridError()
	c.JSON(http.StatusOK, h.orchestrator.Snapshot(c.Request.Context()))
}

// GetNoticeDetail fetches one notice and, as a side effect, records it in the
// recently viewed list.
func (h *ListingHandler) GetNoticeDetail(c *gin.Context) {
	view, err := h.orchestrator.Detail(c.Request.Context(), c.Param("shop_id"), c.Param("notice_id"))
	if err != nil {
		abortGatewayError(c, err, nil)
		return
	}

	c.JSON(http.StatusOK, view)
}
