//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"thejulge/internal/domain/account"
	"thejulge/internal/domain/application"
	"thejulge/internal/handler/api"
	resdto "thejulge/internal/handler/dto/response"
	"thejulge/internal/infra"
	"thejulge/internal/infra/session"
	"thejulge/internal/usecase/commands"
	"thejulge/tests/common/httptest"
	commandsmock "thejulge/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ApplicationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockApplicationCommands
	handler      *api.ApplicationHandler

	ident *session.Identity
}

func (s *ApplicationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockApplicationCommands(s.mockCtrl)
	s.handler = api.NewApplicationHandler(s.mockCommands)
	s.ident = &session.Identity{AccountID: "worker-1", Role: account.RoleEmployee}

	// stand-in for the session middleware
	attachIdentity := func(c *gin.Context) {
		if s.ident != nil {
			c.Set("identity", s.ident)
		}
	}

	group := s.router.Group("/shops/:shop_id/notices/:notice_id/applications", attachIdentity)
	group.POST("", s.handler.Submit)
	group.PUT("/:application_id", s.handler.UpdateStatus)
}

func (s *ApplicationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestApplicationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ApplicationHandlerTestSuite))
}

func pendingApp() *application.Application {
	return &application.Application{
		ID:        "app-1",
		NoticeID:  "n1",
		ShopID:    "s1",
		Status:    application.StatusPending,
		CreatedAt: time.Date(2024, 6, 14, 10, 0, 0, 0, time.UTC),
	}
}

func (s *ApplicationHandlerTestSuite) TestSubmit() {
	url := "/shops/s1/notices/n1/applications"

	s.Run("success: 201 with the created application", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ident, "s1", "n1").Return(pendingApp(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		var resp resdto.ApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &resp)
		s.Equal("app-1", resp.ID)
		s.Equal("pending", resp.Status)
		s.True(resp.Applied)
	})

	s.Run("error: 422 when the profile is incomplete", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ident, "s1", "n1").
			Return(nil, commands.ErrProfileIncomplete)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "프로필")
	})

	s.Run("error: 409 when already applied", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ident, "s1", "n1").
			Return(nil, commands.ErrAlreadyApplied)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "")
	})

	s.Run("error: 409 with the remote message verbatim on rejection", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ident, "s1", "n1").
			Return(nil, infra.WrapGatewayErr(infra.KindRejected, "마감된 공고입니다.", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "마감된 공고입니다.")
	})

	s.Run("error: 502 when the remote is unreachable", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), s.ident, "s1", "n1").
			Return(nil, infra.WrapGatewayErr(infra.KindUnreachable, "no response from remote API", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "서버에 연결할 수 없습니다")
	})
}

func (s *ApplicationHandlerTestSuite) TestUpdateStatus() {
	url := "/shops/s1/notices/n1/applications/app-1"

	s.Run("unconfirmed request only stages the action", func() {
		// no command call expected
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "canceled"})

		s.Equal(http.StatusPreconditionRequired, rec.Code)
		s.Contains(rec.Body.String(), "취소")
	})

	s.Run("confirmed cancel withdraws", func() {
		canceled := pendingApp()
		canceled.Status = application.StatusCanceled

		s.mockCommands.EXPECT().Withdraw(gomock.Any(), s.ident, "s1", "n1").Return(canceled, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "canceled", "confirmed": true})

		var resp resdto.ApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("canceled", resp.Status)
		s.False(resp.Applied)
	})

	s.Run("confirmed accept decides", func() {
		accepted := pendingApp()
		accepted.Status = application.StatusAccepted

		s.mockCommands.EXPECT().
			Decide(gomock.Any(), s.ident, "s1", "n1", "app-1", application.StatusAccepted).
			Return(accepted, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "accepted", "confirmed": true})

		var resp resdto.ApplicationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
		s.Equal("accepted", resp.Status)
	})

	s.Run("failed transition reports the rolled-back state", func() {
		s.mockCommands.EXPECT().Withdraw(gomock.Any(), s.ident, "s1", "n1").
			Return(pendingApp(), infra.WrapGatewayErr(infra.KindRejected, "이미 처리된 신청입니다.", nil))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "canceled", "confirmed": true})

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "이미 처리된 신청입니다.")
		s.Contains(rec.Body.String(), `"pending"`, "detail carries the restored local status")
	})

	s.Run("unknown status is rejected by binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"status": "approved", "confirmed": true})

		s.Equal(http.StatusBadRequest, rec.Code)
	})
}
