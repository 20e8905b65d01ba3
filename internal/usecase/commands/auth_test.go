//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"testing"

	"thejulge/internal/domain/account"
	"thejulge/internal/usecase/commands"
	commandsmock "thejulge/tests/mock/commands"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthCommandsTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockAuth    *commandsmock.MockAuthGateway
	mockSession *commandsmock.MockSessionWriter
	commands    commands.AuthCommands
}

func (s *AuthCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockAuth = commandsmock.NewMockAuthGateway(s.ctrl)
	s.mockSession = commandsmock.NewMockSessionWriter(s.ctrl)
	s.commands = commands.NewAuthCommands(s.mockAuth, s.mockSession)
}

func (s *AuthCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAuthCommandsSuite(t *testing.T) {
	suite.Run(t, new(AuthCommandsTestSuite))
}

func (s *AuthCommandsTestSuite) TestLogin() {
	ctx := context.Background()

	s.Run("success: persists the granted token and identity", func() {
		grant := &commands.TokenGrant{
			Token: "token-1",
			Profile: account.Profile{
				ID:   "worker-1",
				Role: account.RoleEmployee,
			},
		}

		s.mockAuth.EXPECT().IssueToken(gomock.Any(), "a@b.com", "password1").Return(grant, nil)
		s.mockSession.EXPECT().SignIn(gomock.Any(), "worker-1", account.RoleEmployee, "token-1").Return(nil)

		profile, err := s.commands.Login(ctx, "a@b.com", "password1")
		s.Require().NoError(err)
		s.Equal("worker-1", profile.ID)
	})

	s.Run("error: bad credentials never touch the session", func() {
		s.mockAuth.EXPECT().IssueToken(gomock.Any(), "a@b.com", "wrong").
			Return(nil, fmt.Errorf("rejected"))

		_, err := s.commands.Login(ctx, "a@b.com", "wrong")
		s.Error(err)
	})

	s.Run("error: session save failure surfaces after a granted token", func() {
		grant := &commands.TokenGrant{
			Token:   "token-1",
			Profile: account.Profile{ID: "worker-1", Role: account.RoleEmployee},
		}

		s.mockAuth.EXPECT().IssueToken(gomock.Any(), "a@b.com", "password1").Return(grant, nil)
		s.mockSession.EXPECT().SignIn(gomock.Any(), "worker-1", account.RoleEmployee, "token-1").
			Return(fmt.Errorf("store unavailable"))

		_, err := s.commands.Login(ctx, "a@b.com", "password1")
		s.Error(err)
	})
}

func (s *AuthCommandsTestSuite) TestSignup() {
	ctx := context.Background()

	s.Run("success: creates the account without signing in", func() {
		created := &account.Profile{ID: "owner-1", Role: account.RoleEmployer}
		s.mockAuth.EXPECT().CreateAccount(gomock.Any(), "a@b.com", "password1", account.RoleEmployer).
			Return(created, nil)

		profile, err := s.commands.Signup(ctx, "a@b.com", "password1", account.RoleEmployer)
		s.Require().NoError(err)
		s.Equal("owner-1", profile.ID)
	})

	s.Run("error: invalid role", func() {
		_, err := s.commands.Signup(ctx, "a@b.com", "password1", account.Role("admin"))
		s.ErrorIs(err, commands.ErrInvalidSignupRole)
	})
}

func (s *AuthCommandsTestSuite) TestLogout() {
	s.mockSession.EXPECT().Logout(gomock.Any()).Return(nil)
	s.NoError(s.commands.Logout(context.Background()))
}
