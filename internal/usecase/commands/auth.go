package commands

import (
	"context"

	"thejulge/internal/domain/account"
	"thejulge/internal/pkg/errs"
)

var ErrInvalidSignupRole = errs.New("signup role must be employee or employer")

type AuthCommands interface {
	// Login forwards credentials to the remote API and persists the returned
	// token and identity into the session.
	Login(ctx context.Context, email, password string) (*account.Profile, error)
	// Signup creates an account remotely. It does not sign the account in;
	// the web client has always followed signup with an explicit login.
	Signup(ctx context.Context, email, password string, role account.Role) (*account.Profile, error)
	Logout(ctx context.Context) error
}

type authCommandsImpl struct {
	auth    AuthGateway
	session SessionWriter
}

func NewAuthCommands(auth AuthGateway, session SessionWriter) AuthCommands {
	return &authCommandsImpl{auth: auth, session: session}
}

func (c *authCommandsImpl) Login(ctx context.Context, email, password string) (*account.Profile, error) {
	grant, err := c.auth.IssueToken(ctx, email, password)
	if err != nil {
		return nil, err
	}

	profile := grant.Profile
	if err := c.session.SignIn(ctx, profile.ID, profile.Role, grant.Token); err != nil {
		return nil, errs.Wrap(err, "login succeeded but session could not be saved")
	}
	return &profile, nil
}

func (c *authCommandsImpl) Signup(ctx context.Context, email, password string, role account.Role) (*account.Profile, error) {
	if !role.IsValid() {
		return nil, ErrInvalidSignupRole
	}
	return c.auth.CreateAccount(ctx, email, password, role)
}

func (c *authCommandsImpl) Logout(ctx context.Context) error {
	return c.session.Logout(ctx)
}
