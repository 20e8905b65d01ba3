package commands

import (
	"context"

	"thejulge/internal/domain/account"
	"thejulge/internal/infra/session"
)

type ProfileCommands interface {
	// Update edits the caller's own worker profile. Completing the profile
	// (setting a name) is what unlocks application submission.
	Update(ctx context.Context, ident *session.Identity, params UpdateProfileParams) (*account.Profile, error)
}

type profileCommandsImpl struct {
	profiles ProfileGateway
}

func NewProfileCommands(profiles ProfileGateway) ProfileCommands {
	return &profileCommandsImpl{profiles: profiles}
}

func (c *profileCommandsImpl) Update(ctx context.Context, ident *session.Identity, params UpdateProfileParams) (*account.Profile, error) {
	if ident == nil {
		return nil, ErrAuthRequired
	}
	return c.profiles.UpdateProfile(ctx, ident.AccountID, params)
}
