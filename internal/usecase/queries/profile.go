package queries

import (
	"context"

	"thejulge/internal/domain/account"
)

type ProfileQueries interface {
	GetProfile(ctx context.Context, accountID string) (*account.Profile, error)
}

type profileQueriesImpl struct {
	profiles ProfileReader
}

func NewProfileQueries(profiles ProfileReader) ProfileQueries {
	return &profileQueriesImpl{profiles: profiles}
}

func (q *profileQueriesImpl) GetProfile(ctx context.Context, accountID string) (*account.Profile, error) {
	return q.profiles.FindProfile(ctx, accountID)
}
