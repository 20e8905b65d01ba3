package commands

import (
	"context"
	"time"

	"thejulge/internal/domain/account"
	"thejulge/internal/domain/application"
	"thejulge/internal/domain/notice"
)

// Write-side snapshots keep the command layer off the read-side view types.

// NoticeSnapshot carries the fields the application gates need: enough to
// derive the effective status, plus the caller's own application if the
// bearer token identified one.
type NoticeSnapshot struct {
	ID          string
	ShopID      string
	StartsAt    time.Time
	Closed      bool
	Application *application.Application
}

func (s NoticeSnapshot) StatusAt(now time.Time) notice.Status {
	return notice.DeriveStatus(s.StartsAt, s.Closed, now)
}

// TokenGrant is what the remote API returns on a successful login.
type TokenGrant struct {
	Token   string
	Profile account.Profile
}

type UpdateProfileParams struct {
	Name    string
	Phone   string
	Address string
	Bio     string
}

// ApplicationGateway reads and mutates applications through the remote API.
type ApplicationGateway interface {
	Create(ctx context.Context, shopID, noticeID string) (*application.Application, error)
	SetStatus(ctx context.Context, shopID, noticeID, applicationID string, status application.Status) error
	ListForNotice(ctx context.Context, shopID, noticeID string, offset, limit int) ([]*application.Application, error)
}

type NoticeGateway interface {
	FindNotice(ctx context.Context, shopID, noticeID string) (*NoticeSnapshot, error)
}

type ProfileGateway interface {
	FindProfile(ctx context.Context, accountID string) (*account.Profile, error)
	UpdateProfile(ctx context.Context, accountID string, params UpdateProfileParams) (*account.Profile, error)
}

type AuthGateway interface {
	IssueToken(ctx context.Context, email, password string) (*TokenGrant, error)
	CreateAccount(ctx context.Context, email, password string, role account.Role) (*account.Profile, error)
}

// SessionWriter persists the signed-in identity client-side.
type SessionWriter interface {
	SignIn(ctx context.Context, accountID string, role account.Role, token string) error
	Logout(ctx context.Context) error
}
