package commands

import (
	"context"

	"thejulge/internal/domain/account"
	"thejulge/internal/domain/application"
	"thejulge/internal/infra/session"
	"thejulge/internal/pkg/clock"
	"thejulge/internal/pkg/errs"
)

var (
	ErrAuthRequired         = errs.New("sign in required")
	ErrRoleNotAllowed       = errs.New("role not allowed for this action")
	ErrProfileIncomplete    = errs.New("worker profile must be completed first")
	ErrNoticeInactive       = errs.New("notice is closed or expired")
	ErrAlreadyApplied       = errs.New("an active application already exists for this notice")
	ErrNotApplied           = errs.New("no application exists for this notice")
	ErrApplicationNotFound  = errs.New("application not found under this notice")
	ErrTransitionNotAllowed = errs.New("application status transition not allowed")
	ErrInvalidDecision      = errs.New("decision must be accepted or rejected")
)

// how many applications Decide scans when locating the target under a notice
const decideListLimit = 100

// ApplicationCommands drives a worker's application to a notice. Authorization
// here decides only what this client attempts; the remote API remains the
// final arbiter of every transition.
type ApplicationCommands interface {
	// Submit creates an application. Not optimistic: the local "applied"
	// pointer is the returned value, captured only after the remote confirms
	// creation and assigns an id.
	Submit(ctx context.Context, ident *session.Identity, shopID, noticeID string) (*application.Application, error)

	// Withdraw moves the caller's own pending application to canceled,
	// optimistically: the local status flips before the remote call and rolls
	// back to its prior value if the call fails. The returned application
	// reflects the final local state either way.
	Withdraw(ctx context.Context, ident *session.Identity, shopID, noticeID string) (*application.Application, error)

	// Decide moves a pending application under one of the employer's notices
	// to accepted or rejected, with the same optimistic-rollback discipline.
	Decide(ctx context.Context, ident *session.Identity, shopID, noticeID, applicationID string, to application.Status) (*application.Application, error)
}

type applicationCommandsImpl struct {
	applications ApplicationGateway
	notices      NoticeGateway
	profiles     ProfileGateway
	clock        clock.Clock
}

func NewApplicationCommands(
	applications ApplicationGateway,
	notices NoticeGateway,
	profiles ProfileGateway,
	clk clock.Clock,
) ApplicationCommands {
	return &applicationCommandsImpl{
		applications: applications,
		notices:      notices,
		profiles:     profiles,
		clock:        clk,
	}
}

func (c *applicationCommandsImpl) Submit(ctx context.Context, ident *session.Identity, shopID, noticeID string) (*application.Application, error) {
	if ident == nil {
		return nil, ErrAuthRequired
	}
	if ident.Role != account.RoleEmployee {
		return nil, ErrRoleNotAllowed
	}

	profile, err := c.profiles.FindProfile(ctx, ident.AccountID)
	if err != nil {
		return nil, err
	}
	if !profile.IsComplete() {
		return nil, ErrProfileIncomplete
	}

	snapshot, err := c.notices.FindNotice(ctx, shopID, noticeID)
	if err != nil {
		return nil, err
	}
	if snapshot.StatusAt(c.clock.Now()).IsInactive() {
		return nil, ErrNoticeInactive
	}
	if snapshot.Application != nil && snapshot.Application.IsApplied() {
		return nil, ErrAlreadyApplied
	}

	return c.applications.Create(ctx, shopID, noticeID)
}

func (c *applicationCommandsImpl) Withdraw(ctx context.Context, ident *session.Identity, shopID, noticeID string) (*application.Application, error) {
	if ident == nil {
		return nil, ErrAuthRequired
	}
	if ident.Role != account.RoleEmployee {
		return nil, ErrRoleNotAllowed
	}

	snapshot, err := c.notices.FindNotice(ctx, shopID, noticeID)
	if err != nil {
		return nil, err
	}
	app := snapshot.Application
	if app == nil {
		return nil, ErrNotApplied
	}

	if err := c.transition(ctx, shopID, noticeID, app, application.StatusCanceled); err != nil {
		return app, err
	}
	return app, nil
}

func (c *applicationCommandsImpl) Decide(ctx context.Context, ident *session.Identity, shopID, noticeID, applicationID string, to application.Status) (*application.Application, error) {
	if ident == nil {
		return nil, ErrAuthRequired
	}
	if ident.Role != account.RoleEmployer {
		return nil, ErrRoleNotAllowed
	}
	if to != application.StatusAccepted && to != application.StatusRejected {
		return nil, ErrInvalidDecision
	}

	apps, err := c.applications.ListForNotice(ctx, shopID, noticeID, 0, decideListLimit)
	if err != nil {
		return nil, err
	}
	var app *application.Application
	for _, candidate := range apps {
		if candidate.ID == applicationID {
			app = candidate
			break
		}
	}
	if app == nil {
		return nil, ErrApplicationNotFound
	}

	if err := c.transition(ctx, shopID, noticeID, app, to); err != nil {
		return app, err
	}
	return app, nil
}

// transition captures the prior status, applies the new one, and on remote
// failure restores the captured value rather than any fixed default.
func (c *applicationCommandsImpl) transition(ctx context.Context, shopID, noticeID string, app *application.Application, to application.Status) error {
	if !application.IsTransitionAllowed(app.Status, to) {
		return ErrTransitionNotAllowed
	}

	prev := app.Status
	app.Status = to

	if err := c.applications.SetStatus(ctx, shopID, noticeID, app.ID, to); err != nil {
		app.Status = prev
		return err
	}
	return nil
}
