package queries

import (
	"context"

	"thejulge/internal/domain/account"
	"thejulge/internal/infra/session"
	"thejulge/internal/pkg/clock"
)

// NoticeReader executes a canonical query against the remote notice search.
type NoticeReader interface {
	ListNotices(ctx context.Context, q CanonicalQuery) (*NoticePage, error)
}

// NoticeDetailReader fetches one notice including the caller's own
// application for it, if any.
type NoticeDetailReader interface {
	FindNotice(ctx context.Context, shopID, noticeID string) (*NoticeDetail, error)
}

// ProfileReader fetches an account profile from the remote API.
type ProfileReader interface {
	FindProfile(ctx context.Context, accountID string) (*account.Profile, error)
}

type ListingQueries interface {
	// Grid composes and executes the main grid query for the given filter.
	Grid(ctx context.Context, f NoticeFilter) (*NoticeListPage, error)
	// Recommended selects the personalized strip for ident (nil = anonymous).
	Recommended(ctx context.Context, ident *session.Identity) ([]NoticeView, error)
}

type listingQueriesImpl struct {
	notices  NoticeReader
	profiles ProfileReader
	clock    clock.Clock
}

func NewListingQueries(notices NoticeReader, profiles ProfileReader, clk clock.Clock) ListingQueries {
	return &listingQueriesImpl{
		notices:  notices,
		profiles: profiles,
		clock:    clk,
	}
}

func (q *listingQueriesImpl) Grid(ctx context.Context, f NoticeFilter) (*NoticeListPage, error) {
	now := q.clock.Now()
	page, err := q.notices.ListNotices(ctx, Compose(f, now))
	if err != nil {
		return nil, err
	}

	items := make([]NoticeView, len(page.Items))
	for i, n := range page.Items {
		items[i] = NewNoticeView(n, now)
	}
	return &NoticeListPage{
		Items:   items,
		Offset:  page.Offset,
		Limit:   page.Limit,
		Count:   page.Count,
		HasNext: page.HasNext,
	}, nil
}

// Recommended picks the strip contents. Anonymous callers get the not-yet-
// started notices in shop-name order; a worker with a preferred district gets
// that district instead. The remote query constrains start time but not the
// closed flag, so closed notices are dropped here.
func (q *listingQueriesImpl) Recommended(ctx context.Context, ident *session.Identity) ([]NoticeView, error) {
	preferredAddress := ""
	if ident != nil && ident.Role == account.RoleEmployee {
		profile, err := q.profiles.FindProfile(ctx, ident.AccountID)
		if err != nil {
			return nil, err
		}
		preferredAddress = profile.Address
	}

	now := q.clock.Now()
	page, err := q.notices.ListNotices(ctx, ComposeRecommendation(preferredAddress, now))
	if err != nil {
		return nil, err
	}

	views := make([]NoticeView, 0, len(page.Items))
	for _, n := range page.Items {
		if n.Closed {
			continue
		}
		views = append(views, NewNoticeView(n, now))
		if len(views) == RecommendLimit {
			break
		}
	}
	return views, nil
}
