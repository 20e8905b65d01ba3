package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"thejulge/internal/infra"
	"thejulge/internal/infra/recency"
	"thejulge/internal/infra/session"
	"thejulge/internal/pkg/clock"
	"thejulge/internal/usecase/queries"
)

// GridState is the main grid portion of the feed. Loaded stays false until
// the first successful response, so callers can suppress the empty state
// while the very first request is still in flight.
type GridState struct {
	Items  []queries.NoticeView `json:"items"`
	Count  int                  `json:"count"`
	Page   int                  `json:"page"`
	Loaded bool                 `json:"loaded"`
}

// Feed is a consistent snapshot of everything the listing screen shows.
// GridError is a dismissible notice; recommendation and recency data that did
// succeed are still present alongside it.
type Feed struct {
	Grid        GridState            `json:"grid"`
	Recommended []queries.NoticeView `json:"recommended"`
	Recent      []queries.NoticeView `json:"recent"`
	GridError   string               `json:"grid_error,omitempty"`
}

// NoticeDetailView is the detail screen payload: the annotated notice plus
// the caller's own application, if any.
type NoticeDetailView struct {
	Notice      queries.NoticeView `json:"notice"`
	Application *ApplicationView   `json:"application,omitempty"`
	Applied     bool               `json:"applied"`
}

type ApplicationView struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ListingOrchestrator composes the query, recommendation and recency pieces
// into the three display feeds and keeps them consistent under racing loads.
type ListingOrchestrator struct {
	listing queries.ListingQueries
	details queries.NoticeDetailReader
	recent  *recency.Cache
	clock   clock.Clock
	logger  *slog.Logger

	mu          sync.Mutex
	gen         uint64 // generation tag for grid loads; stale completions are discarded
	filter      queries.NoticeFilter
	grid        GridState
	gridErr     string
	recommended []queries.NoticeView
}

func NewListingOrchestrator(
	listing queries.ListingQueries,
	details queries.NoticeDetailReader,
	recent *recency.Cache,
	clk clock.Clock,
	logger *slog.Logger,
) *ListingOrchestrator {
	return &ListingOrchestrator{
		listing: listing,
		details: details,
		recent:  recent,
		clock:   clk,
		logger:  logger,
		filter:  queries.NoticeFilter{Page: 1, PageSize: queries.GridPageSize},
		grid:    GridState{Page: 1},
	}
}

// Refresh reloads the recommendation strip for the given identity. It runs on
// mount and on every login/logout. A recommendation failure degrades to an
// empty strip; it never disturbs the grid or the recency list.
func (o *ListingOrchestrator) Refresh(ctx context.Context, ident *session.Identity) {
	views, err := o.listing.Recommended(ctx, ident)
	if err != nil {
		o.logger.Warn("failed to load recommended notices", "error", err)
		views = nil
	}

	o.mu.Lock()
	o.recommended = views
	o.mu.Unlock()
}

// ApplyFilter replaces the search filter and reloads the grid from page 1.
func (o *ListingOrchestrator) ApplyFilter(ctx context.Context, f queries.NoticeFilter) error {
	o.mu.Lock()
	f.Page = 1
	f.PageSize = queries.GridPageSize
	o.filter = f
	o.mu.Unlock()

	return o.loadGrid(ctx)
}

// SetPage moves to another page of the current filter without resetting it.
func (o *ListingOrchestrator) SetPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}

	o.mu.Lock()
	o.filter.Page = page
	o.mu.Unlock()

	return o.loadGrid(ctx)
}

// loadGrid issues a generation-tagged grid query. Rapid filter changes can
// leave several requests in flight; only the response matching the latest
// generation is applied, the rest are discarded on completion.
func (o *ListingOrchestrator) loadGrid(ctx context.Context) error {
	o.mu.Lock()
	o.gen++
	gen := o.gen
	f := o.filter
	o.mu.Unlock()

	page, err := o.listing.Grid(ctx, f)

	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.gen {
		// superseded by a newer request; its result owns the grid
		return nil
	}
	if err != nil {
		o.gridErr = gridErrorMessage(err)
		return err
	}

	o.grid = GridState{
		Items:  page.Items,
		Count:  page.Count,
		Page:   f.Page,
		Loaded: true,
	}
	o.gridErr = ""
	return nil
}

// DismissGridError clears the dismissible grid failure notice.
func (o *ListingOrchestrator) DismissGridError() {
	o.mu.Lock()
	o.gridErr = ""
	o.mu.Unlock()
}

// Snapshot assembles the current feed. The recency read happens here, per
// render, so a freshly recorded view shows up without extra bookkeeping; a
// failing store simply yields an empty recent strip.
func (o *ListingOrchestrator) Snapshot(ctx context.Context) Feed {
	now := o.clock.Now()
	recent := o.recent.List(ctx)
	recentViews := make([]queries.NoticeView, len(recent))
	for i, n := range recent {
		recentViews[i] = queries.NewNoticeView(n, now)
	}

	o.mu.Lock()
	defer o.mu.Unlock()
	return Feed{
		Grid:        o.grid,
		Recommended: o.recommended,
		Recent:      recentViews,
		GridError:   o.gridErr,
	}
}

// Detail fetches one notice with the caller's own application and records the
// view in the recency cache as a side effect.
func (o *ListingOrchestrator) Detail(ctx context.Context, shopID, noticeID string) (*NoticeDetailView, error) {
	detail, err := o.details.FindNotice(ctx, shopID, noticeID)
	if err != nil {
		return nil, err
	}

	o.recent.Record(ctx, detail.Notice)

	view := &NoticeDetailView{
		Notice: queries.NewNoticeView(detail.Notice, o.clock.Now()),
	}
	if app := detail.Application; app != nil {
		view.Application = &ApplicationView{
			ID:        app.ID,
			Status:    app.Status.String(),
			CreatedAt: app.CreatedAt.Format(time.RFC3339),
		}
		view.Applied = app.IsApplied()
	}
	return view, nil
}

func gridErrorMessage(err error) string {
	if infra.IsKind(err, infra.KindRejected) || infra.IsKind(err, infra.KindNotFound) {
		return infra.RemoteMessage(err)
	}
	return "서버에 연결할 수 없습니다. 잠시 후 다시 시도해주세요."
}
