//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"thejulge/internal/domain/account"
	"thejulge/internal/domain/notice"
	"thejulge/internal/infra/session"
	"thejulge/internal/pkg/clock"
	"thejulge/internal/usecase/queries"
	queriesmock "thejulge/tests/mock/queries"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ListingQueriesTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockNotices  *queriesmock.MockNoticeReader
	mockProfiles *queriesmock.MockProfileReader
	clock        *clock.MockClock
	queries      queries.ListingQueries

	now time.Time
}

func (s *ListingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNotices = queriesmock.NewMockNoticeReader(s.ctrl)
	s.mockProfiles = queriesmock.NewMockProfileReader(s.ctrl)
	s.now = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.queries = queries.NewListingQueries(s.mockNotices, s.mockProfiles, s.clock)
}

func (s *ListingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestListingQueriesSuite(t *testing.T) {
	suite.Run(t, new(ListingQueriesTestSuite))
}

func (s *ListingQueriesTestSuite) rawNotices(n int, closedIdx ...int) []notice.Notice {
	closed := map[int]bool{}
	for _, i := range closedIdx {
		closed[i] = true
	}

	items := make([]notice.Notice, n)
	for i := range items {
		items[i] = notice.Notice{
			ID:       string(rune('a' + i)),
			StartsAt: s.now.Add(48 * time.Hour),
			Closed:   closed[i],
		}
	}
	return items
}

func (s *ListingQueriesTestSuite) TestGrid() {
	ctx := context.Background()

	s.mockNotices.EXPECT().ListNotices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q queries.CanonicalQuery) (*queries.NoticePage, error) {
			s.Equal(6, q.Offset, "page 2 starts at offset 6")
			s.Equal(6, q.Limit)
			return &queries.NoticePage{Items: s.rawNotices(2), Count: 14, HasNext: true}, nil
		})

	page, err := s.queries.Grid(ctx, queries.NoticeFilter{Page: 2})
	s.Require().NoError(err)
	s.Equal(14, page.Count)
	s.True(page.HasNext)
	s.Require().Len(page.Items, 2)
	s.Equal("active", page.Items[0].Status)
}

func (s *ListingQueriesTestSuite) TestRecommendedForAnonymous() {
	ctx := context.Background()

	s.mockNotices.EXPECT().ListNotices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q queries.CanonicalQuery) (*queries.NoticePage, error) {
			s.Empty(q.Addresses)
			s.Equal(queries.SortShopName, q.Sort)
			return &queries.NoticePage{Items: s.rawNotices(3)}, nil
		})

	views, err := s.queries.Recommended(ctx, nil)
	s.Require().NoError(err)
	s.Len(views, 3)
}

func (s *ListingQueriesTestSuite) TestRecommendedUsesPreferredDistrict() {
	ctx := context.Background()
	ident := &session.Identity{AccountID: "worker-1", Role: account.RoleEmployee}

	s.mockProfiles.EXPECT().FindProfile(gomock.Any(), "worker-1").
		Return(&account.Profile{ID: "worker-1", Address: "서울시 강남구"}, nil)
	s.mockNotices.EXPECT().ListNotices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q queries.CanonicalQuery) (*queries.NoticePage, error) {
			s.Equal([]string{"서울시 강남구"}, q.Addresses)
			s.Empty(q.Sort, "district filter and shop-name sort are mutually exclusive")
			return &queries.NoticePage{Items: s.rawNotices(1)}, nil
		})

	views, err := s.queries.Recommended(ctx, ident)
	s.Require().NoError(err)
	s.Len(views, 1)
}

func (s *ListingQueriesTestSuite) TestRecommendedEmployerSkipsProfileLookup() {
	ctx := context.Background()
	ident := &session.Identity{AccountID: "owner-1", Role: account.RoleEmployer}

	s.mockNotices.EXPECT().ListNotices(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q queries.CanonicalQuery) (*queries.NoticePage, error) {
			s.Equal(queries.SortShopName, q.Sort)
			return &queries.NoticePage{Items: nil}, nil
		})

	_, err := s.queries.Recommended(ctx, ident)
	s.Require().NoError(err)
}

func (s *ListingQueriesTestSuite) TestRecommendedDropsClosedAndCapsAtLimit() {
	ctx := context.Background()

	// 12 raw results with two closed: the strip keeps the first 9 open ones
	s.mockNotices.EXPECT().ListNotices(gomock.Any(), gomock.Any()).
		Return(&queries.NoticePage{Items: s.rawNotices(12, 0, 5)}, nil)

	views, err := s.queries.Recommended(ctx, nil)
	s.Require().NoError(err)
	s.Len(views, queries.RecommendLimit)
	for _, v := range views {
		s.False(v.Closed)
	}
}
