//go:build unit

package queries_test

import (
	"testing"
	"time"

	"thejulge/internal/usecase/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

var seoul = time.FixedZone("KST", 9*60*60)

func TestStartOfTomorrow(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "midday",
			now:  time.Date(2024, 6, 15, 13, 45, 0, 0, seoul),
			want: time.Date(2024, 6, 16, 0, 0, 0, 0, seoul),
		},
		{
			name: "just before midnight",
			now:  time.Date(2024, 6, 15, 23, 59, 59, 0, seoul),
			want: time.Date(2024, 6, 16, 0, 0, 0, 0, seoul),
		},
		{
			name: "exactly midnight advances a full day",
			now:  time.Date(2024, 6, 15, 0, 0, 0, 0, seoul),
			want: time.Date(2024, 6, 16, 0, 0, 0, 0, seoul),
		},
		{
			name: "month boundary",
			now:  time.Date(2024, 6, 30, 10, 0, 0, 0, seoul),
			want: time.Date(2024, 7, 1, 0, 0, 0, 0, seoul),
		},
		{
			name: "year boundary",
			now:  time.Date(2024, 12, 31, 10, 0, 0, 0, seoul),
			want: time.Date(2025, 1, 1, 0, 0, 0, 0, seoul),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := queries.StartOfTomorrow(tt.now)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
		})
	}
}

func TestCompose(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 0, 0, 0, seoul)
	tomorrow := time.Date(2024, 6, 16, 0, 0, 0, 0, seoul)

	t.Run("empty filter falls back to defaults", func(t *testing.T) {
		q := queries.Compose(queries.NoticeFilter{}, now)

		want := queries.CanonicalQuery{
			Offset:      0,
			Limit:       queries.GridPageSize,
			StartsAtGte: tomorrow,
			Sort:        queries.SortClosingSoon,
		}
		if diff := cmp.Diff(want, q); diff != "" {
			t.Errorf("Compose() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("page two of six maps to offset six", func(t *testing.T) {
		q := queries.Compose(queries.NoticeFilter{
			Addresses: []string{"서울시 강남구"},
			Page:      2,
		}, now)

		assert.Equal(t, 6, q.Offset)
		assert.Equal(t, 6, q.Limit)
		assert.Equal(t, []string{"서울시 강남구"}, q.Addresses)
	})

	t.Run("explicit start bound is kept", func(t *testing.T) {
		explicit := time.Date(2024, 7, 1, 9, 0, 0, 0, seoul)
		q := queries.Compose(queries.NoticeFilter{StartsAtGte: &explicit}, now)
		assert.True(t, q.StartsAtGte.Equal(explicit))
	})

	t.Run("invalid sort and page degrade to defaults", func(t *testing.T) {
		q := queries.Compose(queries.NoticeFilter{Sort: "wage", Page: -3, HourlyPayGte: -100}, now)
		assert.Equal(t, queries.SortClosingSoon, q.Sort)
		assert.Equal(t, 0, q.Offset)
		assert.Equal(t, 0, q.HourlyPayGte)
	})

	t.Run("blank addresses are dropped", func(t *testing.T) {
		q := queries.Compose(queries.NoticeFilter{Addresses: []string{"", "서울시 마포구", ""}}, now)
		assert.Equal(t, []string{"서울시 마포구"}, q.Addresses)
	})
}

func TestComposeRecommendation(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 0, 0, 0, seoul)

	t.Run("preferred district replaces shop-name sort", func(t *testing.T) {
		q := queries.ComposeRecommendation("서울시 강남구", now)
		assert.Equal(t, []string{"서울시 강남구"}, q.Addresses)
		assert.Empty(t, q.Sort)
		assert.Equal(t, queries.RecommendLimit, q.Limit)
	})

	t.Run("no district falls back to shop-name sort", func(t *testing.T) {
		q := queries.ComposeRecommendation("", now)
		assert.Empty(t, q.Addresses)
		assert.Equal(t, queries.SortShopName, q.Sort)
	})
}

func TestCanonicalQueryParams(t *testing.T) {
	now := time.Date(2024, 6, 15, 13, 0, 0, 0, seoul)

	t.Run("absent fields are omitted entirely", func(t *testing.T) {
		vals := queries.Compose(queries.NoticeFilter{}, now).Params()

		assert.Equal(t, "0", vals.Get("offset"))
		assert.Equal(t, "6", vals.Get("limit"))
		assert.Equal(t, "time", vals.Get("sort"))
		assert.NotEmpty(t, vals.Get("startsAtGte"))

		_, hasKeyword := vals["keyword"]
		assert.False(t, hasKeyword)
		_, hasPay := vals["hourlyPayGte"]
		assert.False(t, hasPay)
		_, hasAddress := vals["address"]
		assert.False(t, hasAddress)
	})

	t.Run("set fields are rendered", func(t *testing.T) {
		vals := queries.Compose(queries.NoticeFilter{
			Addresses:    []string{"서울시 강남구", "서울시 마포구"},
			Keyword:      "카페",
			HourlyPayGte: 12000,
			Sort:         queries.SortPayDescending,
			Page:         3,
		}, now).Params()

		assert.Equal(t, []string{"서울시 강남구", "서울시 마포구"}, vals["address"])
		assert.Equal(t, "카페", vals.Get("keyword"))
		assert.Equal(t, "12000", vals.Get("hourlyPayGte"))
		assert.Equal(t, "pay", vals.Get("sort"))
		assert.Equal(t, "12", vals.Get("offset"))
	})

	t.Run("recommendation branch omits sort when address-driven", func(t *testing.T) {
		vals := queries.ComposeRecommendation("서울시 강남구", now).Params()
		_, hasSort := vals["sort"]
		assert.False(t, hasSort)
		assert.Equal(t, []string{"서울시 강남구"}, vals["address"])
	})
}
