package queries

import (
	"net/url"
	"strconv"
	"time"

	"thejulge/internal/pkg/patch"
)

// Sort values mirror the sort parameter of the remote notice search.
type Sort string

const (
	SortClosingSoon   Sort = "time" // default
	SortPayDescending Sort = "pay"
	SortHoursAsc      Sort = "hour"
	SortShopName      Sort = "shop"
)

func (s Sort) IsValid() bool {
	switch s {
	case SortClosingSoon, SortPayDescending, SortHoursAsc, SortShopName:
		return true
	default:
		return false
	}
}

const (
	// GridPageSize is the main listing grid page size.
	GridPageSize = 6
	// RecommendLimit caps the personalized strip.
	RecommendLimit = 9
)

// NoticeFilter is the user-supplied, partially specified search input. Zero
// values mean "not set" and are omitted from the canonical query.
type NoticeFilter struct {
	Addresses    []string   // district names, OR semantics
	Keyword      string     // free-text search
	StartsAtGte  *time.Time // minimum shift start; nil → start of tomorrow
	HourlyPayGte int        // minimum hourly pay; 0 → unset
	Sort         Sort       // empty or invalid → SortClosingSoon
	Page         int        // 1-indexed; <1 → 1
	PageSize     int        // <=0 → GridPageSize
}

// CanonicalQuery is the fully resolved, server-bound query. StartsAtGte is
// always set after composition; Sort may be empty only for the
// address-filtered recommendation branch, where it is omitted on the wire.
type CanonicalQuery struct {
	Offset       int
	Limit        int
	Addresses    []string
	Keyword      string
	StartsAtGte  time.Time
	HourlyPayGte int
	Sort         Sort
}

// Compose canonicalizes a filter. It never errors: malformed inputs degrade
// to omitting that field or falling back to the default, never to a failure.
func Compose(f NoticeFilter, now time.Time) CanonicalQuery {
	page := f.Page
	if page < 1 {
		page = 1
	}
	pageSize := f.PageSize
	if pageSize <= 0 {
		pageSize = GridPageSize
	}
	sort := f.Sort
	if !sort.IsValid() {
		sort = SortClosingSoon
	}

	return CanonicalQuery{
		Offset:       (page - 1) * pageSize,
		Limit:        pageSize,
		Addresses:    compactStrings(f.Addresses),
		Keyword:      f.Keyword,
		StartsAtGte:  patch.Coalesce(f.StartsAtGte, StartOfTomorrow(now)),
		HourlyPayGte: max(f.HourlyPayGte, 0),
		Sort:         sort,
	}
}

// ComposeRecommendation builds the personalized-strip query. A declared
// preferred district replaces the default shop-name ordering; the two are
// mutually exclusive, never combined.
func ComposeRecommendation(preferredAddress string, now time.Time) CanonicalQuery {
	q := CanonicalQuery{
		Offset:      0,
		Limit:       RecommendLimit,
		StartsAtGte: StartOfTomorrow(now),
	}
	if preferredAddress != "" {
		q.Addresses = []string{preferredAddress}
	} else {
		q.Sort = SortShopName
	}
	return q
}

// StartOfTomorrow is the local-calendar-day boundary advanced by one day.
// Defaulting StartsAtGte to it keeps past-starting and same-day-expiring
// notices out of the default browse experience without a separate flag.
func StartOfTomorrow(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
}

// Params renders the query as wire parameters. Absent fields are dropped
// entirely; an empty keyword or a zero pay bound is never sent.
func (q CanonicalQuery) Params() url.Values {
	vals := url.Values{}
	vals.Set("offset", strconv.Itoa(q.Offset))
	vals.Set("limit", strconv.Itoa(q.Limit))
	for _, addr := range q.Addresses {
		vals.Add("address", addr)
	}
	if q.Keyword != "" {
		vals.Set("keyword", q.Keyword)
	}
	if !q.StartsAtGte.IsZero() {
		vals.Set("startsAtGte", q.StartsAtGte.Format(time.RFC3339))
	}
	if q.HourlyPayGte > 0 {
		vals.Set("hourlyPayGte", strconv.Itoa(q.HourlyPayGte))
	}
	if q.Sort != "" {
		vals.Set("sort", string(q.Sort))
	}
	return vals
}

func compactStrings(in []string) []string {
	var out []string
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
