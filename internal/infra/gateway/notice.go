package gateway

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"thejulge/internal/domain/application"
	"thejulge/internal/domain/notice"
	"thejulge/internal/usecase/commands"
	"thejulge/internal/usecase/queries"
)

// Wire shapes of the remote API. Every item arrives wrapped in an
// {item: ...} envelope, nested ones included.

type shopItem struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2"`
	Description       string `json:"description"`
	ImageURL          string `json:"imageUrl"`
	OriginalHourlyPay int    `json:"originalHourlyPay"`
}

type shopEnvelope struct {
	Item shopItem `json:"item"`
}

type applicationItem struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type applicationEnvelope struct {
	Item applicationItem `json:"item"`
}

type noticeItem struct {
	ID                     string               `json:"id"`
	HourlyPay              int                  `json:"hourlyPay"`
	StartsAt               time.Time            `json:"startsAt"`
	Workhour               int                  `json:"workhour"`
	Description            string               `json:"description"`
	Closed                 bool                 `json:"closed"`
	Shop                   *shopEnvelope        `json:"shop,omitempty"`
	CurrentUserApplication *applicationEnvelope `json:"currentUserApplication,omitempty"`
}

type listNoticesResponse struct {
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	Count   int  `json:"count"`
	HasNext bool `json:"hasNext"`
	Items   []struct {
		Item noticeItem `json:"item"`
	} `json:"items"`
}

type noticeDetailResponse struct {
	Item noticeItem `json:"item"`
}

// ListNotices implements queries.NoticeReader.
func (c *Client) ListNotices(ctx context.Context, q queries.CanonicalQuery) (*queries.NoticePage, error) {
	var resp listNoticesResponse
	if err := c.do(ctx, http.MethodGet, "/notices", q.Params(), nil, &resp); err != nil {
		return nil, err
	}

	items := make([]notice.Notice, len(resp.Items))
	for i, entry := range resp.Items {
		items[i] = toNotice(entry.Item)
	}
	return &queries.NoticePage{
		Items:   items,
		Offset:  resp.Offset,
		Limit:   resp.Limit,
		Count:   resp.Count,
		HasNext: resp.HasNext,
	}, nil
}

// FindNotice implements queries.NoticeDetailReader, including the caller's
// own application when the bearer token identifies one.
func (c *Client) FindNotice(ctx context.Context, shopID, noticeID string) (*queries.NoticeDetail, error) {
	path := "/shops/" + url.PathEscape(shopID) + "/notices/" + url.PathEscape(noticeID)

	var resp noticeDetailResponse
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &resp); err != nil {
		return nil, err
	}

	detail := &queries.NoticeDetail{Notice: toNotice(resp.Item)}
	if env := resp.Item.CurrentUserApplication; env != nil {
		status, err := application.ParseStatus(env.Item.Status)
		if err != nil {
			return nil, err
		}
		detail.Application = &application.Application{
			ID:        env.Item.ID,
			NoticeID:  resp.Item.ID,
			ShopID:    shopID,
			Status:    status,
			CreatedAt: env.Item.CreatedAt,
		}
	}
	return detail, nil
}

func toNotice(item noticeItem) notice.Notice {
	n := notice.Notice{
		ID:          item.ID,
		HourlyPay:   item.HourlyPay,
		StartsAt:    item.StartsAt,
		Workhour:    item.Workhour,
		Description: item.Description,
		Closed:      item.Closed,
	}
	if item.Shop != nil {
		s := item.Shop.Item
		n.Shop = notice.Shop{
			ID:                s.ID,
			Name:              s.Name,
			Category:          s.Category,
			Address1:          s.Address1,
			Address2:          s.Address2,
			Description:       s.Description,
			ImageURL:          s.ImageURL,
			OriginalHourlyPay: s.OriginalHourlyPay,
		}
	}
	return n
}

// NoticeSnapshots satisfies the command layer's NoticeGateway with write-side
// snapshots instead of read views.
type NoticeSnapshots struct {
	client *Client
}

func NewNoticeSnapshots(client *Client) *NoticeSnapshots {
	return &NoticeSnapshots{client: client}
}

func (a *NoticeSnapshots) FindNotice(ctx context.Context, shopID, noticeID string) (*commands.NoticeSnapshot, error) {
	detail, err := a.client.FindNotice(ctx, shopID, noticeID)
	if err != nil {
		return nil, err
	}
	return &commands.NoticeSnapshot{
		ID:          detail.Notice.ID,
		ShopID:      shopID,
		StartsAt:    detail.Notice.StartsAt,
		Closed:      detail.Notice.Closed,
		Application: detail.Application,
	}, nil
}
