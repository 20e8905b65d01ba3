package gateway

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"thejulge/internal/domain/application"
)

type applicationResponse struct {
	Item applicationItem `json:"item"`
}

// Create implements the submit side of commands.ApplicationGateway. The
// returned application carries the server-assigned id the client keeps as its
// "my application for this notice" pointer.
func (c *Client) Create(ctx context.Context, shopID, noticeID string) (*application.Application, error) {
	path := "/shops/" + url.PathEscape(shopID) + "/notices/" + url.PathEscape(noticeID) + "/applications"

	var resp applicationResponse
	if err := c.do(ctx, http.MethodPost, path, nil, struct{}{}, &resp); err != nil {
		return nil, err
	}

	status, err := application.ParseStatus(resp.Item.Status)
	if err != nil {
		return nil, err
	}
	return &application.Application{
		ID:        resp.Item.ID,
		NoticeID:  noticeID,
		ShopID:    shopID,
		Status:    status,
		CreatedAt: resp.Item.CreatedAt,
	}, nil
}

// SetStatus pushes a status transition to the remote API. The optimistic
// local mutation has already happened by the time this is called; a returned
// error triggers the caller's rollback.
func (c *Client) SetStatus(ctx context.Context, shopID, noticeID, applicationID string, status application.Status) error {
	path := "/shops/" + url.PathEscape(shopID) +
		"/notices/" + url.PathEscape(noticeID) +
		"/applications/" + url.PathEscape(applicationID)

	body := struct {
		Status string `json:"status"`
	}{Status: status.String()}

	return c.do(ctx, http.MethodPut, path, nil, body, nil)
}

type listApplicationsResponse struct {
	Offset  int  `json:"offset"`
	Limit   int  `json:"limit"`
	Count   int  `json:"count"`
	HasNext bool `json:"hasNext"`
	Items   []struct {
		Item applicationItem `json:"item"`
	} `json:"items"`
}

// ListForNotice returns the applications filed under one notice, for the
// owning employer's decide flow.
func (c *Client) ListForNotice(ctx context.Context, shopID, noticeID string, offset, limit int) ([]*application.Application, error) {
	path := "/shops/" + url.PathEscape(shopID) + "/notices/" + url.PathEscape(noticeID) + "/applications"

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))

	var resp listApplicationsResponse
	if err := c.do(ctx, http.MethodGet, path, query, nil, &resp); err != nil {
		return nil, err
	}

	apps := make([]*application.Application, 0, len(resp.Items))
	for _, entry := range resp.Items {
		status, err := application.ParseStatus(entry.Item.Status)
		if err != nil {
			return nil, err
		}
		apps = append(apps, &application.Application{
			ID:        entry.Item.ID,
			NoticeID:  noticeID,
			ShopID:    shopID,
			Status:    status,
			CreatedAt: entry.Item.CreatedAt,
		})
	}
	return apps, nil
}
