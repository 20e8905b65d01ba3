package queries

import (
	"time"

	"thejulge/internal/domain/application"
	"thejulge/internal/domain/notice"
)

// NoticeView is the read model for one notice card: the stored fields plus
// the display state derived at read time.
type NoticeView struct {
	ID                string    `json:"id"`
	HourlyPay         int       `json:"hourly_pay"`
	StartsAt          time.Time `json:"starts_at"`
	Workhour          int       `json:"workhour"`
	Description       string    `json:"description"`
	Closed            bool      `json:"closed"`
	Status            string    `json:"status"`
	PayPremiumPercent int       `json:"pay_premium_percent"`
	Shop              ShopView  `json:"shop"`
}

type ShopView struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2"`
	Description       string `json:"description"`
	ImageURL          string `json:"image_url"`
	OriginalHourlyPay int    `json:"original_hourly_pay"`
}

// NoticeListPage is one page of the grid feed.
type NoticeListPage struct {
	Items   []NoticeView `json:"items"`
	Offset  int          `json:"offset"`
	Limit   int          `json:"limit"`
	Count   int          `json:"count"`
	HasNext bool         `json:"has_next"`
}

// NoticePage is the raw paged result from the remote search, before display
// annotation.
type NoticePage struct {
	Items   []notice.Notice
	Offset  int
	Limit   int
	Count   int
	HasNext bool
}

// NoticeDetail is one notice plus the caller's own application for it, if any.
type NoticeDetail struct {
	Notice      notice.Notice
	Application *application.Application
}

func NewNoticeView(n notice.Notice, now time.Time) NoticeView {
	return NoticeView{
		ID:                n.ID,
		HourlyPay:         n.HourlyPay,
		StartsAt:          n.StartsAt,
		Workhour:          n.Workhour,
		Description:       n.Description,
		Closed:            n.Closed,
		Status:            n.StatusAt(now).String(),
		PayPremiumPercent: n.PayPremiumPercent(),
		Shop: ShopView{
			ID:                n.Shop.ID,
			Name:              n.Shop.Name,
			Category:          n.Shop.Category,
			Address1:          n.Shop.Address1,
			Address2:          n.Shop.Address2,
			Description:       n.Shop.Description,
			ImageURL:          n.Shop.ImageURL,
			OriginalHourlyPay: n.Shop.OriginalHourlyPay,
		},
	}
}
