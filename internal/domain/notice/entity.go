package notice

import "time"

// Shop is the snapshot of the shop a notice belongs to, as delivered by the
// remote API. A notice belongs to exactly one shop and never moves.
type Shop struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Category          string `json:"category"`
	Address1          string `json:"address1"`
	Address2          string `json:"address2"`
	Description       string `json:"description"`
	ImageURL          string `json:"imageUrl"`
	OriginalHourlyPay int    `json:"originalHourlyPay"`
}

// Notice is a point-in-time snapshot of a job posting. IDs are opaque strings
// assigned by the remote API. The effective status is not a field here; derive
// it with StatusAt.
type Notice struct {
	ID          string    `json:"id"`
	HourlyPay   int       `json:"hourlyPay"`
	StartsAt    time.Time `json:"startsAt"`
	Workhour    int       `json:"workhour"`
	Description string    `json:"description"`
	Closed      bool      `json:"closed"`
	Shop        Shop      `json:"shop"`
}

func (n Notice) StatusAt(now time.Time) Status {
	return DeriveStatus(n.StartsAt, n.Closed, now)
}

// PayPremiumPercent is how far the notice's pay sits above the shop's baseline
// hourly pay, rounded down. Zero when the baseline is unknown or not exceeded.
// Used only for the pay badge next to the wage.
func (n Notice) PayPremiumPercent() int {
	base := n.Shop.OriginalHourlyPay
	if base <= 0 || n.HourlyPay <= base {
		return 0
	}
	return (n.HourlyPay - base) * 100 / base
}
