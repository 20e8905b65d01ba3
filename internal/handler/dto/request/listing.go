package request

import "time"

// FilterRequest carries the user's search inputs. Absent fields stay at their
// zero values and are dropped during query composition, never sent as empty.
type FilterRequest struct {
	Addresses    []string   `json:"addresses" binding:"omitempty,dive,min=1"`
	Keyword      string     `json:"keyword" binding:"omitempty"`
	StartsAtGte  *time.Time `json:"starts_at_gte" binding:"omitempty"`
	HourlyPayGte int        `json:"hourly_pay_gte" binding:"omitempty,min=0"`
	Sort         string     `json:"sort" binding:"omitempty,oneof=time pay hour shop"`
}

type PageRequest struct {
	Page int `json:"page" binding:"required,min=1"`
}
