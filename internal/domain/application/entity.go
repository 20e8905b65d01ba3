package application

import "time"

// Application is the worker-side record of an application to one notice.
// CreatedAt is set once by the remote API at submission and never mutated.
// Status is the only mutable field; it moves along the edges in status.go.
type Application struct {
	ID        string    `json:"id"`
	NoticeID  string    `json:"noticeId"`
	ShopID    string    `json:"shopId"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

func (a *Application) IsApplied() bool {
	return a.Status.IsApplied()
}
