package response

import (
	"time"

	"thejulge/internal/domain/application"
)

type ApplicationResponse struct {
	ID        string `json:"id"`
	NoticeID  string `json:"notice_id"`
	ShopID    string `json:"shop_id"`
	Status    string `json:"status"`
	Applied   bool   `json:"applied"`
	CreatedAt string `json:"created_at"`
}

func FromApplication(app *application.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:        app.ID,
		NoticeID:  app.NoticeID,
		ShopID:    app.ShopID,
		Status:    app.Status.String(),
		Applied:   app.IsApplied(),
		CreatedAt: app.CreatedAt.Format(time.RFC3339),
	}
}
