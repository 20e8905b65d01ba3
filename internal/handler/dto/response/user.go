package response

import "thejulge/internal/domain/account"

type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

func FromProfile(p *account.Profile) *UserResponse {
	return &UserResponse{
		ID:      p.ID,
		Email:   p.Email,
		Type:    p.Role.String(),
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
		Bio:     p.Bio,
	}
}
