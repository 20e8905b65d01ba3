package request

type UpdateProfileRequest struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone" binding:"omitempty"`
	Address string `json:"address" binding:"omitempty"`
	Bio     string `json:"bio" binding:"omitempty,max=200"`
}
