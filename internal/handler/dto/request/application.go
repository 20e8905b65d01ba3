package request

// UpdateApplicationRequest drives the withdraw and decide transitions. The
// mutation is two-phase: a request without confirmed=true only stages the
// action and is answered with a confirmation prompt, nothing is sent upstream.
type UpdateApplicationRequest struct {
	Status    string `json:"status" binding:"required,oneof=accepted rejected canceled"`
	Confirmed bool   `json:"confirmed"`
}
