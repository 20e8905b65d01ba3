package account

// Profile is the account profile held by the remote API. For employees the
// name/phone/address/bio block is the worker profile; Address doubles as the
// preferred district driving the recommendation feed.
type Profile struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Role    Role   `json:"type"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

// IsComplete reports whether the worker profile has been filled in. The
// presence of a name is the completion proxy gating application submission.
func (p Profile) IsComplete() bool {
	return p.Name != ""
}
