package gateway

import (
	"context"
	"net/http"
	"net/url"

	"thejulge/internal/domain/account"
	"thejulge/internal/usecase/commands"
)

type userItem struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Type    string `json:"type"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
	Bio     string `json:"bio,omitempty"`
}

type userResponse struct {
	Item userItem `json:"item"`
}

type tokenResponse struct {
	Item struct {
		Token string `json:"token"`
		User  struct {
			Item userItem `json:"item"`
		} `json:"user"`
	} `json:"item"`
}

// FindProfile implements both queries.ProfileReader and the read half of
// commands.ProfileGateway.
func (c *Client) FindProfile(ctx context.Context, accountID string) (*account.Profile, error) {
	var resp userResponse
	if err := c.do(ctx, http.MethodGet, "/users/"+url.PathEscape(accountID), nil, nil, &resp); err != nil {
		return nil, err
	}
	return toProfile(resp.Item)
}

// UpdateProfile implements the write half of commands.ProfileGateway.
func (c *Client) UpdateProfile(ctx context.Context, accountID string, params commands.UpdateProfileParams) (*account.Profile, error) {
	body := struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
		Bio     string `json:"bio"`
	}{
		Name:    params.Name,
		Phone:   params.Phone,
		Address: params.Address,
		Bio:     params.Bio,
	}

	var resp userResponse
	if err := c.do(ctx, http.MethodPut, "/users/"+url.PathEscape(accountID), nil, body, &resp); err != nil {
		return nil, err
	}
	return toProfile(resp.Item)
}

// IssueToken implements the login half of commands.AuthGateway.
func (c *Client) IssueToken(ctx context.Context, email, password string) (*commands.TokenGrant, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp tokenResponse
	if err := c.do(ctx, http.MethodPost, "/token", nil, body, &resp); err != nil {
		return nil, err
	}

	profile, err := toProfile(resp.Item.User.Item)
	if err != nil {
		return nil, err
	}
	return &commands.TokenGrant{Token: resp.Item.Token, Profile: *profile}, nil
}

// CreateAccount implements the signup half of commands.AuthGateway.
func (c *Client) CreateAccount(ctx context.Context, email, password string, role account.Role) (*account.Profile, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
		Type     string `json:"type"`
	}{Email: email, Password: password, Type: role.String()}

	var resp userResponse
	if err := c.do(ctx, http.MethodPost, "/users", nil, body, &resp); err != nil {
		return nil, err
	}
	return toProfile(resp.Item)
}

func toProfile(item userItem) (*account.Profile, error) {
	role, err := account.NewRole(item.Type)
	if err != nil {
		return nil, err
	}
	return &account.Profile{
		ID:      item.ID,
		Email:   item.Email,
		Role:    role,
		Name:    item.Name,
		Phone:   item.Phone,
		Address: item.Address,
		Bio:     item.Bio,
	}, nil
}
