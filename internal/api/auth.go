package api

import "fmt"

// Login exchanges credentials for a bearer token. The token is returned
// to the caller; attaching it to the client is the session store's job.
func (c *Client) Login(email, password string) (string, error) {
	var resp LoginResponse
	creds := Credentials{Email: email, Password: password}
	if err := c.Post("/auth/login", creds, &resp); err != nil {
		return "", fmt.Errorf("login failed: %w", err)
	}
	return resp.Token, nil
}

// Register creates a new account. It does not establish a session.
func (c *Client) Register(email, password string) error {
	creds := Credentials{Email: email, Password: password}
	if err := c.Post("/auth/register", creds, nil); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	return nil
}

// GetProfile returns the profile of the user owning the current token.
func (c *Client) GetProfile() (*User, error) {
	var user User
	if err := c.Get("/auth/me", &user); err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return &user, nil
}
