package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/edulog/etugon/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

// Login exchanges credentials for an account. When the response carries a
// token but no user id, the id is taken from the token's claims.
func (c *Client) Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error) {
	var resp model.LoginResponse
	if err := c.call(ctx, http.MethodPost, "/login", req, &resp, false); err != nil {
		return nil, err
	}

	if resp.User.ID == 0 && resp.AccessToken != "" {
		id, err := UserIDFromToken(resp.AccessToken)
		if err != nil {
			slog.Debug("Login token carries no user id", "error", err)
		} else {
			resp.User.ID = id
		}
	}
	if resp.User.Email == "" {
		resp.User.Email = req.Email
	}
	return &resp, nil
}

// Signup registers a new account. The backend may answer with the user object
// itself or wrapped as {"user": {...}}.
func (c *Client) Signup(ctx context.Context, req model.SignupRequest) (*model.User, error) {
	var raw json.RawMessage
	if err := c.call(ctx, http.MethodPost, "/signup", req, &raw, false); err != nil {
		return nil, err
	}

	user := model.User{
		Username:     req.Username,
		Email:        req.Email,
		HouseNumber:  req.HouseNumber,
		Municipality: req.Municipality,
		Barangay:     req.Barangay,
	}
	if len(raw) == 0 {
		return &user, nil
	}

	var wrapped struct {
		User *model.User `json:"user"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.User != nil {
		return wrapped.User, nil
	}
	var direct model.User
	if err := json.Unmarshal(raw, &direct); err == nil && direct.ID != 0 {
		return &direct, nil
	}
	return &user, nil
}

// UserIDFromToken reads the user id from an access token's "user_id" or
// "sub" claim. The signature is not verified; the token is only trusted as far
// as the backend that issued it over this connection.
func UserIDFromToken(token string) (int, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return 0, fmt.Errorf("failed to parse access token: %w", err)
	}

	for _, key := range []string{"user_id", "sub"} {
		v, ok := claims[key]
		if !ok {
			continue
		}
		switch id := v.(type) {
		case float64:
			if id > 0 {
				return int(id), nil
			}
		case string:
			if n, err := strconv.Atoi(id); err == nil && n > 0 {
				return n, nil
			}
		}
	}
	return 0, fmt.Errorf("access token has no numeric user_id or sub claim")
}
