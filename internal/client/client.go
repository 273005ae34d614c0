// Package client is the typed API wrapper used by the view layer: one
// method per REST operation, with the bearer token attached automatically
// when the session holds one.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/locauto/locauto-go/internal/model"
	"github.com/locauto/locauto-go/internal/session"
)

// APIError carries the HTTP status and the error message from the
// response body.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Client issues requests to the vehicle and auth endpoints. Failures are
// never retried and responses are never cached.
type Client struct {
	baseURL string
	http    *http.Client
	session *session.Session
}

// New creates a Client for the given base URL and session.
func New(baseURL string, sess *session.Session) *Client {
	return &Client{
		baseURL: baseURL,
		http:    http.DefaultClient,
		session: sess,
	}
}

// List fetches all vehicles.
func (c *Client) List(ctx context.Context) ([]model.Vehicle, error) {
	var vehicles []model.Vehicle
	if err := c.do(ctx, http.MethodGet, "/api/veiculos", nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Get fetches one vehicle by id.
func (c *Client) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/veiculos/%d", id), nil, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Create adds a new vehicle and returns the stored record with its
// assigned id.
func (c *Client) Create(ctx context.Context, req model.VehicleRequest) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := c.do(ctx, http.MethodPost, "/api/veiculos", req, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Update merges the given fields into the vehicle and returns the updated
// record.
func (c *Client) Update(ctx context.Context, id int64, upd model.VehicleUpdate) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/veiculos/%d", id), upd, &vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Delete removes a vehicle.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/veiculos/%d", id), nil, nil)
}

// Login authenticates the admin identity, advancing the session through
// its LoggingIn state and storing the token on success.
func (c *Client) Login(ctx context.Context, email, password string) error {
	c.session.Begin()

	var resp model.TokenResponse
	err := c.do(ctx, http.MethodPost, "/api/login", model.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		c.session.Fail(err)
		return err
	}

	c.session.Succeed(resp.Token)
	return nil
}

// Logout drops the session token.
func (c *Client) Logout() {
	c.session.Logout()
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = &bytes.Buffer{}
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil || errBody.Error == "" {
			errBody.Error = resp.Status
		}
		return &APIError{Status: resp.StatusCode, Message: errBody.Error}
	}

	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}
