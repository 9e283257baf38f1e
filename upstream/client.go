package upstream

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
)

// ErrNotConfigured is returned when TRAVEL_API_URL is unset.
var ErrNotConfigured = errors.New("upstream API base address not configured")

// StatusError carries a non-2xx upstream response so handlers can relay
// its status and body verbatim.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d", e.StatusCode)
}

// Client talks to the external AI/travel API. The zero http.Client carries
// no timeout on purpose: a slow completion holds its request open rather
// than being cut off mid-generation.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: os.Getenv("TRAVEL_API_URL"),
		HTTP:    &http.Client{},
	}
}

func (c *Client) post(path string, payload any) ([]byte, error) {
	if c.BaseURL == "" {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTP.Post(c.BaseURL+path, "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}
	return data, nil
}

// MultiModelChat requests a chat completion from the named model.
func (c *Client) MultiModelChat(model, prompt string) (string, error) {
	data, err := c.post("/multimodelchat", map[string]string{
		"model":  model,
		"prompt": prompt,
	})
	if err != nil {
		return "", err
	}

	var out struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return "", err
	}
	return out.Result, nil
}

// TravelPlan fetches a generated itinerary. The response envelope is
// {"result": "<JSON-encoded array>"}; the raw body is returned for the
// planner to unpack since malformed payloads degrade rather than fail.
func (c *Client) TravelPlan(prompt string) ([]byte, error) {
	return c.post("/travel_plan", map[string]string{"prompt": prompt})
}

// GenerateRecipe forwards a recipe prompt and returns the raw JSON body.
func (c *Client) GenerateRecipe(prompt string) ([]byte, error) {
	return c.post("/generate_recipe_with_image", map[string]string{"prompt": prompt})
}
