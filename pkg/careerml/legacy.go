package careerml

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultLegacyURL = "http://127.0.0.1:8000"

// LegacyClient calls the older REST backend (onboard / recommend / profile).
type LegacyClient struct {
	BaseURL string
	httpDo  *http.Client
}

func NewLegacy(baseURL string, timeout time.Duration) *LegacyClient {
	if baseURL == "" {
		baseURL = DefaultLegacyURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &LegacyClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: timeout},
	}
}

type onboardRequest struct {
	UserID   string `json:"user_id"`
	UserData any    `json:"user_data"`
}

type recommendRequest struct {
	Skills             []string `json:"skills"`
	ProjectDescription string   `json:"project_description"`
}

func (c *LegacyClient) Onboard(ctx context.Context, userID string, userData any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, "/onboard", onboardRequest{UserID: userID, UserData: userData})
}

func (c *LegacyClient) Recommend(ctx context.Context, skills []string, projectDescription string) (json.RawMessage, error) {
	if skills == nil {
		skills = []string{}
	}
	return c.do(ctx, http.MethodPost, "/recommend", recommendRequest{Skills: skills, ProjectDescription: projectDescription})
}

func (c *LegacyClient) Profile(ctx context.Context, userID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/profile/"+url.PathEscape(userID), nil)
}

func (c *LegacyClient) do(ctx context.Context, method, path string, payload any) (json.RawMessage, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		body = bytes.NewReader(data)
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpDo.Do(httpReq)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&errBody)
		msg := errBody.Error
		if msg == "" {
			msg = fmt.Sprintf("API error: %d", resp.StatusCode)
		}
		return nil, &APIError{StatusCode: resp.StatusCode, Message: msg}
	}
	var out json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode legacy response: %w", err)
	}
	return out, nil
}
