package careerml

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const DefaultBaseURL = "http://127.0.0.1:18081/ml/api/v1"

// ErrTimeout is returned when the ML service does not answer in time.
var ErrTimeout = errors.New("request timed out")

// APIError is a non-2xx answer from a remote service.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// Client talks to the career ML service.
type Client struct {
	BaseURL string
	httpDo  *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpDo:  &http.Client{Timeout: timeout},
	}
}

type careerPlanRequest struct {
	ProfileData any `json:"profile_data"`
	QuizData    any `json:"quiz_data"`
}

type gapAnalysisRequest struct {
	UserSkills   []string `json:"user_skills"`
	DreamRole    string   `json:"dream_role"`
	DreamCompany string   `json:"dream_company,omitempty"`
}

// GenerateCareerPlan asks the service for a plan built from profile and quiz data.
func (c *Client) GenerateCareerPlan(ctx context.Context, profileData, quizData any) (json.RawMessage, error) {
	return c.postJSON(ctx, "/generate_career_plan", careerPlanRequest{ProfileData: profileData, QuizData: quizData})
}

// GapAnalysis compares the user's skills with a target role.
func (c *Client) GapAnalysis(ctx context.Context, userSkills []string, dreamRole, dreamCompany string) (json.RawMessage, error) {
	if userSkills == nil {
		userSkills = []string{}
	}
	return c.postJSON(ctx, "/gap_analysis", gapAnalysisRequest{
		UserSkills:   userSkills,
		DreamRole:    dreamRole,
		DreamCompany: dreamCompany,
	})
}

// postJSON returns the response as JSON; a 2xx body that is not JSON comes
// back as a JSON string.
func (c *Client) postJSON(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(data))
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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	text := string(body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(text, resp.StatusCode)}
	}
	if json.Valid(body) {
		return json.RawMessage(body), nil
	}
	quoted, err := json.Marshal(text)
	if err != nil {
		return nil, err
	}
	return quoted, nil
}

func errorMessage(text string, status int) string {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err == nil {
		if obj, ok := parsed.(map[string]any); ok {
			for _, key := range []string{"error", "message"} {
				if s, ok := obj[key].(string); ok && s != "" {
					return s
				}
			}
		}
		if b, err := json.Marshal(parsed); err == nil {
			return string(b)
		}
	}
	if strings.TrimSpace(text) != "" {
		return text
	}
	return fmt.Sprintf("HTTP %d", status)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
