package didit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SHEBN-DEV/Demoshebn/internal/config"
	"github.com/SHEBN-DEV/Demoshebn/internal/core/domain"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const apiKeyHeader = "x-api-key"

// DiditClient opens hosted verification sessions. The result is posted back
// to our callback endpoint, not returned here.
type DiditClient struct {
	http       *resty.Client
	log        *slog.Logger
	apiKey     string
	workflowID string
	sessionURL string
	callback   string
}

func NewDiditClient(
	log *slog.Logger,
	cfg config.VerificationConfig,
	callbackURL string,
) *DiditClient {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("Accept", "application/json")
	if cfg.APIKey != "" {
		client.SetHeader(apiKeyHeader, cfg.APIKey)
	}
	return &DiditClient{
		http:       client,
		log:        log,
		apiKey:     cfg.APIKey,
		workflowID: cfg.WorkflowID,
		sessionURL: cfg.SessionURL,
		callback:   callbackURL,
	}
}

type createSessionRequest struct {
	WorkflowID string `json:"workflow_id,omitempty"`
	Callback   string `json:"callback,omitempty"`
	VendorData string `json:"vendor_data,omitempty"`
}

type createSessionResponse struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

type apiError struct {
	Detail string `json:"detail"`
}

func (c *DiditClient) CreateSession(ctx context.Context) (*domain.VerificationSession, error) {
	// no credentials: a single pre-provisioned session link
	if c.apiKey == "" {
		c.log.WarnContext(ctx, "didit - create session - no api key, using static session url")
		return &domain.VerificationSession{ID: uuid.NewString(), URL: c.sessionURL}, nil
	}
	var out createSessionResponse
	var apiErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createSessionRequest{
			WorkflowID: c.workflowID,
			Callback:   c.callback,
			VendorData: uuid.NewString(),
		}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/v2/session/")
	if err != nil {
		return nil, fmt.Errorf("didit: create session: %w", err)
	}
	if resp.StatusCode() != http.StatusOK && resp.StatusCode() != http.StatusCreated {
		return nil, fmt.Errorf("didit: create session: status %d: %s", resp.StatusCode(), apiErr.Detail)
	}
	if out.SessionID == "" || out.URL == "" {
		return nil, errors.New("didit: create session: empty session in response")
	}
	c.log.InfoContext(ctx, "didit - create session - success", "session_id", out.SessionID)
	return &domain.VerificationSession{ID: out.SessionID, URL: out.URL}, nil
}
