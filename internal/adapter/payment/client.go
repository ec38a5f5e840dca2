package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/anporsh/printery/internal/domain/model"
)

// ErrRejected indicates the gateway refused the submitted line items.
var ErrRejected = errors.New("payment gateway rejected line items")

// Client exposes operations against the payment gateway.
type Client interface {
	CreateCheckoutSession(ctx context.Context, items []model.LineItem) (*model.CheckoutSession, error)
}

// Config carries everything needed to talk to the gateway. Passed at
// construction so tests can point the client at a double.
type Config struct {
	BaseURL    string
	APIKey     string
	SuccessURL string
	CancelURL  string
}

// HTTPClient implements Client via the gateway's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	successURL string
	cancelURL  string
	httpClient *http.Client
	logger     *slog.Logger
}

type lineItemPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	UnitAmount  int64  `json:"unit_amount"`
	Quantity    int32  `json:"quantity"`
}

// sessionRequest mirrors the gateway's checkout-session creation payload.
type sessionRequest struct {
	Mode       string            `json:"mode"`
	SuccessURL string            `json:"success_url"`
	CancelURL  string            `json:"cancel_url"`
	LineItems  []lineItemPayload `json:"line_items"`
}

type sessionResponse struct {
	AmountTotal int64  `json:"amount_total"`
	URL         string `json:"url"`
}

// NewHTTPClient creates an HTTP gateway client with default timeout.
func NewHTTPClient(cfg Config, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL:    parsed,
		apiKey:     cfg.APIKey,
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		logger:     logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateCheckoutSession opens a single-payment hosted checkout session
// for the given line items and returns its total and redirect URL.
func (c *HTTPClient) CreateCheckoutSession(ctx context.Context, items []model.LineItem) (*model.CheckoutSession, error) {
	payload := sessionRequest{
		Mode:       "payment",
		SuccessURL: c.successURL,
		CancelURL:  c.cancelURL,
		LineItems:  make([]lineItemPayload, 0, len(items)),
	}
	for _, item := range items {
		payload.LineItems = append(payload.LineItems, lineItemPayload{
			Name:        item.Name,
			Description: item.Description,
			UnitAmount:  item.UnitAmount,
			Quantity:    item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/checkout/sessions")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data sessionResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		if data.URL == "" {
			return nil, fmt.Errorf("gateway returned session without url")
		}
		return &model.CheckoutSession{AmountTotal: data.AmountTotal, URL: data.URL}, nil
	case http.StatusUnprocessableEntity:
		return nil, ErrRejected
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("checkout session request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("payment gateway error: %s", resp.Status)
	}
}
