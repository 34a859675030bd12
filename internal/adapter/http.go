package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-qr-history/internal/config"
	"github.com/MKhiriev/go-qr-history/internal/logger"
	"github.com/MKhiriev/go-qr-history/internal/utils"
	"github.com/MKhiriev/go-qr-history/models"
	"github.com/go-resty/resty/v2"
)

// SaveQRHistoryPath is the history endpoint, relative to the base URL.
const SaveQRHistoryPath = "/save_qr_history"

// requestIDHeader lets the server correlate its log lines with ours.
const requestIDHeader = "X-Request-ID"

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP/JSON implementation of
// [ServerAdapter]. The base URL comes from adapterCfg.HTTPAddress; a bare
// "host:port" is treated as plain http.
//
// Returns an error if the address is empty or cannot be parsed as a URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.token
}

// SaveQRHistory implements [ServerAdapter]. It POSTs record as JSON to
// [SaveQRHistoryPath] and decodes the JSON reply. An empty reply body
// yields an empty response.
func (h *httpServerAdapter) SaveQRHistory(ctx context.Context, record models.QRUploadRecord) (models.QRHistoryResponse, error) {
	requestID, ok := utils.GetTraceIDFromContext(ctx)
	if !ok {
		requestID = h.ids.Generate()
	}

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader(requestIDHeader, requestID).
		SetBody(record).
		Post(SaveQRHistoryPath)
	if err != nil {
		return nil, fmt.Errorf("save qr history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("qr history request completed")

	result := models.QRHistoryResponse{}
	if body := resp.Body(); len(strings.TrimSpace(string(body))) > 0 {
		if err = json.Unmarshal(body, &result); err != nil {
			return nil, fmt.Errorf("decode save qr history response: %w", err)
		}
	}

	return result, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
