// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const defaultTimeout = 15 * time.Second

// Config locates the server.
type Config struct {
	// Address is "host:port" or a full URL. A missing scheme means http.
	Address string
	Token   string
	Timeout time.Duration
}

type httpVaultClient struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPVaultClient constructs the REST implementation of [VaultClient].
// It returns an error if cfg.Address is empty or not a valid URL.
func NewHTTPVaultClient(cfg Config, logger *logger.Logger) (VaultClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")

	c := &httpVaultClient{client: client, logger: logger}
	c.SetToken(cfg.Token)
	return c, nil
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

func (h *httpVaultClient) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpVaultClient) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpVaultClient) Version(ctx context.Context) (BuildInfo, error) {
	var info BuildInfo

	resp, err := h.request(ctx).SetResult(&info).Get("/api/version")
	if err != nil {
		return BuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return BuildInfo{}, err
	}
	return info, nil
}

func (h *httpVaultClient) CreateLink(ctx context.Context, req CreateLinkRequest) (models.CollectionLink, error) {
	var link models.CollectionLink

	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&link).
		Post("/api/links")
	if err != nil {
		return models.CollectionLink{}, fmt.Errorf("create link request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CollectionLink{}, err
	}

	h.logger.Debug().Str("func", "httpVaultClient.CreateLink").Str("link_id", link.ID).Msg("link created")
	return link, nil
}

func (h *httpVaultClient) ListLinks(ctx context.Context) ([]models.CollectionLink, error) {
	var links []models.CollectionLink

	resp, err := h.request(ctx).SetResult(&links).Get("/api/links")
	if err != nil {
		return nil, fmt.Errorf("list links request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return links, nil
}

func (h *httpVaultClient) RevokeLink(ctx context.Context, id string) error {
	resp, err := h.request(ctx).
		SetPathParam("id", id).
		Delete("/api/links/{id}")
	if err != nil {
		return fmt.Errorf("revoke link request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpVaultClient) LinkStatus(ctx context.Context, id string) (models.LinkStatus, error) {
	var status models.LinkStatus

	resp, err := h.request(ctx).
		SetPathParam("id", id).
		SetResult(&status).
		Get("/api/public/links/{id}")
	if err != nil {
		return models.LinkStatus{}, fmt.Errorf("link status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LinkStatus{}, err
	}
	return status, nil
}

func (h *httpVaultClient) Submit(ctx context.Context, linkID string, req SubmitRequest) (string, error) {
	var created submitResponse

	resp, err := h.request(ctx).
		SetPathParam("id", linkID).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&created).
		Post("/api/public/links/{id}/submit")
	if err != nil {
		return "", fmt.Errorf("submit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return created.ID, nil
}

func (h *httpVaultClient) Open(ctx context.Context, linkID, passphrase string) (models.DisclosedItem, error) {
	var disclosed models.DisclosedItem

	resp, err := h.request(ctx).
		SetPathParam("id", linkID).
		SetHeader("Content-Type", "application/json").
		SetBody(openRequest{Passphrase: passphrase}).
		SetResult(&disclosed).
		Post("/api/public/links/{id}/open")
	if err != nil {
		return models.DisclosedItem{}, fmt.Errorf("open request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DisclosedItem{}, err
	}
	return disclosed, nil
}

// request starts a request carrying the bearer token, if any.
func (h *httpVaultClient) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
