package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/MKhiriev/threadboard/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter returns a ServerAdapter for the API at address. A
// missing scheme defaults to http.
func NewHTTPServerAdapter(address string, timeout time.Duration, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, timeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", errEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", errNoHost
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) Register(ctx context.Context, req models.NewAccountRequest) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/account/new")
	if err != nil {
		return fmt.Errorf("register request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, email, password string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"email":    email,
			"password": password,
		}).
		Post("/api/account/login")
	if err != nil {
		return fmt.Errorf("login request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/logout")
	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateThread(ctx context.Context, title, body string) (models.Thread, error) {
	var thread models.Thread

	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"title": title,
			"body":  body,
		}).
		SetResult(&thread).
		Post("/api/thread/new")
	if err != nil {
		return models.Thread{}, fmt.Errorf("create thread request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Thread{}, err
	}

	return thread, nil
}

func (h *httpServerAdapter) ListThreads(ctx context.Context, limit, offset uint64) (models.ThreadList, error) {
	var list models.ThreadList

	req := h.client.R().
		SetContext(ctx).
		SetResult(&list)
	if limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(limit, 10))
	}
	if offset > 0 {
		req.SetQueryParam("offset", strconv.FormatUint(offset, 10))
	}

	resp, err := req.Get("/api/threads")
	if err != nil {
		return models.ThreadList{}, fmt.Errorf("list threads request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ThreadList{}, err
	}

	return list, nil
}

func (h *httpServerAdapter) GetThread(ctx context.Context, id int64) (models.Thread, error) {
	var thread models.Thread

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&thread).
		Get("/api/thread/{id}")
	if err != nil {
		return models.Thread{}, fmt.Errorf("get thread request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Thread{}, err
	}

	return thread, nil
}
