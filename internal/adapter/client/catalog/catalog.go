package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/MikeRez0/studiodesk/internal/adapter/config"
	"github.com/MikeRez0/studiodesk/internal/core/domain"
	"github.com/MikeRez0/studiodesk/internal/core/port"
	"go.uber.org/zap"
)

var _ port.Catalog = (*CatalogClient)(nil)

const (
	defaultAttempts   = 3
	defaultRetryAfter = 1 * time.Second
	requestTimeout    = 5 * time.Second
)

// CatalogClient resolves clients and services from a remote catalog service.
type CatalogClient struct {
	logger     *zap.Logger
	host       string
	httpClient *http.Client
	attempts   int
}

func NewCatalogClient(cfg *config.Catalog, log *zap.Logger) (*CatalogClient, error) {
	if cfg.HostString == "" {
		return nil, errors.New("catalog address is empty")
	}
	host := cfg.HostString
	if !strings.HasPrefix(host, "http://") && !strings.HasPrefix(host, "https://") {
		host = "http://" + host
	}
	return &CatalogClient{
		host:       strings.TrimRight(host, "/"),
		logger:     log,
		httpClient: &http.Client{Timeout: requestTimeout},
		attempts:   defaultAttempts,
	}, nil
}

type clientResponse struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

type serviceResponse struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
	Unit  string `json:"unit"`
}

type errTooManyRequests struct {
	RetryAfter time.Duration
}

func (e *errTooManyRequests) Error() string {
	return fmt.Sprintf("Too Many Requests. Retry-After: %s", e.RetryAfter)
}

func (c *CatalogClient) ResolveClient(ctx context.Context, clientID uint64) (*domain.Client, error) {
	var resp clientResponse
	err := c.get(ctx, "/api/clients/"+strconv.FormatUint(clientID, 10), &resp)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUnknownClient
		}
		return nil, err
	}
	return &domain.Client{ID: clientID, Name: resp.Name, Phone: resp.Phone}, nil
}

func (c *CatalogClient) ResolveService(ctx context.Context, serviceID uint64) (*domain.Service, error) {
	var resp serviceResponse
	err := c.get(ctx, "/api/services/"+strconv.FormatUint(serviceID, 10), &resp)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrUnknownService
		}
		return nil, err
	}
	return &domain.Service{ID: serviceID, Title: resp.Title, Unit: resp.Unit}, nil
}

// get retries while the catalog answers 429, honouring Retry-After.
func (c *CatalogClient) get(ctx context.Context, path string, dst any) error {
	var err error
	for attempt := 1; attempt <= c.attempts; attempt++ {
		err = c.request(ctx, path, dst)

		var tooMany *errTooManyRequests
		if !errors.As(err, &tooMany) || attempt == c.attempts {
			return err
		}

		c.logger.Debug("Pause for requests",
			zap.String("path", path),
			zap.Duration("retry-after", tooMany.RetryAfter))

		r := time.NewTimer(tooMany.RetryAfter)
		select {
		case <-r.C:
		case <-ctx.Done():
			r.Stop()
			return ctx.Err()
		}
	}
	return err
}

func (c *CatalogClient) request(ctx context.Context, path string, dst any) error {
	requestStr := c.host + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestStr, http.NoBody)
	if err != nil {
		return fmt.Errorf("error on %s : %w", requestStr, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request error %s : %w", requestStr, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return domain.ErrDataNotFound
	case http.StatusTooManyRequests:
		retryAfter := defaultRetryAfter
		if sec, err := strconv.Atoi(resp.Header.Get("Retry-After")); err == nil {
			retryAfter = time.Duration(sec) * time.Second
		}
		return &errTooManyRequests{RetryAfter: retryAfter}
	default:
		c.logger.Error("unexpected status for request",
			zap.String("path", path), zap.Int("status", resp.StatusCode))
		return fmt.Errorf("bad response %v for request %s", resp.StatusCode, requestStr)
	}

	err = json.NewDecoder(resp.Body).Decode(dst)
	if err != nil {
		return fmt.Errorf("error on response decode: %w", err)
	}

	return nil
}
