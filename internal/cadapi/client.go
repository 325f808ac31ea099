package cadapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/shenikar/cad_state_system/internal/config"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
)

// ErrNotFound возвращается, когда CAD API ответил 404
var ErrNotFound = errors.New("cadapi: not found")

// APIError - ответ CAD API с кодом ошибки
type APIError struct {
	Method     string
	Path       string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cadapi: %s %s returned %d: %s", e.Method, e.Path, e.StatusCode, e.Message)
}

func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Client - клиент внешнего CAD JSON API
type Client struct {
	baseURL       string
	token         string
	httpClient    *http.Client
	maxRetries    int
	retryInterval time.Duration
	logger        *logrus.Logger
}

// NewClient создает клиента CAD API по конфигурации
func NewClient(cfg *config.Config, logger *logrus.Logger) *Client {
	return &Client{
		baseURL:       cfg.CADAPIURL,
		token:         cfg.CADAPIToken,
		maxRetries:    cfg.CADAPIMaxRetries,
		retryInterval: 200 * time.Millisecond,
		logger:        logger,
		httpClient: &http.Client{
			Timeout: cfg.CADAPITimeout,
		},
	}
}

type patrolGroupSyncRequest struct {
	PatrolGroup string `json:"patrolGroup"`
}

type boundingBoxSyncRequest struct {
	NorthWestCoordinate models.Coordinate `json:"northWestCoordinate"`
	SouthEastCoordinate models.Coordinate `json:"southEastCoordinate"`
}

// SyncPatrolGroup получает снимок данных для группы патрулирования
func (c *Client) SyncPatrolGroup(ctx context.Context, patrolGroup string) (*models.SyncSnapshot, error) {
	snapshot := &models.SyncSnapshot{}
	if err := c.do(ctx, http.MethodPost, "/cad/sync/patrolgroup", patrolGroupSyncRequest{PatrolGroup: patrolGroup}, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

// SyncBoundingBox получает снимок данных для области карты
func (c *Client) SyncBoundingBox(ctx context.Context, box models.BoundingBox) (*models.SyncSnapshot, error) {
	req := boundingBoxSyncRequest{
		NorthWestCoordinate: box.NorthWest,
		SouthEastCoordinate: box.SouthEast,
	}
	snapshot := &models.SyncSnapshot{}
	if err := c.do(ctx, http.MethodPost, "/cad/sync/boundingbox", req, snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (c *Client) BookOn(ctx context.Context, req *models.BookOnRequest) error {
	return c.do(ctx, http.MethodPost, "/cad/shift/bookon", req, nil)
}

func (c *Client) BookOff(ctx context.Context, req models.BookOffRequest) error {
	return c.do(ctx, http.MethodPost, "/cad/shift/bookoff", req, nil)
}

// UpdateResourceStatus отправляет новый статус позывного
func (c *Client) UpdateResourceStatus(ctx context.Context, req models.StatusUpdateRequest) error {
	path := fmt.Sprintf("/cad/resource/%s/status", url.PathEscape(req.Callsign))
	return c.do(ctx, http.MethodPost, path, req, nil)
}

func (c *Client) IncidentDetails(ctx context.Context, incidentNumber string) (*models.Incident, error) {
	incident := &models.Incident{}
	if err := c.do(ctx, http.MethodGet, "/cad/incident/"+url.PathEscape(incidentNumber), nil, incident); err != nil {
		return nil, err
	}
	return incident, nil
}

func (c *Client) ResourceDetails(ctx context.Context, callsign string) (*models.Resource, error) {
	resource := &models.Resource{}
	if err := c.do(ctx, http.MethodGet, "/cad/resource/"+url.PathEscape(callsign), nil, resource); err != nil {
		return nil, err
	}
	resource.Normalize()
	return resource, nil
}

func (c *Client) EmployeeDetails(ctx context.Context, identifier string) (*models.Officer, error) {
	officer := &models.Officer{}
	if err := c.do(ctx, http.MethodGet, "/cad/employee/"+url.PathEscape(identifier), nil, officer); err != nil {
		return nil, err
	}
	return officer, nil
}

// FetchManifest получает изменения справочника с момента req.Since
func (c *Client) FetchManifest(ctx context.Context, req models.ManifestFetchRequest) ([]models.ManifestEntry, error) {
	var entries []models.ManifestEntry
	if err := c.do(ctx, http.MethodPost, "/manifest/fetch", req, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// do выполняет запрос с повторами: сетевые ошибки и 5xx повторяются
// с экспоненциальной задержкой, 4xx возвращаются сразу.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cadapi: failed to marshal %s request: %w", path, err)
		}
	}

	log := c.logger.WithFields(logrus.Fields{
		"component": "cadapi",
		"method":    method,
		"path":      path,
	})

	operation := func() (struct{}, error) {
		var reader io.Reader
		if payload != nil {
			reader = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
		if err != nil {
			return struct{}{}, backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return struct{}{}, err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= http.StatusBadRequest {
			msg, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			apiErr := &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Message: string(bytes.TrimSpace(msg))}
			if resp.StatusCode >= http.StatusInternalServerError {
				return struct{}{}, apiErr
			}
			return struct{}{}, backoff.Permanent(apiErr)
		}

		if out != nil && resp.StatusCode != http.StatusNoContent {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return struct{}{}, backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
			}
		}
		return struct{}{}, nil
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryInterval

	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(uint(max(c.maxRetries, 1))),
		backoff.WithNotify(func(err error, next time.Duration) {
			log.WithError(err).Warnf("CAD API request failed. Retrying in %v", next)
		}),
	)
	if err != nil {
		return fmt.Errorf("cadapi: %s %s: %w", method, path, err)
	}
	return nil
}
