package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/shenikar/cad_state_system/internal/service"
)

const snapshotKey = "cad:snapshot"

// DetailsCache хранит детали инцидентов и ресурсов и последний снимок в Redis
type DetailsCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewDetailsCache(redisClient *redis.Client, ttl time.Duration) service.DetailsCache {
	return &DetailsCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

func incidentKey(incidentNumber string) string {
	return fmt.Sprintf("incident:%s", incidentNumber)
}

func resourceKey(callsign string) string {
	return fmt.Sprintf("resource:%s", callsign)
}

// GetIncident пытается получить инцидент из Redis
func (c *DetailsCache) GetIncident(ctx context.Context, incidentNumber string) (*models.Incident, error) {
	incident := &models.Incident{}
	found, err := c.get(ctx, incidentKey(incidentNumber), incident)
	if err != nil || !found {
		return nil, err
	}
	return incident, nil
}

// SetIncident сохраняет инцидент в Redis
func (c *DetailsCache) SetIncident(ctx context.Context, incident *models.Incident) error {
	return c.set(ctx, incidentKey(incident.IncidentNumber), incident, c.ttl)
}

func (c *DetailsCache) GetResource(ctx context.Context, callsign string) (*models.Resource, error) {
	resource := &models.Resource{}
	found, err := c.get(ctx, resourceKey(callsign), resource)
	if err != nil || !found {
		return nil, err
	}
	return resource, nil
}

func (c *DetailsCache) SetResource(ctx context.Context, resource *models.Resource) error {
	return c.set(ctx, resourceKey(resource.Callsign), resource, c.ttl)
}

// GetSnapshot возвращает последний снимок для быстрого старта
func (c *DetailsCache) GetSnapshot(ctx context.Context) (*models.SyncSnapshot, error) {
	snapshot := &models.SyncSnapshot{}
	found, err := c.get(ctx, snapshotKey, snapshot)
	if err != nil || !found {
		return nil, err
	}
	return snapshot, nil
}

// SetSnapshot сохраняет снимок без срока жизни: его заменит следующая синхронизация
func (c *DetailsCache) SetSnapshot(ctx context.Context, snapshot *models.SyncSnapshot) error {
	return c.set(ctx, snapshotKey, snapshot, 0)
}

func (c *DetailsCache) get(ctx context.Context, key string, out any) (bool, error) {
	val, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get %s from cache: %w", key, err)
	}
	if err := json.Unmarshal(val, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal %s from cache: %w", key, err)
	}
	return true, nil
}

func (c *DetailsCache) set(ctx context.Context, key string, value any, ttl time.Duration) error {
	val, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s for cache: %w", key, err)
	}
	if err := c.redisClient.Set(ctx, key, val, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}
