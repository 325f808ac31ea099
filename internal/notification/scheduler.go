package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shenikar/cad_state_system/internal/models"
)

const (
	scheduleKey = "notifications:schedule"
	payloadKey  = "notifications:payload"
)

// RedisScheduler хранит запланированные уведомления: время срабатывания в
// sorted set, содержимое в hash
type RedisScheduler struct {
	redisClient *redis.Client
}

func NewRedisScheduler(redisClient *redis.Client) *RedisScheduler {
	return &RedisScheduler{redisClient: redisClient}
}

// Schedule добавляет или перепланирует уведомление с тем же ID
func (s *RedisScheduler) Schedule(ctx context.Context, notification models.ScheduledNotification) error {
	payload, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	_, err = s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, payloadKey, notification.ID, payload)
		pipe.ZAdd(ctx, scheduleKey, redis.Z{
			Score:  float64(notification.FireAt.Unix()),
			Member: notification.ID,
		})
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to schedule notification %s: %w", notification.ID, err)
	}
	return nil
}

// Remove удаляет уведомление. Отсутствие уведомления не ошибка.
func (s *RedisScheduler) Remove(ctx context.Context, id string) error {
	_, err := s.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, scheduleKey, id)
		pipe.HDel(ctx, payloadKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to remove notification %s: %w", id, err)
	}
	return nil
}

// Due забирает уведомления, время которых наступило. Каждое уведомление
// получает только один вызывающий: право на него закрепляет ZREM.
func (s *RedisScheduler) Due(ctx context.Context, now time.Time) ([]models.ScheduledNotification, error) {
	ids, err := s.redisClient.ZRangeByScore(ctx, scheduleKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list due notifications: %w", err)
	}

	due := make([]models.ScheduledNotification, 0, len(ids))
	for _, id := range ids {
		removed, err := s.redisClient.ZRem(ctx, scheduleKey, id).Result()
		if err != nil {
			return due, fmt.Errorf("failed to claim notification %s: %w", id, err)
		}
		if removed == 0 {
			continue // Уже забрал другой обработчик
		}

		payload, err := s.redisClient.HGet(ctx, payloadKey, id).Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return due, fmt.Errorf("failed to get notification %s: %w", id, err)
		}
		_ = s.redisClient.HDel(ctx, payloadKey, id).Err()

		var notification models.ScheduledNotification
		if err := json.Unmarshal(payload, &notification); err != nil {
			return due, fmt.Errorf("failed to unmarshal notification %s: %w", id, err)
		}
		due = append(due, notification)
	}
	return due, nil
}
