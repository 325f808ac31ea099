package service

import (
	"context"
	"fmt"

	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
)

// recentIDsLimit - сколько последних позывных и табельных номеров хранится
const recentIDsLimit = 10

// SyncManifest загружает изменения справочника с момента последней проверки.
// Пустой список коллекций означает все коллекции.
func (m *stateManager) SyncManifest(ctx context.Context, collections []string) error {
	log := m.logger.WithFields(logrus.Fields{
		"service":     "cad_state",
		"method":      "SyncManifest",
		"collections": collections,
	})

	checkedAt := m.now().UTC()
	since, err := m.manifest.LastUpdate(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to get manifest last update")
		return fmt.Errorf("service: could not get manifest last update: %w", err)
	}

	entries, err := m.api.FetchManifest(ctx, models.ManifestFetchRequest{
		Since:       since,
		Collections: collections,
	})
	if err != nil {
		log.WithError(err).Error("Failed to fetch manifest")
		return fmt.Errorf("service: could not fetch manifest: %w", err)
	}

	if err := m.manifest.SaveManifest(ctx, entries, checkedAt); err != nil {
		log.WithError(err).Error("Failed to save manifest")
		return fmt.Errorf("service: could not save manifest: %w", err)
	}

	m.mu.Lock()
	m.lastManifestSyncTime = &checkedAt
	m.mu.Unlock()

	log.WithField("entries", len(entries)).Info("Manifest synced")
	return nil
}

func (m *stateManager) ManifestEntries(ctx context.Context, collection string, activeOnly bool) ([]models.ManifestEntry, error) {
	entries, err := m.manifest.Entries(ctx, collection, activeOnly)
	if err != nil {
		m.logger.WithFields(logrus.Fields{
			"service":    "cad_state",
			"method":     "ManifestEntries",
			"collection": collection,
		}).WithError(err).Error("Failed to get manifest entries")
		return nil, fmt.Errorf("service: could not get manifest entries: %w", err)
	}
	return entries, nil
}

// RecentIDs возвращает последние использованные позывные или табельные номера
func (m *stateManager) RecentIDs(ctx context.Context, kind string) ([]string, error) {
	ids, err := m.sessions.RecentIDs(ctx, kind, recentIDsLimit)
	if err != nil {
		m.logger.WithFields(logrus.Fields{
			"service": "cad_state",
			"method":  "RecentIDs",
			"kind":    kind,
		}).WithError(err).Error("Failed to get recent ids")
		return nil, fmt.Errorf("service: could not get recent ids: %w", err)
	}
	return ids, nil
}
