package service

//go:generate mockgen -source=state_manager.go -destination=mocks/mock_state_manager.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shenikar/cad_state_system/internal/config"
	"github.com/shenikar/cad_state_system/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// CADClient определяет контракт внешнего CAD API
type CADClient interface {
	SyncPatrolGroup(ctx context.Context, patrolGroup string) (*models.SyncSnapshot, error)
	SyncBoundingBox(ctx context.Context, box models.BoundingBox) (*models.SyncSnapshot, error)
	BookOn(ctx context.Context, req *models.BookOnRequest) error
	BookOff(ctx context.Context, req models.BookOffRequest) error
	UpdateResourceStatus(ctx context.Context, req models.StatusUpdateRequest) error
	IncidentDetails(ctx context.Context, incidentNumber string) (*models.Incident, error)
	ResourceDetails(ctx context.Context, callsign string) (*models.Resource, error)
	EmployeeDetails(ctx context.Context, identifier string) (*models.Officer, error)
	FetchManifest(ctx context.Context, req models.ManifestFetchRequest) ([]models.ManifestEntry, error)
}

// SessionRepository хранит сессию между перезапусками
type SessionRepository interface {
	LoadSession(ctx context.Context, sessionID string) (*models.SessionState, error)
	SaveSession(ctx context.Context, state *models.SessionState) error
	DeleteSession(ctx context.Context, sessionID string) error
	AddRecentIDs(ctx context.Context, kind string, ids []string) error
	RecentIDs(ctx context.Context, kind string, limit int) ([]string, error)
}

// ManifestRepository хранит справочник
type ManifestRepository interface {
	SaveManifest(ctx context.Context, entries []models.ManifestEntry, checkedAt time.Time) error
	Entries(ctx context.Context, collection string, activeOnly bool) ([]models.ManifestEntry, error)
	LastUpdate(ctx context.Context) (*time.Time, error)
}

// DetailsCache - кеш деталей и последнего снимка. Промах возвращает nil, nil.
type DetailsCache interface {
	GetIncident(ctx context.Context, incidentNumber string) (*models.Incident, error)
	SetIncident(ctx context.Context, incident *models.Incident) error
	GetResource(ctx context.Context, callsign string) (*models.Resource, error)
	SetResource(ctx context.Context, resource *models.Resource) error
	GetSnapshot(ctx context.Context) (*models.SyncSnapshot, error)
	SetSnapshot(ctx context.Context, snapshot *models.SyncSnapshot) error
}

// EventPublisher рассылает события изменения состояния
type EventPublisher interface {
	Publish(ctx context.Context, event models.StateEvent) error
}

// NotificationScheduler планирует локальные уведомления
type NotificationScheduler interface {
	Schedule(ctx context.Context, notification models.ScheduledNotification) error
	Remove(ctx context.Context, id string) error
}

// StateManager определяет контракт менеджера состояния CAD
type StateManager interface {
	Restore(ctx context.Context) error
	SyncInitial(ctx context.Context) error
	SyncDetails(ctx context.Context, force bool) error
	SetPatrolGroup(ctx context.Context, patrolGroup string) error
	SetSyncMode(ctx context.Context, mode models.SyncMode) error
	ClearSession(ctx context.Context) error
	Session() models.SessionSummary

	Incidents() []*models.Incident
	Incident(incidentNumber string) *models.Incident
	Resources() []*models.Resource
	Resource(callsign string) *models.Resource
	Officers() []*models.Officer
	Officer(id string) *models.Officer
	Patrols() []*models.Patrol
	Patrol(identifier string) *models.Patrol
	Broadcasts() []*models.Broadcast
	Broadcast(identifier string) *models.Broadcast
	ResourcesForIncident(incidentNumber string) []*models.Resource
	IncidentForResource(callsign string) *models.Incident
	OfficersForResource(callsign string) []*models.Officer

	GetIncidentDetails(ctx context.Context, incidentNumber string) (*models.Incident, error)
	GetResourceDetails(ctx context.Context, callsign string) (*models.Resource, error)
	GetEmployeeDetails(ctx context.Context, identifier string) (*models.Officer, error)

	BookOn(ctx context.Context, req *models.BookOnRequest) error
	BookOff(ctx context.Context) error
	UpdateCallsignStatus(ctx context.Context, change models.StatusChange) error

	SyncManifest(ctx context.Context, collections []string) error
	ManifestEntries(ctx context.Context, collection string, activeOnly bool) ([]models.ManifestEntry, error)
	RecentIDs(ctx context.Context, kind string) ([]string, error)
}

type stateManager struct {
	api       CADClient
	sessions  SessionRepository
	manifest  ManifestRepository
	cache     DetailsCache
	publisher EventPublisher
	notifier  NotificationScheduler
	logger    *logrus.Logger
	cfg       *config.Config
	validate  *validator.Validate
	now       func() time.Time

	// mu защищает всё состояние сессии и индексы
	mu                   sync.RWMutex
	officer              *models.Officer
	patrolGroup          string
	syncMode             models.SyncMode
	lastBookOn           *models.BookOnRequest
	lastSyncTime         *time.Time
	lastManifestSyncTime *time.Time
	lastSync             *models.SyncSnapshot
	lastSyncBoundingBox  *models.BoundingBox
	generation           uint64

	incidentsByID  map[string]*models.Incident
	resourcesByID  map[string]*models.Resource
	officersByID   map[string]*models.Officer
	patrolsByID    map[string]*models.Patrol
	broadcastsByID map[string]*models.Broadcast

	// syncMu защищает выполняемую и стоящую в очереди синхронизации
	syncMu      sync.Mutex
	pendingSync *syncCall
	queuedSync  *syncCall

	detailsGroup singleflight.Group
}

func NewStateManager(
	api CADClient,
	sessions SessionRepository,
	manifest ManifestRepository,
	cache DetailsCache,
	publisher EventPublisher,
	notifier NotificationScheduler,
	logger *logrus.Logger,
	cfg *config.Config,
) StateManager {
	return &stateManager{
		api:            api,
		sessions:       sessions,
		manifest:       manifest,
		cache:          cache,
		publisher:      publisher,
		notifier:       notifier,
		logger:         logger,
		cfg:            cfg,
		validate:       validator.New(),
		now:            time.Now,
		syncMode:       models.NoSync(),
		incidentsByID:  make(map[string]*models.Incident),
		resourcesByID:  make(map[string]*models.Resource),
		officersByID:   make(map[string]*models.Officer),
		patrolsByID:    make(map[string]*models.Patrol),
		broadcastsByID: make(map[string]*models.Broadcast),
	}
}

// Restore восстанавливает сохраненную сессию и последний снимок из кеша
func (m *stateManager) Restore(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"service":    "cad_state",
		"method":     "Restore",
		"session_id": m.cfg.SessionID,
	})
	log.Info("Restoring session")

	state, err := m.sessions.LoadSession(ctx, m.cfg.SessionID)
	if err != nil {
		log.WithError(err).Error("Failed to load session from repository")
		return fmt.Errorf("service: could not restore session: %w", err)
	}

	snapshot, err := m.cache.GetSnapshot(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read cached snapshot, starting empty")
		snapshot = nil
	}

	m.mu.Lock()
	if state != nil {
		m.patrolGroup = state.PatrolGroup
		m.lastBookOn = state.BookOn
		m.officer = state.Officer
	}
	if m.patrolGroup == "" {
		m.patrolGroup = m.cfg.DefaultPatrolGroup
	}
	if m.patrolGroup != "" {
		m.syncMode = models.PatrolGroupSync(m.patrolGroup)
	}
	if snapshot != nil {
		m.applySnapshotLocked(snapshot.Clone())
	}
	bookedOn := m.lastBookOn != nil
	m.mu.Unlock()

	log.WithFields(logrus.Fields{
		"booked_on":       bookedOn,
		"cached_snapshot": snapshot != nil,
	}).Info("Session restored")
	return nil
}

// SyncInitial выполняет первичную синхронизацию после входа или запуска
func (m *stateManager) SyncInitial(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"service": "cad_state",
		"method":  "SyncInitial",
	})
	log.Info("Performing initial sync")

	if err := m.Restore(ctx); err != nil {
		return err
	}

	officer, err := m.GetEmployeeDetails(ctx, "")
	if err != nil {
		log.WithError(err).Error("Failed to fetch logged in officer details")
		return err
	}

	m.mu.Lock()
	m.officer = officer
	m.officersByID[officer.ID] = officer.Clone()
	if m.patrolGroup == "" && officer.PatrolGroup != "" {
		m.patrolGroup = officer.PatrolGroup
		m.syncMode = models.PatrolGroupSync(officer.PatrolGroup)
	}
	m.mu.Unlock()
	m.persistSession(ctx)

	if err := m.SyncManifest(ctx, nil); err != nil {
		log.WithError(err).Error("Failed to sync manifest")
		return err
	}

	if err := m.SyncDetails(ctx, true); err != nil {
		log.WithError(err).Error("Failed to sync details")
		return err
	}

	// Убираем напоминание о конце смены, если пользователь не на смене
	m.mu.RLock()
	bookedOn := m.lastBookOn != nil
	m.mu.RUnlock()
	if !bookedOn {
		if err := m.notifier.Remove(ctx, shiftEndingNotificationID); err != nil {
			log.WithError(err).Warn("Failed to remove shift ending notification")
		}
	}

	log.Info("Initial sync completed")
	return nil
}

// SetPatrolGroup меняет группу патрулирования и режим синхронизации
func (m *stateManager) SetPatrolGroup(ctx context.Context, patrolGroup string) error {
	m.logger.WithFields(logrus.Fields{
		"service":      "cad_state",
		"method":       "SetPatrolGroup",
		"patrol_group": patrolGroup,
	}).Info("Changing patrol group")

	m.mu.Lock()
	m.patrolGroup = patrolGroup
	m.mu.Unlock()
	m.persistSession(ctx)

	mode := models.NoSync()
	if patrolGroup != "" {
		mode = models.PatrolGroupSync(patrolGroup)
	}
	return m.SetSyncMode(ctx, mode)
}

// SetSyncMode меняет режим синхронизации. Синхронизация принудительная,
// кроме перемещения области карты.
func (m *stateManager) SetSyncMode(ctx context.Context, mode models.SyncMode) error {
	if !mode.Validate() {
		return ErrInvalidSyncMode
	}

	m.mu.Lock()
	previous := m.syncMode
	if previous.Equal(mode) {
		m.mu.Unlock()
		return nil
	}
	m.syncMode = mode
	m.mu.Unlock()

	m.logger.WithFields(logrus.Fields{
		"service": "cad_state",
		"method":  "SetSyncMode",
		"from":    previous.Kind,
		"to":      mode.Kind,
	}).Info("Sync mode changed")

	force := !(previous.Kind == models.SyncModeMap && mode.Kind == models.SyncModeMap)
	return m.SyncDetails(ctx, force)
}

// ClearSession сбрасывает все данные сессии
func (m *stateManager) ClearSession(ctx context.Context) error {
	log := m.logger.WithFields(logrus.Fields{
		"service": "cad_state",
		"method":  "ClearSession",
	})
	log.Info("Clearing session")

	m.syncMu.Lock()
	m.pendingSync = nil
	m.queuedSync = nil
	m.syncMu.Unlock()

	m.mu.Lock()
	m.generation++
	m.officer = nil
	m.patrolGroup = ""
	m.syncMode = models.NoSync()
	m.lastBookOn = nil
	m.lastSync = nil
	m.lastSyncTime = nil
	m.lastManifestSyncTime = nil
	m.lastSyncBoundingBox = nil
	clear(m.incidentsByID)
	clear(m.resourcesByID)
	clear(m.officersByID)
	clear(m.patrolsByID)
	clear(m.broadcastsByID)
	m.mu.Unlock()
	indexedEntities.Reset()

	if err := m.sessions.DeleteSession(ctx, m.cfg.SessionID); err != nil {
		log.WithError(err).Error("Failed to delete persisted session")
		return fmt.Errorf("service: could not clear session: %w", err)
	}
	if err := m.notifier.Remove(ctx, shiftEndingNotificationID); err != nil {
		log.WithError(err).Warn("Failed to remove shift ending notification")
	}

	m.publish(ctx, models.NewStateEvent(models.EventBookOnChanged))
	m.publish(ctx, models.NewStateEvent(models.EventSyncChanged))
	log.Info("Session cleared")
	return nil
}

// Session возвращает копию текущего состояния сессии
func (m *stateManager) Session() models.SessionSummary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := models.SessionSummary{
		PatrolGroup:          m.patrolGroup,
		SyncMode:             m.syncMode,
		LastSyncTime:         m.lastSyncTime,
		LastManifestSyncTime: m.lastManifestSyncTime,
	}
	if m.officer != nil {
		summary.Officer = m.officer.Clone()
	}
	if m.lastBookOn != nil {
		summary.BookOn = m.lastBookOn.Clone()
	}
	if resource := m.currentResourceLocked(); resource != nil {
		summary.CurrentResource = resource.Clone()
	}
	if incident := m.currentIncidentLocked(); incident != nil {
		summary.CurrentIncident = incident.Clone()
	}
	return summary
}

// persistSession сохраняет переживающую перезапуск часть сессии
func (m *stateManager) persistSession(ctx context.Context) {
	m.mu.RLock()
	state := &models.SessionState{
		SessionID:   m.cfg.SessionID,
		PatrolGroup: m.patrolGroup,
		UpdatedAt:   m.now().UTC(),
	}
	if m.lastBookOn != nil {
		state.BookOn = m.lastBookOn.Clone()
	}
	if m.officer != nil {
		state.Officer = m.officer.Clone()
	}
	m.mu.RUnlock()

	if err := m.sessions.SaveSession(ctx, state); err != nil {
		m.logger.WithError(err).WithField("session_id", state.SessionID).Warn("Failed to persist session")
	}
}

func (m *stateManager) publish(ctx context.Context, event models.StateEvent) {
	if err := m.publisher.Publish(ctx, event); err != nil {
		m.logger.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish state event")
		return
	}
	eventsPublished.WithLabelValues(string(event.Type)).Inc()
}
