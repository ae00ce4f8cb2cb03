package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/infrastructure/repository"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/collecting"
	"golang.org/x/sync/errgroup"
)

// SyncJob refreshes the data of a single connection.
type SyncJob func(ctx context.Context, conn *domain.CloudConnection) error

type SyncConfig struct {
	Name              string
	CronSchedule      string
	MaxConcurrentJobs int
	Enabled           bool
}

// ConnectionSyncService runs a SyncJob for every active connection on a cron
// schedule. Only one run is in progress at a time.
type ConnectionSyncService struct {
	scheduler *gocron.Scheduler
	config    SyncConfig
	connRepo  repository.ConnectionRepository
	job       SyncJob

	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncConnections int
	lastSyncFailures    int
}

func NewConnectionSyncService(cfg SyncConfig, connRepo repository.ConnectionRepository, job SyncJob) *ConnectionSyncService {
	if cfg.MaxConcurrentJobs < 1 {
		cfg.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"job":                 cfg.Name,
		"cron_schedule":       cfg.CronSchedule,
		"max_concurrent_jobs": cfg.MaxConcurrentJobs,
		"sync_enabled":        cfg.Enabled,
	}).Info("Sync scheduler configuration loaded")

	return &ConnectionSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    cfg,
		connRepo:  connRepo,
		job:       job,
	}
}

// NewResourceSyncService refreshes the resource summaries of every active connection.
func NewResourceSyncService(cfg config.ResourceSync, connRepo repository.ConnectionRepository, collector collecting.Collector) *ConnectionSyncService {
	return NewConnectionSyncService(SyncConfig{
		Name:              "resources",
		CronSchedule:      cfg.CronSchedule,
		MaxConcurrentJobs: cfg.MaxConcurrentJobs,
		Enabled:           cfg.Enabled,
	}, connRepo, func(ctx context.Context, conn *domain.CloudConnection) error {
		_, err := collector.CollectConnection(ctx, conn)
		return err
	})
}

// NewCostSyncService refreshes the cost snapshot of every active connection
// over the last LookbackDays days.
func NewCostSyncService(cfg config.CostSync, connRepo repository.ConnectionRepository, collector collecting.Collector) *ConnectionSyncService {
	lookback := cfg.LookbackDays
	if lookback < 1 {
		lookback = 30
	}

	return NewConnectionSyncService(SyncConfig{
		Name:              "costs",
		CronSchedule:      cfg.CronSchedule,
		MaxConcurrentJobs: cfg.MaxConcurrentJobs,
		Enabled:           cfg.Enabled,
	}, connRepo, func(ctx context.Context, conn *domain.CloudConnection) error {
		_, err := collector.FetchConnectionCosts(ctx, conn, domain.LastDays(time.Now(), lookback))
		return err
	})
}

func (s *ConnectionSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.WithField("job", s.config.Name).Info("Sync disabled by configuration")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  s.config.Name,
		"cron": s.config.CronSchedule,
	}).Info("Starting sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAll(ctx)
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s sync: %w", s.config.Name, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		s.Stop()
	}()

	return nil
}

func (s *ConnectionSyncService) Stop() {
	if s.scheduler.IsRunning() {
		logrus.WithField("job", s.config.Name).Info("Stopping sync scheduler")
		s.scheduler.Stop()
	}
}

// TriggerManualSync starts a run in the background unless one is in progress.
// It reports whether a run was started.
func (s *ConnectionSyncService) TriggerManualSync(ctx context.Context) bool {
	if !s.tryAcquire() {
		logrus.WithField("job", s.config.Name).Info("Sync already running, ignoring manual request")
		return false
	}

	logrus.WithField("job", s.config.Name).Info("Starting manual sync")
	go func() {
		defer s.release()
		s.run(context.WithoutCancel(ctx))
	}()

	return true
}

func (s *ConnectionSyncService) GetStatus() domain.SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return domain.SyncStatus{
		Name:                s.config.Name,
		Enabled:             s.config.Enabled,
		CronSchedule:        s.config.CronSchedule,
		MaxConcurrentJobs:   s.config.MaxConcurrentJobs,
		Running:             s.syncRunning,
		LastSyncStartedAt:   s.lastSyncStartedAt,
		LastSyncCompletedAt: s.lastSyncCompletedAt,
		LastSyncConnections: s.lastSyncConnections,
		LastSyncFailures:    s.lastSyncFailures,
	}
}

func (s *ConnectionSyncService) syncAll(ctx context.Context) {
	if !s.tryAcquire() {
		logrus.WithField("job", s.config.Name).Info("Sync already running, skipping")
		return
	}
	defer s.release()

	s.run(ctx)
}

func (s *ConnectionSyncService) tryAcquire() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	return true
}

func (s *ConnectionSyncService) release() {
	s.syncMutex.Lock()
	s.syncRunning = false
	s.syncMutex.Unlock()
}

// run syncs every active connection. A failing connection is logged and
// counted; it does not stop the others.
func (s *ConnectionSyncService) run(ctx context.Context) {
	startTime := time.Now()
	logger := logrus.WithField("job", s.config.Name)

	connections, err := s.connRepo.ListActive(ctx)
	if err != nil {
		logger.WithError(err).Error("Failed to list active connections")
		return
	}

	if len(connections) == 0 {
		logger.Info("No active connections to sync")
		s.finish(0, 0)
		return
	}

	var (
		failuresMu sync.Mutex
		failures   int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.MaxConcurrentJobs)

	for _, conn := range connections {
		g.Go(func() error {
			if err := s.job(gctx, conn); err != nil {
				logger.WithFields(logrus.Fields{
					"user_id":  conn.UserID,
					"provider": conn.Provider,
				}).WithError(err).Warn("Connection sync failed")

				failuresMu.Lock()
				failures++
				failuresMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	s.finish(len(connections), failures)

	logger.WithFields(logrus.Fields{
		"duration":    time.Since(startTime).String(),
		"connections": len(connections),
		"failures":    failures,
	}).Info("Sync finished")
}

func (s *ConnectionSyncService) finish(connections, failures int) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.lastSyncCompletedAt = time.Now()
	s.lastSyncConnections = connections
	s.lastSyncFailures = failures
}
