package handler

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/apiErrors"
)

const (
	CronJobTypeResources = "resources"
	CronJobTypeCosts     = "costs"
	CronJobTypeAll       = "all"
)

// SyncRunner is a scheduled job that can also be started by hand.
type SyncRunner interface {
	TriggerManualSync(ctx context.Context) bool
	GetStatus() domain.SyncStatus
}

type CronJobServices struct {
	ResourceSyncService SyncRunner
	CostSyncService     SyncRunner
}

// RunCronJob starts a sync in the background. Jobs already running are left alone.
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		var jobs map[string]SyncRunner
		switch cronType {
		case CronJobTypeResources:
			jobs = map[string]SyncRunner{CronJobTypeResources: services.ResourceSyncService}
		case CronJobTypeCosts:
			jobs = map[string]SyncRunner{CronJobTypeCosts: services.CostSyncService}
		case CronJobTypeAll:
			jobs = map[string]SyncRunner{
				CronJobTypeResources: services.ResourceSyncService,
				CronJobTypeCosts:     services.CostSyncService,
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid cron job type. Accepted values: resources, costs, all", nil)
			return
		}

		started := make(map[string]bool, len(jobs))
		for name, job := range jobs {
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceUnavailable, "Sync service "+name+" is not available", nil)
				return
			}
			started[name] = job.TriggerManualSync(r.Context())
		}

		logrus.WithFields(logrus.Fields{
			"type":    cronType,
			"started": started,
		}).Info("Manual sync requested")

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job started",
			"type":    cronType,
			"started": started,
		})
	})
}

func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]domain.SyncStatus{}
		if services.ResourceSyncService != nil {
			status[CronJobTypeResources] = services.ResourceSyncService.GetStatus()
		}
		if services.CostSyncService != nil {
			status[CronJobTypeCosts] = services.CostSyncService.GetStatus()
		}

		writeJSON(w, http.StatusOK, status)
	})
}
