package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/aws"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/aws/awsclient"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/azure"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/azure/azureclient"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/gcp"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/gcp/gcpclient"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm"
	"github.com/vfg2006/cloud-cost-api/infrastructure/integrator/llm/llmclient"
	"github.com/vfg2006/cloud-cost-api/infrastructure/repository"
	"github.com/vfg2006/cloud-cost-api/internal/api"
	"github.com/vfg2006/cloud-cost-api/internal/api/handler"
	"github.com/vfg2006/cloud-cost-api/internal/config"
	"github.com/vfg2006/cloud-cost-api/internal/scheduler"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/authenticating"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/collecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/connecting"
	"github.com/vfg2006/cloud-cost-api/internal/usecases/recommending"
	"github.com/vfg2006/cloud-cost-api/pkg/sealer"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level %q, using 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	credentialSealer, err := sealer.New(cfg.Credentials.SealingKey)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid credentials sealing key")
	}

	connectionRepo := repository.NewConnectionRepository(pgConn, credentialSealer)
	resourceRepo := repository.NewResourceSummaryRepository(pgConn)
	costRepo := repository.NewCostSnapshotRepository(pgConn)
	recommendationRepo := repository.NewRecommendationRepository(pgConn)

	integrators := integrator.NewRegistry(
		aws.New(awsclient.NewClient(cfg.AWS)),
		azure.New(azureclient.NewClient(cfg.Azure)),
		gcp.New(gcpclient.NewClient(cfg.GCP)),
	)

	textGenerator := llm.New(cfg.LLM, llmclient.NewClient(cfg.LLM))

	authenticator := authenticating.NewService(cfg.Auth)
	connectionService := connecting.NewService(connectionRepo, integrators)
	collector := collecting.NewService(connectionRepo, resourceRepo, costRepo, integrators)
	recommender := recommending.NewService(textGenerator, recommendationRepo, resourceRepo, costRepo)

	resourceSyncService := scheduler.NewResourceSyncService(cfg.ResourceSync, connectionRepo, collector)
	costSyncService := scheduler.NewCostSyncService(cfg.CostSync, connectionRepo, collector)

	for _, job := range []*scheduler.ConnectionSyncService{resourceSyncService, costSyncService} {
		name := job.GetStatus().Name
		if err := job.Start(ctx); err != nil {
			logrus.WithError(err).WithField("job", name).Error("Failed to start sync scheduler")
			continue
		}
		logrus.WithField("job", name).Info("Sync scheduler ready")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Connections:   connectionService,
		Collector:     collector,
		Recommender:   recommender,
		CronJobs: handler.CronJobServices{
			ResourceSyncService: resourceSyncService,
			CostSyncService:     costSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
