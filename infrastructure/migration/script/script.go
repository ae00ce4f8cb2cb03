package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-cost-api/internal/config"
)

type migration struct {
	name      string
	statement string
}

var migrations = []migration{
	{
		name: "cloud_connections",
		statement: `
			CREATE TABLE IF NOT EXISTS cloud_connections (
				id          VARCHAR(32) PRIMARY KEY,
				user_id     VARCHAR(64) NOT NULL,
				provider    VARCHAR(16) NOT NULL CHECK (provider IN ('aws', 'azure', 'gcp')),
				credentials BYTEA NOT NULL,
				active      BOOLEAN NOT NULL DEFAULT TRUE,
				created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (user_id, provider)
			)`,
	},
	{
		name: "cloud_connections_active_idx",
		statement: `
			CREATE INDEX IF NOT EXISTS cloud_connections_active_idx
				ON cloud_connections (active) WHERE active`,
	},
	{
		name: "resource_summaries",
		statement: `
			CREATE TABLE IF NOT EXISTS resource_summaries (
				id               VARCHAR(32) PRIMARY KEY,
				user_id          VARCHAR(64) NOT NULL,
				provider         VARCHAR(16) NOT NULL,
				resource_type    VARCHAR(32) NOT NULL,
				count            INTEGER NOT NULL DEFAULT 0 CHECK (count >= 0),
				usage_percentage DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (usage_percentage BETWEEN 0 AND 100),
				cost             DOUBLE PRECISION,
				created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (user_id, provider, resource_type)
			)`,
	},
	{
		name: "cost_snapshots",
		statement: `
			CREATE TABLE IF NOT EXISTS cost_snapshots (
				id           VARCHAR(32) PRIMARY KEY,
				user_id      VARCHAR(64) NOT NULL,
				provider     VARCHAR(16) NOT NULL,
				cost_data    JSONB NOT NULL,
				period_start DATE NOT NULL,
				period_end   DATE NOT NULL,
				fetched_at   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
				UNIQUE (user_id, provider)
			)`,
	},
	{
		name: "recommendations",
		statement: `
			CREATE TABLE IF NOT EXISTS recommendations (
				id                UUID PRIMARY KEY,
				user_id           VARCHAR(64) NOT NULL,
				provider          VARCHAR(16) NOT NULL,
				title             TEXT NOT NULL,
				description       TEXT NOT NULL DEFAULT '',
				priority          VARCHAR(8) NOT NULL CHECK (priority IN ('high', 'medium', 'low')),
				potential_savings DOUBLE PRECISION NOT NULL DEFAULT 0,
				resource_ids      TEXT[] NOT NULL DEFAULT '{}',
				source_analysis   JSONB,
				sort_order        INTEGER NOT NULL DEFAULT 0,
				created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
			)`,
	},
	{
		name: "recommendations_user_provider_idx",
		statement: `
			CREATE INDEX IF NOT EXISTS recommendations_user_provider_idx
				ON recommendations (user_id, provider, sort_order)`,
	},
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Starting migration script")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()

	err = conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, m := range migrations {
			if _, err := tx.ExecContext(ctx, m.statement); err != nil {
				logrus.WithError(err).WithField("migration", m.name).Error("Migration failed")
				return err
			}
			logrus.WithField("migration", m.name).Info("Migration applied")
		}
		return nil
	})
	if err != nil {
		logrus.WithError(err).Fatal("Migrations rolled back")
	}

	logrus.WithFields(logrus.Fields{
		"migrations": len(migrations),
		"duration":   time.Since(startTime).String(),
	}).Info("Migration script finished")
}
