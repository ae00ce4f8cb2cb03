package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/cloud-cost-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
)

const recommendationsTable = "recommendations"

var recommendationColumns = []string{
	"id", "user_id", "provider", "title", "description", "priority",
	"potential_savings", "resource_ids", "source_analysis", "sort_order", "created_at",
}

//go:generate mockgen -source=recommendation.go -destination=mocks/recommendation.go -package=mocks
type RecommendationRepository interface {
	ReplaceForUserProvider(ctx context.Context, userID string, provider domain.Provider, recommendations []*domain.Recommendation) error
	ListByUser(ctx context.Context, userID string, provider *domain.Provider) ([]*domain.Recommendation, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

// ReplaceForUserProvider deletes the current (user, provider) set and inserts
// recommendations in one transaction. Concurrent replacements for the same pair
// are serialized by a transaction scoped advisory lock.
func (r *recommendationRepository) ReplaceForUserProvider(ctx context.Context, userID string, provider domain.Provider, recommendations []*domain.Recommendation) error {
	deleteQuery, deleteArgs, err := squirrel.
		Delete(recommendationsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"provider": provider}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("replace recommendations: build delete: %w", err)
	}

	var insertQuery string
	var insertArgs []interface{}
	if len(recommendations) > 0 {
		insertQuery, insertArgs, err = buildRecommendationInsert(recommendations)
		if err != nil {
			return fmt.Errorf("replace recommendations: build insert: %w", err)
		}
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		lockKey := fmt.Sprintf("%s:%s", userID, provider)
		if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock(hashtext($1))", lockKey); err != nil {
			return dbError("replace recommendations: lock", err)
		}

		if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return dbError("replace recommendations: delete", err)
		}

		if insertQuery == "" {
			return nil
		}

		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return dbError("replace recommendations: insert", err)
		}

		return nil
	})
}

func buildRecommendationInsert(recommendations []*domain.Recommendation) (string, []interface{}, error) {
	builder := squirrel.
		Insert(recommendationsTable).
		Columns(recommendationColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range recommendations {
		var sourceAnalysis interface{}
		if len(rec.SourceAnalysis) > 0 {
			sourceAnalysis = string(rec.SourceAnalysis)
		}

		builder = builder.Values(
			rec.ID,
			rec.UserID,
			rec.Provider,
			rec.Title,
			rec.Description,
			rec.Priority,
			rec.PotentialSavings,
			pq.Array(rec.ResourceIDs),
			sourceAnalysis,
			rec.Position,
			rec.CreatedAt,
		)
	}

	return builder.ToSql()
}

// ListByUser returns the user's recommendations in the order they were
// generated. A nil provider lists every provider.
func (r *recommendationRepository) ListByUser(ctx context.Context, userID string, provider *domain.Provider) ([]*domain.Recommendation, error) {
	builder := squirrel.
		Select(recommendationColumns...).
		From(recommendationsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("provider ASC", "sort_order ASC").
		PlaceholderFormat(squirrel.Dollar)

	if provider != nil {
		builder = builder.Where(squirrel.Eq{"provider": *provider})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("list recommendations: build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("list recommendations", err)
	}
	defer rows.Close()

	recommendations := make([]*domain.Recommendation, 0)
	for rows.Next() {
		rec := &domain.Recommendation{}
		var sourceAnalysis []byte

		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Provider,
			&rec.Title,
			&rec.Description,
			&rec.Priority,
			&rec.PotentialSavings,
			pq.Array(&rec.ResourceIDs),
			&sourceAnalysis,
			&rec.Position,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, dbError("list recommendations: scan", err)
		}
		if len(sourceAnalysis) > 0 {
			rec.SourceAnalysis = sourceAnalysis
		}

		recommendations = append(recommendations, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError("list recommendations: rows", err)
	}

	return recommendations, nil
}
