package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-cost-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
)

const resourceSummariesTable = "resource_summaries"

//go:generate mockgen -source=resource_summary.go -destination=mocks/resource_summary.go -package=mocks
type ResourceSummaryRepository interface {
	Upsert(ctx context.Context, summary *domain.ResourceSummary) error
	ListByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) ([]*domain.ResourceSummary, error)
}

type resourceSummaryRepository struct {
	conn *postgres.Connection
}

func NewResourceSummaryRepository(conn *postgres.Connection) ResourceSummaryRepository {
	return &resourceSummaryRepository{
		conn: conn,
	}
}

// Upsert creates the (user, provider, resource type) row on first sight and
// updates it in place afterwards. A nil cost keeps the stored one.
func (r *resourceSummaryRepository) Upsert(ctx context.Context, s *domain.ResourceSummary) error {
	query, args, err := squirrel.
		Insert(resourceSummariesTable).
		Columns("id", "user_id", "provider", "resource_type", "count", "usage_percentage", "cost").
		Values(s.ID, s.UserID, s.Provider, s.ResourceType, s.Count, s.UsagePercentage, nullFloat(s.Cost)).
		Suffix(`
			ON CONFLICT (user_id, provider, resource_type) DO UPDATE SET
				count = EXCLUDED.count,
				usage_percentage = EXCLUDED.usage_percentage,
				cost = COALESCE(EXCLUDED.cost, resource_summaries.cost),
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("upsert resource summary: build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return dbError("upsert resource summary", err)
	}

	return nil
}

func (r *resourceSummaryRepository) ListByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) ([]*domain.ResourceSummary, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "provider", "resource_type", "count", "usage_percentage", "cost", "created_at", "updated_at").
		From(resourceSummariesTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"provider": provider}).
		OrderBy("resource_type ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list resource summaries: build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("list resource summaries", err)
	}
	defer rows.Close()

	summaries := make([]*domain.ResourceSummary, 0)
	for rows.Next() {
		s := &domain.ResourceSummary{}
		var cost sql.NullFloat64

		err := rows.Scan(&s.ID, &s.UserID, &s.Provider, &s.ResourceType, &s.Count, &s.UsagePercentage, &cost, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, dbError("list resource summaries: scan", err)
		}
		if cost.Valid {
			s.Cost = &cost.Float64
		}

		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError("list resource summaries: rows", err)
	}

	return summaries, nil
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
