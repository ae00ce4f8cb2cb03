package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/cloud-cost-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
)

const costSnapshotsTable = "cost_snapshots"

//go:generate mockgen -source=cost_snapshot.go -destination=mocks/cost_snapshot.go -package=mocks
type CostSnapshotRepository interface {
	Replace(ctx context.Context, snapshot *domain.CostSnapshot) error
	GetLatest(ctx context.Context, userID string, provider domain.Provider) (*domain.CostSnapshot, error)
}

type costSnapshotRepository struct {
	conn *postgres.Connection
}

func NewCostSnapshotRepository(conn *postgres.Connection) CostSnapshotRepository {
	return &costSnapshotRepository{
		conn: conn,
	}
}

// Replace stores snapshot as the (user, provider) cost document, superseding
// the previous one.
func (r *costSnapshotRepository) Replace(ctx context.Context, s *domain.CostSnapshot) error {
	costData, err := json.Marshal(s.CostData)
	if err != nil {
		return fmt.Errorf("replace cost snapshot: marshal cost data: %w", err)
	}

	query, args, err := squirrel.
		Insert(costSnapshotsTable).
		Columns("id", "user_id", "provider", "cost_data", "period_start", "period_end", "fetched_at").
		Values(
			s.ID,
			s.UserID,
			s.Provider,
			string(costData),
			s.PeriodStart.Format("2006-01-02"),
			s.PeriodEnd.Format("2006-01-02"),
			s.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (user_id, provider) DO UPDATE SET
				id = EXCLUDED.id,
				cost_data = EXCLUDED.cost_data,
				period_start = EXCLUDED.period_start,
				period_end = EXCLUDED.period_end,
				fetched_at = EXCLUDED.fetched_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("replace cost snapshot: build query: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return dbError("replace cost snapshot", err)
	}

	return nil
}

func (r *costSnapshotRepository) GetLatest(ctx context.Context, userID string, provider domain.Provider) (*domain.CostSnapshot, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "provider", "cost_data", "period_start", "period_end", "fetched_at").
		From(costSnapshotsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"provider": provider}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get cost snapshot: build query: %w", err)
	}

	s := &domain.CostSnapshot{}
	var costData []byte

	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.UserID, &s.Provider, &costData, &s.PeriodStart, &s.PeriodEnd, &s.FetchedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get cost snapshot", err)
	}

	if err := json.Unmarshal(costData, &s.CostData); err != nil {
		return nil, fmt.Errorf("get cost snapshot: decode cost data: %w", err)
	}

	return s, nil
}
