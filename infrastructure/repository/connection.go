package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cloud-cost-api/infrastructure/database/postgres"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/sealer"
)

const connectionsTable = "cloud_connections"

//go:generate mockgen -source=connection.go -destination=mocks/connection.go -package=mocks
type ConnectionRepository interface {
	Save(ctx context.Context, conn *domain.CloudConnection) error
	GetByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.CloudConnection, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.CloudConnection, error)
	ListActive(ctx context.Context) ([]*domain.CloudConnection, error)
	SetActive(ctx context.Context, userID string, provider domain.Provider, active bool) error
}

type connectionRepository struct {
	conn   *postgres.Connection
	sealer sealer.Sealer
}

func NewConnectionRepository(conn *postgres.Connection, sealer sealer.Sealer) ConnectionRepository {
	return &connectionRepository{
		conn:   conn,
		sealer: sealer,
	}
}

// Save creates the connection or replaces the credentials of the existing
// (user, provider) connection. ID and timestamps are filled from the stored row.
func (r *connectionRepository) Save(ctx context.Context, c *domain.CloudConnection) error {
	plain, err := json.Marshal(c.Credentials)
	if err != nil {
		return fmt.Errorf("save connection: marshal credentials: %w", err)
	}

	sealed, err := r.sealer.Seal(plain)
	if err != nil {
		return fmt.Errorf("save connection: seal credentials: %w", err)
	}

	query, args, err := squirrel.
		Insert(connectionsTable).
		Columns("id", "user_id", "provider", "credentials", "active").
		Values(c.ID, c.UserID, c.Provider, sealed, c.Active).
		Suffix(`
			ON CONFLICT (user_id, provider) DO UPDATE SET
				credentials = EXCLUDED.credentials,
				active = EXCLUDED.active,
				updated_at = NOW()
			RETURNING id, created_at, updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("save connection: build query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return dbError("save connection", err)
	}

	return nil
}

func (r *connectionRepository) GetByUserAndProvider(ctx context.Context, userID string, provider domain.Provider) (*domain.CloudConnection, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "provider", "credentials", "active", "created_at", "updated_at").
		From(connectionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"provider": provider}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("get connection: build query: %w", err)
	}

	c, err := r.scanWithCredentials(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, dbError("get connection", err)
	}

	return c, nil
}

// ListByUser returns the user's connections without credentials.
func (r *connectionRepository) ListByUser(ctx context.Context, userID string) ([]*domain.CloudConnection, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "provider", "active", "created_at", "updated_at").
		From(connectionsTable).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("provider ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list connections: build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("list connections", err)
	}
	defer rows.Close()

	connections := make([]*domain.CloudConnection, 0)
	for rows.Next() {
		c := &domain.CloudConnection{}
		if err := rows.Scan(&c.ID, &c.UserID, &c.Provider, &c.Active, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, dbError("list connections: scan", err)
		}
		connections = append(connections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError("list connections: rows", err)
	}

	return connections, nil
}

func (r *connectionRepository) ListActive(ctx context.Context) ([]*domain.CloudConnection, error) {
	query, args, err := squirrel.
		Select("id", "user_id", "provider", "credentials", "active", "created_at", "updated_at").
		From(connectionsTable).
		Where(squirrel.Eq{"active": true}).
		OrderBy("user_id ASC", "provider ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list active connections: build query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError("list active connections", err)
	}
	defer rows.Close()

	connections := make([]*domain.CloudConnection, 0)
	for rows.Next() {
		c, sealed, err := scanSealed(rows)
		if err != nil {
			return nil, dbError("list active connections: scan", err)
		}

		// A row sealed under another key or corrupted must not hide the others.
		if err := r.openCredentials(c, sealed); err != nil {
			logrus.WithFields(logrus.Fields{
				"connection_id": c.ID,
				"user_id":       c.UserID,
				"provider":      c.Provider,
			}).WithError(err).Warn("Skipping connection with unreadable credentials")
			continue
		}

		connections = append(connections, c)
	}

	if err := rows.Err(); err != nil {
		return nil, dbError("list active connections: rows", err)
	}

	return connections, nil
}

func (r *connectionRepository) SetActive(ctx context.Context, userID string, provider domain.Provider, active bool) error {
	query, args, err := squirrel.
		Update(connectionsTable).
		Set("active", active).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.Eq{"provider": provider}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("set connection active: build query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return dbError("set connection active", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return dbError("set connection active: rows affected", err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func (r *connectionRepository) scanWithCredentials(row scanner) (*domain.CloudConnection, error) {
	c, sealed, err := scanSealed(row)
	if err != nil {
		return nil, err
	}

	if err := r.openCredentials(c, sealed); err != nil {
		return nil, err
	}

	return c, nil
}

func scanSealed(row scanner) (*domain.CloudConnection, []byte, error) {
	c := &domain.CloudConnection{}
	var sealed []byte

	err := row.Scan(&c.ID, &c.UserID, &c.Provider, &sealed, &c.Active, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, nil, err
	}

	return c, sealed, nil
}

func (r *connectionRepository) openCredentials(c *domain.CloudConnection, sealed []byte) error {
	plain, err := r.sealer.Open(sealed)
	if err != nil {
		return fmt.Errorf("open credentials of connection %s: %w", c.ID, err)
	}

	if err := json.Unmarshal(plain, &c.Credentials); err != nil {
		return fmt.Errorf("decode credentials of connection %s: %w", c.ID, err)
	}

	return nil
}
