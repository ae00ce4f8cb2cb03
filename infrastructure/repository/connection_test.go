package repository

import (
	"context"
	"database/sql/driver"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cloud-cost-api/internal/domain"
	"github.com/vfg2006/cloud-cost-api/pkg/sealer"
)

var connectionRowColumns = []string{"id", "user_id", "provider", "credentials", "active", "created_at", "updated_at"}

func newTestSealer(t *testing.T) sealer.Sealer {
	t.Helper()

	s, err := sealer.New(strings.Repeat("ab", 32))
	require.NoError(t, err)
	return s
}

// plaintextFree matches a sealed credentials argument that does not leak the secret.
type plaintextFree struct {
	secret string
}

func (p plaintextFree) Match(v driver.Value) bool {
	b, ok := v.([]byte)
	return ok && len(b) > 0 && !strings.Contains(string(b), p.secret)
}

func TestConnectionRepository_SaveSealsCredentials(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (user_id, provider) DO UPDATE SET")).
		WithArgs("conn-1", "user-1", domain.ProviderAWS, plaintextFree{secret: "very-secret"}, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow("conn-0", now, now))

	c := &domain.CloudConnection{
		ID:          "conn-1",
		UserID:      "user-1",
		Provider:    domain.ProviderAWS,
		Credentials: domain.Credentials{AccessKeyID: "AKIA", SecretAccessKey: "very-secret"},
		Active:      true,
	}

	err := NewConnectionRepository(conn, newTestSealer(t)).Save(context.Background(), c)
	require.NoError(t, err)

	assert.Equal(t, "conn-0", c.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_GetByUserAndProvider(t *testing.T) {
	s := newTestSealer(t)
	now := time.Now()

	plain, err := json.Marshal(domain.Credentials{ProjectID: "proj-1", ServiceAccountKey: "{}"})
	require.NoError(t, err)
	sealed, err := s.Seal(plain)
	require.NoError(t, err)

	t.Run("opens stored credentials", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM cloud_connections WHERE user_id = $1 AND provider = $2")).
			WithArgs("user-1", domain.ProviderGCP).
			WillReturnRows(sqlmock.NewRows(connectionRowColumns).AddRow("conn-1", "user-1", "gcp", sealed, true, now, now))

		c, err := NewConnectionRepository(conn, s).GetByUserAndProvider(context.Background(), "user-1", domain.ProviderGCP)
		require.NoError(t, err)
		require.NotNil(t, c)

		assert.Equal(t, "proj-1", c.Credentials.ProjectID)
		assert.True(t, c.Active)
	})

	t.Run("missing row is nil", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectQuery("FROM cloud_connections").
			WillReturnRows(sqlmock.NewRows(connectionRowColumns))

		c, err := NewConnectionRepository(conn, s).GetByUserAndProvider(context.Background(), "user-1", domain.ProviderGCP)
		require.NoError(t, err)
		assert.Nil(t, c)
	})

	t.Run("tampered credentials fail", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		tampered := append([]byte{}, sealed...)
		tampered[len(tampered)-1] ^= 0xff

		mock.ExpectQuery("FROM cloud_connections").
			WillReturnRows(sqlmock.NewRows(connectionRowColumns).AddRow("conn-1", "user-1", "gcp", tampered, true, now, now))

		_, err := NewConnectionRepository(conn, s).GetByUserAndProvider(context.Background(), "user-1", domain.ProviderGCP)
		assert.Error(t, err)
	})
}

func TestConnectionRepository_ListByUserOmitsCredentials(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, user_id, provider, active, created_at, updated_at FROM cloud_connections WHERE user_id = $1 ORDER BY provider ASC")).
		WithArgs("user-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "provider", "active", "created_at", "updated_at"}).
			AddRow("conn-1", "user-1", "aws", true, now, now).
			AddRow("conn-2", "user-1", "azure", false, now, now))

	connections, err := NewConnectionRepository(conn, newTestSealer(t)).ListByUser(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, connections, 2)
	assert.Equal(t, domain.ProviderAzure, connections[1].Provider)
	assert.False(t, connections[1].Active)
	assert.Empty(t, connections[0].Credentials.AccessKeyID)
}

func TestConnectionRepository_ListActiveSkipsUnreadableCredentials(t *testing.T) {
	conn, mock := newMockConnection(t)
	now := time.Now()

	plain, err := json.Marshal(domain.Credentials{AccessKeyID: "AKIA", SecretAccessKey: "secret", Region: "us-east-1"})
	require.NoError(t, err)

	current := newTestSealer(t)
	good, err := current.Seal(plain)
	require.NoError(t, err)

	rotated, err := sealer.New(strings.Repeat("cd", 32))
	require.NoError(t, err)
	stale, err := rotated.Seal(plain)
	require.NoError(t, err)

	mock.ExpectQuery(regexp.QuoteMeta("FROM cloud_connections WHERE active = $1 ORDER BY user_id ASC, provider ASC")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(connectionRowColumns).
			AddRow("c1", "user-1", "aws", good, true, now, now).
			AddRow("c2", "user-2", "aws", stale, true, now, now).
			AddRow("c3", "user-3", "aws", []byte("not sealed"), true, now, now))

	connections, err := NewConnectionRepository(conn, current).ListActive(context.Background())
	require.NoError(t, err)

	require.Len(t, connections, 1)
	assert.Equal(t, "c1", connections[0].ID)
	assert.Equal(t, "AKIA", connections[0].Credentials.AccessKeyID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_ListActiveQueryError(t *testing.T) {
	conn, mock := newMockConnection(t)
	mock.ExpectQuery("FROM cloud_connections").WillReturnError(assert.AnError)

	connections, err := NewConnectionRepository(conn, newTestSealer(t)).ListActive(context.Background())
	assert.Error(t, err)
	assert.Nil(t, connections)
}

func TestConnectionRepository_SetActive(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectExec(regexp.QuoteMeta("UPDATE cloud_connections SET active = $1, updated_at = NOW() WHERE user_id = $2 AND provider = $3")).
			WithArgs(false, "user-1", domain.ProviderAWS).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewConnectionRepository(conn, newTestSealer(t)).SetActive(context.Background(), "user-1", domain.ProviderAWS, false)
		assert.NoError(t, err)
	})

	t.Run("no row", func(t *testing.T) {
		conn, mock := newMockConnection(t)
		mock.ExpectExec("UPDATE cloud_connections").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewConnectionRepository(conn, newTestSealer(t)).SetActive(context.Background(), "user-1", domain.ProviderAWS, false)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
