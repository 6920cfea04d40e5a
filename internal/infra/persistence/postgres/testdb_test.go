package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"farmlease/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens a private in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(slog.New(slog.DiscardHandler), false, 0, nil),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func seedUser(t *testing.T, db *gorm.DB, role entity.Role) *entity.User {
	t.Helper()

	user := &entity.User{
		Email: uuid.NewString() + "@farm.np",
		Name:  role.String(),
		Role:  role,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func seedPlot(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *entity.Plot {
	t.Helper()

	plot := &entity.Plot{Name: name, OwnerID: ownerID}
	require.NoError(t, NewPlotRepository(db).Create(context.Background(), plot))

	return plot
}

func seedLease(t *testing.T, db *gorm.DB, plotID, farmerID uuid.UUID) {
	t.Helper()

	require.NoError(t, NewLeaseRepository(db).Create(context.Background(), &entity.Lease{PlotID: plotID, FarmerID: farmerID}))
}
