package feed

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/localnerve/gestorinmo/internal/database"
	"github.com/localnerve/gestorinmo/internal/models"
	"github.com/localnerve/gestorinmo/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

func TestRefreshAllPublishesCollections(t *testing.T) {
	db := setupTestDB(t)
	propID := "p1"
	require.NoError(t, db.Create(&models.Property{ID: propID, Address: "Calle Mayor 1", Status: models.PropertyStatusRented}).Error)
	require.NoError(t, db.Create(&models.Tenant{ID: "t1", Name: "Juan", PropertyID: &propID, MonthlyRent: 800}).Error)
	require.NoError(t, db.Create(&models.Expense{ID: "e1", PropertyID: propID, Amount: 50, Category: models.ExpenseCategoryTaxes}).Error)
	require.NoError(t, db.Create(&models.Expense{ID: "e2", PropertyID: propID, Amount: 70, Category: models.ExpenseCategoryOther}).Error)

	s := store.New()
	f := New(db, s, nil, time.Minute)
	require.NoError(t, f.RefreshAll(context.Background()))

	snap := s.Snapshot()
	require.Len(t, snap.Properties, 1)
	assert.Equal(t, "Calle Mayor 1", snap.Properties[0].Address)
	require.Len(t, snap.Tenants, 1)
	assert.Equal(t, propID, *snap.Tenants[0].PropertyID)
	require.Len(t, snap.Expenses, 2)
	assert.Equal(t, "e1", snap.Expenses[0].ID)
	assert.Equal(t, "e2", snap.Expenses[1].ID)

	for _, c := range store.Collections {
		assert.Equal(t, uint64(1), s.Version(c), string(c))
	}
}

func TestRefreshEmptyCollectionPublishes(t *testing.T) {
	db := setupTestDB(t)
	s := store.New()
	s.PublishTenants([]models.Tenant{{ID: "gone"}})

	require.NoError(t, New(db, s, nil, time.Minute).Refresh(context.Background(), store.Tenants))
	assert.Empty(t, s.Snapshot().Tenants)
}

func TestRefreshUnknownCollection(t *testing.T) {
	db := setupTestDB(t)
	err := New(db, store.New(), nil, time.Minute).Refresh(context.Background(), store.Collection("users"))
	assert.Error(t, err)
}

func TestRefreshFailureKeepsSnapshot(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT \* FROM "expenses"`).WillReturnError(errors.New("connection reset"))

	s := store.New()
	s.PublishExpenses([]models.Expense{{ID: "kept", Amount: 10}})

	err = New(db, s, nil, time.Minute).Refresh(context.Background(), store.Expenses)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")

	snap := s.Snapshot()
	require.Len(t, snap.Expenses, 1)
	assert.Equal(t, "kept", snap.Expenses[0].ID)
	assert.Equal(t, uint64(1), s.Version(store.Expenses))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunPollsUntilCancelled(t *testing.T) {
	db := setupTestDB(t)
	s := store.New()
	f := New(db, s, nil, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return s.Version(store.Properties) >= 1 }, time.Second, 5*time.Millisecond)

	require.NoError(t, db.Create(&models.Property{ID: "late", Address: "Gran Vía 2"}).Error)
	require.Eventually(t, func() bool { return len(s.Snapshot().Properties) == 1 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
