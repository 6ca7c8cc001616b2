package db

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"docledger/internal/domain/entities"
)

// openTestDB opens an isolated in-memory sqlite database named after the
// test, migrated and seeded like the real server.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(conn))
	require.NoError(t, SeedCategories(conn))
	return conn
}

func createTestUser(t *testing.T, conn *gorm.DB, username string) *entities.User {
	t.Helper()
	user := entities.NewUser("Test", "User", username, "pw", 1)
	validated, err := entities.NewValidatedUser(user)
	require.NoError(t, err)
	require.NoError(t, validated.HashPassword())
	created, err := NewUserRepository(conn).Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func createTestMemo(t *testing.T, conn *gorm.DB, number, company string, userID uint) *entities.Memo {
	t.Helper()
	memo := entities.NewMemo("Memo "+number, number, "2027-01-31", "w", "b", "items", 1000, "", company, userID)
	validated, err := entities.NewValidatedMemo(memo)
	require.NoError(t, err)
	created, err := NewMemoRepository(conn).Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}

func createTestInvoice(t *testing.T, conn *gorm.DB, number, company string, userID uint) *entities.Invoice {
	t.Helper()
	invoice := entities.NewInvoice("Invoice "+number, number, "w", "b", "items", 800, company, userID)
	validated, err := entities.NewValidatedInvoice(invoice)
	require.NoError(t, err)
	created, err := NewInvoiceRepository(conn).Create(context.Background(), validated)
	require.NoError(t, err)
	return created
}
