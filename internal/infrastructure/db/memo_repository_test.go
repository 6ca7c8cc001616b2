package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docledger/internal/common"
	"docledger/internal/domain/entities"
)

func TestMemoRepositoryCreateAndListByCompany(t *testing.T) {
	conn := openTestDB(t)
	repo := NewMemoRepository(conn)
	ctx := context.Background()

	user := createTestUser(t, conn, "alice")
	created := createTestMemo(t, conn, "M-1", "Acme", user.ID)
	createTestMemo(t, conn, "M-2", "Globex", user.ID)

	memos, err := repo.ListByCompany(ctx, "Acme")
	require.NoError(t, err)
	require.Len(t, memos, 1)
	assert.Equal(t, created.ID, memos[0].ID)
	assert.Equal(t, "M-1", memos[0].MemoNumber)

	empty, err := repo.ListByCompany(ctx, "Unknown Co")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMemoRepositoryDuplicateNumber(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	user := createTestUser(t, conn, "alice")
	createTestMemo(t, conn, "M-1", "Acme", user.ID)

	memo := entities.NewMemo("Another", "M-1", "2027-02-01", "w", "b", "items", 500, "", "Globex", user.ID)
	validated, err := entities.NewValidatedMemo(memo)
	require.NoError(t, err)

	_, err = NewMemoRepository(conn).Create(ctx, validated)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestMemoRepositoryUpdate(t *testing.T) {
	conn := openTestDB(t)
	repo := NewMemoRepository(conn)
	ctx := context.Background()

	user := createTestUser(t, conn, "alice")
	memo := createTestMemo(t, conn, "M-1", "Acme", user.ID)

	memo.Title = "Edited title"
	memo.TotalValue = 4200
	validated, err := entities.NewValidatedMemo(memo)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, validated)
	require.NoError(t, err)
	assert.Equal(t, "Edited title", updated.Title)
	assert.Equal(t, 4200.0, updated.TotalValue)
	assert.Equal(t, "M-1", updated.MemoNumber, "untouched fields keep their value")

	missing := *memo
	missing.ID = 999
	validatedMissing, err := entities.NewValidatedMemo(&missing)
	require.NoError(t, err)
	_, err = repo.Update(ctx, validatedMissing)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoRepositoryDeleteTwice(t *testing.T) {
	conn := openTestDB(t)
	repo := NewMemoRepository(conn)
	ctx := context.Background()

	user := createTestUser(t, conn, "alice")
	memo := createTestMemo(t, conn, "M-1", "Acme", user.ID)

	require.NoError(t, repo.Delete(ctx, memo.ID))
	assert.ErrorIs(t, repo.Delete(ctx, memo.ID), common.ErrNotFound)

	_, err := repo.FindByID(ctx, memo.ID)
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestMemoRepositoryCompaniesByUser(t *testing.T) {
	conn := openTestDB(t)
	repo := NewMemoRepository(conn)
	ctx := context.Background()

	user := createTestUser(t, conn, "alice")
	other := createTestUser(t, conn, "bob")
	createTestMemo(t, conn, "M-1", "Acme", user.ID)
	createTestMemo(t, conn, "M-2", "Acme", user.ID)
	createTestMemo(t, conn, "M-3", "Globex", user.ID)
	createTestMemo(t, conn, "M-4", "Initech", other.ID)

	companies, err := repo.CompaniesByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex"}, companies, "duplicates collapse, other users excluded")
}

func TestInvoiceRepositoryRoundTrip(t *testing.T) {
	conn := openTestDB(t)
	repo := NewInvoiceRepository(conn)
	ctx := context.Background()

	user := createTestUser(t, conn, "alice")
	created := createTestInvoice(t, conn, "I-1", "Acme", user.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "I-1", found.InvoiceNumber)
	assert.Equal(t, user.ID, found.UserID)

	invoices, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, invoices, 1)

	dup := entities.NewInvoice("Dup", "I-1", "w", "b", "items", 100, "Globex", user.ID)
	validated, err := entities.NewValidatedInvoice(dup)
	require.NoError(t, err)
	_, err = repo.Create(ctx, validated)
	assert.ErrorIs(t, err, common.ErrAlreadyExists)

	require.NoError(t, repo.Delete(ctx, created.ID))
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), common.ErrNotFound)
}
