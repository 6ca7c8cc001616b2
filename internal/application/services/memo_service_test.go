package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docledger/internal/application/command"
	"docledger/internal/common"
)

func TestMemoCreateSendsNotification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID, _ := f.signup(t, "alice")

	memo, err := f.memos.Create(ctx, userID, &command.CreateMemoCommand{
		Title:             "Consignment",
		MemoNumber:        "M-1",
		ExpiryDate:        "2027-01-31",
		WholesalerDetails: "w",
		BuyerDetails:      "b",
		Items:             "three stones",
		TotalValue:        2500,
		Company:           "Acme",
		Email:             "buyer@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, userID, memo.UserID)

	sent := f.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "buyer@example.com", sent[0].recipient)
	assert.Equal(t, "New Memo Created", sent[0].subject)
	assert.Contains(t, sent[0].body, "three stones")
}

func TestMemoCreateWithoutEmailSkipsNotification(t *testing.T) {
	f := newFixture(t)
	userID, _ := f.signup(t, "alice")

	f.createMemo(t, userID, "M-1", "Acme")
	assert.Empty(t, f.notifier.sent())
}

func TestMemoCreateSurvivesNotifierFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID, _ := f.signup(t, "alice")
	f.notifier.err = errors.New("smtp down")

	memo, err := f.memos.Create(ctx, userID, &command.CreateMemoCommand{
		Title:             "Consignment",
		MemoNumber:        "M-1",
		ExpiryDate:        "2027-01-31",
		WholesalerDetails: "w",
		BuyerDetails:      "b",
		Items:             "items",
		TotalValue:        2500,
		Company:           "Acme",
		Email:             "buyer@example.com",
	})
	require.NoError(t, err, "notification failure must not fail the create")
	require.NotNil(t, memo)

	listed, err := f.memos.ListByCompany(ctx, "Acme")
	require.NoError(t, err)
	assert.Len(t, listed, 1)
}

func TestMemoCreateValidation(t *testing.T) {
	f := newFixture(t)
	userID, _ := f.signup(t, "alice")

	_, err := f.memos.Create(context.Background(), userID, &command.CreateMemoCommand{
		Title:      "  ",
		MemoNumber: "M-1",
		Company:    "Acme",
	})
	assert.True(t, common.IsValidation(err))
}

func TestMemoListByCompanyContainsCreatedOnce(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID, _ := f.signup(t, "alice")
	id := f.createMemo(t, userID, "M-1", "Acme")
	f.createMemo(t, userID, "M-2", "Globex")

	listed, err := f.memos.ListByCompany(ctx, "Acme")
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0].ID)
}

func TestMemoUpdatePartial(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID, _ := f.signup(t, "alice")
	id := f.createMemo(t, userID, "M-1", "Acme")

	title := "New title"
	value := 9000.0
	updated, err := f.memos.Update(ctx, userID, id, &command.UpdateMemoCommand{
		Title:      &title,
		TotalValue: &value,
	})
	require.NoError(t, err)
	assert.Equal(t, "New title", updated.Title)
	assert.Equal(t, 9000.0, updated.TotalValue)
	assert.Equal(t, "M-1", updated.MemoNumber, "absent fields keep prior values")
	assert.Equal(t, "Acme", updated.Company)
}

func TestMemoUpdateByNonOwnerForbidden(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID, _ := f.signup(t, "alice")
	intruderID, _ := f.signup(t, "bob")
	id := f.createMemo(t, ownerID, "M-1", "Acme")

	title := "Hijacked"
	_, err := f.memos.Update(ctx, intruderID, id, &command.UpdateMemoCommand{Title: &title})
	assert.ErrorIs(t, err, common.ErrForbidden)

	// Record unchanged.
	memo, err := f.memos.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Memo M-1", memo.Title)
}

func TestMemoDelete(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID, _ := f.signup(t, "alice")
	intruderID, _ := f.signup(t, "bob")
	id := f.createMemo(t, ownerID, "M-1", "Acme")

	assert.ErrorIs(t, f.memos.Delete(ctx, intruderID, id), common.ErrForbidden)
	require.NoError(t, f.memos.Delete(ctx, ownerID, id))
	assert.ErrorIs(t, f.memos.Delete(ctx, ownerID, id), common.ErrNotFound)
}

func TestInvoiceOwnershipAndNotification(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	ownerID, _ := f.signup(t, "alice")
	intruderID, _ := f.signup(t, "bob")

	invoice, err := f.invoices.Create(ctx, ownerID, &command.CreateInvoiceCommand{
		Title:             "Sale",
		InvoiceNumber:     "I-1",
		WholesalerDetails: "w",
		BuyerDetails:      "b",
		Items:             "melee parcel",
		TotalValue:        1800,
		Company:           "Acme",
		Email:             "buyer@example.com",
	})
	require.NoError(t, err)

	sent := f.notifier.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "New Invoice Created", sent[0].subject)

	title := "Hijacked"
	_, err = f.invoices.Update(ctx, intruderID, invoice.ID, &command.UpdateInvoiceCommand{Title: &title})
	assert.ErrorIs(t, err, common.ErrForbidden)

	newTitle := "Amended sale"
	updated, err := f.invoices.Update(ctx, ownerID, invoice.ID, &command.UpdateInvoiceCommand{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Amended sale", updated.Title)
	assert.Equal(t, "I-1", updated.InvoiceNumber)
}

func TestDistinctCompanies(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	userID, _ := f.signup(t, "alice")

	f.createMemo(t, userID, "M-1", "Acme")
	f.createMemo(t, userID, "M-2", "Acme")
	f.createMemo(t, userID, "M-3", "Globex")
	_, err := f.invoices.Create(ctx, userID, &command.CreateInvoiceCommand{
		Title: "Sale", InvoiceNumber: "I-1", WholesalerDetails: "w",
		BuyerDetails: "b", Items: "items", TotalValue: 100, Company: "Acme",
	})
	require.NoError(t, err)
	_, err = f.invoices.Create(ctx, userID, &command.CreateInvoiceCommand{
		Title: "Sale", InvoiceNumber: "I-2", WholesalerDetails: "w",
		BuyerDetails: "b", Items: "items", TotalValue: 100, Company: "Initech",
	})
	require.NoError(t, err)

	companies, err := f.companies.DistinctCompanies(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acme", "Globex", "Initech"}, companies)
}

func TestCategoryServiceList(t *testing.T) {
	f := newFixture(t)

	categories, err := f.category.List(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 4)
	assert.Equal(t, "Wholesale", categories[0].Name)
}
