// Package mapper shapes domain entities into the JSON results returned by
// the API. Password hashes never leave this mapping.
package mapper

import (
	"docledger/internal/domain/entities"
)

type UserResult struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Category string `json:"category"`
}

func NewUserResult(user *entities.User, categoryName string) *UserResult {
	return &UserResult{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
		Lastname: user.Lastname,
		Category: categoryName,
	}
}

type CategoryResult struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewCategoryResult(category *entities.Category) *CategoryResult {
	return &CategoryResult{ID: category.ID, Name: category.Name}
}

func NewCategoryResults(categories []*entities.Category) []*CategoryResult {
	results := make([]*CategoryResult, 0, len(categories))
	for _, c := range categories {
		results = append(results, NewCategoryResult(c))
	}
	return results
}

type MemoResult struct {
	ID                uint    `json:"id"`
	Title             string  `json:"title"`
	MemoNumber        string  `json:"memo_number"`
	ExpiryDate        string  `json:"expiry_date"`
	WholesalerDetails string  `json:"wholesaler_details"`
	BuyerDetails      string  `json:"buyer_details"`
	Items             string  `json:"items"`
	TotalValue        float64 `json:"total_value"`
	Remarks           string  `json:"remarks"`
	Company           string  `json:"company"`
	UserID            uint    `json:"user_id"`
}

func NewMemoResult(memo *entities.Memo) *MemoResult {
	return &MemoResult{
		ID:                memo.ID,
		Title:             memo.Title,
		MemoNumber:        memo.MemoNumber,
		ExpiryDate:        memo.ExpiryDate,
		WholesalerDetails: memo.WholesalerDetails,
		BuyerDetails:      memo.BuyerDetails,
		Items:             memo.Items,
		TotalValue:        memo.TotalValue,
		Remarks:           memo.Remarks,
		Company:           memo.Company,
		UserID:            memo.UserID,
	}
}

func NewMemoResults(memos []*entities.Memo) []*MemoResult {
	results := make([]*MemoResult, 0, len(memos))
	for _, m := range memos {
		results = append(results, NewMemoResult(m))
	}
	return results
}

type InvoiceResult struct {
	ID                uint    `json:"id"`
	Title             string  `json:"title"`
	InvoiceNumber     string  `json:"invoice_number"`
	WholesalerDetails string  `json:"wholesaler_details"`
	BuyerDetails      string  `json:"buyer_details"`
	Items             string  `json:"items"`
	TotalValue        float64 `json:"total_value"`
	Company           string  `json:"company"`
	UserID            uint    `json:"user_id"`
}

func NewInvoiceResult(invoice *entities.Invoice) *InvoiceResult {
	return &InvoiceResult{
		ID:                invoice.ID,
		Title:             invoice.Title,
		InvoiceNumber:     invoice.InvoiceNumber,
		WholesalerDetails: invoice.WholesalerDetails,
		BuyerDetails:      invoice.BuyerDetails,
		Items:             invoice.Items,
		TotalValue:        invoice.TotalValue,
		Company:           invoice.Company,
		UserID:            invoice.UserID,
	}
}

func NewInvoiceResults(invoices []*entities.Invoice) []*InvoiceResult {
	results := make([]*InvoiceResult, 0, len(invoices))
	for _, i := range invoices {
		results = append(results, NewInvoiceResult(i))
	}
	return results
}
