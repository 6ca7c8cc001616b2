package entities

import (
	"strings"
	"time"

	"docledger/internal/common"
)

// Invoice is a billing document, structurally parallel to Memo but without
// expiry date or remarks.
type Invoice struct {
	ID                uint
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Title             string
	InvoiceNumber     string
	WholesalerDetails string
	BuyerDetails      string
	Items             string
	TotalValue        float64
	Company           string
	UserID            uint
}

func NewInvoice(title, invoiceNumber, wholesalerDetails, buyerDetails, items string, totalValue float64, company string, userID uint) *Invoice {
	return &Invoice{
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Title:             title,
		InvoiceNumber:     invoiceNumber,
		WholesalerDetails: wholesalerDetails,
		BuyerDetails:      buyerDetails,
		Items:             items,
		TotalValue:        totalValue,
		Company:           company,
		UserID:            userID,
	}
}

func (i *Invoice) validate() error {
	if strings.TrimSpace(i.Title) == "" {
		return common.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(i.InvoiceNumber) == "" {
		return common.NewValidationError("invoice_number", "must not be empty")
	}
	if strings.TrimSpace(i.Company) == "" {
		return common.NewValidationError("company", "must not be empty")
	}
	if i.UserID == 0 {
		return common.NewValidationError("user_id", "must reference a user")
	}
	return nil
}

type ValidatedInvoice struct {
	*Invoice
}

func NewValidatedInvoice(invoice *Invoice) (*ValidatedInvoice, error) {
	if err := invoice.validate(); err != nil {
		return nil, err
	}
	return &ValidatedInvoice{Invoice: invoice}, nil
}

func (vi *ValidatedInvoice) GetInvoice() *Invoice {
	return vi.Invoice
}
