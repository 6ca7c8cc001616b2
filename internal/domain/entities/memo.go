package entities

import (
	"strings"
	"time"

	"docledger/internal/common"
)

// Memo is a pre-sale business document. Company is the partition key used for
// listing; UserID is the owner and the only identity allowed to mutate it.
type Memo struct {
	ID                uint
	CreatedAt         time.Time
	UpdatedAt         time.Time
	Title             string
	MemoNumber        string
	ExpiryDate        string
	WholesalerDetails string
	BuyerDetails      string
	Items             string
	TotalValue        float64
	Remarks           string
	Company           string
	UserID            uint
}

func NewMemo(title, memoNumber, expiryDate, wholesalerDetails, buyerDetails, items string, totalValue float64, remarks, company string, userID uint) *Memo {
	return &Memo{
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
		Title:             title,
		MemoNumber:        memoNumber,
		ExpiryDate:        expiryDate,
		WholesalerDetails: wholesalerDetails,
		BuyerDetails:      buyerDetails,
		Items:             items,
		TotalValue:        totalValue,
		Remarks:           remarks,
		Company:           company,
		UserID:            userID,
	}
}

func (m *Memo) validate() error {
	if strings.TrimSpace(m.Title) == "" {
		return common.NewValidationError("title", "must not be empty")
	}
	if strings.TrimSpace(m.MemoNumber) == "" {
		return common.NewValidationError("memo_number", "must not be empty")
	}
	if strings.TrimSpace(m.Company) == "" {
		return common.NewValidationError("company", "must not be empty")
	}
	if m.UserID == 0 {
		return common.NewValidationError("user_id", "must reference a user")
	}
	return nil
}

type ValidatedMemo struct {
	*Memo
}

func NewValidatedMemo(memo *Memo) (*ValidatedMemo, error) {
	if err := memo.validate(); err != nil {
		return nil, err
	}
	return &ValidatedMemo{Memo: memo}, nil
}

func (vm *ValidatedMemo) GetMemo() *Memo {
	return vm.Memo
}
