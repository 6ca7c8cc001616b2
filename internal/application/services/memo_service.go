package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"docledger/internal/application/command"
	"docledger/internal/application/mapper"
	"docledger/internal/common"
	"docledger/internal/domain/entities"
	"docledger/internal/domain/repositories"
	"docledger/internal/infrastructure/mailer"
)

// MemoService implements memo CRUD with owner-only mutation.
type MemoService struct {
	memos    repositories.MemoRepository
	notifier mailer.Notifier
	logger   zerolog.Logger
}

func NewMemoService(memos repositories.MemoRepository, notifier mailer.Notifier, logger zerolog.Logger) *MemoService {
	return &MemoService{memos: memos, notifier: notifier, logger: logger}
}

// Create persists a memo owned by userID. When the payload names an email
// recipient a notification is attempted; its failure is logged and swallowed,
// never surfaced to the caller.
func (s *MemoService) Create(ctx context.Context, userID uint, cmd *command.CreateMemoCommand) (*mapper.MemoResult, error) {
	memo := entities.NewMemo(
		cmd.Title, cmd.MemoNumber, cmd.ExpiryDate,
		cmd.WholesalerDetails, cmd.BuyerDetails, cmd.Items,
		cmd.TotalValue, cmd.Remarks, cmd.Company, userID,
	)
	validated, err := entities.NewValidatedMemo(memo)
	if err != nil {
		return nil, err
	}

	created, err := s.memos.Create(ctx, validated)
	if err != nil {
		return nil, err
	}

	if cmd.Email != "" {
		body := fmt.Sprintf("Memo Created: %s\nDetails: %s", created.Title, created.Items)
		if err := s.notifier.Notify(ctx, cmd.Email, "New Memo Created", body); err != nil {
			s.logger.Error().Err(err).Str("recipient", cmd.Email).Msg("memo notification failed")
		}
	}

	return mapper.NewMemoResult(created), nil
}

func (s *MemoService) Get(ctx context.Context, id uint) (*mapper.MemoResult, error) {
	memo, err := s.memos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.NewMemoResult(memo), nil
}

func (s *MemoService) ListByCompany(ctx context.Context, company string) ([]*mapper.MemoResult, error) {
	memos, err := s.memos.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	return mapper.NewMemoResults(memos), nil
}

func (s *MemoService) ListByUser(ctx context.Context, userID uint) ([]*mapper.MemoResult, error) {
	memos, err := s.memos.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapper.NewMemoResults(memos), nil
}

// Update applies the non-nil fields of cmd to the memo. Only the owner may
// update; anyone else gets ErrForbidden and the record stays unchanged.
func (s *MemoService) Update(ctx context.Context, userID, id uint, cmd *command.UpdateMemoCommand) (*mapper.MemoResult, error) {
	memo, err := s.memos.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if memo.UserID != userID {
		return nil, common.ErrForbidden
	}

	if cmd.Title != nil {
		memo.Title = *cmd.Title
	}
	if cmd.MemoNumber != nil {
		memo.MemoNumber = *cmd.MemoNumber
	}
	if cmd.ExpiryDate != nil {
		memo.ExpiryDate = *cmd.ExpiryDate
	}
	if cmd.WholesalerDetails != nil {
		memo.WholesalerDetails = *cmd.WholesalerDetails
	}
	if cmd.BuyerDetails != nil {
		memo.BuyerDetails = *cmd.BuyerDetails
	}
	if cmd.Items != nil {
		memo.Items = *cmd.Items
	}
	if cmd.TotalValue != nil {
		memo.TotalValue = *cmd.TotalValue
	}
	if cmd.Remarks != nil {
		memo.Remarks = *cmd.Remarks
	}
	if cmd.Company != nil {
		memo.Company = *cmd.Company
	}

	validated, err := entities.NewValidatedMemo(memo)
	if err != nil {
		return nil, err
	}

	updated, err := s.memos.Update(ctx, validated)
	if err != nil {
		return nil, err
	}
	return mapper.NewMemoResult(updated), nil
}

// Delete removes the memo when userID owns it.
func (s *MemoService) Delete(ctx context.Context, userID, id uint) error {
	memo, err := s.memos.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if memo.UserID != userID {
		return common.ErrForbidden
	}
	return s.memos.Delete(ctx, id)
}
