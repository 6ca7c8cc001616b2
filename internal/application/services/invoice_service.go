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

// InvoiceService mirrors MemoService for invoices.
type InvoiceService struct {
	invoices repositories.InvoiceRepository
	notifier mailer.Notifier
	logger   zerolog.Logger
}

func NewInvoiceService(invoices repositories.InvoiceRepository, notifier mailer.Notifier, logger zerolog.Logger) *InvoiceService {
	return &InvoiceService{invoices: invoices, notifier: notifier, logger: logger}
}

func (s *InvoiceService) Create(ctx context.Context, userID uint, cmd *command.CreateInvoiceCommand) (*mapper.InvoiceResult, error) {
	invoice := entities.NewInvoice(
		cmd.Title, cmd.InvoiceNumber,
		cmd.WholesalerDetails, cmd.BuyerDetails, cmd.Items,
		cmd.TotalValue, cmd.Company, userID,
	)
	validated, err := entities.NewValidatedInvoice(invoice)
	if err != nil {
		return nil, err
	}

	created, err := s.invoices.Create(ctx, validated)
	if err != nil {
		return nil, err
	}

	if cmd.Email != "" {
		body := fmt.Sprintf("Invoice Created: %s\nDetails: %s", created.Title, created.Items)
		if err := s.notifier.Notify(ctx, cmd.Email, "New Invoice Created", body); err != nil {
			s.logger.Error().Err(err).Str("recipient", cmd.Email).Msg("invoice notification failed")
		}
	}

	return mapper.NewInvoiceResult(created), nil
}

func (s *InvoiceService) Get(ctx context.Context, id uint) (*mapper.InvoiceResult, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.NewInvoiceResult(invoice), nil
}

func (s *InvoiceService) ListByCompany(ctx context.Context, company string) ([]*mapper.InvoiceResult, error) {
	invoices, err := s.invoices.ListByCompany(ctx, company)
	if err != nil {
		return nil, err
	}
	return mapper.NewInvoiceResults(invoices), nil
}

func (s *InvoiceService) ListByUser(ctx context.Context, userID uint) ([]*mapper.InvoiceResult, error) {
	invoices, err := s.invoices.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapper.NewInvoiceResults(invoices), nil
}

func (s *InvoiceService) Update(ctx context.Context, userID, id uint, cmd *command.UpdateInvoiceCommand) (*mapper.InvoiceResult, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice.UserID != userID {
		return nil, common.ErrForbidden
	}

	if cmd.Title != nil {
		invoice.Title = *cmd.Title
	}
	if cmd.InvoiceNumber != nil {
		invoice.InvoiceNumber = *cmd.InvoiceNumber
	}
	if cmd.WholesalerDetails != nil {
		invoice.WholesalerDetails = *cmd.WholesalerDetails
	}
	if cmd.BuyerDetails != nil {
		invoice.BuyerDetails = *cmd.BuyerDetails
	}
	if cmd.Items != nil {
		invoice.Items = *cmd.Items
	}
	if cmd.TotalValue != nil {
		invoice.TotalValue = *cmd.TotalValue
	}
	if cmd.Company != nil {
		invoice.Company = *cmd.Company
	}

	validated, err := entities.NewValidatedInvoice(invoice)
	if err != nil {
		return nil, err
	}

	updated, err := s.invoices.Update(ctx, validated)
	if err != nil {
		return nil, err
	}
	return mapper.NewInvoiceResult(updated), nil
}

func (s *InvoiceService) Delete(ctx context.Context, userID, id uint) error {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if invoice.UserID != userID {
		return common.ErrForbidden
	}
	return s.invoices.Delete(ctx, id)
}
