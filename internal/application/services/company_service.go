package services

import (
	"context"
	"sort"

	"docledger/internal/domain/repositories"
)

// CompanyService answers the distinct-companies view over a user's memos and
// invoices combined.
type CompanyService struct {
	memos    repositories.MemoRepository
	invoices repositories.InvoiceRepository
}

func NewCompanyService(memos repositories.MemoRepository, invoices repositories.InvoiceRepository) *CompanyService {
	return &CompanyService{memos: memos, invoices: invoices}
}

// DistinctCompanies returns the sorted union of company names across the
// user's memos and invoices. A user with no documents gets an empty slice.
func (s *CompanyService) DistinctCompanies(ctx context.Context, userID uint) ([]string, error) {
	fromMemos, err := s.memos.CompaniesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	fromInvoices, err := s.invoices.CompaniesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(fromMemos)+len(fromInvoices))
	companies := make([]string, 0, len(fromMemos)+len(fromInvoices))
	for _, lists := range [][]string{fromMemos, fromInvoices} {
		for _, company := range lists {
			if _, ok := seen[company]; ok {
				continue
			}
			seen[company] = struct{}{}
			companies = append(companies, company)
		}
	}
	sort.Strings(companies)
	return companies, nil
}
