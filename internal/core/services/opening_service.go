package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/hadikeshavarzi/anbar-ledger/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type openingService struct {
	chart       *domain.Chart
	openingRepo portsrepo.OpeningRepositoryFacade
	partyRepo   portsrepo.PartyRepositoryFacade
	chartSvc    portssvc.ChartSvcFacade
	posting     portssvc.PostingWriterSvc
}

// NewOpeningService creates the opening-balance registrar.
func NewOpeningService(chart *domain.Chart, openingRepo portsrepo.OpeningRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade, chartSvc portssvc.ChartSvcFacade, posting portssvc.PostingWriterSvc) portssvc.OpeningSvcFacade {
	return &openingService{
		chart:       chart,
		openingRepo: openingRepo,
		partyRepo:   partyRepo,
		chartSvc:    chartSvc,
		posting:     posting,
	}
}

var _ portssvc.OpeningSvcFacade = (*openingService)(nil)

// RegisterOpeningBalance seeds one section of historical balances exactly
// once per tenant. The header insert goes first so the unique constraint on
// (tenant, section) decides concurrent races before any item work happens;
// the loser rolls back with ErrDuplicateSection and leaves nothing behind.
//
// Only the customers section produces ledger lines. Banks and cashes
// overwrite the stored initial-balance field on their records instead, and
// inventory seeds quantities with no monetary posting at all.
func (s *openingService) RegisterOpeningBalance(ctx context.Context, tenantID string, section domain.OpeningSection, req dto.OpeningBalanceRequest, userID string) (*dto.OpeningBalanceResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !domain.ValidOpeningSection(section) {
		return nil, fmt.Errorf("%w: unknown opening section %q", apperrors.ErrValidation, section)
	}

	now := time.Now()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
	opening := domain.OpeningBalance{
		OpeningID:   uuid.NewString(),
		TenantID:    tenantID,
		Section:     section,
		Description: req.Description,
		AuditFields: audit,
	}

	tx, err := s.openingRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.openingRepo.Rollback(ctx, tx)

	if err := s.openingRepo.SaveOpeningBalance(ctx, tx, opening); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("%w: section %s of tenant %s", ErrDuplicateSection, section, tenantID)
		}
		return nil, err
	}

	items := make([]domain.OpeningBalanceItem, 0, len(req.Items))
	skipped := 0
	for _, item := range req.Items {
		if !s.itemHasValue(section, item) {
			skipped++
			continue
		}
		items = append(items, domain.OpeningBalanceItem{
			ItemID:      uuid.NewString(),
			OpeningID:   opening.OpeningID,
			RefID:       item.RefID,
			Quantity:    item.Quantity,
			Amount:      item.Amount,
			Direction:   domain.EntryDirection(item.Direction),
			AuditFields: audit,
		})
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: section %s", ErrNoValidItems, section)
	}

	result := &dto.OpeningBalanceResult{OpeningID: opening.OpeningID}

	switch section {
	case domain.SectionCustomers:
		docResult, extraSkipped, err := s.postCustomerOpening(ctx, tx, tenantID, opening, items, audit)
		if err != nil {
			return nil, err
		}
		skipped += extraSkipped
		result.Document = docResult

	case domain.SectionBanks:
		for i := range items {
			err := s.partyRepo.SetBankInitialBalance(ctx, tx, tenantID, items[i].RefID, items[i].Amount)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					logger.Warn("Opening item references unknown bank, skipping", "ref_id", items[i].RefID)
					skipped++
					continue
				}
				return nil, err
			}
			items[i].Posted = true
		}

	case domain.SectionCashes:
		for i := range items {
			err := s.partyRepo.SetCashInitialBalance(ctx, tx, tenantID, items[i].RefID, items[i].Amount)
			if err != nil {
				if errors.Is(err, apperrors.ErrNotFound) {
					logger.Warn("Opening item references unknown cash box, skipping", "ref_id", items[i].RefID)
					skipped++
					continue
				}
				return nil, err
			}
			items[i].Posted = true
		}

	case domain.SectionInventory:
		// Quantities only; the inventory collaborator reads them back.
	}

	if err := s.openingRepo.SaveOpeningItems(ctx, tx, items); err != nil {
		return nil, err
	}

	if err := s.openingRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	// Count reports items the section actually applied, so it stays
	// disjoint from Skipped even when skipped items were persisted.
	applied := 0
	for i := range items {
		if items[i].Posted {
			applied++
		}
	}
	if section == domain.SectionInventory {
		applied = len(items)
	}
	result.Count = applied
	result.Skipped = skipped

	logger.Info("Opening balance registered",
		"section", string(section),
		"items", result.Count,
		"skipped", result.Skipped,
	)
	return result, nil
}

// itemHasValue filters non-positive items. Inventory accepts quantity-only
// items; every other section needs a positive amount.
func (s *openingService) itemHasValue(section domain.OpeningSection, item dto.OpeningItemRequest) bool {
	if section == domain.SectionInventory {
		return item.Quantity.IsPositive() || item.Amount.IsPositive()
	}
	return item.Amount.IsPositive()
}

// postCustomerOpening builds the shared opening-balance document: one
// debit/credit pair per item against the customer's existing detail account,
// balanced by the opening-equity moein. Customers without a detail account
// are counted as skipped, not provisioned; a seeded balance for a party that
// never traded is operator error, not a reason to mint an account.
func (s *openingService) postCustomerOpening(ctx context.Context, tx pgx.Tx, tenantID string, opening domain.OpeningBalance, items []domain.OpeningBalanceItem, audit domain.AuditFields) (*dto.DocumentResult, int, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	receivable, err := s.chart.Account(domain.ChartCustomerReceivable)
	if err != nil {
		return nil, 0, err
	}
	equity, err := s.chart.Account(domain.ChartOpeningEquity)
	if err != nil {
		return nil, 0, err
	}

	entries := make([]domain.FinancialEntry, 0, len(items)*2)
	skipped := 0
	for i := range items {
		acc, err := s.chartSvc.ResolveDetailAccount(ctx, tx, tenantID, domain.DetailCustomer, items[i].RefID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				logger.Warn("Customer has no detail account, opening item recorded but not posted",
					"customer_id", items[i].RefID,
				)
				skipped++
				continue
			}
			return nil, 0, err
		}

		desc := fmt.Sprintf("opening balance for %s", acc.Title)
		if items[i].Direction == domain.DirectionCredit {
			entries = append(entries,
				domain.CreditEntry(receivable.MoeinID, acc.TafsiliID, items[i].Amount, desc),
				domain.DebitEntry(equity.MoeinID, "", items[i].Amount, desc),
			)
		} else {
			entries = append(entries,
				domain.DebitEntry(receivable.MoeinID, acc.TafsiliID, items[i].Amount, desc),
				domain.CreditEntry(equity.MoeinID, "", items[i].Amount, desc),
			)
		}
		items[i].Posted = true
	}

	if len(entries) == 0 {
		// Items exist but none could post; the registration itself stands.
		return nil, skipped, nil
	}

	document := domain.FinancialDocument{
		TenantID:      tenantID,
		DocumentDate:  audit.CreatedAt,
		Description:   "customers opening balance",
		Status:        domain.DocumentConfirmed,
		DocumentType:  domain.DocOpeningBalance,
		ReferenceID:   opening.OpeningID,
		ReferenceType: "opening_balance",
		AuditFields:   audit,
	}

	docResult, err := s.posting.PostPreparedInTx(ctx, tx, document, entries)
	if err != nil {
		return nil, 0, err
	}

	if err := s.openingRepo.LinkOpeningDocument(ctx, tx, opening.OpeningID, docResult.DocumentID); err != nil {
		return nil, 0, err
	}

	return docResult, skipped, nil
}
