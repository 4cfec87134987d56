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
	"github.com/hadikeshavarzi/anbar-ledger/internal/middleware"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// detailCodeWidth is the zero padding of detail-account codes.
const detailCodeWidth = 4

// configKeyBySymbol maps each fixed chart symbol to its deployment
// configuration key.
var configKeyBySymbol = map[domain.ChartSymbol]string{
	domain.ChartCash:                "CASH",
	domain.ChartBank:                "BANK",
	domain.ChartPosFloat:            "POS_FLOAT",
	domain.ChartCustomerReceivable:  "CUSTOMER_RECEIVABLE",
	domain.ChartChequesInHand:       "CHEQUES_IN_HAND",
	domain.ChartChequesInCollection: "CHEQUES_IN_COLLECTION",
	domain.ChartPayableCheques:      "PAYABLE_CHEQUES",
	domain.ChartOpeningEquity:       "OPENING_EQUITY",
	domain.ChartVAT:                 "VAT",
	domain.ChartWarehousingIncome:   "WAREHOUSING_INCOME",
	domain.ChartLoadingIncome:       "LOADING_INCOME",
	domain.ChartUnloadingIncome:     "UNLOADING_INCOME",
	domain.ChartFreightIncome:       "FREIGHT_INCOME",
	domain.ChartReturnFreightIncome: "RETURN_FREIGHT_INCOME",
	domain.ChartMiscIncome:          "MISC_INCOME",
}

// LoadChart resolves every configured fixed moein code against the database
// at startup. Any unresolved code is a fatal misconfiguration.
func LoadChart(ctx context.Context, moeinRepo portsrepo.MoeinRepositoryFacade, codes map[string]string) (*domain.Chart, error) {
	wanted := make([]string, 0, len(configKeyBySymbol))
	for sym, key := range configKeyBySymbol {
		code, ok := codes[key]
		if !ok || code == "" {
			return nil, fmt.Errorf("%w: no code configured for symbol %q", domain.ErrChartMisconfigured, sym)
		}
		wanted = append(wanted, code)
	}

	byCode, err := moeinRepo.FindMoeinsByCodes(ctx, wanted)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart accounts: %w", err)
	}

	accounts := make(map[domain.ChartSymbol]domain.SubsidiaryAccount, len(configKeyBySymbol))
	for sym, key := range configKeyBySymbol {
		acc, ok := byCode[codes[key]]
		if !ok {
			return nil, fmt.Errorf("%w: configured code %q for symbol %q has no moein", domain.ErrChartMisconfigured, codes[key], sym)
		}
		accounts[sym] = acc
	}

	return domain.NewChart(accounts)
}

type chartService struct {
	chart      *domain.Chart
	detailRepo portsrepo.DetailAccountRepositoryFacade
	partyRepo  portsrepo.PartyRepositoryFacade
}

// NewChartService creates the chart-of-accounts store service.
func NewChartService(chart *domain.Chart, detailRepo portsrepo.DetailAccountRepositoryFacade, partyRepo portsrepo.PartyRepositoryFacade) portssvc.ChartSvcFacade {
	return &chartService{
		chart:      chart,
		detailRepo: detailRepo,
		partyRepo:  partyRepo,
	}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

// ResolveDetailAccount looks up an existing detail account without provisioning.
func (s *chartService) ResolveDetailAccount(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID string) (*domain.DetailAccount, error) {
	return s.detailRepo.FindDetailAccountByTypeAndRef(ctx, tx, tenantID, tafsiliType, refID)
}

// ListDetailAccounts retrieves detail accounts of a tenant.
func (s *chartService) ListDetailAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.DetailAccount, error) {
	return s.detailRepo.ListDetailAccounts(ctx, tenantID, limit, offset)
}

// ResolveOrCreateDetailAccountInTx looks up the detail account for
// (tenant, type, refID) and provisions it inside tx when absent. Code
// allocation and insert share the transaction so concurrent first-time
// postings for the same scope cannot mint duplicate codes.
func (s *chartService) ResolveOrCreateDetailAccountInTx(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID, titleHint, userID string) (*domain.DetailAccount, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	existing, err := s.detailRepo.FindDetailAccountByTypeAndRef(ctx, tx, tenantID, tafsiliType, refID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	title, err := s.businessRecordTitle(ctx, tx, tenantID, tafsiliType, refID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s %s", ErrAccountResolution, tafsiliType, refID)
		}
		return nil, err
	}
	if titleHint != "" {
		title = titleHint
	}

	next, err := s.detailRepo.NextDetailCode(ctx, tx, tenantID, tafsiliType)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.DetailAccount{
		TafsiliID:   uuid.NewString(),
		TenantID:    tenantID,
		Code:        fmt.Sprintf("%0*d", detailCodeWidth, next),
		Title:       title,
		TafsiliType: tafsiliType,
		RefID:       refID,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.detailRepo.SaveDetailAccount(ctx, tx, account); err != nil {
		return nil, err
	}
	if err := s.detailRepo.BacklinkTafsili(ctx, tx, tafsiliType, refID, account.TafsiliID); err != nil {
		return nil, err
	}

	logger.Info("Provisioned detail account",
		"tafsili_id", account.TafsiliID,
		"tafsili_type", string(tafsiliType),
		"code", account.Code,
	)
	return &account, nil
}

// businessRecordTitle fetches the originating record and returns its display
// title, or apperrors.ErrNotFound when the record does not exist.
func (s *chartService) businessRecordTitle(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID string) (string, error) {
	switch tafsiliType {
	case domain.DetailCustomer:
		c, err := s.partyRepo.FindCustomerByID(ctx, tx, tenantID, refID)
		if err != nil {
			return "", err
		}
		return c.Name, nil
	case domain.DetailBank:
		b, err := s.partyRepo.FindBankByID(ctx, tx, tenantID, refID)
		if err != nil {
			return "", err
		}
		return b.Title, nil
	case domain.DetailCash:
		c, err := s.partyRepo.FindCashByID(ctx, tx, tenantID, refID)
		if err != nil {
			return "", err
		}
		return c.Title, nil
	case domain.DetailPos:
		p, err := s.partyRepo.FindPosByID(ctx, tx, tenantID, refID)
		if err != nil {
			return "", err
		}
		return p.Title, nil
	}
	return "", fmt.Errorf("%w: unknown detail account type %s", apperrors.ErrValidation, tafsiliType)
}

// ResolveFundingSourceInTx resolves the source-of-funds account for an
// operator-paid charge. The collaborating inventory system shares one id
// space between the bank and cash tables, so when the declared table has no
// match the other one is tried before giving up with a nil tafsili. The
// fallback switches the moein to match where the id was actually found and is
// logged, since the declared intent and the resolution disagree.
func (s *chartService) ResolveFundingSourceInTx(ctx context.Context, tx pgx.Tx, tenantID string, hint domain.PaymentSourceType, sourceID string) (*domain.FundingSource, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	resolve := func(symbol domain.ChartSymbol, tafsiliType domain.DetailAccountType, refID, titleHint string) (*domain.FundingSource, error) {
		moein, err := s.chart.Account(symbol)
		if err != nil {
			return nil, err
		}
		tafsili, err := s.ResolveOrCreateDetailAccountInTx(ctx, tx, tenantID, tafsiliType, refID, titleHint, "system")
		if err != nil {
			return nil, err
		}
		return &domain.FundingSource{Moein: moein, Tafsili: tafsili}, nil
	}

	switch hint {
	case domain.SourceBank:
		bank, err := s.partyRepo.FindBankByID(ctx, tx, tenantID, sourceID)
		if err == nil {
			return resolve(domain.ChartBank, domain.DetailBank, bank.BankID, bank.Title)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		cash, err := s.partyRepo.FindCashByID(ctx, tx, tenantID, sourceID)
		if err == nil {
			logger.Warn("Funding source declared BANK resolved from cash table",
				"source_id", sourceID,
			)
			return resolve(domain.ChartCash, domain.DetailCash, cash.CashID, cash.Title)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}

	case domain.SourceCash:
		cash, err := s.partyRepo.FindCashByID(ctx, tx, tenantID, sourceID)
		if err == nil {
			return resolve(domain.ChartCash, domain.DetailCash, cash.CashID, cash.Title)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		bank, err := s.partyRepo.FindBankByID(ctx, tx, tenantID, sourceID)
		if err == nil {
			logger.Warn("Funding source declared CASH resolved from bank table",
				"source_id", sourceID,
			)
			return resolve(domain.ChartBank, domain.DetailBank, bank.BankID, bank.Title)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}

	case domain.SourcePos:
		pos, err := s.partyRepo.FindPosByID(ctx, tx, tenantID, sourceID)
		if err == nil {
			return resolve(domain.ChartPosFloat, domain.DetailPos, pos.PosID, pos.Title)
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w: unknown payment source type %s", apperrors.ErrValidation, hint)
	}

	// Nothing matched: fall back to the moein of the declared source type
	// with no detail account, so the posting still lands on the right side.
	logger.Warn("Funding source id matched no record, posting without detail account",
		"source_id", sourceID,
		"hint", string(hint),
	)
	moein, err := s.moeinForSource(hint)
	if err != nil {
		return nil, err
	}
	return &domain.FundingSource{Moein: moein, Tafsili: nil}, nil
}

func (s *chartService) moeinForSource(hint domain.PaymentSourceType) (domain.SubsidiaryAccount, error) {
	switch hint {
	case domain.SourceBank:
		return s.chart.Account(domain.ChartBank)
	case domain.SourceCash:
		return s.chart.Account(domain.ChartCash)
	case domain.SourcePos:
		return s.chart.Account(domain.ChartPosFloat)
	}
	return domain.SubsidiaryAccount{}, fmt.Errorf("%w: unknown payment source type %s", apperrors.ErrValidation, hint)
}
