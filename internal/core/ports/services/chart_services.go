package services

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ChartSvcFacade is the chart-of-accounts store: detail-account provisioning
// and funding-source resolution.
type ChartSvcFacade interface {
	// ResolveOrCreateDetailAccountInTx looks up the detail account for
	// (tenant, type, refID) and provisions it inside tx when absent,
	// back-linking the originating business record. Fails with
	// ErrAccountResolution when the business record does not exist.
	ResolveOrCreateDetailAccountInTx(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID, titleHint, userID string) (*domain.DetailAccount, error)

	// ResolveDetailAccount looks up an existing detail account without
	// provisioning. apperrors.ErrNotFound when absent.
	ResolveDetailAccount(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID string) (*domain.DetailAccount, error)

	// ResolveFundingSourceInTx resolves the source-of-funds account for an
	// operator-paid charge: declared table first, bank<->cash fallback
	// second, nil tafsili when nothing matches.
	ResolveFundingSourceInTx(ctx context.Context, tx pgx.Tx, tenantID string, hint domain.PaymentSourceType, sourceID string) (*domain.FundingSource, error)

	// ListDetailAccounts retrieves detail accounts of a tenant.
	ListDetailAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.DetailAccount, error)
}
