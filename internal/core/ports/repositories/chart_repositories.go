package repositories

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// MoeinReader defines read operations on the shared subsidiary-account level
// of the chart. Moeins are seeded by migration and never written at runtime.
type MoeinReader interface {
	// FindMoeinByCode retrieves a subsidiary account by its fixed code.
	FindMoeinByCode(ctx context.Context, code string) (*domain.SubsidiaryAccount, error)

	// FindMoeinsByCodes retrieves subsidiary accounts for a set of codes,
	// keyed by code. Absent codes are simply missing from the map.
	FindMoeinsByCodes(ctx context.Context, codes []string) (map[string]domain.SubsidiaryAccount, error)
}

// MoeinRepositoryFacade combines all moein-level repository interfaces.
type MoeinRepositoryFacade interface {
	MoeinReader
}

// DetailAccountReader defines read operations for detail accounts.
type DetailAccountReader interface {
	// FindDetailAccountByID retrieves a detail account by its id.
	FindDetailAccountByID(ctx context.Context, tafsiliID string) (*domain.DetailAccount, error)

	// FindDetailAccountByTypeAndRef looks a detail account up by its
	// provisioning identity (tenant, type, originating record). A non-nil tx
	// makes the read part of the caller's transaction.
	FindDetailAccountByTypeAndRef(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID string) (*domain.DetailAccount, error)

	// ListDetailAccounts retrieves detail accounts for a tenant.
	ListDetailAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.DetailAccount, error)
}

// DetailAccountWriter defines write operations for detail accounts. All of
// them take the provisioning transaction so code allocation and insert commit
// together with the posting that needed the account.
type DetailAccountWriter interface {
	// NextDetailCode allocates the next sequential code for (tenant, type).
	// The allocation scope is locked for the remainder of the transaction.
	NextDetailCode(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType) (int, error)

	// SaveDetailAccount inserts a new detail account.
	SaveDetailAccount(ctx context.Context, tx pgx.Tx, account domain.DetailAccount) error

	// BacklinkTafsili writes the new account id onto the originating business
	// record so future lookups are O(1). Returns apperrors.ErrNotFound when
	// the business record does not exist.
	BacklinkTafsili(ctx context.Context, tx pgx.Tx, tafsiliType domain.DetailAccountType, refID, tafsiliID string) error
}

// DetailAccountRepositoryFacade combines all detail-account repository
// interfaces plus transaction management.
type DetailAccountRepositoryFacade interface {
	DetailAccountReader
	DetailAccountWriter
	TransactionManager
}
