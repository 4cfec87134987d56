package repositories

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// OpeningReader defines read operations for opening-balance registrations.
type OpeningReader interface {
	// FindOpeningBalance retrieves the registration header for a section,
	// apperrors.ErrNotFound when the section has not been seeded.
	FindOpeningBalance(ctx context.Context, tenantID string, section domain.OpeningSection) (*domain.OpeningBalance, error)

	// FindOpeningItems retrieves the items of a registration.
	FindOpeningItems(ctx context.Context, openingID string) ([]domain.OpeningBalanceItem, error)
}

// OpeningWriter defines write operations for opening-balance registrations.
// Everything runs in the registrar's transaction so a failed registration
// leaves no trace.
type OpeningWriter interface {
	// SaveOpeningBalance inserts the header. A second registration for the
	// same (tenant, section) violates the unique constraint and surfaces as
	// apperrors.ErrDuplicate.
	SaveOpeningBalance(ctx context.Context, tx pgx.Tx, opening domain.OpeningBalance) error

	// SaveOpeningItems inserts the item rows.
	SaveOpeningItems(ctx context.Context, tx pgx.Tx, items []domain.OpeningBalanceItem) error

	// LinkOpeningDocument records the shared opening-balance document id on
	// the header (customers section only).
	LinkOpeningDocument(ctx context.Context, tx pgx.Tx, openingID, documentID string) error
}

// OpeningRepositoryFacade combines opening repository interfaces plus
// transaction management.
type OpeningRepositoryFacade interface {
	OpeningReader
	OpeningWriter
	TransactionManager
}
