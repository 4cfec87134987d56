package repositories

import (
	"context"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ChequeReader defines read operations for cheques and checkbooks.
type ChequeReader interface {
	// FindChequeByID retrieves a cheque scoped to a tenant.
	FindChequeByID(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error)

	// FindChequeByIDForUpdate retrieves a cheque inside tx with a row lock,
	// so transition guards cannot race a concurrent transition.
	FindChequeByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, chequeID string) (*domain.Cheque, error)

	// ListCheques retrieves cheques for a tenant, optionally filtered by status.
	ListCheques(ctx context.Context, tenantID string, status *domain.ChequeStatus, limit, offset int) ([]domain.Cheque, error)

	// ListChequesDueBetween retrieves non-terminal cheques with a due date in
	// [from, to], for the external reminder sweep.
	ListChequesDueBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Cheque, error)

	// FindCheckbookByID retrieves a checkbook scoped to a tenant.
	FindCheckbookByID(ctx context.Context, tenantID, checkbookID string) (*domain.Checkbook, error)

	// ListCheckbooks retrieves all checkbooks of a tenant.
	ListCheckbooks(ctx context.Context, tenantID string) ([]domain.Checkbook, error)
}

// ChequeWriter defines write operations for cheques and checkbooks.
type ChequeWriter interface {
	// SaveCheque inserts a new cheque, inside tx when one is given so the
	// insert commits together with the account provisioning that preceded it.
	SaveCheque(ctx context.Context, tx pgx.Tx, cheque domain.Cheque) error

	// UpdateChequeTransition writes the new status and any newly learned
	// linkage (receiver, target bank) inside the transition's transaction.
	UpdateChequeTransition(ctx context.Context, tx pgx.Tx, chequeID string, status domain.ChequeStatus, receiverID, targetBankID string, updatedBy string, updatedAt time.Time) error

	// DeleteCheque removes a cheque row.
	DeleteCheque(ctx context.Context, tenantID, chequeID string) error

	// SaveCheckbook inserts a new checkbook.
	SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error
}

// ChequeRepositoryFacade combines cheque repository interfaces plus
// transaction management.
type ChequeRepositoryFacade interface {
	ChequeReader
	ChequeWriter
	TransactionManager
}
