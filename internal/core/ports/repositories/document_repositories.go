package repositories

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// DocumentReader defines read operations for financial documents.
type DocumentReader interface {
	// FindDocumentByID retrieves a document header scoped to a tenant.
	FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.FinancialDocument, error)

	// FindEntriesByDocumentID retrieves all entry lines of a document.
	FindEntriesByDocumentID(ctx context.Context, documentID string) ([]domain.FinancialEntry, error)

	// ListDocuments retrieves document headers for a tenant, newest first.
	ListDocuments(ctx context.Context, tenantID string, limit, offset int) ([]domain.FinancialDocument, error)
}

// DocumentWriter defines write operations for financial documents. Writes
// always happen inside the caller's transaction: a document and its entries
// are never observable partially persisted.
type DocumentWriter interface {
	// NextDocumentNo allocates the next sequential document number for the
	// tenant. The allocation scope stays locked until the transaction ends.
	NextDocumentNo(ctx context.Context, tx pgx.Tx, tenantID string) (int64, error)

	// SaveDocument inserts the header and all entry lines.
	SaveDocument(ctx context.Context, tx pgx.Tx, document domain.FinancialDocument, entries []domain.FinancialEntry) error
}

// DocumentRepositoryFacade combines document repository interfaces plus
// transaction management.
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
	TransactionManager
}
