package services

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/jackc/pgx/v5"
)

// PostingReaderSvc defines the read side of the posting core.
type PostingReaderSvc interface {
	// GetDocument retrieves a document with its entry lines.
	GetDocument(ctx context.Context, tenantID, documentID string) (*domain.FinancialDocument, error)

	// ListDocuments retrieves document headers for a tenant, newest first.
	ListDocuments(ctx context.Context, tenantID string, limit, offset int) ([]domain.FinancialDocument, error)
}

// PostingWriterSvc is the single write path for all ledger mutations.
type PostingWriterSvc interface {
	// PostDocument creates a manual document in its own transaction.
	PostDocument(ctx context.Context, tenantID string, req dto.PostDocumentRequest, userID string) (*dto.DocumentResult, error)

	// PostPreparedInTx validates and persists an already-assembled document
	// inside the caller's transaction. Auto-posting rules and the instrument
	// lifecycle go through here so their extra mutations commit atomically
	// with the posting.
	PostPreparedInTx(ctx context.Context, tx pgx.Tx, document domain.FinancialDocument, entries []domain.FinancialEntry) (*dto.DocumentResult, error)
}

// PostingSvcFacade combines the posting core interfaces.
type PostingSvcFacade interface {
	PostingReaderSvc
	PostingWriterSvc
}
