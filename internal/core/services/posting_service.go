package services

import (
	"context"
	"fmt"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/hadikeshavarzi/anbar-ledger/internal/middleware"
	"github.com/hadikeshavarzi/anbar-ledger/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type postingService struct {
	docRepo portsrepo.DocumentRepositoryFacade
}

// NewPostingService creates the posting core, the single write path for all
// ledger mutations.
func NewPostingService(docRepo portsrepo.DocumentRepositoryFacade) portssvc.PostingSvcFacade {
	return &postingService{docRepo: docRepo}
}

var _ portssvc.PostingSvcFacade = (*postingService)(nil)

// GetDocument retrieves a document header with its entry lines.
func (s *postingService) GetDocument(ctx context.Context, tenantID, documentID string) (*domain.FinancialDocument, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, tenantID, documentID)
	if err != nil {
		return nil, err
	}
	entries, err := s.docRepo.FindEntriesByDocumentID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	doc.Entries = entries
	return doc, nil
}

// ListDocuments retrieves document headers for a tenant, newest first.
func (s *postingService) ListDocuments(ctx context.Context, tenantID string, limit, offset int) ([]domain.FinancialDocument, error) {
	return s.docRepo.ListDocuments(ctx, tenantID, limit, offset)
}

// PostDocument creates a manual document in its own transaction.
func (s *postingService) PostDocument(ctx context.Context, tenantID string, req dto.PostDocumentRequest, userID string) (*dto.DocumentResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	document := domain.FinancialDocument{
		TenantID:     tenantID,
		DocumentDate: req.Date,
		Description:  req.Description,
		Status:       domain.DocumentConfirmed,
		DocumentType: domain.DocManual,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	entries := make([]domain.FinancialEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, domain.FinancialEntry{
			MoeinID:     e.MoeinID,
			TafsiliID:   e.TafsiliID,
			Bed:         e.Bed,
			Bes:         e.Bes,
			Description: e.Description,
		})
	}

	tx, err := s.docRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer s.docRepo.Rollback(ctx, tx)

	result, err := s.PostPreparedInTx(ctx, tx, document, entries)
	if err != nil {
		return nil, err
	}

	if err := s.docRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Manual document posted",
		"document_id", result.DocumentID,
		"document_no", result.DocumentNo,
		"entries", result.EntriesCount,
	)
	return result, nil
}

// PostPreparedInTx validates and persists an already-assembled document inside
// the caller's transaction. The sequential number is allocated here so the
// allocation lock is held by the transaction that consumes it.
func (s *postingService) PostPreparedInTx(ctx context.Context, tx pgx.Tx, document domain.FinancialDocument, entries []domain.FinancialEntry) (*dto.DocumentResult, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: document must have at least one entry", apperrors.ErrValidation)
	}
	for i, e := range entries {
		if e.MoeinID == "" {
			return nil, fmt.Errorf("%w: entry %d references no moein", apperrors.ErrValidation, i)
		}
	}

	bed, bes := accounting.Totals(entries)
	if bed.Sub(bes).Abs().GreaterThan(accounting.BalanceTolerance) {
		return nil, NewUnbalancedDocumentError(bed, bes)
	}

	if document.DocumentID == "" {
		document.DocumentID = uuid.NewString()
	}
	if document.Status == "" {
		document.Status = domain.DocumentConfirmed
	}

	documentNo, err := s.docRepo.NextDocumentNo(ctx, tx, document.TenantID)
	if err != nil {
		return nil, err
	}
	document.DocumentNo = documentNo

	for i := range entries {
		entries[i].EntryID = uuid.NewString()
		entries[i].DocumentID = document.DocumentID
		entries[i].AuditFields = document.AuditFields
	}

	if err := s.docRepo.SaveDocument(ctx, tx, document, entries); err != nil {
		return nil, err
	}

	return &dto.DocumentResult{
		DocumentID:   document.DocumentID,
		DocumentNo:   document.DocumentNo,
		EntriesCount: len(entries),
		TotalAmount:  bed,
	}, nil
}
