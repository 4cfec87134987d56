package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	"github.com/hadikeshavarzi/anbar-ledger/internal/models"
	"github.com/hadikeshavarzi/anbar-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxDocumentRepository struct {
	BaseRepository
}

// newPgxDocumentRepository creates a new repository for financial document data.
func newPgxDocumentRepository(pool *pgxpool.Pool) portsrepo.DocumentRepositoryFacade {
	return &PgxDocumentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDocumentRepository implements portsrepo.DocumentRepositoryFacade
var _ portsrepo.DocumentRepositoryFacade = (*PgxDocumentRepository)(nil)

const documentColumns = `document_id, tenant_id, document_no, document_date, description, status, document_type, reference_id, reference_type, created_at, created_by, last_updated_at, last_updated_by`

func scanDocument(row pgx.Row) (*models.FinancialDocument, error) {
	var m models.FinancialDocument
	err := row.Scan(
		&m.DocumentID,
		&m.TenantID,
		&m.DocumentNo,
		&m.DocumentDate,
		&m.Description,
		&m.Status,
		&m.DocumentType,
		&m.ReferenceID,
		&m.ReferenceType,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// FindDocumentByID retrieves a document header scoped to a tenant.
func (r *PgxDocumentRepository) FindDocumentByID(ctx context.Context, tenantID, documentID string) (*domain.FinancialDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM financial_documents WHERE tenant_id = $1 AND document_id = $2;`

	m, err := scanDocument(r.Pool.QueryRow(ctx, query, tenantID, documentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find document by ID %s: %w", documentID, err)
	}

	d := mapping.ToDomainDocument(*m)
	return &d, nil
}

// FindEntriesByDocumentID retrieves all entry lines of a document.
func (r *PgxDocumentRepository) FindEntriesByDocumentID(ctx context.Context, documentID string) ([]domain.FinancialEntry, error) {
	query := `
		SELECT entry_id, document_id, moein_id, tafsili_id, bed, bes, description, created_at, created_by, last_updated_at, last_updated_by
		FROM financial_entries
		WHERE document_id = $1
		ORDER BY entry_id;
	`
	rows, err := r.Pool.Query(ctx, query, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries for document %s: %w", documentID, err)
	}
	defer rows.Close()

	entries := make([]models.FinancialEntry, 0)
	for rows.Next() {
		var m models.FinancialEntry
		err := rows.Scan(
			&m.EntryID,
			&m.DocumentID,
			&m.MoeinID,
			&m.TafsiliID,
			&m.Bed,
			&m.Bes,
			&m.Description,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}

	return mapping.ToDomainEntrySlice(entries), nil
}

// ListDocuments retrieves document headers for a tenant, newest first.
func (r *PgxDocumentRepository) ListDocuments(ctx context.Context, tenantID string, limit, offset int) ([]domain.FinancialDocument, error) {
	query := `SELECT ` + documentColumns + ` FROM financial_documents WHERE tenant_id = $1 ORDER BY document_no DESC LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	defer rows.Close()

	docs := make([]domain.FinancialDocument, 0)
	for rows.Next() {
		m, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan document row: %w", err)
		}
		docs = append(docs, mapping.ToDomainDocument(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating document rows: %w", err)
	}

	return docs, nil
}

// NextDocumentNo allocates the next sequential document number for a tenant.
// Allocation is serialized with an advisory transaction lock so two postings
// cannot read the same max; the unique constraint on (tenant_id, document_no)
// backstops it.
func (r *PgxDocumentRepository) NextDocumentNo(ctx context.Context, tx pgx.Tx, tenantID string) (int64, error) {
	lockQuery := `SELECT pg_advisory_xact_lock(hashtext($1));`
	if _, err := tx.Exec(ctx, lockQuery, "document_no:"+tenantID); err != nil {
		return 0, fmt.Errorf("failed to acquire document number lock: %w", err)
	}

	query := `SELECT COALESCE(MAX(document_no), 0) + 1 FROM financial_documents WHERE tenant_id = $1;`
	var next int64
	if err := tx.QueryRow(ctx, query, tenantID).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to allocate next document number: %w", err)
	}
	return next, nil
}

// SaveDocument inserts the header and all entry lines inside the caller's
// transaction. Entries go through a single batch round trip.
func (r *PgxDocumentRepository) SaveDocument(ctx context.Context, tx pgx.Tx, document domain.FinancialDocument, entries []domain.FinancialEntry) error {
	m := mapping.ToModelDocument(document)

	headerQuery := `
		INSERT INTO financial_documents (document_id, tenant_id, document_no, document_date, description, status, document_type, reference_id, reference_type, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := tx.Exec(ctx, headerQuery,
		m.DocumentID,
		m.TenantID,
		m.DocumentNo,
		m.DocumentDate,
		m.Description,
		m.Status,
		m.DocumentType,
		m.ReferenceID,
		m.ReferenceType,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: document number %d already taken for tenant %s", apperrors.ErrDuplicate, m.DocumentNo, m.TenantID)
		}
		return fmt.Errorf("failed to insert document %s: %w", m.DocumentID, err)
	}

	batch := &pgx.Batch{}
	entryQuery := `
		INSERT INTO financial_entries (entry_id, document_id, moein_id, tafsili_id, bed, bes, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, entry := range entries {
		me := mapping.ToModelEntry(entry)
		batch.Queue(entryQuery,
			me.EntryID,
			me.DocumentID,
			me.MoeinID,
			me.TafsiliID,
			me.Bed,
			me.Bes,
			me.Description,
			me.CreatedAt,
			me.CreatedBy,
			me.LastUpdatedAt,
			me.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert entry %d of document %s: %w", i, m.DocumentID, err)
		}
	}
	return nil
}
