package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/apperrors"
	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portsrepo "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/repositories"
	"github.com/hadikeshavarzi/anbar-ledger/internal/models"
	"github.com/hadikeshavarzi/anbar-ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxChequeRepository struct {
	BaseRepository
}

// newPgxChequeRepository creates a new repository for cheque and checkbook data.
func newPgxChequeRepository(pool *pgxpool.Pool) portsrepo.ChequeRepositoryFacade {
	return &PgxChequeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxChequeRepository implements portsrepo.ChequeRepositoryFacade
var _ portsrepo.ChequeRepositoryFacade = (*PgxChequeRepository)(nil)

const chequeColumns = `cheque_id, tenant_id, cheque_type, amount, serial_no, due_date, status, owner_id, receiver_id, target_bank_id, checkbook_id, note, created_at, created_by, last_updated_at, last_updated_by`

func scanCheque(row pgx.Row) (*models.Cheque, error) {
	var m models.Cheque
	var receiverID, targetBankID, checkbookID sql.NullString
	err := row.Scan(
		&m.ChequeID,
		&m.TenantID,
		&m.ChequeType,
		&m.Amount,
		&m.SerialNo,
		&m.DueDate,
		&m.Status,
		&m.OwnerID,
		&receiverID,
		&targetBankID,
		&checkbookID,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	m.ReceiverID = receiverID.String
	m.TargetBankID = targetBankID.String
	m.CheckbookID = checkbookID.String
	return &m, nil
}

func nullable(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// FindChequeByID retrieves a cheque scoped to a tenant.
func (r *PgxChequeRepository) FindChequeByID(ctx context.Context, tenantID, chequeID string) (*domain.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques WHERE tenant_id = $1 AND cheque_id = $2;`

	m, err := scanCheque(r.Pool.QueryRow(ctx, query, tenantID, chequeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cheque by ID %s: %w", chequeID, err)
	}

	d := mapping.ToDomainCheque(*m)
	return &d, nil
}

// FindChequeByIDForUpdate retrieves a cheque inside tx with a row lock, so a
// concurrent transition on the same cheque waits and then re-reads the new
// status.
func (r *PgxChequeRepository) FindChequeByIDForUpdate(ctx context.Context, tx pgx.Tx, tenantID, chequeID string) (*domain.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques WHERE tenant_id = $1 AND cheque_id = $2 FOR UPDATE;`

	m, err := scanCheque(tx.QueryRow(ctx, query, tenantID, chequeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock cheque %s: %w", chequeID, err)
	}

	d := mapping.ToDomainCheque(*m)
	return &d, nil
}

// ListCheques retrieves cheques for a tenant, optionally filtered by status.
func (r *PgxChequeRepository) ListCheques(ctx context.Context, tenantID string, status *domain.ChequeStatus, limit, offset int) ([]domain.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques WHERE tenant_id = $1 AND ($2::text IS NULL OR status = $2) ORDER BY due_date, cheque_id LIMIT $3 OFFSET $4;`

	var statusArg *string
	if status != nil {
		s := string(*status)
		statusArg = &s
	}

	rows, err := r.Pool.Query(ctx, query, tenantID, statusArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cheques: %w", err)
	}
	defer rows.Close()

	return collectCheques(rows)
}

// ListChequesDueBetween retrieves non-terminal cheques with a due date inside
// [from, to].
func (r *PgxChequeRepository) ListChequesDueBetween(ctx context.Context, tenantID string, from, to time.Time) ([]domain.Cheque, error) {
	query := `SELECT ` + chequeColumns + ` FROM cheques WHERE tenant_id = $1 AND due_date BETWEEN $2 AND $3 AND status NOT IN ('SPENT', 'PASSED', 'BOUNCED', 'RETURNED') ORDER BY due_date;`

	rows, err := r.Pool.Query(ctx, query, tenantID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list cheques due between %s and %s: %w", from, to, err)
	}
	defer rows.Close()

	return collectCheques(rows)
}

func collectCheques(rows pgx.Rows) ([]domain.Cheque, error) {
	cheques := make([]domain.Cheque, 0)
	for rows.Next() {
		m, err := scanCheque(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cheque row: %w", err)
		}
		cheques = append(cheques, mapping.ToDomainCheque(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cheque rows: %w", err)
	}
	return cheques, nil
}

// SaveCheque inserts a new cheque, joining the caller's transaction when one
// is given.
func (r *PgxChequeRepository) SaveCheque(ctx context.Context, tx pgx.Tx, cheque domain.Cheque) error {
	m := mapping.ToModelCheque(cheque)

	query := `
		INSERT INTO cheques (cheque_id, tenant_id, cheque_type, amount, serial_no, due_date, status, owner_id, receiver_id, target_bank_id, checkbook_id, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.queryTarget(tx).Exec(ctx, query,
		m.ChequeID,
		m.TenantID,
		m.ChequeType,
		m.Amount,
		m.SerialNo,
		m.DueDate,
		m.Status,
		m.OwnerID,
		nullable(m.ReceiverID),
		nullable(m.TargetBankID),
		nullable(m.CheckbookID),
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: serial %s already used in checkbook %s", apperrors.ErrDuplicate, m.SerialNo, m.CheckbookID)
		}
		return fmt.Errorf("failed to save cheque %s: %w", m.ChequeID, err)
	}
	return nil
}

// UpdateChequeTransition writes the new status and any newly learned linkage
// inside the transition's transaction. Empty receiverID/targetBankID leave the
// stored values untouched.
func (r *PgxChequeRepository) UpdateChequeTransition(ctx context.Context, tx pgx.Tx, chequeID string, status domain.ChequeStatus, receiverID, targetBankID string, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE cheques
		SET status = $2,
		    receiver_id = COALESCE($3, receiver_id),
		    target_bank_id = COALESCE($4, target_bank_id),
		    last_updated_by = $5,
		    last_updated_at = $6
		WHERE cheque_id = $1;
	`
	var receiverArg, bankArg *string
	if receiverID != "" {
		receiverArg = &receiverID
	}
	if targetBankID != "" {
		bankArg = &targetBankID
	}

	tag, err := tx.Exec(ctx, query, chequeID, string(status), receiverArg, bankArg, updatedBy, updatedAt)
	if err != nil {
		return fmt.Errorf("failed to update cheque %s to %s: %w", chequeID, status, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("cheque %s not found for transition", chequeID))
	}
	return nil
}

// DeleteCheque removes a cheque row.
func (r *PgxChequeRepository) DeleteCheque(ctx context.Context, tenantID, chequeID string) error {
	query := `DELETE FROM cheques WHERE tenant_id = $1 AND cheque_id = $2;`

	tag, err := r.Pool.Exec(ctx, query, tenantID, chequeID)
	if err != nil {
		return fmt.Errorf("failed to delete cheque %s: %w", chequeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("cheque %s not found", chequeID))
	}
	return nil
}

// FindCheckbookByID retrieves a checkbook scoped to a tenant.
func (r *PgxChequeRepository) FindCheckbookByID(ctx context.Context, tenantID, checkbookID string) (*domain.Checkbook, error) {
	query := `SELECT checkbook_id, tenant_id, bank_id, title, created_at, created_by, last_updated_at, last_updated_by FROM checkbooks WHERE tenant_id = $1 AND checkbook_id = $2;`

	var m models.Checkbook
	err := r.Pool.QueryRow(ctx, query, tenantID, checkbookID).Scan(
		&m.CheckbookID,
		&m.TenantID,
		&m.BankID,
		&m.Title,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find checkbook by ID %s: %w", checkbookID, err)
	}

	d := mapping.ToDomainCheckbook(m)
	return &d, nil
}

// ListCheckbooks retrieves all checkbooks of a tenant.
func (r *PgxChequeRepository) ListCheckbooks(ctx context.Context, tenantID string) ([]domain.Checkbook, error) {
	query := `SELECT checkbook_id, tenant_id, bank_id, title, created_at, created_by, last_updated_at, last_updated_by FROM checkbooks WHERE tenant_id = $1 ORDER BY title;`

	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkbooks: %w", err)
	}
	defer rows.Close()

	books := make([]domain.Checkbook, 0)
	for rows.Next() {
		var m models.Checkbook
		err := rows.Scan(
			&m.CheckbookID,
			&m.TenantID,
			&m.BankID,
			&m.Title,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan checkbook row: %w", err)
		}
		books = append(books, mapping.ToDomainCheckbook(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating checkbook rows: %w", err)
	}

	return books, nil
}

// SaveCheckbook inserts a new checkbook.
func (r *PgxChequeRepository) SaveCheckbook(ctx context.Context, checkbook domain.Checkbook) error {
	m := mapping.ToModelCheckbook(checkbook)

	query := `
		INSERT INTO checkbooks (checkbook_id, tenant_id, bank_id, title, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CheckbookID,
		m.TenantID,
		m.BankID,
		m.Title,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: checkbook %s already exists", apperrors.ErrDuplicate, m.CheckbookID)
		}
		return fmt.Errorf("failed to save checkbook %s: %w", m.CheckbookID, err)
	}
	return nil
}
