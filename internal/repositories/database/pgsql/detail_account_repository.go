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

type PgxDetailAccountRepository struct {
	BaseRepository
}

// newPgxDetailAccountRepository creates a new repository for detail-account data.
func newPgxDetailAccountRepository(pool *pgxpool.Pool) portsrepo.DetailAccountRepositoryFacade {
	return &PgxDetailAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxDetailAccountRepository implements portsrepo.DetailAccountRepositoryFacade
var _ portsrepo.DetailAccountRepositoryFacade = (*PgxDetailAccountRepository)(nil)

const detailAccountColumns = `tafsili_id, tenant_id, code, title, tafsili_type, ref_id, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanDetailAccount(row pgx.Row) (*models.DetailAccount, error) {
	var m models.DetailAccount
	err := row.Scan(
		&m.TafsiliID,
		&m.TenantID,
		&m.Code,
		&m.Title,
		&m.TafsiliType,
		&m.RefID,
		&m.IsActive,
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

// FindDetailAccountByID retrieves a detail account by its ID.
func (r *PgxDetailAccountRepository) FindDetailAccountByID(ctx context.Context, tafsiliID string) (*domain.DetailAccount, error) {
	query := `SELECT ` + detailAccountColumns + ` FROM detail_accounts WHERE tafsili_id = $1;`

	m, err := scanDetailAccount(r.Pool.QueryRow(ctx, query, tafsiliID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find detail account by ID %s: %w", tafsiliID, err)
	}

	d := mapping.ToDomainDetailAccount(*m)
	return &d, nil
}

// FindDetailAccountByTypeAndRef looks a detail account up by its provisioning
// identity. A non-nil tx makes the read part of the caller's transaction.
func (r *PgxDetailAccountRepository) FindDetailAccountByTypeAndRef(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType, refID string) (*domain.DetailAccount, error) {
	query := `SELECT ` + detailAccountColumns + ` FROM detail_accounts WHERE tenant_id = $1 AND tafsili_type = $2 AND ref_id = $3;`

	m, err := scanDetailAccount(r.queryTarget(tx).QueryRow(ctx, query, tenantID, string(tafsiliType), refID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find detail account for %s/%s: %w", tafsiliType, refID, err)
	}

	d := mapping.ToDomainDetailAccount(*m)
	return &d, nil
}

// ListDetailAccounts retrieves detail accounts for a tenant ordered by code.
func (r *PgxDetailAccountRepository) ListDetailAccounts(ctx context.Context, tenantID string, limit, offset int) ([]domain.DetailAccount, error) {
	query := `SELECT ` + detailAccountColumns + ` FROM detail_accounts WHERE tenant_id = $1 ORDER BY tafsili_type, code LIMIT $2 OFFSET $3;`

	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list detail accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]domain.DetailAccount, 0)
	for rows.Next() {
		m, err := scanDetailAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan detail account row: %w", err)
		}
		accounts = append(accounts, mapping.ToDomainDetailAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating detail account rows: %w", err)
	}

	return accounts, nil
}

// NextDetailCode allocates the next sequential code number for (tenant, type).
// An advisory transaction lock serializes allocators on the same scope: MAX+1
// alone would let two transactions read the same max, and a row lock cannot
// cover the gap above it. The unique constraint on (tenant_id, tafsili_type,
// code) backstops the lock.
func (r *PgxDetailAccountRepository) NextDetailCode(ctx context.Context, tx pgx.Tx, tenantID string, tafsiliType domain.DetailAccountType) (int, error) {
	lockQuery := `SELECT pg_advisory_xact_lock(hashtext($1));`
	if _, err := tx.Exec(ctx, lockQuery, "detail_code:"+tenantID+":"+string(tafsiliType)); err != nil {
		return 0, fmt.Errorf("failed to acquire detail code lock: %w", err)
	}

	query := `
		SELECT COALESCE(MAX(code::int), 0) + 1
		FROM detail_accounts
		WHERE tenant_id = $1 AND tafsili_type = $2;
	`
	var next int
	if err := tx.QueryRow(ctx, query, tenantID, string(tafsiliType)).Scan(&next); err != nil {
		return 0, fmt.Errorf("failed to allocate next detail code: %w", err)
	}
	return next, nil
}

// SaveDetailAccount inserts a new detail account inside the caller's transaction.
func (r *PgxDetailAccountRepository) SaveDetailAccount(ctx context.Context, tx pgx.Tx, account domain.DetailAccount) error {
	m := mapping.ToModelDetailAccount(account)

	query := `
		INSERT INTO detail_accounts (tafsili_id, tenant_id, code, title, tafsili_type, ref_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := tx.Exec(ctx, query,
		m.TafsiliID,
		m.TenantID,
		m.Code,
		m.Title,
		m.TafsiliType,
		m.RefID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: detail account for %s/%s already exists", apperrors.ErrDuplicate, m.TafsiliType, m.RefID)
		}
		return fmt.Errorf("failed to save detail account %s: %w", m.TafsiliID, err)
	}
	return nil
}

// BacklinkTafsili writes the new account ID onto the originating business
// record so future lookups skip the type/ref scan.
func (r *PgxDetailAccountRepository) BacklinkTafsili(ctx context.Context, tx pgx.Tx, tafsiliType domain.DetailAccountType, refID, tafsiliID string) error {
	var table, pk string
	switch tafsiliType {
	case domain.DetailCustomer:
		table, pk = "customers", "customer_id"
	case domain.DetailBank:
		table, pk = "bank_accounts", "bank_id"
	case domain.DetailCash:
		table, pk = "cash_boxes", "cash_id"
	case domain.DetailPos:
		table, pk = "pos_terminals", "pos_id"
	default:
		return fmt.Errorf("%w: unknown detail account type %s", apperrors.ErrValidation, tafsiliType)
	}

	query := fmt.Sprintf(`UPDATE %s SET tafsili_id = $1 WHERE %s = $2;`, table, pk)
	tag, err := tx.Exec(ctx, query, tafsiliID, refID)
	if err != nil {
		return fmt.Errorf("failed to backlink tafsili %s onto %s %s: %w", tafsiliID, table, refID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s %s not found for tafsili backlink", tafsiliType, refID))
	}
	return nil
}
