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

type PgxOpeningRepository struct {
	BaseRepository
}

// newPgxOpeningRepository creates a new repository for opening-balance data.
func newPgxOpeningRepository(pool *pgxpool.Pool) portsrepo.OpeningRepositoryFacade {
	return &PgxOpeningRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxOpeningRepository implements portsrepo.OpeningRepositoryFacade
var _ portsrepo.OpeningRepositoryFacade = (*PgxOpeningRepository)(nil)

// FindOpeningBalance retrieves the registration header for a section.
func (r *PgxOpeningRepository) FindOpeningBalance(ctx context.Context, tenantID string, section domain.OpeningSection) (*domain.OpeningBalance, error) {
	query := `
		SELECT opening_id, tenant_id, section, description, COALESCE(document_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM opening_balances
		WHERE tenant_id = $1 AND section = $2;
	`
	var m models.OpeningBalance
	err := r.Pool.QueryRow(ctx, query, tenantID, string(section)).Scan(
		&m.OpeningID,
		&m.TenantID,
		&m.Section,
		&m.Description,
		&m.DocumentID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find opening balance for section %s: %w", section, err)
	}

	d := mapping.ToDomainOpeningBalance(m)
	return &d, nil
}

// FindOpeningItems retrieves the items of a registration.
func (r *PgxOpeningRepository) FindOpeningItems(ctx context.Context, openingID string) ([]domain.OpeningBalanceItem, error) {
	query := `
		SELECT item_id, opening_id, ref_id, quantity, amount, COALESCE(direction, ''), posted, created_at, created_by, last_updated_at, last_updated_by
		FROM opening_balance_items
		WHERE opening_id = $1
		ORDER BY item_id;
	`
	rows, err := r.Pool.Query(ctx, query, openingID)
	if err != nil {
		return nil, fmt.Errorf("failed to query opening items for %s: %w", openingID, err)
	}
	defer rows.Close()

	items := make([]domain.OpeningBalanceItem, 0)
	for rows.Next() {
		var m models.OpeningBalanceItem
		err := rows.Scan(
			&m.ItemID,
			&m.OpeningID,
			&m.RefID,
			&m.Quantity,
			&m.Amount,
			&m.Direction,
			&m.Posted,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opening item row: %w", err)
		}
		items = append(items, mapping.ToDomainOpeningItem(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating opening item rows: %w", err)
	}

	return items, nil
}

// SaveOpeningBalance inserts the registration header. The unique constraint
// on (tenant_id, section) turns a re-registration into apperrors.ErrDuplicate.
func (r *PgxOpeningRepository) SaveOpeningBalance(ctx context.Context, tx pgx.Tx, opening domain.OpeningBalance) error {
	m := mapping.ToModelOpeningBalance(opening)

	query := `
		INSERT INTO opening_balances (opening_id, tenant_id, section, description, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := tx.Exec(ctx, query,
		m.OpeningID,
		m.TenantID,
		m.Section,
		m.Description,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: opening balance for section %s already registered", apperrors.ErrDuplicate, m.Section)
		}
		return fmt.Errorf("failed to save opening balance %s: %w", m.OpeningID, err)
	}
	return nil
}

// SaveOpeningItems inserts the item rows in one batch.
func (r *PgxOpeningRepository) SaveOpeningItems(ctx context.Context, tx pgx.Tx, items []domain.OpeningBalanceItem) error {
	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	query := `
		INSERT INTO opening_balance_items (item_id, opening_id, ref_id, quantity, amount, direction, posted, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	for _, item := range items {
		m := mapping.ToModelOpeningItem(item)
		batch.Queue(query,
			m.ItemID,
			m.OpeningID,
			m.RefID,
			m.Quantity,
			m.Amount,
			nullable(string(m.Direction)),
			m.Posted,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	defer br.Close()
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("failed to insert opening item %d: %w", i, err)
		}
	}
	return nil
}

// LinkOpeningDocument records the shared opening-balance document on the header.
func (r *PgxOpeningRepository) LinkOpeningDocument(ctx context.Context, tx pgx.Tx, openingID, documentID string) error {
	query := `UPDATE opening_balances SET document_id = $2 WHERE opening_id = $1;`

	tag, err := tx.Exec(ctx, query, openingID, documentID)
	if err != nil {
		return fmt.Errorf("failed to link document %s to opening %s: %w", documentID, openingID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("opening balance %s not found", openingID))
	}
	return nil
}
