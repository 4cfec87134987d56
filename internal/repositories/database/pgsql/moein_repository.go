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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxMoeinRepository struct {
	BaseRepository
}

// newPgxMoeinRepository creates a new repository for subsidiary-account data.
func newPgxMoeinRepository(pool *pgxpool.Pool) portsrepo.MoeinRepositoryFacade {
	return &PgxMoeinRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxMoeinRepository implements portsrepo.MoeinRepositoryFacade
var _ portsrepo.MoeinRepositoryFacade = (*PgxMoeinRepository)(nil)

const moeinColumns = `moein_id, gl_id, code, name, created_at, created_by, last_updated_at, last_updated_by`

func scanMoein(row pgx.Row) (*models.SubsidiaryAccount, error) {
	var m models.SubsidiaryAccount
	err := row.Scan(
		&m.MoeinID,
		&m.GLID,
		&m.Code,
		&m.Name,
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

// FindMoeinByCode retrieves a subsidiary account by its fixed code.
func (r *PgxMoeinRepository) FindMoeinByCode(ctx context.Context, code string) (*domain.SubsidiaryAccount, error) {
	query := `SELECT ` + moeinColumns + ` FROM subsidiary_accounts WHERE code = $1;`

	m, err := scanMoein(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find moein by code %s: %w", code, err)
	}

	d := mapping.ToDomainSubsidiaryAccount(*m)
	return &d, nil
}

// FindMoeinsByCodes retrieves subsidiary accounts for a set of codes, keyed by
// code. Codes with no matching row are simply absent from the result.
func (r *PgxMoeinRepository) FindMoeinsByCodes(ctx context.Context, codes []string) (map[string]domain.SubsidiaryAccount, error) {
	if len(codes) == 0 {
		return map[string]domain.SubsidiaryAccount{}, nil
	}

	query := `SELECT ` + moeinColumns + ` FROM subsidiary_accounts WHERE code = ANY($1);`

	rows, err := r.Pool.Query(ctx, query, codes)
	if err != nil {
		return nil, fmt.Errorf("failed to query moeins by codes: %w", err)
	}
	defer rows.Close()

	result := make(map[string]domain.SubsidiaryAccount, len(codes))
	for rows.Next() {
		m, err := scanMoein(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan moein row: %w", err)
		}
		result[m.Code] = mapping.ToDomainSubsidiaryAccount(*m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating moein rows: %w", err)
	}

	return result, nil
}
