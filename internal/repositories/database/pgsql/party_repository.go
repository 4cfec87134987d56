package pgsql

import (
	"context"
	"database/sql"
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
	"github.com/shopspring/decimal"
)

type PgxPartyRepository struct {
	BaseRepository
}

// newPgxPartyRepository creates a new repository for business records the
// engine provisions detail accounts for.
func newPgxPartyRepository(pool *pgxpool.Pool) portsrepo.PartyRepositoryFacade {
	return &PgxPartyRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxPartyRepository implements portsrepo.PartyRepositoryFacade
var _ portsrepo.PartyRepositoryFacade = (*PgxPartyRepository)(nil)

func wrapDuplicate(err error, what, id string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%w: %s %s already exists", apperrors.ErrDuplicate, what, id)
	}
	return fmt.Errorf("failed to save %s %s: %w", what, id, err)
}

// FindCustomerByID retrieves a customer scoped to a tenant.
func (r *PgxPartyRepository) FindCustomerByID(ctx context.Context, tx pgx.Tx, tenantID, customerID string) (*domain.Customer, error) {
	query := `
		SELECT customer_id, tenant_id, name, phone, COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE tenant_id = $1 AND customer_id = $2;
	`
	var m models.Customer
	err := r.queryTarget(tx).QueryRow(ctx, query, tenantID, customerID).Scan(
		&m.CustomerID,
		&m.TenantID,
		&m.Name,
		&m.Phone,
		&m.TafsiliID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find customer by ID %s: %w", customerID, err)
	}

	d := mapping.ToDomainCustomer(m)
	return &d, nil
}

// FindBankByID retrieves a bank account scoped to a tenant.
func (r *PgxPartyRepository) FindBankByID(ctx context.Context, tx pgx.Tx, tenantID, bankID string) (*domain.BankAccount, error) {
	query := `
		SELECT bank_id, tenant_id, title, account_no, initial_balance, COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		WHERE tenant_id = $1 AND bank_id = $2;
	`
	var m models.BankAccount
	err := r.queryTarget(tx).QueryRow(ctx, query, tenantID, bankID).Scan(
		&m.BankID,
		&m.TenantID,
		&m.Title,
		&m.AccountNo,
		&m.InitialBalance,
		&m.TafsiliID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find bank account by ID %s: %w", bankID, err)
	}

	d := mapping.ToDomainBankAccount(m)
	return &d, nil
}

// FindCashByID retrieves a cash box scoped to a tenant.
func (r *PgxPartyRepository) FindCashByID(ctx context.Context, tx pgx.Tx, tenantID, cashID string) (*domain.CashBox, error) {
	query := `
		SELECT cash_id, tenant_id, title, initial_balance, COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM cash_boxes
		WHERE tenant_id = $1 AND cash_id = $2;
	`
	var m models.CashBox
	err := r.queryTarget(tx).QueryRow(ctx, query, tenantID, cashID).Scan(
		&m.CashID,
		&m.TenantID,
		&m.Title,
		&m.InitialBalance,
		&m.TafsiliID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find cash box by ID %s: %w", cashID, err)
	}

	d := mapping.ToDomainCashBox(m)
	return &d, nil
}

// FindPosByID retrieves a POS terminal scoped to a tenant.
func (r *PgxPartyRepository) FindPosByID(ctx context.Context, tx pgx.Tx, tenantID, posID string) (*domain.PosTerminal, error) {
	query := `
		SELECT pos_id, tenant_id, title, COALESCE(bank_id, ''), COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM pos_terminals
		WHERE tenant_id = $1 AND pos_id = $2;
	`
	var m models.PosTerminal
	err := r.queryTarget(tx).QueryRow(ctx, query, tenantID, posID).Scan(
		&m.PosID,
		&m.TenantID,
		&m.Title,
		&m.BankID,
		&m.TafsiliID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find POS terminal by ID %s: %w", posID, err)
	}

	d := mapping.ToDomainPosTerminal(m)
	return &d, nil
}

// ListCustomers retrieves customers for a tenant ordered by name.
func (r *PgxPartyRepository) ListCustomers(ctx context.Context, tenantID string, limit, offset int) ([]domain.Customer, error) {
	query := `
		SELECT customer_id, tenant_id, name, phone, COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM customers
		WHERE tenant_id = $1
		ORDER BY name
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	defer rows.Close()

	customers := make([]domain.Customer, 0)
	for rows.Next() {
		var m models.Customer
		err := rows.Scan(
			&m.CustomerID,
			&m.TenantID,
			&m.Name,
			&m.Phone,
			&m.TafsiliID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan customer row: %w", err)
		}
		customers = append(customers, mapping.ToDomainCustomer(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating customer rows: %w", err)
	}

	return customers, nil
}

// ListBanks retrieves all bank accounts of a tenant.
func (r *PgxPartyRepository) ListBanks(ctx context.Context, tenantID string) ([]domain.BankAccount, error) {
	query := `
		SELECT bank_id, tenant_id, title, account_no, initial_balance, COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM bank_accounts
		WHERE tenant_id = $1
		ORDER BY title;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank accounts: %w", err)
	}
	defer rows.Close()

	banks := make([]domain.BankAccount, 0)
	for rows.Next() {
		var m models.BankAccount
		err := rows.Scan(
			&m.BankID,
			&m.TenantID,
			&m.Title,
			&m.AccountNo,
			&m.InitialBalance,
			&m.TafsiliID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bank account row: %w", err)
		}
		banks = append(banks, mapping.ToDomainBankAccount(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bank account rows: %w", err)
	}

	return banks, nil
}

// ListCashes retrieves all cash boxes of a tenant.
func (r *PgxPartyRepository) ListCashes(ctx context.Context, tenantID string) ([]domain.CashBox, error) {
	query := `
		SELECT cash_id, tenant_id, title, initial_balance, COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM cash_boxes
		WHERE tenant_id = $1
		ORDER BY title;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cash boxes: %w", err)
	}
	defer rows.Close()

	cashes := make([]domain.CashBox, 0)
	for rows.Next() {
		var m models.CashBox
		err := rows.Scan(
			&m.CashID,
			&m.TenantID,
			&m.Title,
			&m.InitialBalance,
			&m.TafsiliID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cash box row: %w", err)
		}
		cashes = append(cashes, mapping.ToDomainCashBox(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cash box rows: %w", err)
	}

	return cashes, nil
}

// ListPosTerminals retrieves all POS terminals of a tenant.
func (r *PgxPartyRepository) ListPosTerminals(ctx context.Context, tenantID string) ([]domain.PosTerminal, error) {
	query := `
		SELECT pos_id, tenant_id, title, COALESCE(bank_id, ''), COALESCE(tafsili_id, ''), created_at, created_by, last_updated_at, last_updated_by
		FROM pos_terminals
		WHERE tenant_id = $1
		ORDER BY title;
	`
	rows, err := r.Pool.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list POS terminals: %w", err)
	}
	defer rows.Close()

	terminals := make([]domain.PosTerminal, 0)
	for rows.Next() {
		var m models.PosTerminal
		err := rows.Scan(
			&m.PosID,
			&m.TenantID,
			&m.Title,
			&m.BankID,
			&m.TafsiliID,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan POS terminal row: %w", err)
		}
		terminals = append(terminals, mapping.ToDomainPosTerminal(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating POS terminal rows: %w", err)
	}

	return terminals, nil
}

// SaveCustomer inserts a new customer.
func (r *PgxPartyRepository) SaveCustomer(ctx context.Context, customer domain.Customer) error {
	m := mapping.ToModelCustomer(customer)

	query := `
		INSERT INTO customers (customer_id, tenant_id, name, phone, tafsili_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CustomerID,
		m.TenantID,
		m.Name,
		m.Phone,
		nullable(m.TafsiliID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDuplicate(err, "customer", m.CustomerID)
	}
	return nil
}

// SaveBank inserts a new bank account.
func (r *PgxPartyRepository) SaveBank(ctx context.Context, bank domain.BankAccount) error {
	m := mapping.ToModelBankAccount(bank)

	query := `
		INSERT INTO bank_accounts (bank_id, tenant_id, title, account_no, initial_balance, tafsili_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankID,
		m.TenantID,
		m.Title,
		m.AccountNo,
		m.InitialBalance,
		nullable(m.TafsiliID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDuplicate(err, "bank account", m.BankID)
	}
	return nil
}

// SaveCash inserts a new cash box.
func (r *PgxPartyRepository) SaveCash(ctx context.Context, cash domain.CashBox) error {
	m := mapping.ToModelCashBox(cash)

	query := `
		INSERT INTO cash_boxes (cash_id, tenant_id, title, initial_balance, tafsili_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.CashID,
		m.TenantID,
		m.Title,
		m.InitialBalance,
		nullable(m.TafsiliID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDuplicate(err, "cash box", m.CashID)
	}
	return nil
}

// SavePos inserts a new POS terminal.
func (r *PgxPartyRepository) SavePos(ctx context.Context, pos domain.PosTerminal) error {
	m := mapping.ToModelPosTerminal(pos)

	var bankID sql.NullString
	if m.BankID != "" {
		bankID = sql.NullString{String: m.BankID, Valid: true}
	}

	query := `
		INSERT INTO pos_terminals (pos_id, tenant_id, title, bank_id, tafsili_id, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.PosID,
		m.TenantID,
		m.Title,
		bankID,
		nullable(m.TafsiliID),
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return wrapDuplicate(err, "POS terminal", m.PosID)
	}
	return nil
}

// SetBankInitialBalance overwrites the stored opening amount of a bank account.
func (r *PgxPartyRepository) SetBankInitialBalance(ctx context.Context, tx pgx.Tx, tenantID, bankID string, amount decimal.Decimal) error {
	query := `UPDATE bank_accounts SET initial_balance = $3 WHERE tenant_id = $1 AND bank_id = $2;`

	tag, err := tx.Exec(ctx, query, tenantID, bankID, amount)
	if err != nil {
		return fmt.Errorf("failed to set initial balance of bank %s: %w", bankID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("bank account %s not found", bankID))
	}
	return nil
}

// SetCashInitialBalance overwrites the stored opening amount of a cash box.
func (r *PgxPartyRepository) SetCashInitialBalance(ctx context.Context, tx pgx.Tx, tenantID, cashID string, amount decimal.Decimal) error {
	query := `UPDATE cash_boxes SET initial_balance = $3 WHERE tenant_id = $1 AND cash_id = $2;`

	tag, err := tx.Exec(ctx, query, tenantID, cashID, amount)
	if err != nil {
		return fmt.Errorf("failed to set initial balance of cash box %s: %w", cashID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("cash box %s not found", cashID))
	}
	return nil
}
