package services

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
)

// OpeningSvcFacade registers one-time opening balances per tenant section.
type OpeningSvcFacade interface {
	// RegisterOpeningBalance seeds a section exactly once. A repeat attempt
	// fails with ErrDuplicateSection; an item list with no valid entries
	// fails with ErrNoValidItems and leaves nothing behind.
	RegisterOpeningBalance(ctx context.Context, tenantID string, section domain.OpeningSection, req dto.OpeningBalanceRequest, userID string) (*dto.OpeningBalanceResult, error)
}
