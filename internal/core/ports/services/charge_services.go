package services

import (
	"context"

	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
)

// ChargeSvcFacade translates operational receipt/exit events into balanced
// postings.
type ChargeSvcFacade interface {
	// PostOperationalCharge applies the income-splitting rule to one
	// operational event. A zero total is a no-op result, not an error.
	PostOperationalCharge(ctx context.Context, tenantID string, req dto.OperationalChargeRequest, userID string) (*dto.ChargeResult, error)
}
