package services

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrAccountResolution indicates the business record a detail account should
// be provisioned for does not exist.
var ErrAccountResolution = errors.New("originating business record not found for account resolution")

// ErrInvalidTransition indicates an instrument transition guard rejected the
// request because the current status does not allow the event.
var ErrInvalidTransition = errors.New("invalid instrument transition")

// ErrInstrumentNotRemovable indicates a cheque has already moved and can no
// longer be deleted.
var ErrInstrumentNotRemovable = errors.New("instrument has moved and cannot be removed")

// ErrDuplicateSection indicates an opening-balance section was already
// registered for the tenant.
var ErrDuplicateSection = errors.New("opening balance section already registered")

// ErrNoValidItems indicates every item of an opening-balance request was
// skipped, so there was nothing to register.
var ErrNoValidItems = errors.New("no valid opening balance items")

// UnbalancedDocumentError reports a document whose debit and credit totals
// differ beyond the accepted tolerance. It carries both totals for
// diagnostics.
type UnbalancedDocumentError struct {
	Bed decimal.Decimal
	Bes decimal.Decimal
}

func (e *UnbalancedDocumentError) Error() string {
	return fmt.Sprintf("document is unbalanced: debit total %s, credit total %s", e.Bed, e.Bes)
}

// NewUnbalancedDocumentError builds an UnbalancedDocumentError from totals.
func NewUnbalancedDocumentError(bed, bes decimal.Decimal) *UnbalancedDocumentError {
	return &UnbalancedDocumentError{Bed: bed, Bes: bes}
}
