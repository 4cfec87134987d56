package dto

import (
	"time"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PostEntryRequest is one posting line of a manual document.
type PostEntryRequest struct {
	MoeinID     string          `json:"moeinID" binding:"required"`
	TafsiliID   string          `json:"tafsiliID"`
	Bed         decimal.Decimal `json:"bed"`
	Bes         decimal.Decimal `json:"bes"`
	Description string          `json:"description"`
}

// PostDocumentRequest creates a manual financial document.
type PostDocumentRequest struct {
	Date        time.Time          `json:"date" binding:"required"`
	Description string             `json:"description" binding:"required"`
	Entries     []PostEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

// DocumentResult is returned by every posting operation.
type DocumentResult struct {
	DocumentID   string          `json:"documentID"`
	DocumentNo   int64           `json:"documentNo"`
	EntriesCount int             `json:"entriesCount"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}

// EntryResponse defines the data returned for a posting line.
type EntryResponse struct {
	EntryID     string          `json:"entryID"`
	MoeinID     string          `json:"moeinID"`
	TafsiliID   string          `json:"tafsiliID,omitempty"`
	Bed         decimal.Decimal `json:"bed"`
	Bes         decimal.Decimal `json:"bes"`
	Description string          `json:"description"`
}

// DocumentResponse defines the data returned for a document header.
type DocumentResponse struct {
	DocumentID    string          `json:"documentID"`
	DocumentNo    int64           `json:"documentNo"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Status        string          `json:"status"`
	DocumentType  string          `json:"documentType"`
	ReferenceID   string          `json:"referenceID,omitempty"`
	ReferenceType string          `json:"referenceType,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	CreatedBy     string          `json:"createdBy"`
	Entries       []EntryResponse `json:"entries,omitempty"`
}

// ToEntryResponse converts a domain.FinancialEntry to EntryResponse.
func ToEntryResponse(e *domain.FinancialEntry) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		MoeinID:     e.MoeinID,
		TafsiliID:   e.TafsiliID,
		Bed:         e.Bed,
		Bes:         e.Bes,
		Description: e.Description,
	}
}

// ToDocumentResponse converts a domain.FinancialDocument to DocumentResponse.
func ToDocumentResponse(d *domain.FinancialDocument) DocumentResponse {
	resp := DocumentResponse{
		DocumentID:    d.DocumentID,
		DocumentNo:    d.DocumentNo,
		Date:          d.DocumentDate,
		Description:   d.Description,
		Status:        string(d.Status),
		DocumentType:  string(d.DocumentType),
		ReferenceID:   d.ReferenceID,
		ReferenceType: d.ReferenceType,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
	if len(d.Entries) > 0 {
		resp.Entries = make([]EntryResponse, len(d.Entries))
		for i := range d.Entries {
			resp.Entries[i] = ToEntryResponse(&d.Entries[i])
		}
	}
	return resp
}

// ToDocumentResponses converts a slice of document headers.
func ToDocumentResponses(docs []domain.FinancialDocument) []DocumentResponse {
	responses := make([]DocumentResponse, len(docs))
	for i := range docs {
		responses[i] = ToDocumentResponse(&docs[i])
	}
	return responses
}
