package handlers

import (
	"net/http"

	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests related to financial documents.
type documentHandler struct {
	posting portssvc.PostingSvcFacade
}

func newDocumentHandler(posting portssvc.PostingSvcFacade) *documentHandler {
	return &documentHandler{posting: posting}
}

// registerDocumentRoutes registers routes related to financial documents.
func registerDocumentRoutes(rg *gin.RouterGroup, posting portssvc.PostingSvcFacade) {
	h := newDocumentHandler(posting)

	documents := rg.Group("/documents")
	{
		documents.POST("", h.postDocument)
		documents.GET("/:id", h.getDocument)
		documents.GET("", h.listDocuments)
	}
}

// postDocument godoc
// @Summary Post a manual financial document
// @Description Creates a balanced manual document with its entry lines
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   document body dto.PostDocumentRequest true "Document details"
// @Success 201 {object} dto.DocumentResult
// @Failure 400 {object} map[string]any "Invalid input"
// @Failure 422 {object} map[string]any "Unbalanced document"
// @Security BearerAuth
// @Router /documents [post]
func (h *documentHandler) postDocument(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.PostDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.posting.PostDocument(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, result)
}

// getDocument godoc
// @Summary Get a document by ID
// @Description Retrieves a document header and its entry lines
// @Tags documents
// @Produce  json
// @Param   id path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]any "Not found"
// @Security BearerAuth
// @Router /documents/{id} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	doc, err := h.posting.GetDocument(c.Request.Context(), tenantID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToDocumentResponse(doc))
}

// listDocuments godoc
// @Summary List documents
// @Description Retrieves document headers of the tenant, newest first
// @Tags documents
// @Produce  json
// @Param   limit query int false "Page size"
// @Param   offset query int false "Page offset"
// @Success 200 {array} dto.DocumentResponse
// @Security BearerAuth
// @Router /documents [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	tenantID, _, ok := requestScope(c)
	if !ok {
		return
	}

	limit, offset := paginationParams(c)
	docs, err := h.posting.ListDocuments(c.Request.Context(), tenantID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToDocumentResponses(docs))
}
