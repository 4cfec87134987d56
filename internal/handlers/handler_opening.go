package handlers

import (
	"net/http"

	"github.com/hadikeshavarzi/anbar-ledger/internal/core/domain"
	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// openingHandler handles opening-balance registration requests.
type openingHandler struct {
	opening portssvc.OpeningSvcFacade
}

func newOpeningHandler(opening portssvc.OpeningSvcFacade) *openingHandler {
	return &openingHandler{opening: opening}
}

// registerOpeningRoutes registers opening-balance routes.
func registerOpeningRoutes(rg *gin.RouterGroup, opening portssvc.OpeningSvcFacade) {
	h := newOpeningHandler(opening)
	rg.POST("/opening-balances/:section", h.registerOpeningBalance)
}

// registerOpeningBalance godoc
// @Summary Register an opening-balance section
// @Description Seeds one section of historical balances, at most once per tenant
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   section path string true "Section" Enums(inventory, customers, banks, cashes)
// @Param   opening body dto.OpeningBalanceRequest true "Items"
// @Success 201 {object} dto.OpeningBalanceResult
// @Failure 409 {object} map[string]any "Section already registered"
// @Failure 400 {object} map[string]any "No valid items"
// @Security BearerAuth
// @Router /opening-balances/{section} [post]
func (h *openingHandler) registerOpeningBalance(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.OpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	section := domain.OpeningSection(c.Param("section"))
	result, err := h.opening.RegisterOpeningBalance(c.Request.Context(), tenantID, section, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusCreated, result)
}
