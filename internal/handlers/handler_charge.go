package handlers

import (
	"net/http"

	portssvc "github.com/hadikeshavarzi/anbar-ledger/internal/core/ports/services"
	"github.com/hadikeshavarzi/anbar-ledger/internal/dto"
	"github.com/gin-gonic/gin"
)

// chargeHandler handles the operational receipt/exit charge endpoint.
type chargeHandler struct {
	charge portssvc.ChargeSvcFacade
}

func newChargeHandler(charge portssvc.ChargeSvcFacade) *chargeHandler {
	return &chargeHandler{charge: charge}
}

// registerChargeRoutes registers the operational-charge route.
func registerChargeRoutes(rg *gin.RouterGroup, charge portssvc.ChargeSvcFacade) {
	h := newChargeHandler(charge)
	rg.POST("/charges", h.postOperationalCharge)
}

// postOperationalCharge godoc
// @Summary Post an operational charge
// @Description Translates a goods receipt/exit event into a balanced posting
// @Tags charges
// @Accept  json
// @Produce  json
// @Param   charge body dto.OperationalChargeRequest true "Operational event"
// @Success 201 {object} dto.ChargeResult
// @Success 200 {object} dto.ChargeResult "Nothing to post"
// @Failure 400 {object} map[string]any "Invalid input"
// @Security BearerAuth
// @Router /charges [post]
func (h *chargeHandler) postOperationalCharge(c *gin.Context) {
	tenantID, userID, ok := requestScope(c)
	if !ok {
		return
	}

	var req dto.OperationalChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.charge.PostOperationalCharge(c.Request.Context(), tenantID, req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if !result.Posted {
		status = http.StatusOK
	}
	respondSuccess(c, status, result)
}
