package api

import (
	"errors"
	"net/http"

	reqdto "hostel-booking/internal/handler/dto/request"
	resdto "hostel-booking/internal/handler/dto/response"
	"hostel-booking/internal/pkg/errs"
	"hostel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type TaxHandler struct {
	taxCommands commands.TaxCommands
}

func NewTaxHandler(taxCommands commands.TaxCommands) *TaxHandler {
	return &TaxHandler{
		taxCommands: taxCommands,
	}
}

// @Summary Get active tax
// @Description Get the currently active tax percent
// @Tags tax
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.TaxResponse
// @Failure 401 {object} map[string]string
// @Router /tax [get]
func (h *TaxHandler) GetActiveTax(c *gin.Context) {
	percent, err := h.taxCommands.ActivePercent(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.TaxResponse{Percent: percent})
}

// @Summary Activate tax
// @Description Replace the active tax configuration; staff or admin only
// @Tags tax
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ActivateTaxRequest true "New tax percent"
// @Success 200 {object} resdto.TaxResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /tax [put]
func (h *TaxHandler) ActivateTax(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var req reqdto.ActivateTaxRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.taxCommands.Activate(c.Request.Context(), actor, req.Percent); err != nil {
		switch {
		case errors.Is(err, errs.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Tax percent must be between 0 and 100",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.TaxResponse{Percent: req.Percent})
}
