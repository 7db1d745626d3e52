package api

import (
	"net/http"

	"github.com/dan13ram/clpd-settlement/models"
	"github.com/gin-gonic/gin"
)

// CurrentBalance may wait on the balance lock for the configured acquire
// timeout before falling back to the stored sample.
func (h *Handler) CurrentBalance(c *gin.Context) {
	sample, err := h.balances.CurrentBalance(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sample)
}

func (h *Handler) StoredBalance(c *gin.Context) {
	sample, err := h.balances.StoredBalance()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sample)
}

func (h *Handler) BalanceHistory(c *gin.Context) {
	samples, err := h.balances.HistoricalBalance(c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, samples)
}

type healthResponse struct {
	Healthy  bool                   `json:"healthy"`
	Services []models.ServiceHealth `json:"services"`
}

func (h *Handler) Healthz(c *gin.Context) {
	if h.health == nil {
		c.JSON(http.StatusOK, messageResponse{Message: "ok"})
		return
	}

	response := healthResponse{
		Healthy:  h.health.Healthy(),
		Services: h.health.ServiceHealths(),
	}
	if !response.Healthy {
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}
