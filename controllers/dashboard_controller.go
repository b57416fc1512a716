package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-admin/services"
	"hotel-admin/utils"
)

type Summarizer interface {
	Summary(ctx context.Context, from, to string) (services.Summary, error)
}

type DashboardController struct {
	Summaries Summarizer
	Locale    string
}

func NewDashboardController(s Summarizer, locale string) *DashboardController {
	return &DashboardController{Summaries: s, Locale: locale}
}

// GetSummary (GET /api/dashboard/summary?from=&to=)
func (ctrl *DashboardController) GetSummary(c *gin.Context) {
	sum, err := ctrl.Summaries.Summary(c.Request.Context(), c.Query("from"), c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, sum)
}

// GetCountry (GET /api/countries/:code?locale=) never fails; an unknown code
// comes back as its own name.
func (ctrl *DashboardController) GetCountry(c *gin.Context) {
	code := c.Param("code")
	locale := c.DefaultQuery("locale", ctrl.Locale)
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"codigo": code,
		"nombre": utils.CountryName(code, locale),
	})
}
