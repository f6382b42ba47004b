package controllers

import (
	"net/http"

	"github.com/franciscosanchezn/restaurant-manager/internal/models"
	"github.com/franciscosanchezn/restaurant-manager/internal/services"
	"github.com/gin-gonic/gin"
)

// ReportController serves the sales reports by name
type ReportController interface {
	// ListReports retrieves the names of every report
	ListReports(c *gin.Context)
	// GetReport runs one report
	GetReport(c *gin.Context)
}

type reportController struct {
	service services.ReportService
}

// NewReportController creates a new instance of ReportController
func NewReportController(service services.ReportService) ReportController {
	return &reportController{service: service}
}

// ListReports godoc
// @Summary List reports
// @Description Get the name and title of every sales report
// @Tags reports
// @Accept json
// @Produce json
// @Success 200 {array} map[string]string
// @Router /api/v1/reports [get]
func (rc *reportController) ListReports(c *gin.Context) {
	reports := make([]gin.H, 0, len(services.Reports))
	for _, report := range services.Reports {
		reports = append(reports, gin.H{"name": report.Name, "title": report.Title})
	}
	c.JSON(http.StatusOK, reports)
}

// GetReport godoc
// @Summary Run a report
// @Description Run one sales report by name
// @Tags reports
// @Accept json
// @Produce json
// @Param name path string true "Report name" Enums(best-sellers, top-spenders, top-order-counts, top-margins, popular-ingredients, weekly-sales, dish-popularity)
// @Success 200 {object} services.ReportOutput
// @Failure 404 {object} models.APIError
// @Failure 500 {object} models.APIError
// @Router /api/v1/reports/{name} [get]
func (rc *reportController) GetReport(c *gin.Context) {
	name := c.Param("name")

	report, ok := services.LookupReport(name)
	if !ok {
		c.JSON(http.StatusNotFound, models.NewAPIError(models.ErrReportNotFound, "Report not found",
			map[string]interface{}{"report": name, "available": services.ReportNames()}))
		return
	}

	result, err := report.Run(c.Request.Context(), rc.service)
	if err != nil {
		internalError(c, "Failed to run report", err)
		return
	}
	c.JSON(http.StatusOK, result)
}
