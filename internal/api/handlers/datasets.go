package handlers

import (
	"net/http"

	"climate-scenarios/internal/api/models"
	"climate-scenarios/internal/refdata"

	"github.com/gin-gonic/gin"
)

// ListDatasets handles GET /api/v1/datasets.
func ListDatasets(c *gin.Context) {
	out := make([]models.DatasetInfo, 0)
	for _, d := range refdata.Datasets() {
		out = append(out, models.DatasetInfo{
			ID:          d.Key,
			Name:        d.Name,
			Description: d.Description,
			Columns:     d.ColumnNames(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"datasets": out})
}
