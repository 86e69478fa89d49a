package routes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/nratzan/dit-2026/internal/assessment"
	"github.com/nratzan/dit-2026/internal/logger"
	"github.com/nratzan/dit-2026/internal/results"
	"github.com/nratzan/dit-2026/utils"
)

// SetupAdminRoutes wires operator-facing endpoints. The heatmap export renders
// the aggregated 6x5 grid as a spreadsheet, one row per automation level.
func SetupAdminRoutes(router *gin.Engine, store *results.Store) {
	admin := router.Group("/admin")

	admin.GET("/heatmap/export", func(c *gin.Context) {
		hm, err := store.HeatmapData(c.Request.Context())
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to aggregate results", gin.H{"error": err.Error()})
			return
		}

		f := excelize.NewFile()
		defer f.Close()

		sheetName := "Heatmap"
		index, err := f.NewSheet(sheetName)
		if err != nil {
			utils.RespondWithInternalError(c, "Failed to create spreadsheet", gin.H{"error": err.Error()})
			return
		}
		f.SetActiveSheet(index)
		f.DeleteSheet("Sheet1")

		stages := []string{"E", "P", "I", "A", "S"}
		f.SetCellValue(sheetName, "A1", "Automation Level")
		for i, stage := range stages {
			cell := fmt.Sprintf("%c1", 'B'+i)
			f.SetCellValue(sheetName, cell, fmt.Sprintf("%s (%s)", stage, assessment.StageNames[stage]))
		}

		for level := 0; level <= 5; level++ {
			row := level + 2
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row),
				fmt.Sprintf("L%d: %s", level, assessment.LevelNames[level]))
			for i, stage := range stages {
				cell := fmt.Sprintf("%c%d", 'B'+i, row)
				f.SetCellValue(sheetName, cell, hm.Counts[fmt.Sprintf("%d_%s", level, stage)])
			}
		}

		row := 9
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Total assessments")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), hm.Total)
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row+1), "Exported at")
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row+1), time.Now().UTC().Format("2006-01-02 15:04:05"))

		f.SetColWidth(sheetName, "A", "A", 28)
		f.SetColWidth(sheetName, "B", "F", 18)

		filename := fmt.Sprintf("heatmap_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

		c.Status(http.StatusOK)
		if err := f.Write(c.Writer); err != nil {
			logger.Error("heatmap export write failed", "error", err)
		}
	})
}
