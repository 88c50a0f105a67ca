package sheet

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/model"
	"controle-estagiarios/internal/module/intern"
	"controle-estagiarios/tools"
)

const exportSheetName = "Estagiarios"

// Export streams the full tracking sheet (stored fields plus derived
// columns) as an .xlsx attachment.
func Export(c *gin.Context) {
	var interns []model.Intern
	if err := database.DB.Find(&interns).Error; err != nil {
		log.Error("failed to load interns for export", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rules, err := database.LoadRules()
	if err != nil {
		log.Error("failed to load rules for export", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := intern.BuildRows(interns, rules, database.UpcomingWindowDays(), time.Now())

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, exportSheetName, rows); err != nil {
		log.Error("failed to build export sheet", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error("failed to serialize export sheet", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	log.Info("sheet exported", "rows", len(rows))
	tools.SendBytes(c, buf.Bytes(), "estagiarios.xlsx", tools.ExcelContentType)
}
