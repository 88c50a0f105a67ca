package audit

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
	"controle-estagiarios/tools"
)

// listLimit caps the admin-panel view; full history goes through export.
const listLimit = 50

// RangeReq is the optional date-range filter shared by list and export.
type RangeReq struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

func (r *RangeReq) bounds() (start, end *time.Time, err error) {
	if r.StartDate != "" {
		t, ok := lifecycle.ParseDate(r.StartDate)
		if !ok {
			return nil, nil, fmt.Errorf("start_date inválida: %q", r.StartDate)
		}
		start = &t
	}
	if r.EndDate != "" {
		t, ok := lifecycle.ParseDate(r.EndDate)
		if !ok {
			return nil, nil, fmt.Errorf("end_date inválida: %q", r.EndDate)
		}
		// Inclusive end of day.
		t = t.AddDate(0, 0, 1)
		end = &t
	}
	return start, end, nil
}

func queryEntries(r RangeReq, limit int, ascending bool) ([]model.AuditLog, error) {
	start, end, err := r.bounds()
	if err != nil {
		return nil, err
	}

	query := database.DB.Model(&model.AuditLog{})
	if start != nil {
		query = query.Where("timestamp >= ?", *start)
	}
	if end != nil {
		query = query.Where("timestamp < ?", *end)
	}
	if ascending {
		query = query.Order("id ASC")
	} else {
		query = query.Order("id DESC")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []model.AuditLog
	if err := query.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListEntries returns the most recent audit entries, newest first.
func ListEntries(c *gin.Context) {
	var req RangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	entries, err := queryEntries(req, listLimit, false)
	if err != nil {
		log.Error("failed to list audit entries", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{"entries": entries})
}

// ExportEntries downloads the audit trail for a period as plain text.
func ExportEntries(c *gin.Context) {
	var req RangeReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	entries, err := queryEntries(req, 0, true)
	if err != nil {
		log.Error("failed to export audit entries", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("%s | %s | %s\n",
			e.Timestamp.Format("2006-01-02 15:04:05"), e.Action, e.Details))
	}

	name := "log_completo.txt"
	if req.StartDate != "" && req.EndDate != "" {
		name = fmt.Sprintf("log_%s_a_%s.txt", req.StartDate, req.EndDate)
	}

	log.Info("audit trail exported", "entries", len(entries))
	tools.SendBytes(c, []byte(sb.String()), name, tools.TextContentType)
}
