package intern

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
)

// InternCreateReq carries a new intern registration. Dates arrive as
// strings in ISO or dd.mm.yyyy form.
type InternCreateReq struct {
	Name            string `json:"name" binding:"required"`
	University      string `json:"university" binding:"required"`
	AdmissionDate   string `json:"admission_date" binding:"required"`
	LastRenewalDate string `json:"last_renewal_date"`
	Note            string `json:"note"`
}

// InternUpdateReq supports partial updates via pointer fields.
type InternUpdateReq struct {
	Name            *string `json:"name"`
	University      *string `json:"university"`
	AdmissionDate   *string `json:"admission_date"`
	LastRenewalDate *string `json:"last_renewal_date"`
	Note            *string `json:"note"`
}

// CreateIntern registers a new intern and persists the derived
// expiration date (admission + 24 months).
func CreateIntern(c *gin.Context) {
	var req InternCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind create request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	admission, ok := lifecycle.ParseDate(req.AdmissionDate)
	if !ok {
		response.Fail(c, response.ErrInvalidRequest.WithTips("data de admissão inválida"))
		return
	}

	renewal := ""
	if strings.TrimSpace(req.LastRenewalDate) != "" {
		t, ok := lifecycle.ParseDate(req.LastRenewalDate)
		if !ok {
			response.Fail(c, response.ErrInvalidRequest.WithTips("data de renovação inválida"))
			return
		}
		renewal = t.Format(lifecycle.StoreLayout)
	}

	record := model.Intern{
		Name:            strings.ToUpper(strings.TrimSpace(req.Name)),
		University:      strings.ToUpper(strings.TrimSpace(req.University)),
		AdmissionDate:   admission.Format(lifecycle.StoreLayout),
		LastRenewalDate: renewal,
		Note:            strings.TrimSpace(req.Note),
	}
	record.ExpirationDate = lifecycle.FinalExpiration(&admission).Format(lifecycle.StoreLayout)

	if err := database.DB.Create(&record).Error; err != nil {
		log.Error("failed to create intern", "error", err, "name", record.Name)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("NOVO ESTAGIÁRIO", fmt.Sprintf("Nome: %s, Universidade: %s", record.Name, record.University))
	log.Info("intern created",
		"id", record.ID,
		"name", record.Name,
		"university", record.University,
	)

	response.Success(c, gin.H{
		"intern_id":       record.ID,
		"expiration_date": record.ExpirationDate,
	})
}

// ListInternsReq defines the list query parameters.
type ListInternsReq struct {
	Name       string `form:"name"`
	University string `form:"university"`
	Status     string `form:"status"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

// ListInterns returns interns sorted by expiration with the derived
// columns (status, next renewal, last-year flag) computed per record.
// The status filter applies after derivation since status is never
// stored.
func ListInterns(c *gin.Context) {
	var req ListInternsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		log.Error("failed to bind list query", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	query := database.DB.Model(&model.Intern{})
	if req.Name != "" {
		query = query.Where("name LIKE ?", "%"+strings.ToUpper(req.Name)+"%")
	}
	if req.University != "" {
		query = query.Where("university LIKE ?", "%"+strings.ToUpper(req.University)+"%")
	}

	var interns []model.Intern
	if err := query.Find(&interns).Error; err != nil {
		log.Error("failed to list interns", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rules, err := database.LoadRules()
	if err != nil {
		log.Error("failed to load rules", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := BuildRows(interns, rules, database.UpcomingWindowDays(), time.Now())

	if req.Status != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if strings.EqualFold(row.Status, req.Status) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	total := len(rows)
	start := (req.Page - 1) * req.PageSize
	if start > total {
		start = total
	}
	end := start + req.PageSize
	if end > total {
		end = total
	}

	response.Success(c, map[string]any{
		"interns":     rows[start:end],
		"total":       total,
		"page":        req.Page,
		"page_size":   req.PageSize,
		"total_pages": (total + req.PageSize - 1) / req.PageSize,
	})
}

// GetIntern returns one intern with its derived fields.
func GetIntern(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id não pode ser vazio"))
		return
	}

	var record model.Intern
	if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("intern not found", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("estagiário não encontrado"))
			return
		}
		log.Error("failed to fetch intern", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rules, err := database.LoadRules()
	if err != nil {
		log.Error("failed to load rules", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	response.Success(c, gin.H{
		"intern": record,
		"view":   BuildRow(&record, rules, database.UpcomingWindowDays(), time.Now()),
	})
}

// UpdateIntern applies a partial update and recomputes the stored
// expiration from the (possibly new) admission date.
func UpdateIntern(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id não pode ser vazio"))
		return
	}

	var req InternUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind update request", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	var record model.Intern
	if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("intern not found", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("estagiário não encontrado"))
			return
		}
		log.Error("failed to fetch intern", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if req.Name != nil {
		record.Name = strings.ToUpper(strings.TrimSpace(*req.Name))
	}
	if req.University != nil {
		record.University = strings.ToUpper(strings.TrimSpace(*req.University))
	}
	if req.AdmissionDate != nil {
		admission, ok := lifecycle.ParseDate(*req.AdmissionDate)
		if !ok {
			response.Fail(c, response.ErrInvalidRequest.WithTips("data de admissão inválida"))
			return
		}
		record.AdmissionDate = admission.Format(lifecycle.StoreLayout)
	}
	if req.LastRenewalDate != nil {
		if strings.TrimSpace(*req.LastRenewalDate) == "" {
			record.LastRenewalDate = ""
		} else {
			renewal, ok := lifecycle.ParseDate(*req.LastRenewalDate)
			if !ok {
				response.Fail(c, response.ErrInvalidRequest.WithTips("data de renovação inválida"))
				return
			}
			record.LastRenewalDate = renewal.Format(lifecycle.StoreLayout)
		}
	}
	if req.Note != nil {
		record.Note = strings.TrimSpace(*req.Note)
	}

	// Expiration always tracks the admission date alone.
	record.ExpirationDate = ""
	if exp := lifecycle.FinalExpiration(record.Admission()); exp != nil {
		record.ExpirationDate = exp.Format(lifecycle.StoreLayout)
	}

	if err := database.DB.Save(&record).Error; err != nil {
		log.Error("failed to update intern", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("ESTAGIÁRIO ATUALIZADO", fmt.Sprintf("ID: %d, Nome: %s", record.ID, record.Name))
	log.Info("intern updated", "id", record.ID, "name", record.Name)

	response.Success(c)
}

// DeleteIntern removes an intern permanently; there is no soft delete.
func DeleteIntern(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id não pode ser vazio"))
		return
	}

	var record model.Intern
	if err := database.DB.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("intern not found", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("estagiário não encontrado"))
			return
		}
		log.Error("failed to fetch intern", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&record).Error; err != nil {
		log.Error("failed to delete intern", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("ESTAGIÁRIO EXCLUÍDO", fmt.Sprintf("ID: %d, Nome: %s", record.ID, record.Name))
	log.Info("intern deleted", "id", record.ID, "name", record.Name)

	response.Success(c)
}
