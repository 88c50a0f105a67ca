package rule

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
)

// RuleReq carries a rule create/update. Months is bounded by the
// 24-month contract ceiling.
type RuleReq struct {
	Keyword string `json:"keyword" binding:"required"`
	Months  int    `json:"months" binding:"required"`
}

func (r *RuleReq) normalize() error {
	r.Keyword = strings.ToUpper(strings.TrimSpace(r.Keyword))
	if r.Keyword == "" {
		return errors.New("palavra-chave não pode ser vazia")
	}
	if r.Months < 1 || r.Months > lifecycle.ContractCeilingMonths {
		return fmt.Errorf("meses deve estar entre 1 e %d", lifecycle.ContractCeilingMonths)
	}
	return nil
}

// ListRules returns every rule ordered by keyword.
func ListRules(c *gin.Context) {
	var rules []model.Rule
	if err := database.DB.Order("keyword").Find(&rules).Error; err != nil {
		log.Error("failed to list rules", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	response.Success(c, gin.H{"rules": rules})
}

// CreateRule adds a university duration rule. A rule change never
// rewrites stored expiration dates; it only affects renewal cycles
// computed from now on.
func CreateRule(c *gin.Context) {
	var req RuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind rule request", "error", err)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if err := req.normalize(); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	var existing model.Rule
	err := database.DB.Where("keyword = ?", req.Keyword).First(&existing).Error
	if err == nil {
		log.Warn("rule already exists", "keyword", req.Keyword)
		response.Fail(c, response.ErrAlreadyExists.WithTips("regra já cadastrada"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("failed to check rule", "error", err, "keyword", req.Keyword)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rule := model.Rule{Keyword: req.Keyword, Months: req.Months}
	if err := database.DB.Create(&rule).Error; err != nil {
		log.Error("failed to create rule", "error", err, "keyword", req.Keyword)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("REGRA ADICIONADA", fmt.Sprintf("Universidade: %s, Meses: %d", rule.Keyword, rule.Months))
	log.Info("rule created", "keyword", rule.Keyword, "months", rule.Months)

	response.Success(c, gin.H{"rule_id": rule.ID})
}

// UpdateRule edits an existing rule.
func UpdateRule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id não pode ser vazio"))
		return
	}

	var req RuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Error("failed to bind rule request", "error", err, "id", id)
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}
	if err := req.normalize(); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithTips(err.Error()))
		return
	}

	var rule model.Rule
	if err := database.DB.First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("rule not found", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("regra não encontrada"))
			return
		}
		log.Error("failed to fetch rule", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rule.Keyword = req.Keyword
	rule.Months = req.Months
	if err := database.DB.Save(&rule).Error; err != nil {
		log.Error("failed to update rule", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("REGRA EDITADA", fmt.Sprintf("ID: %d, Universidade: %s, Meses: %d", rule.ID, rule.Keyword, rule.Months))
	log.Info("rule updated", "id", rule.ID, "keyword", rule.Keyword, "months", rule.Months)

	response.Success(c)
}

// DeleteRule removes a rule; affected universities fall back to the
// 6-month default cycle.
func DeleteRule(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("id não pode ser vazio"))
		return
	}

	var rule model.Rule
	if err := database.DB.First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Warn("rule not found", "id", id)
			response.Fail(c, response.ErrNotFound.WithTips("regra não encontrada"))
			return
		}
		log.Error("failed to fetch rule", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	if err := database.DB.Delete(&rule).Error; err != nil {
		log.Error("failed to delete rule", "error", err, "id", id)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	database.Audit("REGRA EXCLUÍDA", fmt.Sprintf("ID: %d, Universidade: %s", rule.ID, rule.Keyword))
	log.Info("rule deleted", "id", rule.ID, "keyword", rule.Keyword)

	response.Success(c)
}
