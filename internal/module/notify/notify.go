package notify

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"controle-estagiarios/config"
	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/internal/global/httpclient"
	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
	"controle-estagiarios/internal/module/intern"
)

// Digest is the payload posted to the configured webhook: contracts
// whose renewal is overdue, plus contracts expiring inside the warning
// window.
type Digest struct {
	GeneratedAt string       `json:"generated_at"`
	WindowDays  int          `json:"window_days"`
	Overdue     []intern.Row `json:"overdue"`
	Upcoming    []intern.Row `json:"upcoming"`
}

// BuildDigest derives the overdue/upcoming buckets from the current
// records.
func BuildDigest(interns []model.Intern, rules []lifecycle.Rule, windowDays int, asOf time.Time) Digest {
	digest := Digest{
		GeneratedAt: asOf.Format(lifecycle.StoreLayout),
		WindowDays:  windowDays,
	}
	overdueLabel := lifecycle.RenewalLabel{Kind: lifecycle.RenewalOverdue}.String()
	for _, row := range intern.BuildRows(interns, rules, windowDays, asOf) {
		switch {
		case row.NextRenewal == overdueLabel:
			digest.Overdue = append(digest.Overdue, row)
		case row.Status == lifecycle.StatusUpcoming.String() || row.Status == lifecycle.StatusExpired.String():
			digest.Upcoming = append(digest.Upcoming, row)
		}
	}
	return digest
}

// SendDigest posts the renewal digest to the configured webhook.
func SendDigest(c *gin.Context) {
	webhook := config.Get().Webhook.URL
	if webhook == "" {
		response.Fail(c, response.ErrInvalidRequest.WithTips("webhook não configurado"))
		return
	}

	var interns []model.Intern
	if err := database.DB.Find(&interns).Error; err != nil {
		log.Error("failed to load interns for digest", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}
	rules, err := database.LoadRules()
	if err != nil {
		log.Error("failed to load rules for digest", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	digest := BuildDigest(interns, rules, database.UpcomingWindowDays(), time.Now())

	resp, err := httpclient.Client.R().
		SetContext(c.Request.Context()).
		SetHeader("Content-Type", "application/json").
		SetBody(digest).
		Post(webhook)
	if err != nil {
		log.Error("failed to post digest", "error", err, "webhook", webhook)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	if resp.IsError() {
		log.Error("webhook rejected digest", "status", resp.StatusCode(), "webhook", webhook)
		response.Fail(c, response.ErrInternal.WithTips(fmt.Sprintf("webhook retornou %d", resp.StatusCode())))
		return
	}

	log.Info("digest sent",
		"overdue", len(digest.Overdue),
		"upcoming", len(digest.Upcoming),
		"status", resp.StatusCode(),
	)

	response.Success(c, gin.H{
		"overdue":  len(digest.Overdue),
		"upcoming": len(digest.Upcoming),
	})
}
