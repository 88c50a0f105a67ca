package model

import (
	"time"

	"controle-estagiarios/internal/lifecycle"
)

// Intern is one tracked estagiário contract. Dates are stored as ISO
// strings exactly as entered or imported; parsing happens at compute
// time so malformed legacy values degrade to the "no date" sentinels
// instead of failing reads.
type Intern struct {
	Model
	Name            string `gorm:"type:varchar(120);not null" json:"name" excel:"nome"`
	University      string `gorm:"type:varchar(160);not null" json:"university" excel:"universidade"`
	AdmissionDate   string `gorm:"type:varchar(10);not null" json:"admission_date" excel:"data_admissao"`
	LastRenewalDate string `gorm:"type:varchar(10)" json:"last_renewal_date" excel:"data_ult_renovacao"`
	Note            string `gorm:"type:varchar(255)" json:"note" excel:"obs"`
	// ExpirationDate is derived (admission + 24 months) and persisted on
	// every create/update. Renewals never move it.
	ExpirationDate string `gorm:"type:varchar(10)" json:"expiration_date" excel:"data_vencimento"`
}

// Admission returns the parsed admission date, nil when missing/invalid.
func (i *Intern) Admission() *time.Time {
	if t, ok := lifecycle.ParseDate(i.AdmissionDate); ok {
		return &t
	}
	return nil
}

// LastRenewal returns the parsed last renewal date, nil when absent.
func (i *Intern) LastRenewal() *time.Time {
	if t, ok := lifecycle.ParseDate(i.LastRenewalDate); ok {
		return &t
	}
	return nil
}

// Expiration returns the parsed stored expiration date, nil when absent.
func (i *Intern) Expiration() *time.Time {
	if t, ok := lifecycle.ParseDate(i.ExpirationDate); ok {
		return &t
	}
	return nil
}
