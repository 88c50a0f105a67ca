package intern

import (
	"sort"
	"time"

	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
)

// Row is one intern as the tracking sheet presents it: stored fields
// plus every derived column. The excel tags drive the spreadsheet
// export; headers keep the original sheet's Portuguese names.
type Row struct {
	ID             uint   `json:"id" excel:"id"`
	Name           string `json:"name" excel:"nome"`
	University     string `json:"university" excel:"universidade"`
	AdmissionDate  string `json:"admission_date" excel:"data_admissao"`
	RenewedAt      string `json:"renewed_at" excel:"renovado_em"`
	NextRenewal    string `json:"next_renewal" excel:"proxima_renovacao"`
	ExpirationDate string `json:"expiration_date" excel:"termino_contrato"`
	Status         string `json:"status" excel:"status"`
	LastYear       string `json:"last_year" excel:"ultimo_ano"`
	Note           string `json:"note" excel:"obs"`
}

// BuildRow derives the presentation fields for a single intern.
func BuildRow(i *model.Intern, rules []lifecycle.Rule, windowDays int, asOf time.Time) Row {
	admission := i.Admission()
	lastRenewal := i.LastRenewal()
	expiration := i.Expiration()

	label := lifecycle.NextRenewal(admission, lastRenewal, i.University, rules, asOf)

	// Single-term contracts with no recorded renewal show the terminal
	// label in the renewal column, matching the original sheet.
	renewedAt := displayDate(lastRenewal, i.LastRenewalDate)
	if renewedAt == "" && label.Kind == lifecycle.RenewalSingleContract {
		renewedAt = label.String()
	}

	lastYear := "NÃO"
	if expiration != nil && expiration.Year() == asOf.Year() {
		lastYear = "SIM"
	}

	return Row{
		ID:             i.ID,
		Name:           i.Name,
		University:     i.University,
		AdmissionDate:  displayDate(admission, i.AdmissionDate),
		RenewedAt:      renewedAt,
		NextRenewal:    label.String(),
		ExpirationDate: displayDate(expiration, i.ExpirationDate),
		Status:         lifecycle.ClassifyStatus(expiration, windowDays, asOf).String(),
		LastYear:       lastYear,
		Note:           i.Note,
	}
}

// BuildRows derives rows for a set of interns, sorted by expiration
// ascending with missing dates last.
func BuildRows(interns []model.Intern, rules []lifecycle.Rule, windowDays int, asOf time.Time) []Row {
	rows := make([]Row, 0, len(interns))
	keys := make(map[uint]string, len(interns))
	for idx := range interns {
		rows = append(rows, BuildRow(&interns[idx], rules, windowDays, asOf))
		keys[interns[idx].ID] = interns[idx].ExpirationDate
	}
	sort.SliceStable(rows, func(a, b int) bool {
		ka, kb := keys[rows[a].ID], keys[rows[b].ID]
		if ka == "" {
			return false
		}
		if kb == "" {
			return true
		}
		return ka < kb
	})
	return rows
}

// displayDate formats a parsed date for presentation, falling back to
// the raw stored string when it cannot be parsed.
func displayDate(t *time.Time, raw string) string {
	if t != nil {
		return t.Format(lifecycle.DisplayLayout)
	}
	return raw
}
