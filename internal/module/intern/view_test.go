package intern

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"controle-estagiarios/internal/lifecycle"
	"controle-estagiarios/internal/model"
)

var viewRules = []lifecycle.Rule{
	{Keyword: "UERJ", Months: 24},
	{Keyword: "PUC", Months: 12},
}

func TestBuildRowDerivedFields(t *testing.T) {
	asOf := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	i := &model.Intern{
		Name:            "ANA SOUZA",
		University:      "PUC-RIO",
		AdmissionDate:   "2024-01-15",
		LastRenewalDate: "2025-01-15",
		ExpirationDate:  "2026-01-15",
		Note:            "turno da manhã",
	}
	row := BuildRow(i, viewRules, 30, asOf)

	require.Equal(t, "15.01.2024", row.AdmissionDate)
	require.Equal(t, "15.01.2025", row.RenewedAt)
	require.Equal(t, "15.07.2025", row.NextRenewal)
	require.Equal(t, "15.01.2026", row.ExpirationDate)
	require.Equal(t, "OK", row.Status)
	require.Equal(t, "NÃO", row.LastYear)
	require.Equal(t, "turno da manhã", row.Note)
}

func TestBuildRowSingleContract(t *testing.T) {
	asOf := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	i := &model.Intern{
		Name:           "BRUNO LIMA",
		University:     "UERJ",
		AdmissionDate:  "2024-06-01",
		ExpirationDate: "2026-06-01",
	}
	row := BuildRow(i, viewRules, 30, asOf)

	// With a 24-month cycle the terminal label fills the empty renewal
	// column as well.
	require.Equal(t, "Contrato Único", row.NextRenewal)
	require.Equal(t, "Contrato Único", row.RenewedAt)
}

func TestBuildRowLastYear(t *testing.T) {
	asOf := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	i := &model.Intern{
		Name:           "CARLA DIAS",
		University:     "IBMEC",
		AdmissionDate:  "2023-09-20",
		ExpirationDate: "2025-09-20",
	}
	row := BuildRow(i, viewRules, 30, asOf)
	require.Equal(t, "SIM", row.LastYear)
}

func TestBuildRowMissingAndMalformedDates(t *testing.T) {
	asOf := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	i := &model.Intern{
		Name:           "SEM DATAS",
		University:     "IBMEC",
		AdmissionDate:  "15/1/24", // unparseable, kept verbatim
		ExpirationDate: "",
	}
	row := BuildRow(i, viewRules, 30, asOf)

	require.Equal(t, "15/1/24", row.AdmissionDate)
	require.Equal(t, "", row.RenewedAt)
	require.Equal(t, "", row.NextRenewal)
	require.Equal(t, "SEM DATA", row.Status)
	require.Equal(t, "NÃO", row.LastYear)
}

func TestBuildRowsSortedByExpiration(t *testing.T) {
	asOf := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)

	interns := []model.Intern{
		{Model: model.Model{ID: 1}, Name: "SEM VENCIMENTO", University: "IBMEC"},
		{Model: model.Model{ID: 2}, Name: "VENCE DEPOIS", University: "IBMEC", AdmissionDate: "2024-06-01", ExpirationDate: "2026-06-01"},
		{Model: model.Model{ID: 3}, Name: "VENCE ANTES", University: "IBMEC", AdmissionDate: "2023-09-01", ExpirationDate: "2025-09-01"},
	}
	rows := BuildRows(interns, viewRules, 30, asOf)

	require.Len(t, rows, 3)
	require.Equal(t, uint(3), rows[0].ID)
	require.Equal(t, uint(2), rows[1].ID)
	require.Equal(t, uint(1), rows[2].ID)
}
