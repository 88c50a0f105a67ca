package sheet

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapHeader(t *testing.T) {
	header, err := mapHeader([]string{" Nome ", "UNIVERSIDADE", "data_admissao", "obs"})
	require.NoError(t, err)
	require.Equal(t, 0, header["nome"])
	require.Equal(t, 1, header["universidade"])
	require.Equal(t, 3, header["obs"])
}

func TestMapHeaderMissingColumn(t *testing.T) {
	_, err := mapHeader([]string{"nome", "universidade"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "data_admissao")
}

func TestParseRow(t *testing.T) {
	header, err := mapHeader([]string{"nome", "universidade", "data_admissao", "data_ult_renovacao", "obs"})
	require.NoError(t, err)

	record, err := parseRow(header, []string{"ana souza", "puc-rio", "15/01/2024", "2025-01-15", "manhã"})
	require.NoError(t, err)
	require.Equal(t, "ANA SOUZA", record.Name)
	require.Equal(t, "PUC-RIO", record.University)
	require.Equal(t, "2024-01-15", record.AdmissionDate)
	require.Equal(t, "2025-01-15", record.LastRenewalDate)
	require.Equal(t, "2026-01-15", record.ExpirationDate)
	require.Equal(t, "MANHÃ", record.Note)
}

func TestParseRowOptionalFieldsEmpty(t *testing.T) {
	header, err := mapHeader([]string{"nome", "universidade", "data_admissao"})
	require.NoError(t, err)

	record, err := parseRow(header, []string{"bruno", "uerj", "2024-06-01"})
	require.NoError(t, err)
	require.Equal(t, "", record.LastRenewalDate)
	require.Equal(t, "", record.Note)
	require.Equal(t, "2026-06-01", record.ExpirationDate)
}

func TestParseRowRejections(t *testing.T) {
	header, err := mapHeader([]string{"nome", "universidade", "data_admissao", "data_ult_renovacao"})
	require.NoError(t, err)

	cases := []struct {
		name  string
		cells []string
	}{
		{"empty name", []string{"", "uerj", "2024-06-01", ""}},
		{"empty university", []string{"ana", "", "2024-06-01", ""}},
		{"bad admission", []string{"ana", "uerj", "junho de 2024", ""}},
		{"bad renewal", []string{"ana", "uerj", "2024-06-01", "ontem"}},
		{"short row", []string{"ana"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseRow(header, tc.cells)
			require.Error(t, err)
		})
	}
}
