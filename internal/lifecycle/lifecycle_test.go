package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func dp(year int, month time.Month, day int) *time.Time {
	t := d(year, month, day)
	return &t
}

func TestAddMonthsClampsToEndOfMonth(t *testing.T) {
	cases := []struct {
		in     time.Time
		months int
		want   time.Time
	}{
		{d(2024, time.January, 31), 1, d(2024, time.February, 29)},
		{d(2023, time.January, 31), 1, d(2023, time.February, 28)},
		{d(2023, time.August, 31), 6, d(2024, time.February, 29)},
		{d(2023, time.January, 10), 24, d(2025, time.January, 10)},
		{d(2023, time.November, 30), 3, d(2024, time.February, 29)},
		{d(2024, time.March, 15), 0, d(2024, time.March, 15)},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, AddMonths(tc.in, tc.months), "%v + %d months", tc.in, tc.months)
	}
}

func TestParseDate(t *testing.T) {
	got, ok := ParseDate("2023-01-10")
	require.True(t, ok)
	require.Equal(t, d(2023, time.January, 10), got)

	got, ok = ParseDate("10.01.2023")
	require.True(t, ok)
	require.Equal(t, d(2023, time.January, 10), got)

	got, ok = ParseDate("10/01/2023")
	require.True(t, ok)
	require.Equal(t, d(2023, time.January, 10), got)

	for _, bad := range []string{"", "  ", "Contrato Único", "2023-13-40", "10-01-2023"} {
		_, ok := ParseDate(bad)
		require.False(t, ok, "input %q", bad)
	}
}

func TestResolveCycleMonths(t *testing.T) {
	rules := []Rule{
		{Keyword: "UERJ", Months: 24},
		{Keyword: "UNIRIO", Months: 24},
		{Keyword: "MACKENZIE", Months: 24},
		{Keyword: "PUC", Months: 12},
	}

	// No rule configured falls back to the default.
	require.Equal(t, DefaultCycleMonths, ResolveCycleMonths("UFF – Universidade Federal Fluminense", rules))
	require.Equal(t, DefaultCycleMonths, ResolveCycleMonths("", rules))
	require.Equal(t, DefaultCycleMonths, ResolveCycleMonths("UERJ", nil))

	// Exact and case-insensitive matches.
	require.Equal(t, 24, ResolveCycleMonths("UERJ", rules))
	require.Equal(t, 24, ResolveCycleMonths("uerj", rules))

	// Substring containment: the keyword matches inside the full catalog name.
	require.Equal(t, 24, ResolveCycleMonths("UERJ – Universidade do Estado do Rio de Janeiro", rules))
	require.Equal(t, 12, ResolveCycleMonths("PUC-Rio – Pontifícia Universidade Católica", rules))

	// Several matching keywords: the longest duration wins.
	overlapping := append(rules, Rule{Keyword: "UNIVERSIDADE", Months: 6})
	require.Equal(t, 24, ResolveCycleMonths("UERJ – Universidade do Estado do Rio de Janeiro", overlapping))

	// Result is capped at the contract ceiling.
	require.Equal(t, 24, ResolveCycleMonths("UERJ", []Rule{{Keyword: "UERJ", Months: 36}}))
}

func TestFinalExpiration(t *testing.T) {
	require.Nil(t, FinalExpiration(nil))

	exp := FinalExpiration(dp(2023, time.January, 10))
	require.NotNil(t, exp)
	require.Equal(t, d(2025, time.January, 10), *exp)

	// End-of-month admissions clamp.
	exp = FinalExpiration(dp(2022, time.February, 28))
	require.Equal(t, d(2024, time.February, 28), *exp)
}

func TestClassifyStatus(t *testing.T) {
	today := d(2024, time.June, 15)

	require.Equal(t, StatusNoDate, ClassifyStatus(nil, 30, today))
	require.Equal(t, StatusExpired, ClassifyStatus(dp(2024, time.June, 14), 30, today))
	require.Equal(t, StatusUpcoming, ClassifyStatus(dp(2024, time.June, 15), 30, today))
	require.Equal(t, StatusUpcoming, ClassifyStatus(dp(2024, time.June, 30), 30, today))
	// delta == window is still upcoming, the boundary is inclusive.
	require.Equal(t, StatusUpcoming, ClassifyStatus(dp(2024, time.July, 15), 30, today))
	require.Equal(t, StatusOK, ClassifyStatus(dp(2024, time.July, 16), 30, today))

	require.Equal(t, "SEM DATA", StatusNoDate.String())
	require.Equal(t, "Vencido", StatusExpired.String())
	require.Equal(t, "Venc.Proximo", StatusUpcoming.String())
	require.Equal(t, "OK", StatusOK.String())
}

func TestClassifyStatusMonotonic(t *testing.T) {
	today := d(2024, time.January, 1)
	for _, window := range []int{1, 15, 30, 90} {
		previous := StatusExpired
		for delta := -5; delta <= window+5; delta++ {
			exp := today.AddDate(0, 0, delta)
			got := ClassifyStatus(&exp, window, today)
			switch {
			case delta < 0:
				require.Equal(t, StatusExpired, got)
			case delta <= window:
				require.Equal(t, StatusUpcoming, got)
			default:
				require.Equal(t, StatusOK, got)
			}
			// Status never moves backwards as the expiration recedes.
			require.GreaterOrEqual(t, int(got), int(previous))
			previous = got
		}
	}
}

func TestNextRenewal(t *testing.T) {
	sixMonthRules := []Rule{{Keyword: "UFF", Months: 6}}
	singleTermRules := []Rule{{Keyword: "UERJ", Months: 24}}

	t.Run("missing admission", func(t *testing.T) {
		label := NextRenewal(nil, nil, "UFF", sixMonthRules, d(2023, time.June, 1))
		require.Equal(t, RenewalUnknown, label.Kind)
		require.Equal(t, "", label.String())
	})

	t.Run("concrete next date within ceiling", func(t *testing.T) {
		// Admission 2023-01-10, no renewal, 6-month rule, as of 2023-06-01:
		// next = 2023-07-10 inside the 2025-01-10 ceiling.
		label := NextRenewal(dp(2023, time.January, 10), nil, "UFF", sixMonthRules, d(2023, time.June, 1))
		require.Equal(t, RenewalDue, label.Kind)
		require.Equal(t, "10.07.2023", label.String())
	})

	t.Run("single contract", func(t *testing.T) {
		label := NextRenewal(dp(2023, time.January, 10), nil, "UERJ", singleTermRules, d(2023, time.June, 1))
		require.Equal(t, RenewalSingleContract, label.Kind)
		require.Equal(t, "Contrato Único", label.String())
	})

	t.Run("contract closed", func(t *testing.T) {
		// Ceiling 2023-01-01 already behind as-of 2024-01-01.
		label := NextRenewal(dp(2021, time.January, 1), nil, "UFF", sixMonthRules, d(2024, time.January, 1))
		require.Equal(t, RenewalContractClosed, label.Kind)
		require.Equal(t, "Contrato Encerrado", label.String())
	})

	t.Run("renewal base is last renewal", func(t *testing.T) {
		// Admission 2023-01-01, renewed 2023-07-01: next = 2024-01-01,
		// within the 2025-01-01 ceiling and after as-of.
		label := NextRenewal(dp(2023, time.January, 1), dp(2023, time.July, 1), "UFF", sixMonthRules, d(2023, time.June, 1))
		require.Equal(t, RenewalDue, label.Kind)
		require.Equal(t, "01.01.2024", label.String())
	})

	t.Run("contract ending", func(t *testing.T) {
		// Last renewal so late that the next cadence passes the ceiling.
		label := NextRenewal(dp(2022, time.January, 1), dp(2023, time.September, 1), "UFF", sixMonthRules, d(2023, time.October, 1))
		require.Equal(t, RenewalContractEnding, label.Kind)
		require.Equal(t, "Término do Contrato", label.String())
	})

	t.Run("renewal overdue", func(t *testing.T) {
		// Next renewal 2023-07-10 already behind as-of 2023-09-01.
		label := NextRenewal(dp(2023, time.January, 10), nil, "UFF", sixMonthRules, d(2023, time.September, 1))
		require.Equal(t, RenewalOverdue, label.Kind)
		require.Equal(t, "Renovação Pendente", label.String())
	})

	t.Run("closed wins over single contract ordering", func(t *testing.T) {
		// A single-term university stays "Contrato Único" even after the
		// ceiling passed: the cycle check runs first.
		label := NextRenewal(dp(2020, time.January, 1), nil, "UERJ", singleTermRules, d(2024, time.January, 1))
		require.Equal(t, RenewalSingleContract, label.Kind)
	})

	t.Run("idempotent", func(t *testing.T) {
		asOf := d(2023, time.June, 1)
		first := NextRenewal(dp(2023, time.January, 10), nil, "UFF", sixMonthRules, asOf)
		second := NextRenewal(dp(2023, time.January, 10), nil, "UFF", sixMonthRules, asOf)
		require.Equal(t, first, second)
	})
}
