package rule

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRuleReqNormalize(t *testing.T) {
	r := RuleReq{Keyword: "  uerj ", Months: 24}
	require.NoError(t, r.normalize())
	require.Equal(t, "UERJ", r.Keyword)
	require.Equal(t, 24, r.Months)
}

func TestRuleReqNormalizeRejects(t *testing.T) {
	cases := []struct {
		name string
		req  RuleReq
	}{
		{"blank keyword", RuleReq{Keyword: "   ", Months: 12}},
		{"months below floor", RuleReq{Keyword: "UERJ", Months: 0}},
		{"months above ceiling", RuleReq{Keyword: "UERJ", Months: 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.req.normalize())
		})
	}
}
