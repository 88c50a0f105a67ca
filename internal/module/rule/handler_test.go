package rule

import (
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"controle-estagiarios/internal/global/response"
	"controle-estagiarios/internal/model"
	"controle-estagiarios/test"
)

func TestMain(m *testing.M) {
	selfInit()
	os.Exit(m.Run())
}

func TestCreateRule(t *testing.T) {
	db := test.SetupDB(t)

	resp := test.DoRequest(t, CreateRule, RuleReq{Keyword: "uerj", Months: 24})
	test.NoError(t, resp)

	var stored model.Rule
	require.NoError(t, db.First(&stored, "keyword = ?", "UERJ").Error)
	require.Equal(t, 24, stored.Months)
}

func TestCreateRuleDuplicate(t *testing.T) {
	test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, CreateRule, RuleReq{Keyword: "UERJ", Months: 24}))

	resp := test.DoRequest(t, CreateRule, RuleReq{Keyword: " uerj ", Months: 12})
	require.Equal(t, response.ErrAlreadyExists.Code, resp.Code)
}

func TestCreateRuleInvalidMonths(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, CreateRule, RuleReq{Keyword: "UERJ", Months: 36})
	require.Equal(t, response.ErrInvalidRequest.Code, resp.Code)
}

func TestUpdateRuleNotFound(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequestParam(t, UpdateRule, "id", "99", RuleReq{Keyword: "UERJ", Months: 12})
	require.Equal(t, response.ErrNotFound.Code, resp.Code)
}

func TestDeleteRule(t *testing.T) {
	db := test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, CreateRule, RuleReq{Keyword: "UNIRIO", Months: 24}))

	var stored model.Rule
	require.NoError(t, db.First(&stored, "keyword = ?", "UNIRIO").Error)

	resp := test.DoRequestParam(t, DeleteRule, "id", strconv.FormatUint(uint64(stored.ID), 10), nil)
	test.NoError(t, resp)

	var count int64
	require.NoError(t, db.Model(&model.Rule{}).Count(&count).Error)
	require.Zero(t, count)
}
