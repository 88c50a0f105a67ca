package intern

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

func TestCreateIntern(t *testing.T) {
	db := test.SetupDB(t)

	resp := test.DoRequest(t, CreateIntern, InternCreateReq{
		Name:          "ana souza",
		University:    "puc-rio",
		AdmissionDate: "15.01.2024",
		Note:          "turno da manhã",
	})
	test.NoError(t, resp)

	var stored model.Intern
	require.NoError(t, db.First(&stored, "name = ?", "ANA SOUZA").Error)
	require.Equal(t, "PUC-RIO", stored.University)
	require.Equal(t, "2024-01-15", stored.AdmissionDate)
	require.Equal(t, "2026-01-15", stored.ExpirationDate)

	var audits int64
	require.NoError(t, db.Model(&model.AuditLog{}).Where("action = ?", "NOVO ESTAGIÁRIO").Count(&audits).Error)
	require.EqualValues(t, 1, audits)
}

func TestCreateInternBadDate(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequest(t, CreateIntern, InternCreateReq{
		Name:          "ANA",
		University:    "UERJ",
		AdmissionDate: "ontem",
	})
	require.Equal(t, response.ErrInvalidRequest.Code, resp.Code)
}

func TestUpdateInternRecomputesExpiration(t *testing.T) {
	db := test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, CreateIntern, InternCreateReq{
		Name:          "BRUNO",
		University:    "UERJ",
		AdmissionDate: "2024-01-15",
	}))

	var stored model.Intern
	require.NoError(t, db.First(&stored, "name = ?", "BRUNO").Error)

	newAdmission := "2024-06-01"
	resp := test.DoRequestParam(t, UpdateIntern, "id", strconv.FormatUint(uint64(stored.ID), 10),
		InternUpdateReq{AdmissionDate: &newAdmission})
	test.NoError(t, resp)

	require.NoError(t, db.First(&stored, stored.ID).Error)
	require.Equal(t, "2026-06-01", stored.ExpirationDate)
}

func TestDeleteInternIsPermanent(t *testing.T) {
	db := test.SetupDB(t)

	test.NoError(t, test.DoRequest(t, CreateIntern, InternCreateReq{
		Name:          "CARLA",
		University:    "UNIRIO",
		AdmissionDate: "2024-01-15",
	}))

	var stored model.Intern
	require.NoError(t, db.First(&stored, "name = ?", "CARLA").Error)

	test.NoError(t, test.DoRequestParam(t, DeleteIntern, "id", strconv.FormatUint(uint64(stored.ID), 10), nil))

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.Intern{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestGetInternNotFound(t *testing.T) {
	test.SetupDB(t)

	resp := test.DoRequestParam(t, GetIntern, "id", "42", nil)
	require.Equal(t, response.ErrNotFound.Code, resp.Code)
}
