package audit

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"controle-estagiarios/internal/global/database"
	"controle-estagiarios/test"
)

func TestMain(m *testing.M) {
	selfInit()
	os.Exit(m.Run())
}

func TestRangeReqBounds(t *testing.T) {
	r := RangeReq{StartDate: "2025-01-01", EndDate: "2025-01-31"}
	start, end, err := r.bounds()
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *start)
	// End bound covers the whole last day.
	require.Equal(t, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), *end)
}

func TestRangeReqBoundsOpenEnded(t *testing.T) {
	start, end, err := (&RangeReq{}).bounds()
	require.NoError(t, err)
	require.Nil(t, start)
	require.Nil(t, end)
}

func TestRangeReqBoundsInvalid(t *testing.T) {
	_, _, err := (&RangeReq{StartDate: "janeiro"}).bounds()
	require.Error(t, err)
}

func TestQueryEntriesOrderAndLimit(t *testing.T) {
	test.SetupDB(t)

	for _, action := range []string{"PRIMEIRA", "SEGUNDA", "TERCEIRA"} {
		database.Audit(action, "detalhe")
	}

	newest, err := queryEntries(RangeReq{}, 2, false)
	require.NoError(t, err)
	require.Len(t, newest, 2)
	require.Equal(t, "TERCEIRA", newest[0].Action)

	oldest, err := queryEntries(RangeReq{}, 0, true)
	require.NoError(t, err)
	require.Len(t, oldest, 3)
	require.Equal(t, "PRIMEIRA", oldest[0].Action)
}
