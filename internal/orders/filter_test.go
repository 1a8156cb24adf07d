package orders

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attemptWithPartner(id int64, createdAt time.Time, partner string) OrderAttempt {
	body := `{"cabecalho":{"RAZAOSOCIAL":` + string(mustJSON(partner)) + `}}`
	var p Payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		panic(err)
	}
	return OrderAttempt{ID: id, CreatedAt: createdAt, Payload: &p}
}

func mustJSON(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

func TestApplyFilterEmptyCriteriaReturnsAll(t *testing.T) {
	records := []OrderAttempt{{ID: 1}, {ID: 2}}
	out := ApplyFilter(records, FilterCriteria{}, nil)
	assert.Equal(t, records, out)
}

func TestApplyFilterDateBounds(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 8, d, hour, 0, 0, 0, time.UTC)
	}
	records := []OrderAttempt{
		{ID: 1, CreatedAt: day(9, 23)},
		{ID: 2, CreatedAt: day(10, 0)},
		{ID: 3, CreatedAt: day(11, 12)},
		{ID: 4, CreatedAt: day(12, 1)},
	}

	from := day(10, 15) // time-of-day is ignored; the whole day matches
	to := day(11, 3)
	out := ApplyFilter(records, FilterCriteria{DateFrom: &from, DateTo: &to}, nil)

	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, int64(3), out[1].ID)
}

func TestApplyFilterDateToIncludesEndOfDay(t *testing.T) {
	lastSecond := time.Date(2026, 8, 11, 23, 59, 59, 0, time.UTC)
	records := []OrderAttempt{{ID: 1, CreatedAt: lastSecond}}

	to := time.Date(2026, 8, 11, 0, 0, 0, 0, time.UTC)
	out := ApplyFilter(records, FilterCriteria{DateTo: &to}, nil)
	assert.Len(t, out, 1)
}

func TestApplyFilterPartnerNameFoldsAccentsAndCase(t *testing.T) {
	now := time.Now()
	records := []OrderAttempt{
		attemptWithPartner(1, now, "Padaria São João"),
		attemptWithPartner(2, now, "Mercado Azul"),
	}

	out := ApplyFilter(records, FilterCriteria{PartnerName: "sao joao"}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, int64(1), out[0].ID)

	out = ApplyFilter(records, FilterCriteria{PartnerName: "MERCADO"}, nil)
	require.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)
}

func TestApplyFilterPreservesOrder(t *testing.T) {
	now := time.Now()
	records := []OrderAttempt{
		attemptWithPartner(3, now, "Aurora Sul"),
		attemptWithPartner(1, now, "Aurora Norte"),
		attemptWithPartner(2, now, "Outro"),
	}
	out := ApplyFilter(records, FilterCriteria{PartnerName: "aurora"}, nil)
	require.Len(t, out, 2)
	assert.Equal(t, int64(3), out[0].ID)
	assert.Equal(t, int64(1), out[1].ID)
}

func TestApplyFilterMalformedPayloadExcludedByPartnerOnly(t *testing.T) {
	var malformed Payload
	require.NoError(t, json.Unmarshal([]byte(`"not json"`), &malformed))
	records := []OrderAttempt{
		{ID: 1, CreatedAt: time.Now(), Payload: &malformed},
	}

	// No partner filter: the record stays.
	out := ApplyFilter(records, FilterCriteria{DateFrom: ptrTime(time.Now().Add(-time.Hour))}, nil)
	assert.Len(t, out, 1)

	// Partner filter: an empty name never matches a non-empty query.
	out = ApplyFilter(records, FilterCriteria{PartnerName: "aurora"}, nil)
	assert.Empty(t, out)
}

func ptrTime(t time.Time) *time.Time { return &t }
