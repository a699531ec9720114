package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleExtractionMarshalEvent(t *testing.T) {
	loc := "Room 12"
	event := ScheduleExtraction{
		Title:     "Math class",
		StartTime: "08:00",
		EndTime:   "09:00",
		DayOfWeek: 2,
		Location:  &loc,
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"Math class","start_time":"08:00","end_time":"09:00","day_of_week":2,"location":"Room 12"}`, string(data))
}

func TestScheduleExtractionMarshalNullLocation(t *testing.T) {
	event := ScheduleExtraction{
		Title:     "Run",
		StartTime: "06:00",
		EndTime:   "07:00",
		DayOfWeek: 0,
	}

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"location":null`)
}

func TestScheduleExtractionMarshalErrorVariant(t *testing.T) {
	event := ScheduleError("Not a schedule command")

	data, err := json.Marshal(event)
	require.NoError(t, err)

	assert.JSONEq(t, `{"error":"Not a schedule command"}`, string(data))
	assert.True(t, event.IsError())
}

func TestTransactionAmountCoercion(t *testing.T) {
	var tx Transaction
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1","amount":"42.50","category":"Food","date":"2026-08-30","type":"expense"}`), &tx))
	assert.Equal(t, "42.5", tx.Amount.String())

	require.NoError(t, json.Unmarshal([]byte(`{"id":"2","amount":10,"category":"Food","date":"2026-08-30","type":"expense"}`), &tx))
	assert.Equal(t, "10", tx.Amount.String())

	assert.Error(t, json.Unmarshal([]byte(`{"id":"3","amount":"lots","category":"Food","date":"2026-08-30","type":"expense"}`), &tx))
}
