package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_MarshalMillisecondUTC(t *testing.T) {
	v := NewTime(time.Date(2024, 3, 15, 10, 30, 0, 450_000_000, time.UTC))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T10:30:00.450Z"`, string(data))
}

func TestTime_MarshalConvertsToUTC(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	v := NewTime(time.Date(2024, 3, 15, 16, 0, 0, 0, loc))

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-15T10:30:00.000Z"`, string(data))
}

func TestTime_UnmarshalExactLayout(t *testing.T) {
	var v Time
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T00:00:00.000Z"`), &v))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), v.Time)
}

func TestTime_UnmarshalRFC3339Fallback(t *testing.T) {
	var v Time
	require.NoError(t, json.Unmarshal([]byte(`"2024-01-15T05:30:00+05:30"`), &v))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), v.Time)
}

func TestTime_UnmarshalNullKeepsZero(t *testing.T) {
	var v Time
	require.NoError(t, v.UnmarshalJSON([]byte("null")))
	assert.True(t, v.IsZero())
}

func TestTime_UnmarshalRejectsGarbage(t *testing.T) {
	var v Time
	assert.Error(t, json.Unmarshal([]byte(`"not-a-time"`), &v))
	assert.Error(t, v.UnmarshalJSON([]byte(`12345`)))
}
