package util_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	util "github.com/saulo-duarte/genquiz/internal/utils"
)

func TestLocalDateTimeJSON(t *testing.T) {
	util.SetLocation(time.UTC)

	t.Run("RoundTrip", func(t *testing.T) {
		now := util.Now()

		data, err := json.Marshal(now)
		require.NoError(t, err)

		var back util.LocalDateTime
		require.NoError(t, json.Unmarshal(data, &back))
		assert.True(t, now.Equal(back), "expected %v, got %v", now, back)
	})

	t.Run("Format", func(t *testing.T) {
		ldt := util.LocalDateTime{Time: time.Date(2025, 3, 9, 14, 5, 7, 0, time.UTC)}

		data, err := json.Marshal(ldt)
		require.NoError(t, err)
		assert.Equal(t, `"2025-03-09T14:05:07"`, string(data))
		assert.Equal(t, "2025-03-09 14:05", ldt.Display())
	})

	t.Run("Null", func(t *testing.T) {
		data, err := json.Marshal(util.LocalDateTime{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(data))

		var back util.LocalDateTime
		require.NoError(t, json.Unmarshal([]byte("null"), &back))
		assert.True(t, back.IsZero())
	})

	t.Run("Invalid", func(t *testing.T) {
		var back util.LocalDateTime
		assert.Error(t, json.Unmarshal([]byte(`"yesterday"`), &back))
	})
}

func TestLocalDateTimeScan(t *testing.T) {
	util.SetLocation(time.UTC)

	var ldt util.LocalDateTime
	require.NoError(t, ldt.Scan("2025-01-02T03:04:05"))
	assert.Equal(t, 2025, ldt.Year())

	require.NoError(t, ldt.Scan(nil))
	assert.True(t, ldt.IsZero())

	assert.Error(t, ldt.Scan(42))
}

func TestFrom(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	util.SetLocation(loc)
	defer util.SetLocation(time.UTC)

	ldt := util.From(time.Date(2025, 3, 9, 17, 5, 7, 999_000_000, time.UTC))
	assert.Equal(t, loc, ldt.Location())
	assert.Equal(t, 14, ldt.Hour())
	assert.Equal(t, 0, ldt.Nanosecond())

	assert.True(t, util.From(time.Time{}).IsZero())
}
