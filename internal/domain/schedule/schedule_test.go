//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"miyzapis/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWeeklySchedule(t *testing.T) {
	t.Run("canonical field names", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"monday": {"isWorking": true, "startTime": "09:00", "endTime": "17:00"}
		}`))

		hours, ok := ws.HoursFor(time.Monday)
		require.True(t, ok)
		assert.Equal(t, 9*60, hours.Start)
		assert.Equal(t, 17*60, hours.End)
		assert.False(t, ws.IsOpen(time.Tuesday))
	})

	t.Run("alias field names", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"tuesday": {"isOpen": true, "start": "08:30", "end": "12:15"}
		}`))

		hours, ok := ws.HoursFor(time.Tuesday)
		require.True(t, ok)
		assert.Equal(t, 8*60+30, hours.Start)
		assert.Equal(t, 12*60+15, hours.End)
	})

	t.Run("mixed aliases across days", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"monday": {"isWorking": true, "startTime": "09:00", "endTime": "17:00"},
			"wednesday": {"isOpen": true, "start": "10:00", "endTime": "18:00"}
		}`))

		assert.True(t, ws.IsOpen(time.Monday))
		assert.True(t, ws.IsOpen(time.Wednesday))
	})

	t.Run("weekday names are case-insensitive", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"Friday": {"isWorking": true, "startTime": "09:00", "endTime": "17:00"}
		}`))
		assert.True(t, ws.IsOpen(time.Friday))
	})

	t.Run("closed flag wins over hours", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"monday": {"closed": true, "startTime": "09:00", "endTime": "17:00"}
		}`))
		assert.False(t, ws.IsOpen(time.Monday))
	})

	t.Run("not working day stays closed", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"sunday": {"isWorking": false, "startTime": "09:00", "endTime": "17:00"}
		}`))
		assert.False(t, ws.IsOpen(time.Sunday))
	})

	t.Run("hours without flag imply open", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"thursday": {"startTime": "09:00", "endTime": "17:00"}
		}`))
		assert.True(t, ws.IsOpen(time.Thursday))
	})

	t.Run("empty document is fully closed", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule(nil)
		for d := time.Sunday; d <= time.Saturday; d++ {
			assert.False(t, ws.IsOpen(d))
		}
	})

	t.Run("malformed JSON is fully closed", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{not json`))
		for d := time.Sunday; d <= time.Saturday; d++ {
			assert.False(t, ws.IsOpen(d))
		}
	})

	t.Run("malformed day entry closes only that day", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"monday": {"isWorking": true, "startTime": "garbage", "endTime": "17:00"},
			"tuesday": {"isWorking": true, "startTime": "09:00", "endTime": "17:00"}
		}`))

		assert.False(t, ws.IsOpen(time.Monday))
		assert.True(t, ws.IsOpen(time.Tuesday))
	})

	t.Run("inverted hours close the day", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"monday": {"isWorking": true, "startTime": "17:00", "endTime": "09:00"}
		}`))
		assert.False(t, ws.IsOpen(time.Monday))
	})

	t.Run("unknown day name ignored", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"someday": {"isWorking": true, "startTime": "09:00", "endTime": "17:00"}
		}`))
		for d := time.Sunday; d <= time.Saturday; d++ {
			assert.False(t, ws.IsOpen(d))
		}
	})

	t.Run("out of range clock values close the day", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"monday": {"isWorking": true, "startTime": "09:75", "endTime": "17:00"},
			"tuesday": {"isWorking": true, "startTime": "09:00", "endTime": "25:00"}
		}`))
		assert.False(t, ws.IsOpen(time.Monday))
		assert.False(t, ws.IsOpen(time.Tuesday))
	})

	t.Run("midnight end of day accepted", func(t *testing.T) {
		ws := schedule.ParseWeeklySchedule([]byte(`{
			"saturday": {"isWorking": true, "startTime": "20:00", "endTime": "24:00"}
		}`))

		hours, ok := ws.HoursFor(time.Saturday)
		require.True(t, ok)
		assert.Equal(t, 24*60, hours.End)
	})
}
