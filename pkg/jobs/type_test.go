package jobs

import (
	"strings"
	"testing"
	"time"

	"github.com/aquawatch/aquawatch_backend/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIDSource(t *testing.T) {
	id := DefaultIDSource()

	require.Len(t, id, 12)
	assert.True(t, strings.HasPrefix(id, "RPT-"))
	assert.Equal(t, strings.ToUpper(id), id)
	assert.NotEqual(t, id, DefaultIDSource())
}

func TestScheduleIDSource(t *testing.T) {
	id := ScheduleIDSource()

	require.Len(t, id, 12)
	assert.True(t, strings.HasPrefix(id, "SCH-"))
}

func TestNextRunAfter(t *testing.T) {
	from := time.Date(2026, time.February, 19, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, from.AddDate(0, 0, 1), NextRunAfter(types.FrequencyDaily, from))
	assert.Equal(t, from.AddDate(0, 0, 7), NextRunAfter(types.FrequencyWeekly, from))
	assert.Equal(t, from.AddDate(0, 1, 0), NextRunAfter(types.FrequencyMonthly, from))
	// Unknown frequencies behave as daily
	assert.Equal(t, from.AddDate(0, 0, 1), NextRunAfter(types.ReportFrequency("HOURLY"), from))
}
