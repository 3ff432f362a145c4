package jobs

import (
	"strings"

	"github.com/google/uuid"
)

// IDSource produces job and schedule ids. Injectable so tests get stable
// ids; the default draws from a UUID instead of a process-global counter.
type IDSource func() string

// DefaultIDSource keeps the dashboard's familiar RPT- prefix while staying
// collision-free across restarts.
func DefaultIDSource() string {
	return "RPT-" + strings.ToUpper(uuid.NewString()[:8])
}

func ScheduleIDSource() string {
	return "SCH-" + strings.ToUpper(uuid.NewString()[:8])
}
