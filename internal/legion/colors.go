package legion

import "github.com/danieljhkim/planswitch/internal/plan"

// Color is a power LED colour code understood by the Lenovo WMI interface.
type Color int

const (
	White Color = 1
	Red   Color = 2
	Blue  Color = 3
)

// Lighting parameters for the power button LED.
const (
	PowerLEDZone  = 0
	MaxBrightness = 100
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

var planColors = map[plan.ID]Color{
	plan.PowerSaver:      White,
	plan.Balanced:        White,
	plan.HighPerformance: Red,
}

// ColorFor returns the LED colour for a plan. Plans outside the table have
// no colour and leave the LED untouched.
func ColorFor(id plan.ID) (Color, bool) {
	c, ok := planColors[id]
	return c, ok
}
