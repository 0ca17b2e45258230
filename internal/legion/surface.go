package legion

import (
	"context"
	"fmt"

	"github.com/danieljhkim/planswitch/internal/runner"
)

// Surface is one way of driving the power LED. Lenovo exposes different WMI
// classes on different Legion generations, so several are tried in order.
type Surface interface {
	Name() string
	SetPowerLED(ctx context.Context, c Color) error
}

// DefaultSurfaces returns the built-in control surfaces in the order they
// are tried.
func DefaultSurfaces(r runner.Runner) []Surface {
	return []Surface{
		&LightingMethod{runner: r},
		&GameZoneData{runner: r},
	}
}

// LightingMethod calls LENOVO_LIGHTING_METHOD.SetLighting(zone, color, brightness).
type LightingMethod struct {
	runner runner.Runner
}

// Name returns the WMI class name.
func (s *LightingMethod) Name() string { return "LENOVO_LIGHTING_METHOD" }

// SetPowerLED sets the power LED colour at full brightness.
func (s *LightingMethod) SetPowerLED(ctx context.Context, c Color) error {
	script := fmt.Sprintf(
		`$i = Get-CimInstance -Namespace root\WMI -ClassName LENOVO_LIGHTING_METHOD -ErrorAction Stop | Select-Object -First 1; `+
			`if (-not $i) { exit 1 }; `+
			`Invoke-CimMethod -InputObject $i -MethodName SetLighting -Arguments @{Zone=%d; Color=%d; Brightness=%d} -ErrorAction Stop | Out-Null`,
		PowerLEDZone, int(c), MaxBrightness)
	return runPowerShell(ctx, s.runner, script)
}

// GameZoneData calls LENOVO_GAMEZONE_DATA.SetData("PowerLED:<color>").
type GameZoneData struct {
	runner runner.Runner
}

// Name returns the WMI class name.
func (s *GameZoneData) Name() string { return "LENOVO_GAMEZONE_DATA" }

// SetPowerLED sets the power LED colour.
func (s *GameZoneData) SetPowerLED(ctx context.Context, c Color) error {
	script := fmt.Sprintf(
		`$i = Get-CimInstance -Namespace root\WMI -ClassName LENOVO_GAMEZONE_DATA -ErrorAction Stop | Select-Object -First 1; `+
			`if (-not $i) { exit 1 }; `+
			`Invoke-CimMethod -InputObject $i -MethodName SetData -Arguments @{Data='PowerLED:%d'} -ErrorAction Stop | Out-Null`,
		int(c))
	return runPowerShell(ctx, s.runner, script)
}

// PowerShellArgs are the fixed arguments preceding the script.
var PowerShellArgs = []string{"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command"}

func runPowerShell(ctx context.Context, r runner.Runner, script string) error {
	args := append(append([]string{}, PowerShellArgs...), script)
	if _, err := r.Output(ctx, "powershell", args...); err != nil {
		return err
	}
	return nil
}
