package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"github.com/danieljhkim/planswitch/internal/config"
	"github.com/danieljhkim/planswitch/internal/engine"
	"github.com/danieljhkim/planswitch/internal/fsops"
	"github.com/danieljhkim/planswitch/internal/legion"
	"github.com/danieljhkim/planswitch/internal/powercfg"
	"github.com/danieljhkim/planswitch/internal/runner"
)

// germanListing is powercfg /list output on a German system, in code page 850.
const germanListing = "Bestehende Energieschemas (* Aktiv)\r\n" +
	"-----------------------------------\r\n" +
	"GUID des Energieschemas: 381b4222-f694-41f0-9685-ff5bb260df2e  (Ausgeglichen) *\r\n" +
	"GUID des Energieschemas: 8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c  (H\x94chstleistung)\r\n" +
	"GUID des Energieschemas: 5c9a1e22-8d5b-4f3e-9a7c-0e6f2b4d8a11  (Leise)\r\n"

// plugin is an installed plugin directory on disk with scripted system
// commands. Each call to start simulates one launcher invocation.
type plugin struct {
	t      *testing.T
	paths  *config.Paths
	fs     *fsops.RealFS
	runner *runner.FakeRunner
	logger *zap.Logger
}

func setupPlugin(t *testing.T) *plugin {
	t.Helper()
	t.Setenv(config.EnvDisableLED, "")
	paths := config.PathsAt(filepath.Join(t.TempDir(), "Flow.Launcher.Plugin.PowerPlanSwitcher"))
	fs := fsops.NewRealFS()
	if err := paths.EnsureDirectories(fs); err != nil {
		t.Fatalf("EnsureDirectories() error = %v", err)
	}

	r := runner.NewFakeRunner()
	r.Set("cmd /c chcp", "Aktive Codepage: 850.\r\n")
	r.Set(powercfg.ListCmd, germanListing)
	r.Set(powercfg.ActiveCmd, "GUID des Energieschemas: 381b4222-f694-41f0-9685-ff5bb260df2e  (Ausgeglichen)\r\n")

	return &plugin{
		t:      t,
		paths:  paths,
		fs:     fs,
		runner: r,
		logger: zaptest.NewLogger(t),
	}
}

// start assembles the engine the way the binary does, reading settings and
// caches from disk.
func (p *plugin) start() *engine.Engine {
	p.t.Helper()
	eng, err := engine.Assemble(context.Background(), engine.Dependencies{
		Runner: p.runner,
		FS:     p.fs,
		Paths:  p.paths,
		Logger: p.logger,
	})
	if err != nil {
		p.t.Fatalf("Assemble() error = %v", err)
	}
	return eng
}

// scriptLegion makes the hardware inventory report a Lenovo Legion.
func (p *plugin) scriptLegion() {
	p.runner.Set(legion.ManufacturerCmd, "Manufacturer  \r\r\nLENOVO        \r\r\n")
	p.runner.Set(legion.ModelCmd, "Model     \r\r\n82JQ Legion 5 Pro\r\r\n")
}

func (p *plugin) readCache(name string) string {
	p.t.Helper()
	data, err := os.ReadFile(filepath.Join(p.paths.Cache, name))
	if err != nil {
		p.t.Fatalf("failed to read %s: %v", name, err)
	}
	return string(data)
}

func (p *plugin) writeCache(name, content string) {
	p.t.Helper()
	if err := os.WriteFile(filepath.Join(p.paths.Cache, name), []byte(content), 0644); err != nil {
		p.t.Fatalf("failed to write %s: %v", name, err)
	}
}

// callsWithPrefix counts scripted command invocations starting with prefix.
func (p *plugin) callsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range p.runner.Calls() {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
