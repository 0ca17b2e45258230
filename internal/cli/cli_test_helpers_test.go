package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/cache"
	"github.com/danieljhkim/planswitch/internal/catalog"
	"github.com/danieljhkim/planswitch/internal/codepage"
	"github.com/danieljhkim/planswitch/internal/engine"
	"github.com/danieljhkim/planswitch/internal/fsops"
	"github.com/danieljhkim/planswitch/internal/observer"
	"github.com/danieljhkim/planswitch/internal/plan"
	"github.com/danieljhkim/planswitch/internal/plans"
	"github.com/danieljhkim/planswitch/internal/powercfg"
	"github.com/danieljhkim/planswitch/internal/runner"
)

const testListing = "Existing Power Schemes (* Active)\r\n" +
	"-----------------------------------\r\n" +
	"Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced) *\r\n" +
	"Power Scheme GUID: 8c5e7fda-e8bf-4a96-9a85-a6e23a8c635c  (High performance)\r\n" +
	"Power Scheme GUID: 11111111-2222-3333-4444-555555555555  (Gaming)\r\n"

// testEnv replaces the engine factory with one wired to scripted commands
// and in-memory storage.
type testEnv struct {
	runner   *runner.FakeRunner
	mem      *fsops.MemFS
	store    *cache.FileStore
	opts     []engineOptions
	notified []plan.ID
	closed   int
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		runner: runner.NewFakeRunner(),
		mem:    fsops.NewMemFS(),
	}
	env.store = cache.NewFileStore(env.mem, "/plugin/.cache")
	env.runner.Set("cmd /c chcp", "Active code page: 437\r\n")
	env.runner.Set(powercfg.ListCmd, testListing)
	env.runner.Set(powercfg.ActiveCmd, "Power Scheme GUID: 381b4222-f694-41f0-9685-ff5bb260df2e  (Balanced)\r\n")

	prev := engineFactory
	engineFactory = func(ctx context.Context, opts engineOptions) (*engine.Engine, func(), error) {
		env.opts = append(env.opts, opts)
		logger := zap.NewNop()
		codec := codepage.Resolve(ctx, env.runner, env.store, logger)
		tool := powercfg.New(env.runner, codec)
		cat := catalog.Load(ctx, tool, env.store, logger)
		registry := observer.NewRegistry(logger)
		registry.Register(observer.Func{Label: "record", Fn: func(_ context.Context, id plan.ID) error {
			env.notified = append(env.notified, id)
			return nil
		}})
		eng := engine.New(plans.NewManager(tool, cat, logger), registry, env.store, logger)
		return eng, func() { env.closed++ }, nil
	}
	t.Cleanup(func() {
		engineFactory = prev
		jsonOutput = false
	})
	return env
}

// run executes the root command and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	if args == nil {
		args = []string{}
	}
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags clears flag values left over from earlier executions of the
// shared command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if f.Changed {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
