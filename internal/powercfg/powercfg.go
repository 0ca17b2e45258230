// Package powercfg wraps the Windows powercfg tool. It runs the handful of
// subcommands planswitch needs and hands back output decoded from the
// console code page; parsing lives in package plan.
package powercfg

import (
	"context"
	"fmt"

	"github.com/danieljhkim/planswitch/internal/codepage"
	"github.com/danieljhkim/planswitch/internal/plan"
	"github.com/danieljhkim/planswitch/internal/runner"
)

const executable = "powercfg"

// Command lines as seen by a runner.Runner; exported for scripting fakes.
const (
	ListCmd      = executable + " /list"
	ActiveCmd    = executable + " /getactivescheme"
	queryArg     = "/query"
	setActiveArg = "/setactive"
)

// QueryCmd is the command line that queries one plan.
func QueryCmd(id plan.ID) string {
	return runner.CommandLine(executable, queryArg, id.String())
}

// SetActiveCmd is the command line that activates one plan.
func SetActiveCmd(id plan.ID) string {
	return runner.CommandLine(executable, setActiveArg, id.String())
}

// Tool runs powercfg subcommands.
type Tool struct {
	runner  runner.Runner
	decoder codepage.Decoder
}

// New creates a Tool.
func New(r runner.Runner, decoder codepage.Decoder) *Tool {
	return &Tool{runner: r, decoder: decoder}
}

// List returns the decoded output of "powercfg /list".
func (t *Tool) List(ctx context.Context) (string, error) {
	return t.output(ctx, "/list")
}

// Query returns the decoded output of "powercfg /query <id>". Its first line
// names the plan in the system locale.
func (t *Tool) Query(ctx context.Context, id plan.ID) (string, error) {
	return t.output(ctx, queryArg, id.String())
}

// ActiveScheme returns the decoded output of "powercfg /getactivescheme".
func (t *Tool) ActiveScheme(ctx context.Context) (string, error) {
	return t.output(ctx, "/getactivescheme")
}

// SetActive runs "powercfg /setactive <id>".
func (t *Tool) SetActive(ctx context.Context, id plan.ID) error {
	if _, err := t.runner.Output(ctx, executable, setActiveArg, id.String()); err != nil {
		return fmt.Errorf("failed to activate plan %s: %w", id, err)
	}
	return nil
}

func (t *Tool) output(ctx context.Context, args ...string) (string, error) {
	raw, err := t.runner.Output(ctx, executable, args...)
	if err != nil {
		return "", fmt.Errorf("failed to run %s: %w", runner.CommandLine(executable, args...), err)
	}
	return t.decoder.Decode(raw), nil
}
