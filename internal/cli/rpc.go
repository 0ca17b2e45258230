package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/planswitch/internal/engine"
	"github.com/danieljhkim/planswitch/internal/jsonrpc"
)

// ledSettingKey is the launcher settings key mirroring settings.json.
const ledSettingKey = "lenovo_legion_led_enabled"

var rpcCmd = &cobra.Command{
	Use:   "rpc <request>",
	Short: "Answer a launcher JSON-RPC request",
	Long: `Decode a Flow Launcher JSON-RPC request and write the response to stdout.

The launcher normally passes the request directly as the only argument:

  planswitch '{"method":"query","parameters":["bal"]}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return handleRPC(cmd.Context(), cmd.OutOrStdout(), args[0])
	},
}

// looksLikeRequest reports whether a bare argument is a JSON-RPC request
// rather than a mistyped subcommand.
func looksLikeRequest(arg string) bool {
	return strings.HasPrefix(strings.TrimSpace(arg), "{")
}

// handleRPC answers one request. Unknown methods get an empty result list.
func handleRPC(ctx context.Context, w io.Writer, raw string) error {
	req, err := jsonrpc.ParseRequest(raw)
	if err != nil {
		return fmt.Errorf("invalid launcher request: %w", err)
	}

	resp := &jsonrpc.Response{}
	opts := engineOptions{ledEnabled: ledOverride(req.Settings)}

	switch req.Method {
	case jsonrpc.MethodQuery:
		text, _ := req.StringParam(0)
		err = withEngine(ctx, opts, func(eng *engine.Engine) error {
			resp.Result = toRPCResults(eng.Query(ctx, text))
			return nil
		})
	case jsonrpc.MethodSwitchTo:
		id, perr := req.StringParam(0)
		if perr != nil {
			break
		}
		err = withEngine(ctx, opts, func(eng *engine.Engine) error {
			eng.SwitchTo(ctx, id)
			return nil
		})
	}
	if err != nil {
		return err
	}
	return jsonrpc.EncodeResponse(w, resp)
}

func ledOverride(settings map[string]any) *bool {
	v, ok := settings[ledSettingKey].(bool)
	if !ok {
		return nil
	}
	return &v
}

func toRPCResults(q *engine.QueryResult) []jsonrpc.Result {
	results := make([]jsonrpc.Result, 0, len(q.Items))
	for _, it := range q.Items {
		r := jsonrpc.Result{
			Title:    it.Title,
			SubTitle: it.SubTitle,
			IcoPath:  it.Icon,
		}
		if it.Plan != nil {
			r.Action = &jsonrpc.Action{
				Method:     jsonrpc.MethodSwitchTo,
				Parameters: []any{it.Plan.ID.String()},
			}
		}
		results = append(results, r)
	}
	return results
}
