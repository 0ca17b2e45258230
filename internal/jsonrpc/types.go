// Package jsonrpc implements the Flow Launcher JSON-RPC plugin envelope.
//
// The host starts the plugin once per request and passes the request as the
// first command-line argument. The plugin answers with a single JSON object
// on stdout.
package jsonrpc

import "encoding/json"

// Method names the host may call.
const (
	MethodQuery    = "query"
	MethodSwitchTo = "switch_to"
)

// Request is a call from the host.
type Request struct {
	Method     string            `json:"method"`
	Parameters []json.RawMessage `json:"parameters"`
	Settings   map[string]any    `json:"settings,omitempty"`
}

// Response is the plugin's answer.
type Response struct {
	Result []Result `json:"result"`
}

// Result is one row shown by the launcher.
type Result struct {
	Title    string  `json:"title"`
	SubTitle string  `json:"subTitle"`
	IcoPath  string  `json:"icoPath"`
	Action   *Action `json:"jsonRPCAction"`
	Score    int     `json:"score"`
}

// Action is invoked by the host when the user selects a result.
type Action struct {
	Method     string `json:"method"`
	Parameters []any  `json:"parameters"`
}
