package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrBadParameter indicates a missing or mistyped request parameter.
var ErrBadParameter = errors.New("bad parameter")

// ParseRequest decodes a request passed as a command-line argument.
func ParseRequest(arg string) (*Request, error) {
	return DecodeRequest(strings.NewReader(arg))
}

// DecodeRequest reads and validates a Request from r.
func DecodeRequest(r io.Reader) (*Request, error) {
	var req Request
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	if req.Method == "" {
		return nil, fmt.Errorf("request missing required field: method")
	}
	return &req, nil
}

// StringParam returns parameter i as a string. null yields "" and other
// non-string JSON values are rendered in their JSON text form.
func (r *Request) StringParam(i int) (string, error) {
	if i < 0 || i >= len(r.Parameters) {
		return "", fmt.Errorf("%w: index %d out of range (%d parameters)", ErrBadParameter, i, len(r.Parameters))
	}
	raw := r.Parameters[i]
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}
	return string(raw), nil
}

// EncodeResponse writes resp to w as a single JSON line. A nil result list
// is written as an empty array.
func EncodeResponse(w io.Writer, resp *Response) error {
	if resp.Result == nil {
		resp = &Response{Result: []Result{}}
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}
