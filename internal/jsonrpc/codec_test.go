package jsonrpc

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequest(t *testing.T) {
	req, err := ParseRequest(`{"method":"query","parameters":["bal"],"settings":{"lenovo_legion_led_enabled":true}}`)
	require.NoError(t, err)
	assert.Equal(t, MethodQuery, req.Method)

	q, err := req.StringParam(0)
	require.NoError(t, err)
	assert.Equal(t, "bal", q)
	assert.Equal(t, true, req.Settings["lenovo_legion_led_enabled"])
}

func TestParseRequestErrors(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"empty", ""},
		{"not json", "query bal"},
		{"missing method", `{"parameters":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequest(tt.arg)
			assert.Error(t, err)
		})
	}
}

func TestStringParam(t *testing.T) {
	req, err := ParseRequest(`{"method":"switch_to","parameters":["381b4222-f694-41f0-9685-ff5bb260df2e", 42, null]}`)
	require.NoError(t, err)

	s, err := req.StringParam(0)
	require.NoError(t, err)
	assert.Equal(t, "381b4222-f694-41f0-9685-ff5bb260df2e", s)

	s, err = req.StringParam(1)
	require.NoError(t, err)
	assert.Equal(t, "42", s)

	s, err = req.StringParam(2)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = req.StringParam(3)
	assert.ErrorIs(t, err, ErrBadParameter)
}

func TestEncodeResponse(t *testing.T) {
	var buf bytes.Buffer
	resp := &Response{Result: []Result{
		{
			Title:    "Balanced (active)",
			SubTitle: "Switch to 'Balanced'",
			IcoPath:  "Images/balanced.png",
			Action:   &Action{Method: MethodSwitchTo, Parameters: []any{"381b4222-f694-41f0-9685-ff5bb260df2e"}},
		},
		{Title: "No matching power plan found", IcoPath: "Images/app.png"},
	}}
	require.NoError(t, EncodeResponse(&buf, resp))

	assert.JSONEq(t, `{"result":[
		{"title":"Balanced (active)","subTitle":"Switch to 'Balanced'","icoPath":"Images/balanced.png",
		 "jsonRPCAction":{"method":"switch_to","parameters":["381b4222-f694-41f0-9685-ff5bb260df2e"]},"score":0},
		{"title":"No matching power plan found","subTitle":"","icoPath":"Images/app.png","jsonRPCAction":null,"score":0}
	]}`, buf.String())
}

func TestEncodeResponseEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeResponse(&buf, &Response{}))

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "[]", string(decoded["result"]))
}
