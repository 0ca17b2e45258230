// Package codepage resolves the console code page powercfg writes its output
// in, caches it, and decodes raw tool output into UTF-8 strings.
package codepage

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/danieljhkim/planswitch/internal/cache"
	"github.com/danieljhkim/planswitch/internal/runner"
)

// DefaultToken is used when chcp cannot be run or prints no number.
const DefaultToken = "cp850"

var firstNumber = regexp.MustCompile(`\d+`)

type encodingDoc struct {
	Encoding string `json:"encoding"`
}

// Decoder turns raw tool output into text.
type Decoder interface {
	Decode(raw []byte) string
}

// Resolve returns the Codec for this machine. A cached token is adopted
// verbatim; otherwise chcp is run once and the result persisted. Every
// failure degrades to DefaultToken and is logged, never returned.
func Resolve(ctx context.Context, r runner.Runner, store cache.Store, logger *zap.Logger) *Codec {
	logger = logger.Named("codepage")

	var doc encodingDoc
	if err := store.Load(cache.EncodingDoc, &doc); err == nil && strings.TrimSpace(doc.Encoding) != "" {
		logger.Debug("using cached code page", zap.String("token", doc.Encoding))
		return ForToken(doc.Encoding)
	} else if err != nil {
		logger.Debug("code page cache unusable", zap.Error(err))
	}

	token := detect(ctx, r, logger)
	if err := store.Save(cache.EncodingDoc, encodingDoc{Encoding: token}); err != nil {
		logger.Warn("failed to persist code page", zap.Error(err))
	}
	return ForToken(token)
}

// detect runs chcp (a cmd.exe builtin) and builds a cp<N> token.
func detect(ctx context.Context, r runner.Runner, logger *zap.Logger) string {
	out, err := r.Output(ctx, "cmd", "/c", "chcp")
	if err != nil {
		logger.Debug("chcp failed, using default code page", zap.Error(err))
		return DefaultToken
	}
	token, ok := ParseToken(out)
	if !ok {
		logger.Debug("chcp printed no code page number", zap.ByteString("output", out))
		return DefaultToken
	}
	logger.Debug("detected code page", zap.String("token", token))
	return token
}

// ParseToken extracts the first decimal number from chcp output and returns
// it as cp<N>. Non-ASCII bytes (a localized "Active code page" label) are
// ignored.
func ParseToken(out []byte) (string, bool) {
	ascii := make([]byte, 0, len(out))
	for _, b := range out {
		if b < 0x80 {
			ascii = append(ascii, b)
		}
	}
	m := firstNumber.Find(ascii)
	if m == nil {
		return "", false
	}
	n := strings.TrimLeft(string(m), "0")
	if n == "" {
		return "", false
	}
	return "cp" + n, true
}
