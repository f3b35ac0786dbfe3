package classifier

import (
	"errors"
	"strconv"

	"github.com/caafimaad-ai/triage/pkg/features"
)

// ErrModelUnavailable marks the one fatal condition in the pipeline: the
// trained model cannot be invoked. There is no fallback prediction for a
// health-advisory result, so callers must surface this instead of degrading.
var ErrModelUnavailable = errors.New("triage model unavailable")

type TokenKind int

const (
	TokenIndex TokenKind = iota
	TokenText
)

// Token is a raw prediction emitted by a model: either an encoded class
// index or a text label.
type Token struct {
	Kind  TokenKind
	Index int
	Text  string
}

func IndexToken(i int) Token {
	return Token{Kind: TokenIndex, Index: i}
}

func TextToken(s string) Token {
	return Token{Kind: TokenText, Text: s}
}

// String renders the token's plain textual form, the decode fallback when no
// encoder applies.
func (t Token) String() string {
	if t.Kind == TokenText {
		return t.Text
	}
	return strconv.Itoa(t.Index)
}

// Model is the opaque trained classifier: exactly one token per input row.
type Model interface {
	Predict(rows []features.Record) ([]Token, error)
}
