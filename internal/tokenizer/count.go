package tokenizer

import (
	"errors"
	"unicode/utf8"
)

var errNilCounter = errors.New("nil tokenizer counter")

// CountResult captures the outcome of counting a piece of rendered output.
type CountResult struct {
	Tokens  int
	Model   string
	Counted bool
}

// CountText estimates tokens for text. Invalid UTF-8 is reported as not counted.
func CountText(counter Counter, text string, model string) (CountResult, error) {
	if counter == nil {
		return CountResult{}, errNilCounter
	}
	if !utf8.ValidString(text) {
		return CountResult{Model: model, Counted: false}, nil
	}
	tokens, err := counter.CountString(text)
	if err != nil {
		return CountResult{}, err
	}
	return CountResult{Tokens: tokens, Model: model, Counted: true}, nil
}
