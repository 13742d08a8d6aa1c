// Package aiclient wraps the external text-completion service used for
// structure analysis and account classification. The service is treated
// as an opaque, possibly-failing, possibly-malformed text generator;
// callers always validate and clamp whatever comes back.
package aiclient

import "context"

// Completer is the single logical operation the pipeline needs from an AI
// provider: a low-temperature completion returning raw text, with JSON
// output requested but never assumed.
type Completer interface {
	Complete(ctx context.Context, systemInstruction, userPrompt string) (string, error)
}

// Outcome models the result of an AI attempt explicitly, so fallback is
// invoked on a value rather than via error unwinding for an expected
// condition.
type Outcome struct {
	Text string
	Err  error
}

// Success wraps a completed response.
func Success(text string) Outcome {
	return Outcome{Text: text}
}

// Failure wraps a failed attempt.
func Failure(err error) Outcome {
	return Outcome{Err: err}
}

// OK reports whether the attempt produced a response.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// Attempt runs one completion and captures the result as an Outcome.
// Each call is at-most-once; retries, if wanted, belong to the caller.
func Attempt(ctx context.Context, c Completer, system, prompt string) Outcome {
	if c == nil {
		return Failure(ErrNoClient)
	}
	text, err := c.Complete(ctx, system, prompt)
	if err != nil {
		return Failure(err)
	}
	return Success(text)
}
