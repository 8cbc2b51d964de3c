package outbound

import "context"

type ChatCompletionParams struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

type ChatCompleterPort interface {
	Complete(ctx context.Context, params ChatCompletionParams) (string, error)
}
