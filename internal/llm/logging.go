package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/wenqi/pindrill/internal/store"
)

// LoggingProvider is a decorator that records every LLM request in the
// augment request log.
type LoggingProvider struct {
	inner Provider
	log   store.RequestLog
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, log store.RequestLog) Provider {
	return &LoggingProvider{inner: p, log: log}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.AugmentRequestData{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the request but don't fail it if logging fails.
	if logErr := l.log.Append(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
