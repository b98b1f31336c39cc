package main

import (
	devhttp "github.com/fwojciec/devdocs/http"
)

// Run executes the serve command. It blocks until the context is canceled.
func (c *ServeCmd) Run(deps *Dependencies) error {
	opts := []devhttp.Option{
		devhttp.WithLogger(deps.Logger),
		devhttp.WithHistory(deps.History),
		devhttp.WithCodeService(deps.Code),
		devhttp.WithTokenBudget(deps.Tokens, deps.ContextTokens),
	}
	if deps.Citations != nil {
		opts = append(opts, devhttp.WithCitationExtractor(deps.Citations))
	}
	if deps.Assistant != nil {
		opts = append(opts, devhttp.WithAssistant(deps.Assistant))
	}
	if c.LLMRPS > 0 {
		opts = append(opts, devhttp.WithLimiter(devhttp.NewClientLimiter(c.LLMRPS, c.Burst)))
	}

	return devhttp.NewServer(deps.Documents, opts...).ListenAndServe(deps.Ctx, c.Addr)
}
