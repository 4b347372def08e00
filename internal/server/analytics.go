package server

import "context"

// AnalyticsSink receives page view events from the handlers. The
// storefront only reports views; aggregation lives elsewhere.
type AnalyticsSink interface {
	PageView(ctx context.Context, page string, labels map[string]string)
}

type NoopAnalytics struct{}

func (NoopAnalytics) PageView(context.Context, string, map[string]string) {}
