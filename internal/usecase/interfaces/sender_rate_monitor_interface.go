package interfaces

import "context"

// ISenderRateMonitor counts deliveries per canonical sender phone and reports
// bursts. It is observational only: the pipeline never changes its outcome or
// reply based on the answer.
//
// Implementations fail quiet: an unreachable backend reports false.
type ISenderRateMonitor interface {
	OverLimit(ctx context.Context, phone string) bool
}
