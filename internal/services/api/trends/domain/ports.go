package domain

import "context"

// ServicePort is consumed by the handlers and by other modules
type ServicePort interface {
	Options(ctx context.Context) OptionsResponse
	Series(ctx context.Context, in SeriesInput) (Figure, error)
	Chart(ctx context.Context, q ChartQuery) (Image, error)
}
