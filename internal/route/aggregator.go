package route

import (
	"context"

	"github.com/wb-go/wbf/logger"
)

type Route struct {
	Points   []Point `json:"points"`
	Distance float64 `json:"distance"` // meters
	Source   Source  `json:"source"`
}

// Label is the human readable distance of the route.
func (r *Route) Label() string {
	return FormatDistance(r.Distance)
}

// Aggregator routes origin -> dest1 -> dest2 ... through its providers in
// order. A provider is used when at least one of its segments has geometry;
// failed segments of that provider are skipped. When no provider returns any
// geometry the stops are joined by straight lines.
type Aggregator struct {
	providers []Provider
	logger    logger.Logger
}

func NewAggregator(log logger.Logger, providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers, logger: log}
}

func (a *Aggregator) Route(ctx context.Context, stops []Point) (*Route, error) {
	if len(stops) < 2 {
		return nil, ErrTooFewStops
	}

	for _, p := range a.providers {
		r, err := a.viaProvider(ctx, p, stops)
		if err != nil {
			return nil, err
		}
		if r != nil {
			return r, nil
		}
		a.logger.Warn("routing provider returned no geometry",
			logger.String("provider", string(p.Source())),
		)
	}

	a.logger.Warn("all routing providers failed, using direct line",
		logger.Int("stops", len(stops)),
	)

	points := make([]Point, len(stops))
	copy(points, stops)
	return &Route{
		Points:   points,
		Distance: PathLength(points),
		Source:   SourceDirect,
	}, nil
}

func (a *Aggregator) viaProvider(ctx context.Context, p Provider, stops []Point) (*Route, error) {
	var (
		points   []Point
		distance float64
	)

	for i := 0; i < len(stops)-1; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		seg, err := p.Segment(ctx, stops[i], stops[i+1])
		if err != nil {
			a.logger.Warn("route segment failed",
				logger.String("provider", string(p.Source())),
				logger.Int("segment", i),
				logger.String("error", err.Error()),
			)
			continue
		}
		if len(seg.Points) == 0 {
			continue
		}

		points = append(points, seg.Points...)
		distance += seg.Distance
	}

	if len(points) == 0 {
		return nil, nil
	}

	return &Route{Points: points, Distance: distance, Source: p.Source()}, nil
}
