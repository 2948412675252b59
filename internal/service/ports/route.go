package ports

import (
	"context"

	"github.com/parsegasht/passenger/internal/route"
)

type RouteCache interface {
	Get(ctx context.Context, stops []route.Point) (*route.Route, bool, error)
	Set(ctx context.Context, stops []route.Point, r *route.Route) error
}

type Router interface {
	Route(ctx context.Context, stops []route.Point) (*route.Route, error)
}
