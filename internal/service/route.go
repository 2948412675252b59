package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/parsegasht/passenger/internal/domain"
	"github.com/parsegasht/passenger/internal/metrics"
	"github.com/parsegasht/passenger/internal/route"
	"github.com/parsegasht/passenger/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RouteService builds the route preview, reading through the route cache.
type RouteService struct {
	router  ports.Router
	cache   ports.RouteCache
	metrics *metrics.Metrics
	logger  logger.Logger
}

func NewRouteService(router ports.Router, cache ports.RouteCache, m *metrics.Metrics, logger logger.Logger) *RouteService {
	return &RouteService{
		router:  router,
		cache:   cache,
		metrics: m,
		logger:  logger,
	}
}

func (s *RouteService) Route(ctx context.Context, stops []route.Point) (*route.Route, error) {
	if len(stops) < 2 {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, route.ErrTooFewStops)
	}

	cached, ok, err := s.cache.Get(ctx, stops)
	switch {
	case err != nil:
		// кэш недоступен, строим маршрут напрямую
		s.metrics.RouteCache.WithLabelValues("error").Inc()
		s.logger.Warn("route cache get failed", logger.String("error", err.Error()))
	case ok:
		s.metrics.RouteCache.WithLabelValues("hit").Inc()
		return cached, nil
	default:
		s.metrics.RouteCache.WithLabelValues("miss").Inc()
	}

	r, err := s.router.Route(ctx, stops)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", domain.ErrRouteUnavailable, err)
	}
	s.metrics.Routes.WithLabelValues(string(r.Source)).Inc()

	s.logger.Debug("route built",
		logger.String("source", string(r.Source)),
		logger.Int("points", len(r.Points)),
		logger.String("distance", r.Label()),
	)

	// прямую линию не кэшируем
	if r.Source == route.SourceDirect {
		return r, nil
	}

	if err = s.cache.Set(ctx, stops, r); err != nil {
		s.logger.Warn("route cache set failed", logger.String("error", err.Error()))
	}

	return r, nil
}
