package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mmcloughlin/geohash"
	"github.com/parsegasht/passenger/internal/route"
	"github.com/redis/go-redis/v9"
)

// geohashChars gives cells of roughly 5x5 meters.
const geohashChars = 9

type RouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRouteCache(client *redis.Client, ttl time.Duration) *RouteCache {
	return &RouteCache{client: client, ttl: ttl}
}

// RouteKey identifies a route by the geohash of each stop, in order.
func RouteKey(stops []route.Point) string {
	cells := make([]string, len(stops))
	for i, p := range stops {
		cells[i] = geohash.EncodeWithPrecision(p.Lat, p.Lng, geohashChars)
	}
	return "route:" + strings.Join(cells, "|")
}

func (c *RouteCache) Get(ctx context.Context, stops []route.Point) (*route.Route, bool, error) {
	val, err := c.client.Get(ctx, RouteKey(stops)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get route: %w", err)
	}

	var r route.Route
	if err = json.Unmarshal(val, &r); err != nil {
		return nil, false, fmt.Errorf("unmarshal route: %w", err)
	}

	return &r, true, nil
}

func (c *RouteCache) Set(ctx context.Context, stops []route.Point, r *route.Route) error {
	val, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal route: %w", err)
	}

	if err = c.client.Set(ctx, RouteKey(stops), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("set route: %w", err)
	}

	return nil
}
