package route

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type Source string

const (
	SourceNeshan Source = "neshan"
	SourceOSRM   Source = "osrm"
	SourceDirect Source = "direct"
)

var (
	ErrNoGeometry  = errors.New("route response has no geometry")
	ErrTooFewStops = errors.New("route needs at least two points")
)

// Segment is the driving path between two consecutive stops.
type Segment struct {
	Points   []Point
	Distance float64 // meters
}

// Provider fetches one segment from a routing service.
type Provider interface {
	Source() Source
	Segment(ctx context.Context, from, to Point) (Segment, error)
}

// HTTPDoer is satisfied by *http.Client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func getBody(ctx context.Context, client HTTPDoer, url string, header http.Header) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	for k, v := range header {
		req.Header[k] = v
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}

	return body, nil
}
