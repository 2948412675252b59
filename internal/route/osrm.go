package route

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
)

const DefaultOSRMURL = "https://router.project-osrm.org"

type OSRMProvider struct {
	client  HTTPDoer
	baseURL string
}

func NewOSRMProvider(client HTTPDoer, baseURL string) *OSRMProvider {
	if baseURL == "" {
		baseURL = DefaultOSRMURL
	}
	return &OSRMProvider{client: client, baseURL: baseURL}
}

func (p *OSRMProvider) Source() Source {
	return SourceOSRM
}

type osrmResponse struct {
	Routes []struct {
		Distance float64 `json:"distance"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

func (p *OSRMProvider) Segment(ctx context.Context, from, to Point) (Segment, error) {
	url := fmt.Sprintf("%s/route/v1/driving/%s;%s?overview=full&geometries=geojson",
		p.baseURL, lngLatParam(from), lngLatParam(to))

	body, err := getBody(ctx, p.client, url, nil)
	if err != nil {
		return Segment{}, err
	}

	var resp osrmResponse
	if err = json.Unmarshal(body, &resp); err != nil {
		return Segment{}, fmt.Errorf("decode: %w", err)
	}
	if len(resp.Routes) == 0 || len(resp.Routes[0].Geometry.Coordinates) == 0 {
		return Segment{}, ErrNoGeometry
	}

	// OSRM отдаёт координаты как [lng, lat]
	coords := resp.Routes[0].Geometry.Coordinates
	points := make([]Point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		points = append(points, Point{Lat: c[1], Lng: c[0]})
	}

	return Segment{Points: points, Distance: resp.Routes[0].Distance}, nil
}

func lngLatParam(p Point) string {
	return strconv.FormatFloat(p.Lng, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lat, 'f', -1, 64)
}
