package route

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

const DefaultNeshanURL = "https://api.neshan.org"

var ErrNeshanKeyMissing = errors.New("neshan direction api key is not configured")

// neshanVersions are tried in order; the first successful answer wins.
var neshanVersions = []string{"v4", "v1", "v2"}

type NeshanProvider struct {
	client  HTTPDoer
	baseURL string
	apiKey  string
}

func NewNeshanProvider(client HTTPDoer, baseURL, apiKey string) *NeshanProvider {
	if baseURL == "" {
		baseURL = DefaultNeshanURL
	}
	return &NeshanProvider{client: client, baseURL: baseURL, apiKey: apiKey}
}

func (p *NeshanProvider) Source() Source {
	return SourceNeshan
}

func (p *NeshanProvider) Segment(ctx context.Context, from, to Point) (Segment, error) {
	if p.apiKey == "" {
		return Segment{}, ErrNeshanKeyMissing
	}

	header := http.Header{}
	header.Set("Api-Key", p.apiKey)
	header.Set("Content-Type", "application/json")

	var lastErr error
	for _, version := range neshanVersions {
		url := fmt.Sprintf("%s/%s/direction?origin=%s&destination=%s&type=car",
			p.baseURL, version, latLngParam(from), latLngParam(to))

		body, err := getBody(ctx, p.client, url, header)
		if err != nil {
			lastErr = fmt.Errorf("%s: %w", version, err)
			continue
		}

		var resp neshanResponse
		if err = json.Unmarshal(body, &resp); err != nil {
			lastErr = fmt.Errorf("%s: decode: %w", version, err)
			continue
		}

		return resp.segment()
	}

	return Segment{}, lastErr
}

func latLngParam(p Point) string {
	return strconv.FormatFloat(p.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(p.Lng, 'f', -1, 64)
}

type neshanLatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type neshanPolyline struct {
	Points string `json:"points"`
}

type neshanStep struct {
	StartLocation *neshanLatLng `json:"start_location"`
	EndLocation   *neshanLatLng `json:"end_location"`
}

type neshanLeg struct {
	Distance      json.RawMessage `json:"distance"`
	Steps         []neshanStep    `json:"steps"`
	StartLocation *neshanLatLng   `json:"start_location"`
	EndLocation   *neshanLatLng   `json:"end_location"`
}

type neshanRoute struct {
	OverviewPolyline *neshanPolyline `json:"overview_polyline"`
	Geometry         json.RawMessage `json:"geometry"`
	Coordinates      [][]float64     `json:"coordinates"`
	Distance         json.RawMessage `json:"distance"`
	Legs             []neshanLeg     `json:"legs"`
}

type neshanResponse struct {
	Routes           []neshanRoute   `json:"routes"`
	OverviewPolyline *neshanPolyline `json:"overview_polyline"`
	Geometry         json.RawMessage `json:"geometry"`
	Distance         json.RawMessage `json:"distance"`
}

func (r *neshanResponse) segment() (Segment, error) {
	points, err := r.points()
	if err != nil {
		return Segment{}, err
	}
	points = dedupe(points)
	if len(points) == 0 {
		return Segment{}, ErrNoGeometry
	}
	return Segment{Points: points, Distance: r.distance()}, nil
}

func (r *neshanResponse) distance() float64 {
	if len(r.Routes) > 0 {
		route := r.Routes[0]
		if len(route.Legs) > 0 {
			var total float64
			for _, leg := range route.Legs {
				if m, ok := meters(leg.Distance); ok {
					total += m
				}
			}
			return total
		}
		if m, ok := meters(route.Distance); ok {
			return m
		}
	}
	m, _ := meters(r.Distance)
	return m
}

func (r *neshanResponse) points() ([]Point, error) {
	if len(r.Routes) > 0 {
		route := r.Routes[0]
		switch {
		case route.OverviewPolyline != nil && route.OverviewPolyline.Points != "":
			return DecodePolyline(route.OverviewPolyline.Points)
		case isJSONString(route.Geometry):
			return decodeGeometryString(route.Geometry)
		case len(route.Legs) > 0:
			return legPoints(route.Legs), nil
		case len(route.Coordinates) > 0:
			return pairs(route.Coordinates), nil
		case isJSONArray(route.Geometry):
			var coords [][]float64
			if err := json.Unmarshal(route.Geometry, &coords); err != nil {
				return nil, fmt.Errorf("decode geometry: %w", err)
			}
			return pairs(coords), nil
		}
	}

	switch {
	case r.OverviewPolyline != nil && r.OverviewPolyline.Points != "":
		return DecodePolyline(r.OverviewPolyline.Points)
	case isJSONString(r.Geometry):
		return decodeGeometryString(r.Geometry)
	}

	return nil, ErrNoGeometry
}

func legPoints(legs []neshanLeg) []Point {
	var points []Point
	for _, leg := range legs {
		if len(leg.Steps) == 0 {
			if leg.StartLocation != nil && leg.EndLocation != nil {
				points = append(points, leg.StartLocation.point(), leg.EndLocation.point())
			}
			continue
		}

		for _, step := range leg.Steps {
			if step.StartLocation != nil {
				points = append(points, step.StartLocation.point())
			}
			if step.EndLocation != nil &&
				(step.StartLocation == nil || *step.StartLocation != *step.EndLocation) {
				points = append(points, step.EndLocation.point())
			}
		}
	}
	return points
}

func (l neshanLatLng) point() Point {
	return Point{Lat: l.Lat, Lng: l.Lng}
}

// pairs reads [lat, lng] pairs, skipping anything shorter.
func pairs(coords [][]float64) []Point {
	points := make([]Point, 0, len(coords))
	for _, c := range coords {
		if len(c) < 2 {
			continue
		}
		points = append(points, Point{Lat: c[0], Lng: c[1]})
	}
	return points
}

func decodeGeometryString(raw json.RawMessage) ([]Point, error) {
	var encoded string
	if err := json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}
	return DecodePolyline(encoded)
}

// meters accepts either a bare number or an object with a "value" field.
func meters(raw json.RawMessage) (float64, bool) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, n != 0
	}

	var obj struct {
		Value float64 `json:"value"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Value, obj.Value != 0
	}

	return 0, false
}

func isJSONString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}

func isJSONArray(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '['
}
