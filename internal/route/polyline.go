package route

import "errors"

var ErrMalformedPolyline = errors.New("malformed polyline")

// DecodePolyline decodes a Google encoded polyline with 1e-5 precision.
func DecodePolyline(encoded string) ([]Point, error) {
	var (
		points   []Point
		lat, lng int
		index    int
	)

	for index < len(encoded) {
		dlat, next, err := decodeValue(encoded, index)
		if err != nil {
			return nil, err
		}
		dlng, next, err := decodeValue(encoded, next)
		if err != nil {
			return nil, err
		}
		index = next

		lat += dlat
		lng += dlng
		points = append(points, Point{Lat: float64(lat) * 1e-5, Lng: float64(lng) * 1e-5})
	}

	return points, nil
}

func decodeValue(encoded string, index int) (int, int, error) {
	var result, shift int
	for {
		if index >= len(encoded) {
			return 0, index, ErrMalformedPolyline
		}
		b := int(encoded[index]) - 63
		index++
		if b < 0 {
			return 0, index, ErrMalformedPolyline
		}

		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}

	if result&1 != 0 {
		return ^(result >> 1), index, nil
	}
	return result >> 1, index, nil
}
