// Package geocoding turns coordinates into human-readable addresses for
// the beneficiary location picker. Lookups never fail from the caller's
// point of view: errors degrade to a placeholder address.
package geocoding

import (
	"context"

	"github.com/prefeitura-rio/app-adulto-mayor/internal/logging"
	"github.com/prefeitura-rio/app-adulto-mayor/internal/observability"
	"go.uber.org/zap"
)

// Placeholder addresses shown to the user
const (
	AddressNotFound    = "Ubicación no encontrada."
	AddressUnavailable = "Error al obtener la dirección."
)

// ReverseGeocoder resolves a coordinate to an address
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// Location is a picked point with its resolved address
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Resolve reverse-geocodes the point. Any error yields the point with
// AddressUnavailable.
func Resolve(ctx context.Context, g ReverseGeocoder, lat, lng float64) Location {
	loc := Location{Lat: lat, Lng: lng}
	if g == nil {
		loc.Address = AddressUnavailable
		observability.GeocodeRequests.WithLabelValues("fallback").Inc()
		return loc
	}

	address, err := g.Reverse(ctx, lat, lng)
	if err != nil {
		logging.Logger.Warn("reverse geocoding failed",
			zap.Float64("lat", lat),
			zap.Float64("lng", lng),
			zap.Error(err))
		observability.GeocodeRequests.WithLabelValues("fallback").Inc()
		loc.Address = AddressUnavailable
		return loc
	}
	if address == "" {
		address = AddressNotFound
	}

	observability.GeocodeRequests.WithLabelValues("success").Inc()
	loc.Address = address
	return loc
}

// ValidCoordinate reports whether lat/lng are within WGS84 bounds
func ValidCoordinate(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
