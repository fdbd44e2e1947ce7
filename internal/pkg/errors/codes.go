package errors

import "net/http"

var (
	ErrGeocodeTimeout = New(
		"GEOCODE_TIMEOUT",
		"Address lookup timed out",
		http.StatusRequestTimeout,
	)

	ErrGeocodeNetwork = New(
		"GEOCODE_NETWORK_ERROR",
		"Could not reach the address lookup service",
		http.StatusServiceUnavailable,
	)

	ErrGeocodeProvider = New(
		"GEOCODE_PROVIDER_ERROR",
		"Address lookup service returned an error",
		http.StatusServiceUnavailable,
	)

	ErrLocationNotFound = New(
		"LOCATION_NOT_FOUND",
		"Location not found",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrSpotNotFound = New(
		"SPOT_NOT_FOUND",
		"Parking spot not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
