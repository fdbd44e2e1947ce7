// Package docs Parking Microservice API.
//
// Read-oriented parking-bay location service for the Melbourne CBD.
// Given an address/landmark query or a coordinate pair, returns nearby
// parking bays with normalized occupancy status, per-segment summaries
// and straight-line distance.
//
// Endpoints:
// - Nearby-spot search by text or coordinates
// - Single spot status by kerbside ID
// - All available spots in the service area
// - Map markers with color/icon hints
// - Location suggestion autocomplete
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
