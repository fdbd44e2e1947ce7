//go:build ignore
// +build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

type seedBay struct {
	KerbsideID  int
	Lat         *float64
	Lng         *float64
	RoadSegment *string
	Status      *string
}

func ptr[T any](v T) *T {
	return &v
}

func main() {
	dsn := flag.String("dsn", "host=localhost port=5432 user=postgres password=postgres dbname=parking sslmode=disable", "PostgreSQL DSN")
	flag.Parse()

	db, err := sqlx.Connect("pgx", *dsn)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	schema := `
		CREATE TABLE IF NOT EXISTS parking_bays (
			kerbside_id              INTEGER PRIMARY KEY,
			latitude                 DOUBLE PRECISION,
			longitude                DOUBLE PRECISION,
			road_segment_description TEXT,
			status_description       TEXT,
			last_updated             TEXT,
			status_timestamp         TEXT
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		log.Fatalf("Failed to create parking_bays table: %v", err)
	}

	// Тестовые места вокруг Flinders Street Station
	now := time.Now().UTC().Format(time.RFC3339)
	bays := []seedBay{
		{KerbsideID: 61001, Lat: ptr(-37.8180), Lng: ptr(144.9668), RoadSegment: ptr("Flinders Street between Swanston Street and Elizabeth Street"), Status: ptr("Unoccupied")},
		{KerbsideID: 61002, Lat: ptr(-37.8181), Lng: ptr(144.9672), RoadSegment: ptr("Flinders Street between Swanston Street and Elizabeth Street"), Status: ptr("Present")},
		{KerbsideID: 61003, Lat: ptr(-37.8152), Lng: ptr(144.9641), RoadSegment: ptr("Collins Street between Swanston Street and Elizabeth Street"), Status: ptr("Unoccupied")},
		{KerbsideID: 61004, Lat: ptr(-37.8154), Lng: ptr(144.9655), RoadSegment: ptr("Collins Street between Swanston Street and Elizabeth Street"), Status: ptr("Loading Zone")},
		{KerbsideID: 61005, Lat: ptr(-37.8137), Lng: ptr(144.9630), RoadSegment: ptr("Bourke Street between Swanston Street and Elizabeth Street"), Status: ptr("Disabled")},
		{KerbsideID: 61006, Lat: ptr(-37.8139), Lng: ptr(144.9626), RoadSegment: ptr("Bourke Street between Swanston Street and Elizabeth Street"), Status: nil},
		{KerbsideID: 61007, Lat: nil, Lng: nil, RoadSegment: ptr("Little Collins Street between Russell Street and Exhibition Street"), Status: ptr("Unoccupied")},
	}

	insert := `
		INSERT INTO parking_bays
			(kerbside_id, latitude, longitude, road_segment_description, status_description, last_updated, status_timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (kerbside_id) DO UPDATE SET
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			road_segment_description = EXCLUDED.road_segment_description,
			status_description = EXCLUDED.status_description,
			last_updated = EXCLUDED.last_updated,
			status_timestamp = EXCLUDED.status_timestamp
	`

	for _, b := range bays {
		if _, err := db.ExecContext(ctx, insert, b.KerbsideID, b.Lat, b.Lng, b.RoadSegment, b.Status, now, now); err != nil {
			log.Fatalf("Failed to insert bay %d: %v", b.KerbsideID, err)
		}
	}

	fmt.Printf("Seeded %d parking bays\n", len(bays))
	fmt.Println("Try: curl 'http://localhost:8080/api/v1/spots/nearby?lat=-37.8165&lng=144.9650'")
}
