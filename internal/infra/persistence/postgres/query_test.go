package postgres

import (
	"context"
	"testing"
	"time"

	"nearby/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newDryRunDB builds statements without a server and hands each one to capture.
func newDryRunDB(t *testing.T, capture func(sql string)) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{DSN: "host=localhost user=nearby dbname=nearby sslmode=disable"}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Discard,
	})
	require.NoError(t, err)

	record := func(tx *gorm.DB) { capture(tx.Statement.SQL.String()) }
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", record))
	require.NoError(t, db.Callback().Raw().After("gorm:raw").Register("test:capture_raw", record))

	return db
}

func TestGeoIndexRepository_RadiusQueryIsSpherical(t *testing.T) {
	var statement string
	repo := NewGeoIndexRepository(newDryRunDB(t, func(sql string) { statement = sql }))

	_, err := repo.FindWithinRadius(context.Background(), entity.Coordinate{Lat: 45.5017, Lng: -73.5673}, 25, entity.GeoFilter{ActiveOnly: true})
	require.NoError(t, err)

	assert.Regexp(t, `ST_DWithin\(geog, ST_SetSRID\(ST_MakePoint\(\$\d+, \$\d+\), 4326\)::geography, \$\d+, false\)`, statement)
	assert.Regexp(t, `ORDER BY ST_Distance\(geog, ST_SetSRID\(ST_MakePoint\(\$\d+, \$\d+\), 4326\)::geography, false\)`, statement)
	assert.NotContains(t, statement, "EXISTS")
}

func TestGeoIndexRepository_BoostedAtFilter(t *testing.T) {
	var statement string
	repo := NewGeoIndexRepository(newDryRunDB(t, func(sql string) { statement = sql }))
	now := time.Now().UTC()

	_, err := repo.FindWithinRadius(context.Background(), entity.Coordinate{Lat: 45.5017, Lng: -73.5673}, 25, entity.GeoFilter{BoostedAt: &now})
	require.NoError(t, err)

	assert.Contains(t, statement, "EXISTS (SELECT 1 FROM boosts b WHERE b.subject_id = indexed_locations.entity_id AND b.active AND b.expires_at >")
}

func TestVenueRepository_LockVenueName(t *testing.T) {
	var statement string
	repo := NewVenueRepository(newDryRunDB(t, func(sql string) { statement = sql }))

	require.NoError(t, repo.LockVenueName(context.Background(), entity.EntityKindGym, "golds gym"))
	assert.Contains(t, statement, "pg_advisory_xact_lock(hashtextextended(")
}
