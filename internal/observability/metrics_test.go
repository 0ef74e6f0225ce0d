package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type metricRow struct {
	ID   uint
	Name string
}

func TestRegisterDatabaseMetricsObservesQueries(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&metricRow{}))
	require.NoError(t, RegisterDatabaseMetrics(db))

	before := testutil.CollectAndCount(DatabaseQueryLatency)

	require.NoError(t, db.Create(&metricRow{Name: "first"}).Error)
	var rows []metricRow
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)

	after := testutil.CollectAndCount(DatabaseQueryLatency)
	assert.Greater(t, after, before)
}
