package productControllers

import (
	"testing"

	"github.com/BZIvanov/TechnoShop-Backend-EM/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// Counting must not leave DISTINCT/select state on the builder the listing
// query reuses, otherwise Postgres rejects the ORDER BY and the rows would
// carry only IDs.
func TestCatalogCountKeepsListingSelectIntact(t *testing.T) {
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{DryRun: true})
	require.NoError(t, err)

	query := db.Model(&models.Product{}).Where("brand = ?", "Acme")

	_, err = catalogCount(query)
	require.NoError(t, err)

	assert.False(t, query.Statement.Distinct)
	assert.Empty(t, query.Statement.Selects)

	var products []models.Product
	stmt := query.Order("created_at desc").Find(&products).Statement
	assert.NotContains(t, stmt.SQL.String(), "DISTINCT")
	assert.Contains(t, stmt.SQL.String(), "ORDER BY created_at desc")
}
