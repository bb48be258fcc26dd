package catalogControllers

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Jayasri-Akky/E-commerceWebsite/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Item{}))
	return db
}

func seedItems(t *testing.T, db *gorm.DB) {
	t.Helper()
	for _, item := range []models.Item{
		{Name: "Green Tea", Price: 4.50},
		{Name: "Black Tea", Price: 4.00},
		{Name: "Coffee Mug", Price: 12.00},
	} {
		require.NoError(t, db.Create(&item).Error)
	}
}

func TestListItems(t *testing.T) {
	db := newTestDB(t)
	seedItems(t, db)

	items, err := ListItems(db)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestSearchItemsCaseInsensitive(t *testing.T) {
	db := newTestDB(t)
	seedItems(t, db)

	items, err := SearchItems(db, "TEA")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.Contains(t, item.Name, "Tea")
	}

	items, err = SearchItems(db, "mug")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee Mug", items[0].Name)

	items, err = SearchItems(db, "teapot")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetItem(t *testing.T) {
	db := newTestDB(t)
	seedItems(t, db)

	var tea models.Item
	require.NoError(t, db.Where("name = ?", "Green Tea").First(&tea).Error)

	item, err := GetItem(db, tea.ID)
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", item.Name)

	_, err = GetItem(db, 9999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
