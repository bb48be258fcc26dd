package cartControllers

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
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Item{}, &models.CartEntry{},
		&models.Order{}, &models.OrderedItem{},
	))
	return db
}

func seedShop(t *testing.T, db *gorm.DB) (models.User, models.Item, models.Item) {
	t.Helper()
	user := models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	tea := models.Item{Name: "Green Tea", Price: 4.50}
	require.NoError(t, db.Create(&tea).Error)
	mug := models.Item{Name: "Coffee Mug", Price: 12.00}
	require.NoError(t, db.Create(&mug).Error)
	return user, tea, mug
}

func TestAddItemCreatesThenIncrements(t *testing.T) {
	db := newTestDB(t)
	user, tea, _ := seedShop(t, db)

	item, err := AddItem(db, user.ID, tea.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, "Green Tea", item.Name)

	// Repeat add increments the same row instead of creating a second one
	_, err = AddItem(db, user.ID, tea.ID, 3)
	require.NoError(t, err)

	var entries []models.CartEntry
	require.NoError(t, db.Where("user_id = ?", user.ID).Find(&entries).Error)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)
}

func TestAddItemRejectsBadQuantity(t *testing.T) {
	db := newTestDB(t)
	user, tea, _ := seedShop(t, db)

	_, err := AddItem(db, user.ID, tea.ID, 0)
	assert.ErrorIs(t, err, ErrBadQuantity)
	_, err = AddItem(db, user.ID, tea.ID, -3)
	assert.ErrorIs(t, err, ErrBadQuantity)

	var count int64
	db.Model(&models.CartEntry{}).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestAddItemUnknownItem(t *testing.T) {
	db := newTestDB(t)
	user, _, _ := seedShop(t, db)

	_, err := AddItem(db, user.ID, 9999, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRemoveItemDecrements(t *testing.T) {
	db := newTestDB(t)
	user, tea, _ := seedShop(t, db)

	_, err := AddItem(db, user.ID, tea.ID, 5)
	require.NoError(t, err)

	require.NoError(t, RemoveItem(db, user.ID, tea.ID, 2))

	var entry models.CartEntry
	require.NoError(t, db.Where("user_id = ? AND item_id = ?", user.ID, tea.ID).First(&entry).Error)
	assert.Equal(t, 3, entry.Quantity)
}

func TestRemoveItemClampsToDelete(t *testing.T) {
	db := newTestDB(t)
	user, tea, _ := seedShop(t, db)

	_, err := AddItem(db, user.ID, tea.ID, 2)
	require.NoError(t, err)

	// Removing at least the current holding deletes the entry
	require.NoError(t, RemoveItem(db, user.ID, tea.ID, 7))

	var count int64
	db.Model(&models.CartEntry{}).Where("user_id = ?", user.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}

func TestRemoveItemMissingEntry(t *testing.T) {
	db := newTestDB(t)
	user, tea, _ := seedShop(t, db)

	err := RemoveItem(db, user.ID, tea.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestContentsTotalInvariant(t *testing.T) {
	db := newTestDB(t)
	user, tea, mug := seedShop(t, db)

	_, err := AddItem(db, user.ID, tea.ID, 3)
	require.NoError(t, err)
	_, err = AddItem(db, user.ID, mug.ID, 2)
	require.NoError(t, err)
	require.NoError(t, RemoveItem(db, user.ID, tea.ID, 1))

	entries, total, err := Contents(db, user.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var want float64
	for _, e := range entries {
		want += e.Item.Price * float64(e.Quantity)
	}
	assert.InDelta(t, want, total, 1e-9)
	assert.InDelta(t, 4.50*2+12.00*2, total, 1e-9)
}
