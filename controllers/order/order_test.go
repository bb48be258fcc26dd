package orderControllers

import (
	"fmt"
	"testing"
	"time"

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

func seedCart(t *testing.T, db *gorm.DB) (models.User, models.Item, models.Item) {
	t.Helper()
	user := models.User{Name: "Alice", Email: "alice@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)
	tea := models.Item{Name: "Green Tea", Price: 4.50}
	require.NoError(t, db.Create(&tea).Error)
	mug := models.Item{Name: "Coffee Mug", Price: 12.00}
	require.NoError(t, db.Create(&mug).Error)

	require.NoError(t, db.Create(&models.CartEntry{
		UserID: user.ID, ItemID: tea.ID, Quantity: 2, AddedAt: time.Now(),
	}).Error)
	require.NoError(t, db.Create(&models.CartEntry{
		UserID: user.ID, ItemID: mug.ID, Quantity: 1, AddedAt: time.Now(),
	}).Error)
	return user, tea, mug
}

func TestPlaceTransfersCartExactly(t *testing.T) {
	db := newTestDB(t)
	user, tea, mug := seedCart(t, db)

	order, err := Place(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.NotEmpty(t, order.OrderRef)

	var orders []models.Order
	require.NoError(t, db.Preload("Items").Where("user_id = ?", user.ID).Find(&orders).Error)
	require.Len(t, orders, 1)
	require.Len(t, orders[0].Items, 2)

	byItem := map[uint]models.OrderedItem{}
	for _, line := range orders[0].Items {
		byItem[line.ItemID] = line
	}
	assert.Equal(t, 2, byItem[tea.ID].Quantity)
	assert.Equal(t, "Green Tea", byItem[tea.ID].ItemName)
	assert.InDelta(t, 4.50, byItem[tea.ID].UnitPrice, 1e-9)
	assert.Equal(t, 1, byItem[mug.ID].Quantity)

	assert.InDelta(t, 4.50*2+12.00, orders[0].TotalAmount, 1e-9)

	// Exactly-once transfer: the cart is empty afterwards
	var cartCount int64
	db.Model(&models.CartEntry{}).Where("user_id = ?", user.ID).Count(&cartCount)
	assert.EqualValues(t, 0, cartCount)
}

func TestPlaceEmptyCart(t *testing.T) {
	db := newTestDB(t)
	user := models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(&user).Error)

	_, err := Place(db, user.ID)
	assert.ErrorIs(t, err, ErrCartEmpty)

	var orderCount, lineCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderedItem{}).Count(&lineCount)
	assert.EqualValues(t, 0, orderCount)
	assert.EqualValues(t, 0, lineCount)
}

func TestPlaceRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	user, _, _ := seedCart(t, db)

	// Force the line-item insert to fail mid-transfer
	require.NoError(t, db.Migrator().DropTable(&models.OrderedItem{}))

	_, err := Place(db, user.ID)
	require.Error(t, err)

	require.NoError(t, db.AutoMigrate(&models.OrderedItem{}))

	var orderCount, lineCount, cartCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	db.Model(&models.OrderedItem{}).Count(&lineCount)
	db.Model(&models.CartEntry{}).Where("user_id = ?", user.ID).Count(&cartCount)

	assert.EqualValues(t, 0, orderCount, "order creation must roll back")
	assert.EqualValues(t, 0, lineCount)
	assert.EqualValues(t, 2, cartCount, "cart must survive a failed placement")
}

func TestPlaceTwiceNeedsRefilledCart(t *testing.T) {
	db := newTestDB(t)
	user, tea, _ := seedCart(t, db)

	_, err := Place(db, user.ID)
	require.NoError(t, err)

	_, err = Place(db, user.ID)
	assert.ErrorIs(t, err, ErrCartEmpty)

	require.NoError(t, db.Create(&models.CartEntry{
		UserID: user.ID, ItemID: tea.ID, Quantity: 1, AddedAt: time.Now(),
	}).Error)
	_, err = Place(db, user.ID)
	require.NoError(t, err)

	orders, err := UserOrders(db, user.ID)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestMapOrderStatus(t *testing.T) {
	status, err := MapOrderStatus("Shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = MapOrderStatus("teleported")
	assert.Error(t, err)
}
