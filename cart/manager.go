package cart

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/alexw14/orange-box/catalog"
	"github.com/alexw14/orange-box/models"
)

// ErrProductNotFound means an add targeted a product id that does not exist.
var ErrProductNotFound = errors.New("cart: product not found")

// Add puts one unit of a product into the user's cart. The write is a
// single upsert keyed on the (user_id, product_id) unique index: a new
// product appends a line with quantity 1, an existing line has its quantity
// incremented in place. Concurrent adds of the same product therefore can
// never produce two lines.
func Add(db *gorm.DB, userID, productID uint) ([]models.CartItem, error) {
	var product models.Product
	if err := db.Select("id").First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	line := models.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  1,
		AddedAt:   time.Now(),
	}
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity": gorm.Expr("quantity + ?", 1),
		}),
	}).Create(&line).Error
	if err != nil {
		return nil, err
	}

	return Items(db, userID)
}

// Remove deletes the line for productID from the user's cart. Removing a
// line that is not there is a no-op, so the call is idempotent. The
// remaining cart is returned both raw and resolved to full product detail.
func Remove(db *gorm.DB, userID, productID uint) ([]models.CartItem, []models.Product, error) {
	err := db.
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&models.CartItem{}).Error
	if err != nil {
		return nil, nil, err
	}

	items, err := Items(db, userID)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uint, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	detail, err := catalog.FindByIDs(db, ids)
	if err != nil {
		return nil, nil, err
	}
	return items, detail, nil
}

// Items returns the user's cart lines in the order they were added.
func Items(db *gorm.DB, userID uint) ([]models.CartItem, error) {
	items := []models.CartItem{}
	err := db.
		Where("user_id = ?", userID).
		Order("added_at asc").
		Order("id asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
