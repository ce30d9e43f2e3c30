package database

import (
	"metro-homes/internal/models"
)

// ListWishlistsByEmail retrieves a user's saved listings.
func (d *DB) ListWishlistsByEmail(email string) ([]models.Wishlist, error) {
	var entries []models.Wishlist
	err := d.db.Where("email = ?", email).
		Order("created_at DESC").Find(&entries).Error
	return entries, err
}

// GetWishlistEntry retrieves the entry for (email, property), if any.
func (d *DB) GetWishlistEntry(email, propertyID string) (*models.Wishlist, error) {
	var entry models.Wishlist
	err := d.db.Where("email = ? AND property_id = ?", email, propertyID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// CreateWishlist inserts an entry. A concurrent duplicate loses the race
// at the unique index and surfaces as gorm.ErrDuplicatedKey.
func (d *DB) CreateWishlist(entry *models.Wishlist) error {
	return d.db.Create(entry).Error
}
