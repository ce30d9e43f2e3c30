package database

import (
	"strings"
	"time"

	"metro-homes/internal/models"
)

// ListAllProperties retrieves every listing regardless of status.
func (d *DB) ListAllProperties() ([]models.Property, error) {
	var properties []models.Property
	err := d.db.Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// SearchVerifiedProperties returns Verified listings whose location
// contains the search term (case-insensitive), ordered by price spread.
// The spread does not exist on the stored row, so it is computed in the
// ORDER BY expression.
func (d *DB) SearchVerifiedProperties(search, sortOrder string) ([]models.Property, error) {
	order := "(max_price - min_price) ASC"
	if sortOrder == "desc" {
		order = "(max_price - min_price) DESC"
	}

	var properties []models.Property
	err := d.db.
		Where("status = ?", models.PropertyStatusVerified).
		Where("LOWER(location) LIKE ?", "%"+strings.ToLower(search)+"%").
		Order(order).
		Find(&properties).Error
	return properties, err
}

// GetPropertyByID retrieves a listing by id.
func (d *DB) GetPropertyByID(id string) (*models.Property, error) {
	var property models.Property
	if err := d.db.Where("id = ?", id).First(&property).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// ListPropertiesByAgent retrieves listings owned by the given agent.
func (d *DB) ListPropertiesByAgent(email string) ([]models.Property, error) {
	var properties []models.Property
	err := d.db.Where("agent_email = ?", email).
		Order("created_at DESC").Find(&properties).Error
	return properties, err
}

// CreateProperty inserts a new listing.
func (d *DB) CreateProperty(property *models.Property) error {
	return d.db.Create(property).Error
}

// UpdateProperty applies field changes to a listing by id.
func (d *DB) UpdateProperty(id string, updates map[string]interface{}) (int64, error) {
	res := d.db.Model(&models.Property{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

// DeletePropertyByID removes a listing.
func (d *DB) DeletePropertyByID(id string) (int64, error) {
	res := d.db.Where("id = ?", id).Delete(&models.Property{})
	return res.RowsAffected, res.Error
}

// UpdatePropertyStatus sets only the moderation status.
func (d *DB) UpdatePropertyStatus(id string, status models.PropertyStatus) (int64, error) {
	res := d.db.Model(&models.Property{}).Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// AdvertiseProperty flags a listing as advertised and stamps the time.
func (d *DB) AdvertiseProperty(id string) (int64, error) {
	res := d.db.Model(&models.Property{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_advertised": true,
			"advertised_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

// ListAdvertisedProperties retrieves listings flagged for advertising.
func (d *DB) ListAdvertisedProperties() ([]models.Property, error) {
	var properties []models.Property
	err := d.db.Where("is_advertised = ?", true).
		Order("advertised_at DESC").Find(&properties).Error
	return properties, err
}
