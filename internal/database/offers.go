package database

import (
	"metro-homes/internal/models"
)

// ListOffers retrieves every offer, newest first.
func (d *DB) ListOffers() ([]models.Offer, error) {
	var offers []models.Offer
	err := d.db.Order("offer_date DESC").Find(&offers).Error
	return offers, err
}

// ListOffersByEmail retrieves offers made by the given buyer.
func (d *DB) ListOffersByEmail(email string) ([]models.Offer, error) {
	var offers []models.Offer
	err := d.db.Where("email = ?", email).
		Order("offer_date DESC").Find(&offers).Error
	return offers, err
}

// ListOffersByAgent retrieves offers received on the agent's listings.
func (d *DB) ListOffersByAgent(agentEmail string) ([]models.Offer, error) {
	var offers []models.Offer
	err := d.db.Where("agent_email = ?", agentEmail).
		Order("offer_date DESC").Find(&offers).Error
	return offers, err
}

// GetOfferByBuyer retrieves the offer for (email, property), if any.
func (d *DB) GetOfferByBuyer(email, propertyID string) (*models.Offer, error) {
	var offer models.Offer
	err := d.db.Where("email = ? AND property_id = ?", email, propertyID).
		First(&offer).Error
	if err != nil {
		return nil, err
	}
	return &offer, nil
}

// CreateOffer inserts an offer. Duplicates lose at the unique index and
// surface as gorm.ErrDuplicatedKey.
func (d *DB) CreateOffer(offer *models.Offer) error {
	return d.db.Create(offer).Error
}

// UpdateOfferStatus sets only the status field.
func (d *DB) UpdateOfferStatus(id string, status models.OfferStatus) (int64, error) {
	res := d.db.Model(&models.Offer{}).Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
