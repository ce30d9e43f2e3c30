package database

import (
	"metro-homes/internal/models"
)

// ListReviews retrieves every review, newest first.
func (d *DB) ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := d.db.Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// ListReviewsByAuthor retrieves reviews written by the given email.
func (d *DB) ListReviewsByAuthor(email string) ([]models.Review, error) {
	var reviews []models.Review
	err := d.db.Where("author_email = ?", email).
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// ListReviewsByProperty retrieves reviews for the given listing.
func (d *DB) ListReviewsByProperty(propertyID string) ([]models.Review, error) {
	var reviews []models.Review
	err := d.db.Where("property_id = ?", propertyID).
		Order("created_at DESC").Find(&reviews).Error
	return reviews, err
}

// CreateReview inserts a review.
func (d *DB) CreateReview(review *models.Review) error {
	return d.db.Create(review).Error
}

// DeleteReviewByID removes a review. Reviews have no update path.
func (d *DB) DeleteReviewByID(id string) (int64, error) {
	res := d.db.Where("id = ?", id).Delete(&models.Review{})
	return res.RowsAffected, res.Error
}
