package database

import (
	"metro-homes/internal/models"
)

// GetUserByEmail retrieves a user by email.
func (d *DB) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := d.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers retrieves every user, newest first.
func (d *DB) ListUsers() ([]models.User, error) {
	var users []models.User
	err := d.db.Order("created_at DESC").Find(&users).Error
	return users, err
}

// CreateUser inserts a new user record.
func (d *DB) CreateUser(user *models.User) error {
	return d.db.Create(user).Error
}

// UpdateUserStatus sets only the status field for the given email.
func (d *DB) UpdateUserStatus(email string, status models.UserStatus) (int64, error) {
	res := d.db.Model(&models.User{}).Where("email = ?", email).
		Update("status", status)
	return res.RowsAffected, res.Error
}

// UpdateUserByEmail applies the given role/status changes to a user.
func (d *DB) UpdateUserByEmail(email string, updates map[string]interface{}) (int64, error) {
	res := d.db.Model(&models.User{}).Where("email = ?", email).Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteUserByEmail removes a user record.
func (d *DB) DeleteUserByEmail(email string) (int64, error) {
	res := d.db.Where("email = ?", email).Delete(&models.User{})
	return res.RowsAffected, res.Error
}
