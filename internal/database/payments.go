package database

import (
	"metro-homes/internal/models"
)

// ListPayments retrieves every payment, newest first.
func (d *DB) ListPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := d.db.Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

// ListPaymentsByEmail retrieves the buyer's payment history.
func (d *DB) ListPaymentsByEmail(email string) ([]models.Payment, error) {
	var payments []models.Payment
	err := d.db.Where("email = ?", email).
		Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

// ListPaymentsByAgent retrieves payments for properties sold by the agent.
func (d *DB) ListPaymentsByAgent(agentEmail string) ([]models.Payment, error) {
	var payments []models.Payment
	err := d.db.Where("agent_email = ?", agentEmail).
		Order("paid_at DESC").Find(&payments).Error
	return payments, err
}

// CreatePayment inserts the immutable payment record.
func (d *DB) CreatePayment(payment *models.Payment) error {
	return d.db.Create(payment).Error
}
