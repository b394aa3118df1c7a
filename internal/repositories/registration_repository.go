package repositories

import (
	"errors"
	"time"

	"anchors_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPendingRegistrationNotFound = errors.New("pending registration not found")

type RegistrationRepository interface {
	// Upsert replaces any pending registration for the same email. Restarting
	// the handshake invalidates the previous code.
	Upsert(reg *models.PendingRegistration) error
	FindByID(id string) (*models.PendingRegistration, error)
	Delete(id string) error
	DeleteExpired(now time.Time) error
}

type RegistrationRepositoryImpl struct {
	db *gorm.DB
}

func NewRegistrationRepository(db *gorm.DB) RegistrationRepository {
	return &RegistrationRepositoryImpl{db: db}
}

func (r *RegistrationRepositoryImpl) Upsert(reg *models.PendingRegistration) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", reg.Email).Delete(&models.PendingRegistration{}).Error; err != nil {
			return err
		}
		return tx.Create(reg).Error
	})
}

func (r *RegistrationRepositoryImpl) FindByID(id string) (*models.PendingRegistration, error) {
	var reg models.PendingRegistration
	err := r.db.First(&reg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPendingRegistrationNotFound
		}
		return nil, err
	}
	return &reg, nil
}

func (r *RegistrationRepositoryImpl) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.PendingRegistration{}).Error
}

func (r *RegistrationRepositoryImpl) DeleteExpired(now time.Time) error {
	return r.db.Where("expires_at < ?", now).Delete(&models.PendingRegistration{}).Error
}
