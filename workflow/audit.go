package workflow

import (
	"errors"
	"time"

	"los/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// appendLog writes one activity row inside the caller's transaction. Every
// state-changing operation goes through here; a failed write surfaces as
// PartialFailure and rolls the whole operation back, so a mutation can never
// commit without its audit entry.
func appendLog(tx *gorm.DB, applicationID uint, actionType, comment string, actorID uint) error {
	entry := models.ActivityLog{
		EventID:       uuid.NewString(),
		ApplicationID: applicationID,
		ActionType:    actionType,
		Comment:       comment,
		PerformedBy:   actorID,
		PerformedAt:   time.Now(),
	}

	if err := tx.Create(&entry).Error; err != nil {
		return PartialFailure(err, "activity log write failed for application %d", applicationID)
	}
	return nil
}

// Activities returns the full audit history of an application, newest-first.
func Activities(db *gorm.DB, applicationID uint) ([]models.ActivityLog, error) {
	if err := db.First(&models.Application{}, applicationID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NotFound("application %d not found", applicationID)
		}
		return nil, Unavailable(err, "failed to load application")
	}

	logs := []models.ActivityLog{}
	err := db.Where("application_id = ?", applicationID).
		Order("performed_at DESC").
		Order("id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, Unavailable(err, "failed to load activities")
	}
	return logs, nil
}
