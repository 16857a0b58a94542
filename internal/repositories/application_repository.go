package repositories

import (
	"errors"
	"time"

	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.TrainerApplication) error
	FindByID(db *gorm.DB, id string) (*models.TrainerApplication, error)
	FindPendingByEmail(db *gorm.DB, email string) ([]models.TrainerApplication, error)
	FindAllPending(db *gorm.DB) ([]models.TrainerApplication, error)
	FindRejectedByEmail(db *gorm.DB, email string) ([]models.RejectedApplication, error)

	// Promote moves a pending application into the users table (role trainer)
	// and removes it, atomically.
	Promote(db *gorm.DB, app *models.TrainerApplication) (*models.User, error)

	// Reject writes the rejection audit record and removes the pending
	// application, atomically.
	Reject(db *gorm.DB, app *models.TrainerApplication, feedback string) (*models.RejectedApplication, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.TrainerApplication) error {
	app.Status = models.ApplicationStatusPending
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.TrainerApplication, error) {
	var app models.TrainerApplication
	if err := db.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindPendingByEmail(db *gorm.DB, email string) ([]models.TrainerApplication, error) {
	var apps []models.TrainerApplication
	err := db.Where("email = ? AND status = ?", email, models.ApplicationStatusPending).Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindAllPending(db *gorm.DB) ([]models.TrainerApplication, error) {
	var apps []models.TrainerApplication
	err := db.Where("status = ?", models.ApplicationStatusPending).Order("created_at ASC").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) FindRejectedByEmail(db *gorm.DB, email string) ([]models.RejectedApplication, error) {
	var apps []models.RejectedApplication
	err := db.Where("email = ?", email).Order("timestamp DESC").Find(&apps).Error
	return apps, err
}

// Promote runs the two-table move in one transaction. A retry after a failed
// attempt sees the application still pending, so the operation is safe to
// re-run.
func (r *ApplicationRepositoryImpl) Promote(db *gorm.DB, app *models.TrainerApplication) (*models.User, error) {
	var user models.User

	err := db.Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", app.Email).First(&user).Error
		switch {
		case err == nil:
			user.Role = models.UserRoleTrainer
			if user.Image == "" {
				user.Image = app.Image
			}
			if len(user.Skills) == 0 {
				user.Skills = app.Skills
			}
			if err := tx.Save(&user).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			user = models.User{
				Email:  app.Email,
				Name:   app.Name,
				Role:   models.UserRoleTrainer,
				Skills: app.Skills,
				Image:  app.Image,
				Age:    app.Age,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
		default:
			return err
		}

		res := tx.Where("id = ?", app.ID).Delete(&models.TrainerApplication{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ApplicationRepositoryImpl) Reject(db *gorm.DB, app *models.TrainerApplication, feedback string) (*models.RejectedApplication, error) {
	rejected := &models.RejectedApplication{
		Name:      app.Name,
		Email:     app.Email,
		Feedback:  feedback,
		Status:    models.ApplicationStatusRejected,
		AppliedID: app.ID,
		Timestamp: time.Now(),
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rejected).Error; err != nil {
			return err
		}
		res := tx.Where("id = ?", app.ID).Delete(&models.TrainerApplication{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrApplicationNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rejected, nil
}
