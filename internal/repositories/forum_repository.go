package repositories

import (
	"errors"

	"fitpath_backend/internal/models"

	"gorm.io/gorm"
)

var ErrForumPostNotFound = errors.New("forum post not found")

type ForumRepository interface {
	Create(db *gorm.DB, post *models.ForumPost) error
	FindPage(db *gorm.DB, page, limit int) ([]models.ForumPost, int64, error)
	FindLatest(db *gorm.DB, limit int) ([]models.ForumPost, error)
	Vote(db *gorm.DB, id string, up bool) error
}

type ForumRepositoryImpl struct{}

func NewForumRepository() ForumRepository {
	return &ForumRepositoryImpl{}
}

func (r *ForumRepositoryImpl) Create(db *gorm.DB, post *models.ForumPost) error {
	return db.Create(post).Error
}

func (r *ForumRepositoryImpl) FindPage(db *gorm.DB, page, limit int) ([]models.ForumPost, int64, error) {
	var posts []models.ForumPost
	var total int64

	if err := db.Model(&models.ForumPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, total, err
}

func (r *ForumRepositoryImpl) FindLatest(db *gorm.DB, limit int) ([]models.ForumPost, error) {
	var posts []models.ForumPost
	err := db.Order("created_at DESC").Limit(limit).Find(&posts).Error
	return posts, err
}

func (r *ForumRepositoryImpl) Vote(db *gorm.DB, id string, up bool) error {
	column := "downvotes"
	if up {
		column = "upvotes"
	}

	res := db.Model(&models.ForumPost{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrForumPostNotFound
	}
	return nil
}
