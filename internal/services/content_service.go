package services

import (
	"time"

	"fitpath_backend/internal/models"
	"fitpath_backend/internal/repositories"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ForumPageSize matches the feed the frontend paginates six posts at a time.
const ForumPageSize = 6

type ReviewService interface {
	Create(db *gorm.DB, req *dto.CreateReviewRequest) (*models.Review, error)
	ListAll(db *gorm.DB) ([]models.Review, error)
}

type ForumService interface {
	Create(db *gorm.DB, authorRole models.UserRole, req *dto.CreateForumPostRequest) (*models.ForumPost, error)
	Page(db *gorm.DB, page, limit int) (*dto.ForumPageResponse, error)
	Latest(db *gorm.DB, limit int) ([]models.ForumPost, error)
	Vote(db *gorm.DB, postID, direction string) error
}

type NewsletterService interface {
	Subscribe(db *gorm.DB, req *dto.SubscribeRequest) error
	ListSubscribers(db *gorm.DB) ([]models.NewsletterSubscriber, error)
}

type ClassService interface {
	Create(db *gorm.DB, req *dto.CreateClassRequest) (*models.Class, error)
	ListAll(db *gorm.DB) ([]models.Class, error)
	Page(db *gorm.DB, page, limit int) (*dto.ClassPageResponse, error)
}

// --- reviews ---

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) Create(db *gorm.DB, req *dto.CreateReviewRequest) (*models.Review, error) {
	review := &models.Review{
		UserEmail:  req.UserEmail,
		UserName:   req.UserName,
		UserImage:  req.UserImage,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return review, nil
}

func (s *reviewService) ListAll(db *gorm.DB) ([]models.Review, error) {
	reviews, err := s.reviewRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return reviews, nil
}

// --- forum ---

type forumService struct {
	forumRepo repositories.ForumRepository
}

func NewForumService(forumRepo repositories.ForumRepository) ForumService {
	return &forumService{forumRepo: forumRepo}
}

func (s *forumService) Create(db *gorm.DB, authorRole models.UserRole, req *dto.CreateForumPostRequest) (*models.ForumPost, error) {
	post := &models.ForumPost{
		Title:       req.Title,
		Content:     req.Content,
		AuthorEmail: req.AuthorEmail,
		AuthorName:  req.AuthorName,
		AuthorRole:  authorRole,
	}
	if err := s.forumRepo.Create(db, post); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return post, nil
}

func (s *forumService) Page(db *gorm.DB, page, limit int) (*dto.ForumPageResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = ForumPageSize
	}

	posts, total, err := s.forumRepo.FindPage(db, page, limit)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	return &dto.ForumPageResponse{
		Posts:      posts,
		Total:      total,
		Page:       page,
		TotalPages: calculateTotalPages(total, limit),
	}, nil
}

func (s *forumService) Latest(db *gorm.DB, limit int) ([]models.ForumPost, error) {
	if limit <= 0 {
		limit = ForumPageSize
	}
	posts, err := s.forumRepo.FindLatest(db, limit)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return posts, nil
}

func (s *forumService) Vote(db *gorm.DB, postID, direction string) error {
	if direction != "up" && direction != "down" {
		return apperrors.NewBadRequestError("Vote direction must be 'up' or 'down'")
	}
	if err := s.forumRepo.Vote(db, postID, direction == "up"); err != nil {
		if err == repositories.ErrForumPostNotFound {
			return apperrors.ErrNotFound(err, "forum", "Forum post not found")
		}
		return apperrors.StoreError(err)
	}
	return nil
}

// --- newsletter ---

type newsletterService struct {
	newsletterRepo repositories.NewsletterRepository
}

func NewNewsletterService(newsletterRepo repositories.NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepo: newsletterRepo}
}

func (s *newsletterService) Subscribe(db *gorm.DB, req *dto.SubscribeRequest) error {
	sub := &models.NewsletterSubscriber{
		Name:         req.Name,
		Email:        req.Email,
		SubscribedAt: time.Now(),
	}
	if err := s.newsletterRepo.Subscribe(db, sub); err != nil {
		if err == repositories.ErrAlreadySubscribed {
			return apperrors.ErrConflict("newsletter", "Email already subscribed")
		}
		return apperrors.StoreError(err)
	}
	return nil
}

func (s *newsletterService) ListSubscribers(db *gorm.DB) ([]models.NewsletterSubscriber, error) {
	subs, err := s.newsletterRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return subs, nil
}

// --- classes ---

type classService struct {
	classRepo repositories.ClassRepository
}

func NewClassService(classRepo repositories.ClassRepository) ClassService {
	return &classService{classRepo: classRepo}
}

func (s *classService) Create(db *gorm.DB, req *dto.CreateClassRequest) (*models.Class, error) {
	class := &models.Class{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
	}
	if err := s.classRepo.Create(db, class); err != nil {
		return nil, apperrors.StoreError(err)
	}
	return class, nil
}

func (s *classService) ListAll(db *gorm.DB) ([]models.Class, error) {
	classes, err := s.classRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return classes, nil
}

func (s *classService) Page(db *gorm.DB, page, limit int) (*dto.ClassPageResponse, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = ForumPageSize
	}

	classes, total, err := s.classRepo.FindPage(db, page, limit)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}

	return &dto.ClassPageResponse{
		Classes:    classes,
		Total:      total,
		Page:       page,
		TotalPages: calculateTotalPages(total, limit),
	}, nil
}

func calculateTotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
