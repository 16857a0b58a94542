package services

import "fitpath_backend/internal/email"

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	UserService        UserService
	ApplicationService ApplicationService
	SlotService        SlotService
	PaymentService     PaymentService
	ReviewService      ReviewService
	ForumService       ForumService
	NewsletterService  NewsletterService
	ClassService       ClassService
	EmailService       email.Provider
}
