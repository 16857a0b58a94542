package handlers

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	ApplicationHandler *ApplicationHandler
	SlotHandler        *SlotHandler
	PaymentHandler     *PaymentHandler
	ReviewHandler      *ReviewHandler
	ForumHandler       *ForumHandler
	NewsletterHandler  *NewsletterHandler
	ClassHandler       *ClassHandler
}
