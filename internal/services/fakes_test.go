package services_test

import (
	"context"
	"errors"
	"fmt"

	"fitpath_backend/internal/email"
	"fitpath_backend/internal/models"
	"fitpath_backend/internal/payments"
	"fitpath_backend/internal/repositories"

	"gorm.io/gorm"
)

// In-memory fakes for the repository interfaces. The db argument is ignored;
// services never touch gorm directly.

type fakeUserRepo struct {
	byEmail map[string]*models.User
	nextID  int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*models.User)}
}

func (r *fakeUserRepo) add(user *models.User) *models.User {
	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%d", r.nextID)
	}
	r.byEmail[user.Email] = user
	return user
}

func (r *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	if _, ok := r.byEmail[user.Email]; ok {
		return repositories.ErrUserAlreadyExists
	}
	r.add(user)
	return nil
}

func (r *fakeUserRepo) Update(_ *gorm.DB, user *models.User) error {
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeUserRepo) UpdateRole(_ *gorm.DB, email string, role models.UserRole) error {
	u, ok := r.byEmail[email]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) FindAll(_ *gorm.DB) ([]models.User, error) {
	var out []models.User
	for _, u := range r.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (r *fakeUserRepo) FindByRole(_ *gorm.DB, role models.UserRole) ([]models.User, error) {
	var out []models.User
	for _, u := range r.byEmail {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) CountByRole(_ *gorm.DB, role models.UserRole) (int64, error) {
	users, _ := r.FindByRole(nil, role)
	return int64(len(users)), nil
}

type fakeApplicationRepo struct {
	byID     map[string]*models.TrainerApplication
	rejected []models.RejectedApplication
	users    *fakeUserRepo
	nextID   int
}

func newFakeApplicationRepo(users *fakeUserRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		byID:  make(map[string]*models.TrainerApplication),
		users: users,
	}
}

func (r *fakeApplicationRepo) Create(_ *gorm.DB, app *models.TrainerApplication) error {
	r.nextID++
	app.ID = fmt.Sprintf("app-%d", r.nextID)
	app.Status = models.ApplicationStatusPending
	r.byID[app.ID] = app
	return nil
}

func (r *fakeApplicationRepo) FindByID(_ *gorm.DB, id string) (*models.TrainerApplication, error) {
	if app, ok := r.byID[id]; ok {
		return app, nil
	}
	return nil, repositories.ErrApplicationNotFound
}

func (r *fakeApplicationRepo) FindPendingByEmail(_ *gorm.DB, email string) ([]models.TrainerApplication, error) {
	var out []models.TrainerApplication
	for _, app := range r.byID {
		if app.Email == email {
			out = append(out, *app)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindAllPending(_ *gorm.DB) ([]models.TrainerApplication, error) {
	var out []models.TrainerApplication
	for _, app := range r.byID {
		out = append(out, *app)
	}
	return out, nil
}

func (r *fakeApplicationRepo) FindRejectedByEmail(_ *gorm.DB, email string) ([]models.RejectedApplication, error) {
	var out []models.RejectedApplication
	for _, rej := range r.rejected {
		if rej.Email == email {
			out = append(out, rej)
		}
	}
	return out, nil
}

func (r *fakeApplicationRepo) Promote(_ *gorm.DB, app *models.TrainerApplication) (*models.User, error) {
	if _, ok := r.byID[app.ID]; !ok {
		return nil, repositories.ErrApplicationNotFound
	}

	user, err := r.users.FindByEmail(nil, app.Email)
	if err != nil {
		user = r.users.add(&models.User{
			Email:  app.Email,
			Name:   app.Name,
			Skills: app.Skills,
			Image:  app.Image,
			Age:    app.Age,
		})
	}
	user.Role = models.UserRoleTrainer

	delete(r.byID, app.ID)
	return user, nil
}

func (r *fakeApplicationRepo) Reject(_ *gorm.DB, app *models.TrainerApplication, feedback string) (*models.RejectedApplication, error) {
	if _, ok := r.byID[app.ID]; !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	rejected := models.RejectedApplication{
		Name:      app.Name,
		Email:     app.Email,
		Feedback:  feedback,
		Status:    models.ApplicationStatusRejected,
		AppliedID: app.ID,
	}
	r.rejected = append(r.rejected, rejected)
	delete(r.byID, app.ID)
	return &rejected, nil
}

type fakeSlotRepo struct {
	byID   map[string]*models.Slot
	nextID int
}

func newFakeSlotRepo() *fakeSlotRepo {
	return &fakeSlotRepo{byID: make(map[string]*models.Slot)}
}

func (r *fakeSlotRepo) add(slot *models.Slot) *models.Slot {
	if slot.ID == "" {
		r.nextID++
		slot.ID = fmt.Sprintf("slot-%d", r.nextID)
	}
	r.byID[slot.ID] = slot
	return slot
}

func (r *fakeSlotRepo) Create(_ *gorm.DB, slot *models.Slot) error {
	r.add(slot)
	return nil
}

func (r *fakeSlotRepo) FindByID(_ *gorm.DB, id string) (*models.Slot, error) {
	if slot, ok := r.byID[id]; ok {
		return slot, nil
	}
	return nil, repositories.ErrSlotNotFound
}

func (r *fakeSlotRepo) FindAvailable(_ *gorm.DB) ([]models.Slot, error) {
	var out []models.Slot
	for _, slot := range r.byID {
		if slot.IsAvailable {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) FindByTrainerEmail(_ *gorm.DB, email string) ([]models.Slot, error) {
	var out []models.Slot
	for _, slot := range r.byID {
		if slot.TrainerEmail == email {
			out = append(out, *slot)
		}
	}
	return out, nil
}

func (r *fakeSlotRepo) IncrementBookings(_ *gorm.DB, id string) error {
	slot, ok := r.byID[id]
	if !ok {
		return repositories.ErrBookingFailed
	}
	slot.TotalBookings++
	return nil
}

func (r *fakeSlotRepo) Delete(_ *gorm.DB, id string) error {
	if _, ok := r.byID[id]; !ok {
		return repositories.ErrSlotNotFound
	}
	delete(r.byID, id)
	return nil
}

type fakeBookingRepo struct {
	bookings []*models.Booking
}

func (r *fakeBookingRepo) Create(_ *gorm.DB, booking *models.Booking) error {
	booking.ID = fmt.Sprintf("booking-%d", len(r.bookings)+1)
	r.bookings = append(r.bookings, booking)
	return nil
}

func (r *fakeBookingRepo) FindByUser(_ *gorm.DB, userID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) FindBySlot(_ *gorm.DB, slotID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.SlotID == slotID {
			out = append(out, *b)
		}
	}
	return out, nil
}

type fakePaymentRepo struct {
	payments []*models.Payment
}

func (r *fakePaymentRepo) Create(_ *gorm.DB, payment *models.Payment) error {
	payment.ID = fmt.Sprintf("payment-%d", len(r.payments)+1)
	r.payments = append(r.payments, payment)
	return nil
}

func (r *fakePaymentRepo) FindByUserEmail(_ *gorm.DB, email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range r.payments {
		if p.UserEmail == email {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *fakePaymentRepo) CountAll(_ *gorm.DB) (int64, error) {
	return int64(len(r.payments)), nil
}

func (r *fakePaymentRepo) SumAmount(_ *gorm.DB) (int64, error) {
	var total int64
	for _, p := range r.payments {
		total += p.Price
	}
	return total, nil
}

type fakeClassRepo struct {
	byName       map[string]*models.Class
	incrementErr error
}

func newFakeClassRepo() *fakeClassRepo {
	return &fakeClassRepo{byName: make(map[string]*models.Class)}
}

func (r *fakeClassRepo) Create(_ *gorm.DB, class *models.Class) error {
	class.ID = fmt.Sprintf("class-%d", len(r.byName)+1)
	class.BookingCount = 0
	r.byName[class.Name] = class
	return nil
}

func (r *fakeClassRepo) FindAll(_ *gorm.DB) ([]models.Class, error) {
	var out []models.Class
	for _, c := range r.byName {
		out = append(out, *c)
	}
	return out, nil
}

func (r *fakeClassRepo) FindPage(_ *gorm.DB, page, limit int) ([]models.Class, int64, error) {
	all, _ := r.FindAll(nil)
	return all, int64(len(all)), nil
}

func (r *fakeClassRepo) IncrementBookingCount(_ *gorm.DB, name string) (bool, error) {
	if r.incrementErr != nil {
		return false, r.incrementErr
	}
	class, ok := r.byName[name]
	if !ok {
		return false, nil
	}
	class.BookingCount++
	return true, nil
}

// fakeGateway records the last intent request and can be forced to fail.
type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (*payments.Intent, error) {
	g.lastAmount = amount
	g.lastCurrency = currency
	if g.err != nil {
		return nil, g.err
	}
	return &payments.Intent{
		ID:           "pi_test",
		ClientSecret: "pi_test_secret",
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// fakeMailer records outbound messages.
type fakeMailer struct {
	sent []*email.Message
	err  error
}

func (m *fakeMailer) Send(msg *email.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

var errBoom = errors.New("boom")
