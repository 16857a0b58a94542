package services_test

import (
	"net/http"
	"testing"

	"fitpath_backend/internal/models"
	"fitpath_backend/internal/services"
	"fitpath_backend/internal/services/dto"
	"fitpath_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture() (services.UserService, *fakeUserRepo) {
	users := newFakeUserRepo()
	return services.NewUserService(users), users
}

func TestCreateOrGet_Idempotent(t *testing.T) {
	svc, users := newUserFixture()

	first, created, err := svc.CreateOrGet(nil, &dto.CreateUserRequest{
		Name:  "Member",
		Email: "member@example.com",
	})
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "member", first.Role)

	second, created, err := svc.CreateOrGet(nil, &dto.CreateUserRequest{
		Name:  "Different Name",
		Email: "member@example.com",
	})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	// The stored record is untouched by the repeated insert.
	assert.Equal(t, "Member", second.Name)
	assert.Len(t, users.byEmail, 1)
}

func TestGetRoleByEmail_UnknownIsNullNotError(t *testing.T) {
	svc, _ := newUserFixture()

	resp, err := svc.GetRoleByEmail(nil, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, resp.Role)
}

func TestGetRoleByEmail_Known(t *testing.T) {
	svc, users := newUserFixture()
	users.add(&models.User{Email: "t@example.com", Name: "T", Role: models.UserRoleTrainer})

	resp, err := svc.GetRoleByEmail(nil, "t@example.com")
	require.NoError(t, err)
	require.NotNil(t, resp.Role)
	assert.Equal(t, "trainer", *resp.Role)
}

func TestListTrainers_FiltersByRole(t *testing.T) {
	svc, users := newUserFixture()
	users.add(&models.User{Email: "t@example.com", Name: "T", Role: models.UserRoleTrainer})
	users.add(&models.User{Email: "m@example.com", Name: "M", Role: models.UserRoleMember})

	out, err := svc.ListTrainers(nil)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "t@example.com", out[0].Email)
}

func TestGetTrainerByID_MemberIsNotFound(t *testing.T) {
	svc, users := newUserFixture()
	member := users.add(&models.User{Email: "m@example.com", Name: "M", Role: models.UserRoleMember})

	_, err := svc.GetTrainerByID(nil, member.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}

func TestDemoteTrainer(t *testing.T) {
	svc, users := newUserFixture()
	users.add(&models.User{Email: "t@example.com", Name: "T", Role: models.UserRoleTrainer})

	require.NoError(t, svc.DemoteTrainer(nil, "t@example.com"))
	assert.Equal(t, models.UserRoleMember, users.byEmail["t@example.com"].Role)
}

func TestDemoteTrainer_MemberIsNotFound(t *testing.T) {
	svc, users := newUserFixture()
	users.add(&models.User{Email: "m@example.com", Name: "M", Role: models.UserRoleMember})

	err := svc.DemoteTrainer(nil, "m@example.com")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
	assert.Equal(t, models.UserRoleMember, users.byEmail["m@example.com"].Role)
}

func TestDemoteTrainer_Unknown(t *testing.T) {
	svc, _ := newUserFixture()

	err := svc.DemoteTrainer(nil, "nobody@example.com")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)
}
