package user

import (
	"context"
	"testing"

	"clinicportal/models"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	users map[string]*models.User // keyed by email
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*models.User)}
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) (string, error) {
	user.ID = primitive.NewObjectID()
	f.users[user.Email] = user
	return user.ID.Hex(), nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, id, role string) error {
	for _, u := range f.users {
		if u.ID.Hex() == id {
			u.Role = role
			return nil
		}
	}
	// Upsert semantics: an unknown id creates a bare role document.
	f.users[id] = &models.User{ID: primitive.NewObjectID(), Role: role}
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	for email, u := range f.users {
		if u.ID.Hex() == id {
			delete(f.users, email)
			return nil
		}
	}
	return nil
}

func TestIsAdminFalseForMissingUser(t *testing.T) {
	svc := &DefaultUserService{Repo: newFakeUserRepo()}

	isAdmin, err := svc.IsAdmin(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	require.False(t, isAdmin)
}

func TestIsAdminFalseForNonAdminRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Create(context.Background(), &models.User{Email: "pat@example.com"})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(context.Background(), "pat@example.com")
	require.NoError(t, err)
	require.False(t, isAdmin)
}

func TestIsAdminTrueOnlyForAdminRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	id, err := svc.Create(context.Background(), &models.User{Email: "boss@example.com"})
	require.NoError(t, err)

	require.NoError(t, svc.Promote(context.Background(), id))

	isAdmin, err := svc.IsAdmin(context.Background(), "boss@example.com")
	require.NoError(t, err)
	require.True(t, isAdmin)
}

func TestCreateStripsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	_, err := svc.Create(context.Background(), &models.User{Email: "sneaky@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	isAdmin, err := svc.IsAdmin(context.Background(), "sneaky@example.com")
	require.NoError(t, err)
	require.False(t, isAdmin, "role must not be grantable through user creation")
}

func TestDemoteRemovesUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := &DefaultUserService{Repo: repo}

	id, err := svc.Create(context.Background(), &models.User{Email: "temp@example.com"})
	require.NoError(t, err)
	require.NoError(t, svc.Promote(context.Background(), id))
	require.NoError(t, svc.Demote(context.Background(), id))

	isAdmin, err := svc.IsAdmin(context.Background(), "temp@example.com")
	require.NoError(t, err)
	require.False(t, isAdmin)
}
