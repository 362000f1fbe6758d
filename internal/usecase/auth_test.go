package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/repo/mongodb"
)

const testSecret = "unit-test-secret"

type fakeUsersRepo struct {
	users map[string]models.User
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{users: make(map[string]models.User)}
}

func (r *fakeUsersRepo) Create(ctx context.Context, user models.User) (string, error) {
	user.Email = strings.ToLower(user.Email)
	for _, u := range r.users {
		if u.Email == user.Email {
			return "", models.ErrDuplicateEmail
		}
	}
	id := models.NewObjectID()
	user.ID = id
	r.users[id.String()] = user
	return id.String(), nil
}

func (r *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == strings.ToLower(email) {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}

func (r *fakeUsersRepo) TouchLogin(ctx context.Context, id models.ObjectID) error {
	return nil
}

func (r *fakeUsersRepo) FindByID(ctx context.Context, docID string) (*models.User, error) {
	u, ok := r.users[docID]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &u, nil
}

func (r *fakeUsersRepo) Insert(ctx context.Context, user models.User, opts ...*options.InsertOneOptions) (string, error) {
	return r.Create(ctx, user)
}

func (r *fakeUsersRepo) InsertMany(ctx context.Context, users []models.User, opts ...*options.InsertManyOptions) ([]string, error) {
	return nil, nil
}

func (r *fakeUsersRepo) Find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.User, error) {
	return nil, nil
}

func (r *fakeUsersRepo) FindOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (*models.User, error) {
	return nil, models.ErrNotFound
}

func (r *fakeUsersRepo) UpdateOne(ctx context.Context, filter bson.M, user models.User, opts ...*options.FindOneAndUpdateOptions) (*models.User, error) {
	return nil, models.ErrNotFound
}

func (r *fakeUsersRepo) UpdateMany(ctx context.Context, filter bson.M, data any, opts ...*options.UpdateOptions) error {
	return nil
}

func (r *fakeUsersRepo) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	return 0, nil
}

func (r *fakeUsersRepo) Count(ctx context.Context, filter bson.M, opts ...*options.CountOptions) (int64, error) {
	return int64(len(r.users)), nil
}

func (r *fakeUsersRepo) PaginateWithTotal(ctx context.Context, filter bson.M, limit int64, skip int64, opts ...*options.FindOptions) (*mongodb.PaginateWithTotal[models.User], error) {
	return &mongodb.PaginateWithTotal[models.User]{}, nil
}

func newAuthForTest() (AuthUsecase, *fakeUsersRepo) {
	conf := &config.Config{}
	conf.Auth.JWTSecret = testSecret
	conf.Auth.TokenTTL = time.Hour
	repo := newFakeUsersRepo()
	return NewAuthUsecase(conf, repo), repo
}

func signup(t *testing.T, uc AuthUsecase) *models.LoginResponse {
	t.Helper()
	resp, err := uc.Signup(context.Background(), models.SignupRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestSignupLoginValidate(t *testing.T) {
	t.Parallel()
	uc, _ := newAuthForTest()
	created := signup(t, uc)

	user, err := uc.ValidateToken(context.Background(), created.Token)
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)

	resp, err := uc.Login(context.Background(), models.LoginRequest{
		Email:    "Asha@Example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, created.User.ID, resp.User.ID)

	_, err = uc.Login(context.Background(), models.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = uc.Login(context.Background(), models.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSignupDuplicateEmail(t *testing.T) {
	t.Parallel()
	uc, _ := newAuthForTest()
	signup(t, uc)

	_, err := uc.Signup(context.Background(), models.SignupRequest{
		Name:     "Asha Again",
		Email:    "asha@example.com",
		Password: "another-pass",
	})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)
}

// An HMAC-valid token with missing or mistyped claims must come back as an
// error, never a panic.
func TestValidateTokenRejectsMalformedClaims(t *testing.T) {
	t.Parallel()
	uc, _ := newAuthForTest()

	cases := []struct {
		name   string
		claims jwt.MapClaims
	}{
		{"empty claims", jwt.MapClaims{}},
		{"missing user_id", jwt.MapClaims{
			"email": "asha@example.com",
			"exp":   float64(time.Now().Add(time.Hour).Unix()),
			"iat":   float64(time.Now().Unix()),
		}},
		{"numeric user_id", jwt.MapClaims{
			"user_id": 42,
			"email":   "asha@example.com",
			"exp":     float64(time.Now().Add(time.Hour).Unix()),
			"iat":     float64(time.Now().Unix()),
		}},
		{"string exp", jwt.MapClaims{
			"user_id": "abc",
			"email":   "asha@example.com",
			"exp":     "tomorrow",
			"iat":     float64(time.Now().Unix()),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, tc.claims)
			signed, err := token.SignedString([]byte(testSecret))
			require.NoError(t, err)

			_, err = uc.ValidateToken(context.Background(), signed)
			assert.ErrorContains(t, err, "invalid token")
		})
	}
}

func TestValidateTokenRejectsExpiredAndForged(t *testing.T) {
	t.Parallel()
	uc, _ := newAuthForTest()
	created := signup(t, uc)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": created.User.ID.String(),
		"email":   created.User.Email,
		"exp":     float64(time.Now().Add(-time.Minute).Unix()),
		"iat":     float64(time.Now().Add(-time.Hour).Unix()),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = uc.ValidateToken(context.Background(), signed)
	assert.Error(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": created.User.ID.String(),
		"email":   created.User.Email,
		"exp":     float64(time.Now().Add(time.Hour).Unix()),
		"iat":     float64(time.Now().Unix()),
	})
	signed, err = forged.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)
	_, err = uc.ValidateToken(context.Background(), signed)
	assert.Error(t, err)
}
