package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/partshub/catalog-service/internal/config"
	"github.com/partshub/catalog-service/internal/models"
	"github.com/partshub/catalog-service/internal/repo/mongodb"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthUsecase interface {
	Signup(ctx context.Context, req models.SignupRequest) (*models.LoginResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*models.User, error)
}

type authUsecase struct {
	usersRepo mongodb.UsersRepo
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthUsecase(cfg *config.Config, usersRepo mongodb.UsersRepo) AuthUsecase {
	return &authUsecase{
		usersRepo: usersRepo,
		jwtSecret: cfg.Auth.JWTSecret,
		tokenTTL:  cfg.Auth.TokenTTL,
	}
}

func (uc *authUsecase) Signup(ctx context.Context, req models.SignupRequest) (*models.LoginResponse, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now()
	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Phone:        req.Phone,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := uc.usersRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = models.ObjectID(id)

	return uc.loginResponse(ctx, user)
}

func (uc *authUsecase) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	user, err := uc.usersRepo.GetByEmail(ctx, req.Email)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return uc.loginResponse(ctx, *user)
}

func (uc *authUsecase) loginResponse(ctx context.Context, user models.User) (*models.LoginResponse, error) {
	token, expiresAt, err := uc.generateJWT(user)
	if err != nil {
		return nil, fmt.Errorf("generate JWT: %w", err)
	}

	if err := uc.usersRepo.TouchLogin(ctx, user.ID); err != nil {
		// non-fatal, the login itself succeeded
		return &models.LoginResponse{Token: token, User: user, ExpiresAt: expiresAt}, nil
	}

	return &models.LoginResponse{
		Token:     token,
		User:      user,
		ExpiresAt: expiresAt,
	}, nil
}

func (uc *authUsecase) ValidateToken(ctx context.Context, tokenString string) (*models.User, error) {
	claims, err := uc.parseJWT(tokenString)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if time.Unix(claims.Exp, 0).Before(time.Now()) {
		return nil, errors.New("token has expired")
	}

	user, err := uc.usersRepo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", err)
	}
	if !user.IsActive {
		return nil, errors.New("user account is deactivated")
	}

	return user, nil
}

func (uc *authUsecase) generateJWT(user models.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.tokenTTL)

	claims := jwt.MapClaims{
		"user_id": user.ID.String(),
		"email":   user.Email,
		"exp":     expiresAt.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

func (uc *authUsecase) parseJWT(tokenString string) (*models.JWTClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	userID, ok := claims["user_id"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	return &models.JWTClaims{
		UserID: userID,
		Email:  email,
		Exp:    int64(exp),
		Iat:    int64(iat),
	}, nil
}
