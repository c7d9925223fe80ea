package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/kchitera56/bakholokoe-website/internal/auth"
	"github.com/kchitera56/bakholokoe-website/internal/models"
)

// ErrUserExists is returned when signing up with an email that is already registered.
var ErrUserExists = errors.New("user already exists")

// ErrInvalidCredentials is returned on login with an unknown email or wrong password.
var ErrInvalidCredentials = errors.New("incorrect email or password")

// IUserService defines the interface for user-related operations.
// This allows for easier mocking in tests.
type IUserService interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Signup(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

const usersCollection = "users"

// userService implements IUserService.
type userService struct {
	db *mongo.Database
}

// NewUserService creates a new UserService.
func NewUserService(db *mongo.Database) IUserService {
	return &userService{db: db}
}

// FindByEmail looks up a user by email address via its normalized store key.
// Returns mongo.ErrNoDocuments if no such user exists.
func (s *userService) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	collection := s.db.Collection(usersCollection)
	filter := bson.M{"_id": models.EmailKey(email)}

	err := collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, mongo.ErrNoDocuments
		}
		return nil, fmt.Errorf("error finding user by email %s: %w", email, err)
	}
	return &user, nil
}

// Signup creates a new user with a bcrypt-hashed password.
// Returns ErrUserExists if the email is already registered. The existence
// check gives the friendly error; the unique _id (the email key) is what
// actually guarantees no duplicate survives two concurrent signups.
func (s *userService) Signup(ctx context.Context, name, email, password string) (*models.User, error) {
	collection := s.db.Collection(usersCollection)

	_, err := s.FindByEmail(ctx, email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password for %s: %w", email, err)
	}

	newUser := &models.User{
		EmailKey:     models.EmailKey(email),
		Email:        email,
		Name:         name,
		PasswordHash: hashedPassword,
		CreatedAt:    time.Now().UTC(),
	}

	if _, err := collection.InsertOne(ctx, newUser); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost the race against a concurrent signup for the same email.
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("error inserting new user %s: %w", email, err)
	}

	return newUser, nil
}

// Authenticate verifies the submitted credentials against the stored hash.
// Returns ErrInvalidCredentials for both unknown email and wrong password so
// the two cases are indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
