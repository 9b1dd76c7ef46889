package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lesatelierszo/zopos-backend/internal/modules/user"
)

type service struct {
	userRepo user.Repository
	secret   []byte

	// inflight tracks registrations in progress, keyed by lowercased email.
	// An entry is added when a registration starts and removed when it
	// finishes, success or failure. A second request for the same email
	// waits for the first to complete instead of racing it.
	mu       sync.Mutex
	inflight map[string]chan struct{}
}

// NewService creates a new auth service signing tokens with secret.
func NewService(userRepo user.Repository, secret []byte) Service {
	return &service{
		userRepo: userRepo,
		secret:   secret,
		inflight: make(map[string]chan struct{}),
	}
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*user.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("password must be at least 6 characters")
	}
	role := req.Role
	if role == "" {
		role = user.RoleUser
	}
	if !user.IsValidRole(role) {
		return nil, fmt.Errorf("invalid role %q", role)
	}

	done, leader := s.acquire(email)
	if !leader {
		// Another registration for this email is running. Wait for it,
		// then report the conflict.
		select {
		case <-done:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("email %s is already being registered", email)
	}
	defer s.release(email)

	if _, err := s.userRepo.GetUserByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	u := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.userRepo.CreateUser(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// acquire claims the in-flight slot for email. It returns the slot's channel
// and whether the caller is the leader. Non-leaders wait on the channel.
func (s *service) acquire(email string) (chan struct{}, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.inflight[email]; ok {
		return ch, false
	}
	ch := make(chan struct{})
	s.inflight[email] = ch
	return ch, true
}

func (s *service) release(email string) {
	s.mu.Lock()
	ch := s.inflight[email]
	delete(s.inflight, email)
	s.mu.Unlock()
	close(ch)
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	u, err := s.userRepo.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}
	if u.Suspended {
		return "", errors.New("account is suspended")
	}

	expirationTime := time.Now().Add(24 * time.Hour)
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}
