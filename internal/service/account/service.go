package account

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"agathiya-store/internal/domain"
	tokenrepo "agathiya-store/internal/repository/token"
	userrepo "agathiya-store/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

// Built-in admin profile fields. Credentials come from config.
const (
	adminName    = "Store Admin"
	adminAddress = "HQ"
	adminPhone   = "0000"
)

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Insert(ctx context.Context, u domain.User) error
}

// Service handles registration, login and session lookup. The built-in
// admin account is verified through the same bcrypt path as registered
// users; no plaintext comparison exists anywhere.
type Service struct {
	users      userRepo
	tokens     *tokenManager
	sessionTTL time.Duration
	adminEmail string
	adminHash  []byte
}

// New hashes the configured admin password once and keeps only the hash.
func New(users userrepo.Repository, tokens tokenrepo.Repository, adminEmail, adminPassword string, sessionTTL time.Duration) (*Service, error) {
	adminHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Service{
		users:      users,
		tokens:     newTokenManager(tokens),
		sessionTTL: sessionTTL,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		adminHash:  adminHash,
	}, nil
}

// RegisterInput mirrors the registration payload.
type RegisterInput struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Address        string `json:"address"`
	Phone          string `json:"phone"`
	SecondaryPhone string `json:"secondaryPhone"`
	Gender         string `json:"gender"`
}

// Register validates and stores a new account with role "user".
func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Password) == "" {
		return nil, domain.Validationf("email and password are required")
	}
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Validationf("full name is required")
	}
	if strings.TrimSpace(in.Address) == "" {
		return nil, domain.Validationf("address is required")
	}
	if in.Phone == "" {
		return nil, domain.Validationf("phone number is required")
	}
	if !phonePattern.MatchString(in.Phone) {
		return nil, domain.Validationf("primary phone must be exactly 10 digits")
	}
	if in.SecondaryPhone != "" && !phonePattern.MatchString(in.SecondaryPhone) {
		return nil, domain.Validationf("secondary phone must be 10 digits if provided")
	}
	switch in.Gender {
	case "Male", "Female", "Other":
	default:
		return nil, domain.Validationf("gender is required")
	}
	if email == s.adminEmail {
		return nil, domain.Validationf("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		Email:          email,
		PasswordHash:   string(hashed),
		Name:           strings.TrimSpace(in.Name),
		Address:        strings.TrimSpace(in.Address),
		Phone:          in.Phone,
		SecondaryPhone: in.SecondaryPhone,
		Gender:         in.Gender,
		Role:           domain.RoleUser,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, domain.Validationf("email already registered")
		}
		return nil, err
	}
	return &user, nil
}

// Login verifies credentials and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (domain.Session, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == s.adminEmail {
		if bcrypt.CompareHashAndPassword(s.adminHash, []byte(password)) != nil {
			return domain.Session{}, "", ErrInvalidCredentials
		}
		session := s.adminSession()
		tok, err := s.tokens.Issue(ctx, session.Email, session.Role, s.sessionTTL)
		if err != nil {
			return domain.Session{}, "", err
		}
		return session, tok, nil
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, "", ErrInvalidCredentials
		}
		return domain.Session{}, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return domain.Session{}, "", ErrInvalidCredentials
	}

	session := sessionFromUser(*u)
	tok, err := s.tokens.Issue(ctx, session.Email, session.Role, s.sessionTTL)
	if err != nil {
		return domain.Session{}, "", err
	}
	return session, tok, nil
}

// LookupByToken resolves the session bound to a valid token.
func (s *Service) LookupByToken(ctx context.Context, tok string) (domain.Session, error) {
	meta, ok := s.tokens.Validate(ctx, tok)
	if !ok {
		return domain.Session{}, ErrInvalidToken
	}
	if meta.Role == domain.RoleAdmin {
		return s.adminSession(), nil
	}
	u, err := s.users.GetByEmail(ctx, meta.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Session{}, ErrInvalidToken
		}
		return domain.Session{}, err
	}
	return sessionFromUser(*u), nil
}

// Logout revokes the token. Revoking an unknown token is not an error.
func (s *Service) Logout(ctx context.Context, tok string) error {
	err := s.tokens.Revoke(ctx, tok)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}

// SessionTTLSeconds exposes the session lifetime in seconds.
func (s *Service) SessionTTLSeconds() int {
	return int(s.sessionTTL.Seconds())
}

func (s *Service) adminSession() domain.Session {
	return domain.Session{
		Email:   s.adminEmail,
		Role:    domain.RoleAdmin,
		Name:    adminName,
		Address: adminAddress,
		Phone:   adminPhone,
	}
}

func sessionFromUser(u domain.User) domain.Session {
	return domain.Session{
		Email:   u.Email,
		Role:    u.Role,
		Name:    u.Name,
		Phone:   u.Phone,
		Address: u.Address,
	}
}
