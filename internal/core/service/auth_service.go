package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/talenthub/job-portal-api/internal/core/domain"
	"github.com/talenthub/job-portal-api/internal/core/ports"
)

// bcryptCost is the slow adaptive hash cost for stored passwords.
const bcryptCost = 12

const (
	verificationTTL = 24 * time.Hour
	resetTTL        = time.Hour
)

// MailQueue hands non-critical outbound mail to background workers so a
// signup response never waits on SMTP.
type MailQueue interface {
	Enqueue(send func(ctx context.Context) error)
}

// AuthService implements signup, login, email verification, and the
// password reset flow.
type AuthService struct {
	users     ports.UserRepository
	domains   ports.EmailDomainValidator
	mailer    ports.Mailer
	mailQueue MailQueue
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewAuthService(
	users ports.UserRepository,
	domains ports.EmailDomainValidator,
	mailer ports.Mailer,
	mailQueue MailQueue,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{
		users:     users,
		domains:   domains,
		mailer:    mailer,
		mailQueue: mailQueue,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

func (s *AuthService) Signup(ctx context.Context, input ports.SignupInput) (string, *domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidEmailFormat
	}
	if !domain.ValidRole(input.Role) {
		return "", nil, domain.ErrInvalidRole
	}
	if input.Role == domain.RoleEmployer && input.CompanyName == "" {
		return "", nil, domain.ErrMissingCompanyName
	}

	// Duplicate check first so an existing account reports as taken even
	// when its domain would no longer resolve.
	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	if err := s.domains.Validate(ctx, input.Email); err != nil {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("signup: hash password: %w", err)
	}

	verifyToken, err := randomHexToken()
	if err != nil {
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:                input.Name,
		Email:               input.Email,
		PasswordHash:        string(hash),
		Role:                input.Role,
		VerificationToken:   verifyToken,
		VerificationExpires: now.Add(verificationTTL),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if input.Role == domain.RoleEmployer {
		user.CompanyName = input.CompanyName
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	s.sendVerificationMail(created.Email, verifyToken)

	token, err := s.generateToken(created, true)
	if err != nil {
		return "", nil, fmt.Errorf("signup: sign token: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("user signed up")
	return token, created, nil
}

// Login authenticates the (email, role) pair. A valid email registered
// under a different role fails with ErrUserNotFound.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (string, *domain.User, error) {
	user, err := s.users.FindByEmailAndRole(ctx, email, role)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrWrongPassword
	}

	token, err := s.generateToken(user, false)
	if err != nil {
		return "", nil, fmt.Errorf("login: sign token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user logged in")
	return token, user, nil
}

// VerifyEmail consumes a verification token. Tokens are single-use:
// after a success, the same token fails with ErrInvalidOrExpiredToken.
func (s *AuthService) VerifyEmail(ctx context.Context, token string) error {
	user, err := s.users.FindByVerificationToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("verify email: %w", err)
	}

	if err := s.users.MarkVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("verify email: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("email verified")
	return nil
}

// ForgotPassword stores a reset token and mails the reset link. The mail
// send is awaited: a transport failure surfaces to the caller instead of
// being swallowed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := randomHexToken()
	if err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}

	if err := s.users.SetResetToken(ctx, user.ID, token, time.Now().UTC().Add(resetTTL)); err != nil {
		return fmt.Errorf("forgot password: %w", err)
	}

	if err := s.mailer.SendPasswordResetEmail(ctx, user.Email, token); err != nil {
		return fmt.Errorf("forgot password: send mail: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset link sent")
	return nil
}

// ResetPassword consumes a reset token and stores the new password hash.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	user, err := s.users.FindByResetToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.ErrInvalidOrExpiredToken
		}
		return fmt.Errorf("reset password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("reset password: hash password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("reset password: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("password reset")
	return nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*ports.Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ports.Profile{
		Name:         user.Name,
		Email:        user.Email,
		CompanyName:  user.CompanyName,
		ProfilePhoto: user.ProfilePhoto,
		Resume:       user.Resume,
	}, nil
}

// sendVerificationMail is best-effort: verification is advisory and a
// mail failure must never fail signup.
func (s *AuthService) sendVerificationMail(to, token string) {
	send := func(ctx context.Context) error {
		return s.mailer.SendVerificationEmail(ctx, to, token)
	}
	if s.mailQueue != nil {
		s.mailQueue.Enqueue(send)
		return
	}
	if err := send(context.Background()); err != nil {
		s.log.Warn().Err(err).Str("to", to).Msg("verification mail failed")
	}
}

func (s *AuthService) generateToken(user *domain.User, includeCompany bool) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"name":    user.Name,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
	}
	if includeCompany && user.CompanyName != "" {
		claims["company_name"] = user.CompanyName
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// randomHexToken returns a 40-char hex token from 20 random bytes, the
// shape used for both verification and reset tokens.
func randomHexToken() (string, error) {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("random token: %w", err)
	}
	return hex.EncodeToString(b), nil
}
