// Package user is the application layer for accounts: registration, login,
// profile updates and delivery addresses. Password handling goes through the
// domain's CredentialVerifier port; this package never stores plaintext.
package user

import (
	"context"
	"errors"

	"comedor/domain/user"
	"comedor/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service handles account operations.
type Service struct {
	users     user.Repository
	addresses user.AddressRepository
	verifier  user.CredentialVerifier
}

// NewService creates the user application service.
func NewService(users user.Repository, addresses user.AddressRepository, verifier user.CredentialVerifier) *Service {
	return &Service{users: users, addresses: addresses, verifier: verifier}
}

// Register creates a customer account. Email uniqueness is case-insensitive
// because Email normalizes to lower case before the lookup.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, user.NewEmailExistsError(email.Value())
	}

	hash, err := s.verifier.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := user.NewUser(req.FirstName, req.LastName, email, req.Phone, hash, user.RoleCustomer)
	if err != nil {
		return nil, err
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}

	logger.Info("user registered", zap.Int64("user_id", u.ID()), zap.String("email", email.Value()))
	return toUserResponse(u), nil
}

// Login verifies credentials and stamps the access time. Unknown email and
// wrong password produce the same error so nothing leaks about which it was.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	email, err := user.NewEmail(req.Email)
	if err != nil {
		return nil, user.NewInvalidCredentialsError()
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, user.NewInvalidCredentialsError()
		}
		return nil, err
	}

	if !s.verifier.Verify(req.Password, u.PasswordHash()) {
		logger.Warn("failed login attempt", zap.String("email", email.Value()))
		return nil, user.NewInvalidCredentialsError()
	}

	u.RecordAccess()
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	// Opaque placeholder token; the web client only echoes it back.
	// TODO: replace with signed session tokens once the API enforces them.
	token := "sess-" + uuid.New().String()

	logger.Info("user logged in", zap.Int64("user_id", u.ID()))
	return &LoginResponse{User: toUserResponse(u), Token: token}, nil
}

// GetUser returns one account by ID.
func (s *Service) GetUser(ctx context.Context, id int64) (*UserResponse, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// UpdateProfile replaces the editable profile attributes.
func (s *Service) UpdateProfile(ctx context.Context, id int64, req UpdateProfileRequest) (*UserResponse, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := u.UpdateProfile(req.FirstName, req.LastName, req.Phone); err != nil {
		return nil, err
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return toUserResponse(u), nil
}

// EmailExists reports whether an email is already registered.
func (s *Service) EmailExists(ctx context.Context, rawEmail string) (bool, error) {
	email, err := user.NewEmail(rawEmail)
	if err != nil {
		return false, err
	}
	return s.users.EmailExists(ctx, email)
}

// AddAddress stores a delivery address for the account.
func (s *Service) AddAddress(ctx context.Context, userID int64, req CreateAddressRequest) (*AddressResponse, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	a, err := user.NewAddress(userID, req.Street, req.City, req.Reference)
	if err != nil {
		return nil, err
	}
	if err := s.addresses.Insert(ctx, a); err != nil {
		return nil, err
	}
	return toAddressResponse(a), nil
}

// ListAddresses returns the account's delivery addresses.
func (s *Service) ListAddresses(ctx context.Context, userID int64) ([]*AddressResponse, error) {
	addresses, err := s.addresses.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]*AddressResponse, len(addresses))
	for i, a := range addresses {
		responses[i] = toAddressResponse(a)
	}
	return responses, nil
}

func toUserResponse(u *user.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		FullName:     u.FullName(),
		Email:        u.Email().Value(),
		Phone:        u.Phone(),
		Role:         string(u.Role()),
		Active:       u.IsActive(),
		LastAccessAt: u.LastAccessAt(),
		CreatedAt:    u.CreatedAt(),
	}
}

func toAddressResponse(a *user.Address) *AddressResponse {
	return &AddressResponse{
		ID:        a.ID(),
		Street:    a.Street(),
		City:      a.City(),
		Reference: a.Reference(),
	}
}
