package memory

import (
	"context"
	"sort"

	"comedor/domain/user"
)

// UserRepository is the in-memory implementation of user.Repository.
type UserRepository struct {
	store *Store
}

// NewUserRepository creates the repository.
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Insert stores a new user, assigning the identifier. Emails are already
// normalized, so plain equality enforces uniqueness.
func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, dto := range s.users {
		if dto.Email.Equals(u.Email()) {
			return user.NewEmailExistsError(u.Email().Value())
		}
	}

	s.nextUserID++
	u.SetID(s.nextUserID)
	s.users[u.ID()] = toUserDTO(u)
	return nil
}

// Update rewrites the stored user.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.ID()]; !ok {
		return user.NewUserNotFoundError(u.ID())
	}
	s.users[u.ID()] = toUserDTO(u)
	return nil
}

// FindByID loads one user.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.users[id]
	if !ok {
		return nil, user.NewUserNotFoundError(id)
	}
	return user.RebuildFromDTO(dto), nil
}

// FindByEmail loads one user by normalized email.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, dto := range s.users {
		if dto.Email.Equals(email) {
			return user.RebuildFromDTO(dto), nil
		}
	}
	return nil, user.NewUserNotFoundByEmailError()
}

// EmailExists reports whether the normalized email is registered.
func (r *UserRepository) EmailExists(ctx context.Context, email user.Email) (bool, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, dto := range s.users {
		if dto.Email.Equals(email) {
			return true, nil
		}
	}
	return false, nil
}

func toUserDTO(u *user.User) user.UserReconstructionDTO {
	return user.UserReconstructionDTO{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role(),
		Active:       u.IsActive(),
		LastAccessAt: u.LastAccessAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

var _ user.Repository = (*UserRepository)(nil)

// AddressRepository is the in-memory implementation of user.AddressRepository.
type AddressRepository struct {
	store *Store
}

// NewAddressRepository creates the repository.
func NewAddressRepository(store *Store) *AddressRepository {
	return &AddressRepository{store: store}
}

// Insert stores a new address, assigning the identifier.
func (r *AddressRepository) Insert(ctx context.Context, a *user.Address) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAddressID++
	a.SetID(s.nextAddressID)
	s.addresses[a.ID()] = user.AddressReconstructionDTO{
		ID:        a.ID(),
		UserID:    a.UserID(),
		Street:    a.Street(),
		City:      a.City(),
		Reference: a.Reference(),
		CreatedAt: a.CreatedAt(),
	}
	return nil
}

// FindByID loads one address.
func (r *AddressRepository) FindByID(ctx context.Context, id int64) (*user.Address, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	dto, ok := s.addresses[id]
	if !ok {
		return nil, user.NewAddressNotFoundError(id)
	}
	return user.RebuildAddressFromDTO(dto), nil
}

// FindByUserID lists a user's addresses.
func (r *AddressRepository) FindByUserID(ctx context.Context, userID int64) ([]*user.Address, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var dtos []user.AddressReconstructionDTO
	for _, dto := range s.addresses {
		if dto.UserID == userID {
			dtos = append(dtos, dto)
		}
	}
	sort.Slice(dtos, func(i, j int) bool { return dtos[i].ID < dtos[j].ID })

	addresses := make([]*user.Address, len(dtos))
	for i, dto := range dtos {
		addresses[i] = user.RebuildAddressFromDTO(dto)
	}
	return addresses, nil
}

var _ user.AddressRepository = (*AddressRepository)(nil)
