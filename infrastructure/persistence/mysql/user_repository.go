package mysql

import (
	"context"
	"errors"
	"fmt"

	"comedor/domain/user"
	"comedor/infrastructure/persistence"
	"comedor/infrastructure/persistence/mysql/po"

	"gorm.io/gorm"
)

// UserRepository is the GORM implementation of user.Repository. Emails reach
// this layer already normalized, so plain equality works for lookups.
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates the repository.
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Insert stores a new user and writes the generated ID back. A duplicate key
// on the email index surfaces as ErrEmailExists.
func (r *UserRepository) Insert(ctx context.Context, u *user.User) error {
	userPO := po.FromUserDomain(u)
	if err := r.getDB(ctx).Create(userPO).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return user.NewEmailExistsError(userPO.Email)
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	u.SetID(userPO.ID)
	return nil
}

// Update rewrites the user row.
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	userPO := po.FromUserDomain(u)
	result := r.getDB(ctx).Model(&po.UserPO{}).Where("id = ?", userPO.ID).Updates(map[string]any{
		"first_name":     userPO.FirstName,
		"last_name":      userPO.LastName,
		"phone":          userPO.Phone,
		"password_hash":  userPO.PasswordHash,
		"active":         userPO.Active,
		"last_access_at": userPO.LastAccessAt,
		"updated_at":     userPO.UpdatedAt,
	})
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user.NewUserNotFoundError(userPO.ID)
	}
	return nil
}

// FindByID loads one user.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	var userPO po.UserPO
	if err := r.getDB(ctx).First(&userPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.NewUserNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return userPO.ToDomain(), nil
}

// FindByEmail loads one user by normalized email.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	var userPO po.UserPO
	if err := r.getDB(ctx).First(&userPO, "email = ?", email.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.NewUserNotFoundByEmailError()
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return userPO.ToDomain(), nil
}

// EmailExists reports whether the normalized email is registered.
func (r *UserRepository) EmailExists(ctx context.Context, email user.Email) (bool, error) {
	var count int64
	if err := r.getDB(ctx).Model(&po.UserPO{}).
		Where("email = ?", email.Value()).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check email: %w", err)
	}
	return count > 0, nil
}

var _ user.Repository = (*UserRepository)(nil)

// AddressRepository is the GORM implementation of user.AddressRepository.
type AddressRepository struct {
	db *gorm.DB
}

// NewAddressRepository creates the repository.
func NewAddressRepository(db *gorm.DB) *AddressRepository {
	return &AddressRepository{db: db}
}

func (r *AddressRepository) getDB(ctx context.Context) *gorm.DB {
	if tx := persistence.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.db.WithContext(ctx)
}

// Insert stores a new address and writes the generated ID back.
func (r *AddressRepository) Insert(ctx context.Context, a *user.Address) error {
	addressPO := po.FromAddressDomain(a)
	if err := r.getDB(ctx).Create(addressPO).Error; err != nil {
		return fmt.Errorf("failed to insert address: %w", err)
	}
	a.SetID(addressPO.ID)
	return nil
}

// FindByID loads one address.
func (r *AddressRepository) FindByID(ctx context.Context, id int64) (*user.Address, error) {
	var addressPO po.AddressPO
	if err := r.getDB(ctx).First(&addressPO, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.NewAddressNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to find address: %w", err)
	}
	return addressPO.ToDomain(), nil
}

// FindByUserID lists a user's addresses.
func (r *AddressRepository) FindByUserID(ctx context.Context, userID int64) ([]*user.Address, error) {
	var addressPOs []po.AddressPO
	if err := r.getDB(ctx).Where("user_id = ?", userID).
		Order("id ASC").Find(&addressPOs).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	addresses := make([]*user.Address, len(addressPOs))
	for i := range addressPOs {
		addresses[i] = addressPOs[i].ToDomain()
	}
	return addresses, nil
}

var _ user.AddressRepository = (*AddressRepository)(nil)
