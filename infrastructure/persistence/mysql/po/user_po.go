package po

import (
	"time"

	"comedor/domain/user"
)

// UserPO maps the users table. Email is stored normalized (lower case), so
// the unique index enforces case-insensitive uniqueness.
type UserPO struct {
	ID           int64      `gorm:"primaryKey;autoIncrement"`
	FirstName    string     `gorm:"size:100;not null"`
	LastName     string     `gorm:"size:100"`
	Email        string     `gorm:"size:255;uniqueIndex;not null"`
	Phone        string     `gorm:"size:30"`
	PasswordHash string     `gorm:"size:255;not null"`
	Role         string     `gorm:"size:20;not null"`
	Active       bool       `gorm:"not null;default:true"`
	LastAccessAt *time.Time `gorm:""`
	CreatedAt    time.Time  `gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime"`
}

// TableName names the table.
func (UserPO) TableName() string {
	return "users"
}

// FromUserDomain converts the entity to its persistence object.
func FromUserDomain(u *user.User) *UserPO {
	return &UserPO{
		ID:           u.ID(),
		FirstName:    u.FirstName(),
		LastName:     u.LastName(),
		Email:        u.Email().Value(),
		Phone:        u.Phone(),
		PasswordHash: u.PasswordHash(),
		Role:         string(u.Role()),
		Active:       u.IsActive(),
		LastAccessAt: u.LastAccessAt(),
		CreatedAt:    u.CreatedAt(),
		UpdatedAt:    u.UpdatedAt(),
	}
}

// ToDomain reconstructs the entity. The stored email was normalized on the
// way in, so it is rebuilt without revalidation.
func (po *UserPO) ToDomain() *user.User {
	return user.RebuildFromDTO(user.UserReconstructionDTO{
		ID:           po.ID,
		FirstName:    po.FirstName,
		LastName:     po.LastName,
		Email:        user.RebuildEmail(po.Email),
		Phone:        po.Phone,
		PasswordHash: po.PasswordHash,
		Role:         user.Role(po.Role),
		Active:       po.Active,
		LastAccessAt: po.LastAccessAt,
		CreatedAt:    po.CreatedAt,
		UpdatedAt:    po.UpdatedAt,
	})
}

// AddressPO maps the addresses table.
type AddressPO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    int64     `gorm:"index;not null"` // ID only, no association
	Street    string    `gorm:"size:255;not null"`
	City      string    `gorm:"size:100;not null"`
	Reference string    `gorm:"size:255"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName names the table.
func (AddressPO) TableName() string {
	return "addresses"
}

// FromAddressDomain converts the entity to its persistence object.
func FromAddressDomain(a *user.Address) *AddressPO {
	return &AddressPO{
		ID:        a.ID(),
		UserID:    a.UserID(),
		Street:    a.Street(),
		City:      a.City(),
		Reference: a.Reference(),
		CreatedAt: a.CreatedAt(),
	}
}

// ToDomain reconstructs the entity.
func (po *AddressPO) ToDomain() *user.Address {
	return user.RebuildAddressFromDTO(user.AddressReconstructionDTO{
		ID:        po.ID,
		UserID:    po.UserID,
		Street:    po.Street,
		City:      po.City,
		Reference: po.Reference,
		CreatedAt: po.CreatedAt,
	})
}
