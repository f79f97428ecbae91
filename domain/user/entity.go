/*
Package user holds the customer/administrator side of the platform: the User
entity with its normalized email, the delivery Address entity, and the
CredentialVerifier port that keeps the hashing scheme pluggable.
*/
package user

import "time"

// Role distinguishes customers from staff administrators.
type Role string

const (
	RoleCustomer      Role = "Customer"
	RoleAdministrator Role = "Administrator"
)

// User is the account entity. The active flag gates order placement; the
// password hash is opaque here and only interpreted by a CredentialVerifier.
type User struct {
	id           int64
	firstName    string
	lastName     string
	email        Email
	phone        string
	passwordHash string
	role         Role
	active       bool
	lastAccessAt *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active user. The password must already be hashed by a
// CredentialVerifier; this package never sees plaintext.
func NewUser(firstName, lastName string, email Email, phone, passwordHash string, role Role) (*User, error) {
	if firstName == "" {
		return nil, NewInvalidUserError("first_name", "first name is required")
	}
	if passwordHash == "" {
		return nil, NewInvalidUserError("password", "password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		email:        email,
		phone:        phone,
		passwordHash: passwordHash,
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.lastName == "" {
		return u.firstName
	}
	return u.firstName + " " + u.lastName
}

// IsAdministrator reports whether the user holds the administrator role.
func (u *User) IsAdministrator() bool {
	return u.role == RoleAdministrator
}

// RecordAccess stamps a successful login.
func (u *User) RecordAccess() {
	now := time.Now().UTC()
	u.lastAccessAt = &now
	u.updatedAt = now
}

// UpdateProfile replaces the editable attributes.
func (u *User) UpdateProfile(firstName, lastName, phone string) error {
	if firstName == "" {
		return NewInvalidUserError("first_name", "first name is required")
	}
	u.firstName = firstName
	u.lastName = lastName
	u.phone = phone
	u.updatedAt = time.Now().UTC()
	return nil
}

// Deactivate blocks the account from placing orders.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = time.Now().UTC()
}

// Activate restores a deactivated account.
func (u *User) Activate() {
	u.active = true
	u.updatedAt = time.Now().UTC()
}

// SetID is called by the repository after insert.
func (u *User) SetID(id int64) {
	u.id = id
}

func (u *User) ID() int64                { return u.id }
func (u *User) FirstName() string        { return u.firstName }
func (u *User) LastName() string         { return u.lastName }
func (u *User) Email() Email             { return u.email }
func (u *User) Phone() string            { return u.phone }
func (u *User) PasswordHash() string     { return u.passwordHash }
func (u *User) Role() Role               { return u.role }
func (u *User) IsActive() bool           { return u.active }
func (u *User) LastAccessAt() *time.Time { return u.lastAccessAt }
func (u *User) CreatedAt() time.Time     { return u.createdAt }
func (u *User) UpdatedAt() time.Time     { return u.updatedAt }

// Address is a delivery destination owned by a user. Orders reference it by
// ID when the delivery method is home delivery.
type Address struct {
	id        int64
	userID    int64
	street    string
	city      string
	reference string
	createdAt time.Time
}

// NewAddress creates a delivery address for a user.
func NewAddress(userID int64, street, city, reference string) (*Address, error) {
	if street == "" {
		return nil, NewInvalidUserError("street", "street is required")
	}
	if city == "" {
		return nil, NewInvalidUserError("city", "city is required")
	}
	return &Address{
		userID:    userID,
		street:    street,
		city:      city,
		reference: reference,
		createdAt: time.Now().UTC(),
	}, nil
}

// SetID is called by the repository after insert.
func (a *Address) SetID(id int64) {
	a.id = id
}

func (a *Address) ID() int64            { return a.id }
func (a *Address) UserID() int64        { return a.userID }
func (a *Address) Street() string       { return a.street }
func (a *Address) City() string         { return a.city }
func (a *Address) Reference() string    { return a.reference }
func (a *Address) CreatedAt() time.Time { return a.createdAt }

// UserReconstructionDTO rebuilds a User from storage. Repository use only.
type UserReconstructionDTO struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        Email
	Phone        string
	PasswordHash string
	Role         Role
	Active       bool
	LastAccessAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RebuildFromDTO reconstructs a user without revalidation.
func RebuildFromDTO(dto UserReconstructionDTO) *User {
	return &User{
		id:           dto.ID,
		firstName:    dto.FirstName,
		lastName:     dto.LastName,
		email:        dto.Email,
		phone:        dto.Phone,
		passwordHash: dto.PasswordHash,
		role:         dto.Role,
		active:       dto.Active,
		lastAccessAt: dto.LastAccessAt,
		createdAt:    dto.CreatedAt,
		updatedAt:    dto.UpdatedAt,
	}
}

// AddressReconstructionDTO rebuilds an Address from storage.
type AddressReconstructionDTO struct {
	ID        int64
	UserID    int64
	Street    string
	City      string
	Reference string
	CreatedAt time.Time
}

// RebuildAddressFromDTO reconstructs an address from storage.
func RebuildAddressFromDTO(dto AddressReconstructionDTO) *Address {
	return &Address{
		id:        dto.ID,
		userID:    dto.UserID,
		street:    dto.Street,
		city:      dto.City,
		reference: dto.Reference,
		createdAt: dto.CreatedAt,
	}
}
