package entities

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"identity-service/internal/domain"
)

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?\d{9,15}$`)
)

type User struct {
	Id           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	FullName     string
	Phone        string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
	Roles        []Role
}

func NewUser(email, username, fullName, phone string) *User {
	now := time.Now().UTC()
	return &User{
		Id:        uuid.New(),
		Email:     strings.ToLower(strings.TrimSpace(email)),
		Username:  strings.TrimSpace(username),
		FullName:  fullName,
		Phone:     phone,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		Roles:     make([]Role, 0),
	}
}

func (u *User) validate() error {
	if u.Email == "" {
		return domain.NewValidationError("email", "email must not be empty")
	}
	if !emailPattern.MatchString(u.Email) {
		return domain.NewValidationError("email", "email is not a valid address")
	}
	if len(u.Username) < 4 {
		return domain.NewValidationError("username", "username must be at least 4 characters")
	}
	if u.Phone != "" && !phonePattern.MatchString(u.Phone) {
		return domain.NewValidationError("phone", "phone must be a valid international number")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return domain.NewValidationError("created_at", "created_at must be before updated_at")
	}
	return nil
}

// SetPassword hashes the plaintext with bcrypt. The raw password is
// never stored on the entity.
func (u *User) SetPassword(plain string, cost int) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	return nil
}

func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
}

// RoleNames returns the names of all assigned roles, in order.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// UpdateProfile applies a partial update. Nil fields are left untouched.
func (u *User) UpdateProfile(fullName, phone *string, isActive *bool) error {
	if fullName != nil {
		u.FullName = *fullName
	}
	if phone != nil {
		u.Phone = *phone
	}
	if isActive != nil {
		u.IsActive = *isActive
	}
	u.UpdatedAt = time.Now().UTC()
	return u.validate()
}

// SoftDelete deactivates the user and stamps the deletion time. The
// row itself is kept.
func (u *User) SoftDelete() {
	now := time.Now().UTC()
	u.IsActive = false
	u.DeletedAt = &now
	u.UpdatedAt = now
}
