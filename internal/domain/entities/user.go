package entities

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"docledger/internal/common"
)

// User is an account that owns memos and invoices. Password holds the bcrypt
// hash once HashPassword has run; the plaintext is never stored.
type User struct {
	ID         uint
	CreatedAt  time.Time
	UpdatedAt  time.Time
	Name       string
	Lastname   string
	Username   string
	Password   string
	CategoryID uint
}

func NewUser(name, lastname, username, password string, categoryID uint) *User {
	return &User{
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
		Name:       name,
		Lastname:   lastname,
		Username:   username,
		Password:   password,
		CategoryID: categoryID,
	}
}

func (u *User) validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return common.NewValidationError("name", "must not be empty")
	}
	if strings.TrimSpace(u.Lastname) == "" {
		return common.NewValidationError("lastname", "must not be empty")
	}
	if strings.TrimSpace(u.Username) == "" {
		return common.NewValidationError("username", "must not be empty")
	}
	if u.Password == "" {
		return common.NewValidationError("password", "must not be empty")
	}
	if u.CategoryID == 0 {
		return common.NewValidationError("category_id", "must reference a category")
	}
	return nil
}

// HashPassword replaces the plaintext password with its bcrypt hash.
func (u *User) HashPassword() error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashed)
	return nil
}

// CheckPassword compares a plaintext candidate against the stored hash.
// bcrypt performs the comparison in constant time.
func (u *User) CheckPassword(password string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
}
