package staff

import (
	"strings"

	"aquaflow/internal/pkg/errs"
)

var (
	// ErrUsernameIsRequired is returned when creating an account without a username.
	ErrUsernameIsRequired = errs.NewValueIsRequiredError("username")
	// ErrEmailIsInvalid is returned when the email has no local part or domain.
	ErrEmailIsInvalid = errs.NewValueIsInvalidError("email")
	// ErrPasswordHashIsRequired is returned when creating an account without a password hash.
	ErrPasswordHashIsRequired = errs.NewValueIsRequiredError("password hash")
)

// Account is the system-access credentials attached to an employee whose
// principal role requires them. The identity layer owns the email address.
// Account is a value object: replacing credentials means replacing the
// account.
type Account struct {
	username     string
	email        string
	passwordHash string
	isSet        bool
}

// NewAccount creates account credentials. The password hash is stored as
// given; hashing happens in the application layer.
func NewAccount(username, email, passwordHash string) (Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Account{}, ErrUsernameIsRequired
	}

	email = strings.TrimSpace(email)
	at := strings.IndexByte(email, '@')
	if at <= 0 || at == len(email)-1 {
		return Account{}, ErrEmailIsInvalid
	}

	if passwordHash == "" {
		return Account{}, ErrPasswordHashIsRequired
	}

	return Account{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		isSet:        true,
	}, nil
}

// IsSet reports whether the employee has credentials at all.
func (a Account) IsSet() bool {
	return a.isSet
}

// Username returns the login name.
func (a Account) Username() string {
	return a.username
}

// Email returns the contact email owned by the account.
func (a Account) Email() string {
	return a.email
}

// PasswordHash returns the stored hash.
func (a Account) PasswordHash() string {
	return a.passwordHash
}
