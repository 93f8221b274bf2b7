package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-fuel-dashboard/models"
)

const (
	FieldLogin    = "login"
	FieldPassword = "password"
	FieldRole     = "role"
)

const (
	maxLoginLength = 64
	// bcrypt ignores everything after 72 bytes
	maxPasswordBytes = 72
)

type UserValidator struct {
}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
			if utf8.RuneCountInString(user.Login) > maxLoginLength {
				return ErrLoginTooLong
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
			if len(user.Password) > maxPasswordBytes {
				return ErrPasswordTooLong
			}
		case FieldRole:
			if !user.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
