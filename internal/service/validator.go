package service

import (
	"fmt"
	"regexp"

	storeerrors "github.com/abgdnv/storehub/internal/errors"
	"github.com/go-playground/validator/v10"
)

const (
	maxNameLength       = 100
	maxAddressLength    = 200
	maxCityLength       = 100
	maxCountryLength    = 100
	maxPostalCodeLength = 20
)

// phonePattern is the international phone format: optional plus, then 2 to 15
// digits not starting with zero.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// StoreValidator applies the per-field business rules. Validation stops at the
// first failing field in a fixed order (name, address, city, country,
// postal code, phone, email) and returns exactly one ValidationError.
type StoreValidator struct {
	validate *validator.Validate
}

// NewStoreValidator creates a stateless validator, reusable for full and
// partial payloads.
func NewStoreValidator() *StoreValidator {
	return &StoreValidator{validate: validator.New()}
}

// ValidateStore applies every field rule to a full payload.
func (v *StoreValidator) ValidateStore(name, address, city, country, postalCode, phone, email string) error {
	if err := v.validateName(name); err != nil {
		return err
	}
	if err := v.validateAddress(address); err != nil {
		return err
	}
	if err := v.validateCity(city); err != nil {
		return err
	}
	if err := v.validateCountry(country); err != nil {
		return err
	}
	if err := v.validatePostalCode(postalCode); err != nil {
		return err
	}
	if err := v.validatePhone(phone); err != nil {
		return err
	}
	return v.validateEmail(email)
}

// ValidatePartial applies the same rules to only the fields present in a
// partial payload. Absent fields are never checked. Note the documented
// asymmetry: a partial phone is only checked for non-emptiness, not against
// the international pattern.
func (v *StoreValidator) ValidatePartial(patch StorePatchDto) error {
	if patch.Name != nil {
		if err := v.validateName(*patch.Name); err != nil {
			return err
		}
	}
	if patch.Address != nil {
		if err := v.validateAddress(*patch.Address); err != nil {
			return err
		}
	}
	if patch.City != nil {
		if err := v.validateCity(*patch.City); err != nil {
			return err
		}
	}
	if patch.Country != nil {
		if err := v.validateCountry(*patch.Country); err != nil {
			return err
		}
	}
	if patch.PostalCode != nil {
		if err := v.validatePostalCode(*patch.PostalCode); err != nil {
			return err
		}
	}
	if patch.Phone != nil {
		if *patch.Phone == "" {
			return storeerrors.NewValidationError("Store phone is required")
		}
	}
	if patch.Email != nil {
		if err := v.validateEmail(*patch.Email); err != nil {
			return err
		}
	}
	return nil
}

func (v *StoreValidator) validateName(name string) error {
	if name == "" {
		return storeerrors.NewValidationError("Store name is required")
	}
	if len(name) > maxNameLength {
		return storeerrors.NewValidationError(fmt.Sprintf("Store name must not exceed %d characters", maxNameLength))
	}
	return nil
}

func (v *StoreValidator) validateAddress(address string) error {
	if address == "" {
		return storeerrors.NewValidationError("Store address is required")
	}
	if len(address) > maxAddressLength {
		return storeerrors.NewValidationError(fmt.Sprintf("Store address must not exceed %d characters", maxAddressLength))
	}
	return nil
}

func (v *StoreValidator) validateCity(city string) error {
	if city == "" {
		return storeerrors.NewValidationError("Store city is required")
	}
	if len(city) > maxCityLength {
		return storeerrors.NewValidationError(fmt.Sprintf("Store city must not exceed %d characters", maxCityLength))
	}
	return nil
}

func (v *StoreValidator) validateCountry(country string) error {
	if country == "" {
		return storeerrors.NewValidationError("Store country is required")
	}
	if len(country) > maxCountryLength {
		return storeerrors.NewValidationError(fmt.Sprintf("Store country must not exceed %d characters", maxCountryLength))
	}
	return nil
}

func (v *StoreValidator) validatePostalCode(postalCode string) error {
	if postalCode == "" {
		return storeerrors.NewValidationError("Store postal code is required")
	}
	if len(postalCode) > maxPostalCodeLength {
		return storeerrors.NewValidationError(fmt.Sprintf("Store postal code must not exceed %d characters", maxPostalCodeLength))
	}
	return nil
}

func (v *StoreValidator) validatePhone(phone string) error {
	if phone == "" {
		return storeerrors.NewValidationError("Store phone is required")
	}
	if !phonePattern.MatchString(phone) {
		return storeerrors.NewValidationError("Invalid phone format")
	}
	return nil
}

func (v *StoreValidator) validateEmail(email string) error {
	if email == "" {
		return storeerrors.NewValidationError("Store email is required")
	}
	if err := v.validate.Var(email, "email"); err != nil {
		return &storeerrors.ValidationError{
			Message:   "Invalid email format",
			Technical: err.Error(),
		}
	}
	return nil
}
