package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"fxledger/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// CredentialDelimiters separate the username from the password in a
// login/register payload and may not appear inside either field.
const CredentialDelimiters = "\t\r\n"

// Credentials is a parsed login or registration payload
type Credentials struct {
	Username string `json:"username" validate:"required,max=50,printascii"`
	Password string `json:"password" validate:"required,max=50,printascii"`
}

// AccountOpening is the payload of a create-account request
type AccountOpening struct {
	InitialDeposit decimal.Decimal `json:"initial_deposit" validate:"non_negative_decimal,decimal_bounds"`
	Shared         bool            `json:"shared"`
}

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance     *Validator
	instanceOnce sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	instanceOnce.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)
	_ = v.RegisterValidation("non_negative_decimal", validateNonNegativeDecimal)
	_ = v.RegisterValidation("decimal_bounds", validateDecimalBounds)

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return decimalText(d)
		}
		return nil
	}, decimal.Decimal{})

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates s and flattens the first failure into a readable error
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return fmt.Errorf("%s failed %s validation", fe.Field(), fe.Tag())
	}
	return err
}

// ParseCredentials splits a "username<delim>password" payload. Empty segments
// produced by consecutive delimiters are skipped, anything after the second
// field is ignored.
func ParseCredentials(payload string) (Credentials, error) {
	fields := strings.FieldsFunc(payload, func(r rune) bool {
		return strings.ContainsRune(CredentialDelimiters, r)
	})
	if len(fields) < 2 {
		return Credentials{}, errors.New("payload must contain a username and a password")
	}
	creds := Credentials{Username: fields[0], Password: fields[1]}
	if err := GetValidator().Struct(creds); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}

// Movement is the amount of a deposit, withdrawal or exchange
type Movement struct {
	Amount decimal.Decimal `json:"amount" validate:"positive_decimal,decimal_bounds"`
}

// ValidateMovement rejects zero, negative and out of bounds amounts
func ValidateMovement(amount decimal.Decimal) error {
	return GetValidator().Struct(Movement{Amount: amount})
}

// ValidateAccountOpening rejects negative and out of bounds initial deposits
func ValidateAccountOpening(opening AccountOpening) error {
	return GetValidator().Struct(opening)
}

// Custom validation functions

// decimalText renders d in coefficient-exponent form. Unlike String it keeps
// the exponent and trailing zeros, which decimal_bounds inspects.
func decimalText(d decimal.Decimal) string {
	return fmt.Sprintf("%se%d", d.Coefficient(), d.Exponent())
}

// decimalField parses the field under validation. Decimals reach the rules
// as strings through the custom type func registered in NewValidator.
func decimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	if fl.Field().Kind() != reflect.String {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func validatePositiveDecimal(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && d.IsPositive()
}

func validateNonNegativeDecimal(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && !d.IsNegative()
}

// validateDecimalBounds rejects exponent notation and amounts with more than
// models.MaxAmountDigits integer or models.MaxAmountScale fractional digits
func validateDecimalBounds(fl validator.FieldLevel) bool {
	d, ok := decimalField(fl)
	return ok && models.AmountInBounds(d)
}
