package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errors "github.com/oleocontrol/oleocontrol/internal"
)

type ValidatorFunc func(interface{}) string

type FieldValidator struct {
	FieldName  string
	Value      interface{}
	Validators []ValidatorFunc
}

// ValidationBuilder accumulates field rules and reports the first failing
// rule per field. Fields are validated independently of each other.
type ValidationBuilder struct {
	fields []FieldValidator
}

func NewValidator() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make([]FieldValidator, 0),
	}
}

func (v *ValidationBuilder) Field(name string, value interface{}) *FieldValidator {
	fv := FieldValidator{
		FieldName:  name,
		Value:      value,
		Validators: make([]ValidatorFunc, 0),
	}
	v.fields = append(v.fields, fv)
	return &v.fields[len(v.fields)-1]
}

func (fv *FieldValidator) Required() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		switch v := value.(type) {
		case string:
			if v == "" {
				return fmt.Sprintf("el campo %s es obligatorio", fv.FieldName)
			}
		case *string:
			if v == nil || *v == "" {
				return fmt.Sprintf("el campo %s es obligatorio", fv.FieldName)
			}
		case int64:
			if v == 0 {
				return fmt.Sprintf("el campo %s es obligatorio", fv.FieldName)
			}
		case *int64:
			if v == nil || *v == 0 {
				return fmt.Sprintf("el campo %s es obligatorio", fv.FieldName)
			}
		case time.Time:
			if v.IsZero() {
				return fmt.Sprintf("el campo %s es obligatorio", fv.FieldName)
			}
		case decimal.Decimal:
			// zero is a legal decimal value; Required only rejects the
			// absent case for pointer decimals
		case *decimal.Decimal:
			if v == nil {
				return fmt.Sprintf("el campo %s es obligatorio", fv.FieldName)
			}
		case nil:
			return fmt.Sprintf("el campo %s es obligatorio", fv.FieldName)
		}
		return ""
	})
	return fv
}

// MinDecimal rejects decimal values below min. Pointer decimals pass when nil.
func (fv *FieldValidator) MinDecimal(min decimal.Decimal) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		d, ok := asDecimal(value)
		if !ok {
			return ""
		}
		if d.LessThan(min) {
			return fmt.Sprintf("el campo %s debe ser como mínimo %s", fv.FieldName, min.String())
		}
		return ""
	})
	return fv
}

// RangeDecimal rejects values outside [min, max], bounds inclusive.
func (fv *FieldValidator) RangeDecimal(min, max decimal.Decimal) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		d, ok := asDecimal(value)
		if !ok {
			return ""
		}
		if d.LessThan(min) || d.GreaterThan(max) {
			return fmt.Sprintf("el campo %s debe estar entre %s y %s", fv.FieldName, min.String(), max.String())
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) MinLength(min int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if v, ok := value.(string); ok && len(v) < min {
			return fmt.Sprintf("el campo %s debe tener al menos %d caracteres", fv.FieldName, min)
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) MaxLength(max int) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		if v, ok := value.(string); ok && len(v) > max {
			return fmt.Sprintf("el campo %s no debe superar %d caracteres", fv.FieldName, max)
		}
		return ""
	})
	return fv
}

// OneOf rejects string values outside the allowed set. Empty strings pass so
// the rule composes with optional fields.
func (fv *FieldValidator) OneOf(allowed ...string) *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		v, ok := asString(value)
		if !ok || v == "" {
			return ""
		}
		for _, a := range allowed {
			if v == a {
				return ""
			}
		}
		return fmt.Sprintf("el campo %s debe ser uno de: %s", fv.FieldName, strings.Join(allowed, ", "))
	})
	return fv
}

func (fv *FieldValidator) Email() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		v, ok := asString(value)
		if !ok || v == "" {
			return ""
		}
		if !emailPattern.MatchString(v) {
			return fmt.Sprintf("el campo %s no es una dirección de correo válida", fv.FieldName)
		}
		return ""
	})
	return fv
}

// DNI validates format and control letter of a Spanish national id.
func (fv *FieldValidator) DNI() *FieldValidator {
	fv.Validators = append(fv.Validators, func(value interface{}) string {
		v, ok := asString(value)
		if !ok || v == "" {
			return ""
		}
		if !ValidDNI(v) {
			return fmt.Sprintf("el campo %s no es un DNI válido", fv.FieldName)
		}
		return ""
	})
	return fv
}

func (fv *FieldValidator) Custom(validator ValidatorFunc) *FieldValidator {
	fv.Validators = append(fv.Validators, validator)
	return fv
}

// Validate runs every field's rules. It returns nil when everything passes,
// otherwise a 422 AppError carrying the first failing message per field.
func (v *ValidationBuilder) Validate() *errors.AppError {
	fieldErrors := make(map[string]string)

	for _, field := range v.fields {
		for _, validator := range field.Validators {
			if msg := validator(field.Value); msg != "" {
				if _, seen := fieldErrors[field.FieldName]; !seen {
					fieldErrors[field.FieldName] = msg
				}
				break
			}
		}
	}

	if len(fieldErrors) > 0 {
		return errors.NewFieldValidationError(fieldErrors)
	}

	return nil
}

// ----------------- DNI -----------------

// dniControlTable maps (digits mod 23) to the expected control letter.
const dniControlTable = "TRWAGMYFPDXBNJZSQVHLCKE"

var (
	dniPattern   = regexp.MustCompile(`^(?i)\d{8}[A-Z]$`)
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// ValidDNI reports whether s is eight digits plus the matching control
// letter. The letter comparison is case-insensitive.
func ValidDNI(s string) bool {
	if !dniPattern.MatchString(s) {
		return false
	}
	digits, err := strconv.Atoi(s[:8])
	if err != nil {
		return false
	}
	expected := dniControlTable[digits%23]
	return strings.ToUpper(s[8:])[0] == expected
}

// NormalizeDNI upper-cases the control letter for storage.
func NormalizeDNI(s string) string {
	return strings.ToUpper(s)
}

// ----------------- HELPERS -----------------

func asDecimal(value interface{}) (decimal.Decimal, bool) {
	switch v := value.(type) {
	case decimal.Decimal:
		return v, true
	case *decimal.Decimal:
		if v == nil {
			return decimal.Decimal{}, false
		}
		return *v, true
	}
	return decimal.Decimal{}, false
}

func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	}
	return "", false
}
