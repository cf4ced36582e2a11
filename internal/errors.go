package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDNI       ErrorCode = "INVALID_DNI"
	ErrCodeDuplicateField   ErrorCode = "DUPLICATE_FIELD"
	ErrCodeInvalidQuantity  ErrorCode = "INVALID_QUANTITY"
	ErrCodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	ErrCodeOutOfRange       ErrorCode = "OUT_OF_RANGE"

	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeMemberNotFound     ErrorCode = "MEMBER_NOT_FOUND"
	ErrCodeEmployeeNotFound   ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeDepartmentNotFound ErrorCode = "DEPARTMENT_NOT_FOUND"
	ErrCodeEntryNotFound      ErrorCode = "ENTRY_NOT_FOUND"
	ErrCodeAnalysisNotFound   ErrorCode = "ANALYSIS_NOT_FOUND"
	ErrCodeOilNotFound        ErrorCode = "OIL_NOT_FOUND"
	ErrCodeSettlementNotFound   ErrorCode = "SETTLEMENT_NOT_FOUND"
	ErrCodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUserInactive       ErrorCode = "USER_INACTIVE"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeForbidden          ErrorCode = "FORBIDDEN"
)

// AppError is the single error shape services return and handlers translate
// into the HTTP envelope.
type AppError struct {
	Type       ErrorType         `json:"type"`
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Fields     map[string]string `json:"fields,omitempty"`
	StatusCode int               `json:"-"`
	Cause      error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

// WithField attaches a field-level message; the first message per field wins.
func (e *AppError) WithField(field, message string) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	if _, exists := e.Fields[field]; !exists {
		e.Fields[field] = message
	}
	return e
}

func NewValidationError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func NewFieldValidationError(fields map[string]string) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       ErrCodeValidationFailed,
		Message:    "Los datos proporcionados no son válidos",
		Fields:     fields,
		StatusCode: http.StatusUnprocessableEntity,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError() *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       ErrCodeForbidden,
		Message:    "No tienes permisos para realizar esta acción",
		StatusCode: http.StatusForbidden,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrUserNotFound       = NewNotFoundError("Usuario no encontrado", ErrCodeUserNotFound)
	ErrMemberNotFound     = NewNotFoundError("Socio no encontrado", ErrCodeMemberNotFound)
	ErrEmployeeNotFound   = NewNotFoundError("Empleado no encontrado", ErrCodeEmployeeNotFound)
	ErrDepartmentNotFound = NewNotFoundError("Departamento no encontrado", ErrCodeDepartmentNotFound)
	ErrEntryNotFound      = NewNotFoundError("Entrada no encontrada", ErrCodeEntryNotFound)
	ErrAnalysisNotFound   = NewNotFoundError("Análisis no encontrado", ErrCodeAnalysisNotFound)
	ErrOilNotFound        = NewNotFoundError("Aceite no encontrado", ErrCodeOilNotFound)
	ErrSettlementNotFound = NewNotFoundError("Liquidación no encontrada", ErrCodeSettlementNotFound)
	ErrNotificationNotFound = NewNotFoundError("Notificación no encontrada", ErrCodeNotificationNotFound)

	ErrInvalidCredentials = NewUnauthorizedError("Credenciales incorrectas", ErrCodeInvalidCredentials)
	ErrUnauthenticated    = NewUnauthorizedError("No autenticado", ErrCodeInvalidToken)
	ErrInvalidToken       = NewUnauthorizedError("Token inválido", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("Token expirado", ErrCodeTokenExpired)
	ErrUserInactive       = NewForbiddenError()
	ErrForbidden          = NewForbiddenError()
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

// ErrorResponse is the wire shape for handled errors:
// {"status":"error","message":...,"errors":{field: message}}.
type ErrorResponse struct {
	Status  string            `json:"status"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, ErrorResponse{
		Status:  "error",
		Message: e.Message,
		Errors:  e.Fields,
	}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType         `json:"type"`
		Code    ErrorCode         `json:"code"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Fields:  e.Fields,
	})
}
