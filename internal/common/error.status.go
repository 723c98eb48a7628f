package common

import (
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// HTTP Status Code Constants
const (
	// Success Codes (2xx)
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	// Client Error Codes (4xx)
	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusMethodNotAllowed = 405
	StatusConflict         = 409
	StatusTooManyRequests  = 429

	// Server Error Codes (5xx)
	StatusInternalServerError = 500
	StatusNotImplemented      = 501
	StatusServiceUnavailable  = 503
)

// Response Messages (user-facing, Spanish)
const (
	// Success Messages
	MsgSuccess = "Operación exitosa"
	MsgCreated = "Creado exitosamente"

	// Error Messages
	MsgBadRequest         = "Solicitud inválida"
	MsgUnauthorized       = "Inicia sesión para continuar"
	MsgForbidden          = "No tienes permiso para esta acción"
	MsgNotFound           = "Recurso no encontrado"
	MsgConflict           = "Conflicto de datos"
	MsgTooManyRequests    = "Demasiadas solicitudes"
	MsgInternalError      = "Error del sistema"
	MsgServiceUnavailable = "Servicio no disponible"

	// Token Messages
	MsgTokenMissing = "Falta el token de sesión"
	MsgTokenInvalid = "Token de sesión inválido"
	MsgTokenExpired = "La sesión ha expirado"

	// Validation Messages
	MsgValidationError = "Datos inválidos"
	MsgDatabaseError   = "Error al acceder a la base de datos"
	MsgInvalidFormat   = "Formato de datos inválido"
)

// ErrorCode identifies one class of failure. Codes group by prefix:
// SYS (system), AUTH (authentication), VAL (validation), DB (database),
// BIZ (business rules).
type ErrorCode struct {
	Code        string // Stable code, e.g. AUTH_001
	Category    string // Top-level category, e.g. Authentication
	SubCategory string // Refinement, e.g. Token
	Description string // Human description for logs
}

var (
	// System Errors (SYS_xxx)
	ErrCodeInternalServer = ErrorCode{
		Code:        "SYS_001",
		Category:    "System",
		SubCategory: "Internal",
		Description: "Internal server error",
	}

	// Authentication Errors (AUTH_xxx)
	ErrCodeAuth = ErrorCode{
		Code:        "AUTH",
		Category:    "Authentication",
		SubCategory: "General",
		Description: "Generic authentication failure",
	}

	ErrCodeAuthToken = ErrorCode{
		Code:        "AUTH_001",
		Category:    "Authentication",
		SubCategory: "Token",
		Description: "Session token failure",
	}

	ErrCodeAuthCredentials = ErrorCode{
		Code:        "AUTH_002",
		Category:    "Authentication",
		SubCategory: "Credentials",
		Description: "Invalid login credentials",
	}

	// Validation Errors (VAL_xxx)
	ErrCodeValidation = ErrorCode{
		Code:        "VAL",
		Category:    "Validation",
		SubCategory: "General",
		Description: "Generic validation failure",
	}

	ErrCodeValidationInput = ErrorCode{
		Code:        "VAL_001",
		Category:    "Validation",
		SubCategory: "Input",
		Description: "Invalid input data",
	}

	ErrCodeValidationFormat = ErrorCode{
		Code:        "VAL_002",
		Category:    "Validation",
		SubCategory: "Format",
		Description: "Invalid data format",
	}

	// Database Errors (DB_xxx)
	ErrCodeDatabase = ErrorCode{
		Code:        "DB",
		Category:    "Database",
		SubCategory: "General",
		Description: "Generic database failure",
	}

	ErrCodeDatabaseConnection = ErrorCode{
		Code:        "DB_001",
		Category:    "Database",
		SubCategory: "Connection",
		Description: "Database connection failure",
	}

	ErrCodeDatabaseQuery = ErrorCode{
		Code:        "DB_002",
		Category:    "Database",
		SubCategory: "Query",
		Description: "Database query failure",
	}

	// Business Logic Errors (BIZ_xxx)
	ErrCodeBusiness = ErrorCode{
		Code:        "BIZ",
		Category:    "Business",
		SubCategory: "General",
		Description: "Generic business rule failure",
	}

	ErrCodeBusinessState = ErrorCode{
		Code:        "BIZ_001",
		Category:    "Business",
		SubCategory: "State",
		Description: "Illegal state or state transition",
	}

	ErrCodeBusinessOperation = ErrorCode{
		Code:        "BIZ_002",
		Category:    "Business",
		SubCategory: "Operation",
		Description: "Operation not allowed",
	}
)

// Error is the structured error carried from services up to the HTTP layer.
// Handlers map StatusCode to the HTTP status and Code.Code into the response
// envelope; Message is safe to show to the client.
type Error struct {
	Code       ErrorCode
	Message    string
	StatusCode int
	Details    any
}

func (e *Error) Error() string {
	return e.Message
}

// Is supports errors.Is against the predefined sentinel errors. Two *Error
// values match when code and message match.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}
	if targetErr, ok := target.(*Error); ok {
		return e.Code.Code == targetErr.Code.Code && e.Message == targetErr.Message
	}
	return false
}

// NewError creates a structured error.
func NewError(code ErrorCode, message string, statusCode int, details any) error {
	return &Error{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
		Details:    details,
	}
}

// Predefined errors. Services return these (or wrap them via NewError with a
// more specific message) so handlers and tests can match with errors.Is.
var (
	// Authentication Errors
	ErrInvalidCredentials = NewError(ErrCodeAuthCredentials, "Correo o contraseña incorrectos", StatusUnauthorized, nil)
	ErrTokenExpired       = NewError(ErrCodeAuthToken, MsgTokenExpired, StatusUnauthorized, nil)
	ErrTokenInvalid       = NewError(ErrCodeAuthToken, MsgTokenInvalid, StatusUnauthorized, nil)
	ErrTokenMissing       = NewError(ErrCodeAuthToken, MsgTokenMissing, StatusUnauthorized, nil)
	ErrAdminDisabled      = NewError(ErrCodeAuthCredentials, "La cuenta de administrador está deshabilitada", StatusForbidden, nil)

	// Validation Errors
	ErrInvalidInput  = NewError(ErrCodeValidationInput, MsgValidationError, StatusBadRequest, nil)
	ErrInvalidFormat = NewError(ErrCodeValidationFormat, MsgInvalidFormat, StatusBadRequest, nil)
	ErrRequiredField = NewError(ErrCodeValidationInput, "Falta un campo obligatorio", StatusBadRequest, nil)

	// Database Errors
	ErrNotFound   = NewError(ErrCodeDatabaseQuery, MsgNotFound, StatusNotFound, nil)
	ErrDuplicate  = NewError(ErrCodeDatabaseQuery, "El registro ya existe", StatusConflict, nil)
	ErrConnection = NewError(ErrCodeDatabaseConnection, MsgDatabaseError, StatusServiceUnavailable, nil)

	// Business Logic Errors
	ErrInvalidState     = NewError(ErrCodeBusinessState, "Transición de estado no permitida", StatusBadRequest, nil)
	ErrInvalidOperation = NewError(ErrCodeBusinessOperation, "Operación no permitida", StatusBadRequest, nil)
	ErrSystemManaged    = NewError(ErrCodeBusinessOperation, "Registro administrado por el sistema", StatusBadRequest, nil)
	ErrMenuUnavailable  = NewError(ErrCodeBusinessOperation, "El menú no está disponible", StatusServiceUnavailable, nil)
)

// Mongo-specific errors surfaced by ConvertMongoError.
var (
	ErrMongoConnection = NewError(ErrCodeDatabaseConnection, "Error de conexión con la base de datos", StatusServiceUnavailable, nil)
	ErrMongoNetwork    = NewError(ErrCodeDatabaseConnection, "Error de red con la base de datos", StatusServiceUnavailable, nil)
	ErrMongoTimeout    = NewError(ErrCodeDatabaseConnection, "Tiempo de espera agotado en la base de datos", StatusServiceUnavailable, nil)
	ErrMongoDuplicate  = NewError(ErrCodeDatabaseQuery, "Registro duplicado", StatusConflict, nil)
	ErrMongoQuery      = NewError(ErrCodeDatabaseQuery, MsgDatabaseError, StatusInternalServerError, nil)
	ErrMongoWrite      = NewError(ErrCodeDatabaseQuery, "Error al escribir en la base de datos", StatusInternalServerError, nil)
	ErrMongoDecode     = NewError(ErrCodeValidationFormat, "El documento almacenado no coincide con el esquema", StatusInternalServerError, nil)
)

// ConvertMongoError maps a mongo-driver error into the structured taxonomy.
// ErrNotFound passes through untouched so callers can keep matching on it.
func ConvertMongoError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, ErrNotFound) {
		return err
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}

	var mongoErr mongo.CommandError
	if errors.As(err, &mongoErr) {
		switch {
		case mongoErr.Code >= 100 && mongoErr.Code < 200:
			return ErrMongoConnection
		case mongoErr.Code >= 300 && mongoErr.Code < 400:
			return ErrMongoQuery
		case mongoErr.Code >= 400 && mongoErr.Code < 500:
			return ErrMongoWrite
		}
	}

	if mongo.IsDuplicateKeyError(err) {
		return ErrMongoDuplicate
	}
	if mongo.IsNetworkError(err) {
		return ErrMongoNetwork
	}
	if mongo.IsTimeout(err) {
		return ErrMongoTimeout
	}

	return NewError(ErrCodeDatabase, MsgDatabaseError, StatusInternalServerError, err.Error())
}

// IsDuplicateError reports whether err is a duplicate-record error, either
// the business sentinel or the converted unique-index violation.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate) || errors.Is(err, ErrMongoDuplicate) || mongo.IsDuplicateKeyError(err)
}
