package errors

import (
	"net/http"

	"nearby/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError carrying the same business code, so errors derived
// through WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// Predefined error types
var (
	// Coordinate and geo index errors
	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"座標超出有效範圍",
		"",
	)

	ErrInvalidBoundingBox = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOUNDING_BOX",
		"無效的查詢範圍",
		"",
	)

	ErrInvalidRadius = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RADIUS",
		"無效的搜尋半徑",
		"",
	)

	ErrGeocodeUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOCODE_UNAVAILABLE",
		"無法解析地址座標",
		"",
	)

	// Identity-related errors
	ErrIdentityMismatch = NewBaseError(
		http.StatusForbidden,
		"IDENTITY_MISMATCH",
		"此個人檔案屬於其他帳號",
		"",
	)

	ErrIdentityRequired = NewBaseError(
		http.StatusUnauthorized,
		"IDENTITY_REQUIRED",
		"需要登入或訪客權杖",
		"",
	)

	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"找不到該個人檔案",
		"",
	)

	ErrProfileAlreadyOwned = NewBaseError(
		http.StatusConflict,
		"PROFILE_ALREADY_OWNED",
		"此帳號已擁有其他個人檔案",
		"",
	)

	// Entitlement-related errors
	ErrInsufficientPoints = NewBaseError(
		http.StatusPaymentRequired,
		"INSUFFICIENT_POINTS",
		"點數不足",
		"",
	)

	ErrMembershipRequired = NewBaseError(
		http.StatusForbidden,
		"MEMBERSHIP_REQUIRED",
		"此功能需要有效的會員資格",
		"",
	)

	ErrMembershipNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBERSHIP_NOT_FOUND",
		"找不到有效的會員資格",
		"",
	)

	ErrUnknownPlan = NewBaseError(
		http.StatusBadRequest,
		"UNKNOWN_PLAN",
		"未知的方案類型",
		"",
	)

	ErrUnsupportedPaymentMethod = NewBaseError(
		http.StatusBadRequest,
		"UNSUPPORTED_PAYMENT_METHOD",
		"不支援的付款方式",
		"",
	)

	ErrPaymentNotConfirmed = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_NOT_CONFIRMED",
		"付款尚未完成",
		"",
	)

	ErrPaymentAlreadyRedeemed = NewBaseError(
		http.StatusConflict,
		"PAYMENT_ALREADY_REDEEMED",
		"此付款已兌換過",
		"",
	)

	ErrPaymentMismatch = NewBaseError(
		http.StatusPaymentRequired,
		"PAYMENT_MISMATCH",
		"付款金額或品項與購買內容不符",
		"",
	)

	// Boost-related errors
	ErrBoostNotFound = NewBaseError(
		http.StatusNotFound,
		"BOOST_NOT_FOUND",
		"找不到該加速",
		"",
	)

	ErrInvalidBoostFactor = NewBaseError(
		http.StatusBadRequest,
		"INVALID_BOOST_FACTOR",
		"加速倍率必須大於 1",
		"",
	)

	// Super-like errors
	ErrAlreadySuperLiked = NewBaseError(
		http.StatusConflict,
		"ALREADY_SUPER_LIKED",
		"已經對此對象送出超級喜歡",
		"",
	)

	ErrCannotLikeSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_LIKE_SELF",
		"不能對自己送出喜歡",
		"",
	)

	// Venue-related errors
	ErrVenueNotFound = NewBaseError(
		http.StatusNotFound,
		"VENUE_NOT_FOUND",
		"找不到該場館",
		"",
	)

	ErrVenueDuplicate = NewBaseError(
		http.StatusConflict,
		"VENUE_DUPLICATE",
		"附近已有同名場館",
		"",
	)

	ErrVenueOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"VENUE_OWNERSHIP_VIOLATION",
		"您沒有權限修改此場館",
		"",
	)

	// Device-related errors
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		"DEVICE_NOT_FOUND",
		"找不到該裝置",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"輸入資料驗證失敗",
		"",
	)

	// Infrastructure errors
	ErrBackingStoreTimeout = NewBaseError(
		http.StatusServiceUnavailable,
		"BACKING_STORE_TIMEOUT",
		"資料存取逾時",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"資料庫交易失敗",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"系統內部錯誤",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"存取被拒絕",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"找不到該資源",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "資料庫執行失敗"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
