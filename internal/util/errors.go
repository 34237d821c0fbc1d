package util

import (
	"errors"
	"net/http"
)

// User-facing messages are Persian, matching the product surface.
const (
	MsgUnauthorized = "دسترسی غیرمجاز - توکن ارائه نشده"
	MsgForbidden    = "شما مجاز به انجام این عملیات نیستید"
	MsgNotFound     = "منبع مورد نظر یافت نشد"
	MsgServerError  = "خطای سرور"
)

// AppError is the single operational error type services raise; it
// carries the HTTP status the outermost handler should serialize.
type AppError struct {
	Status  int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

var (
	ErrEmailRegistered    = NewAppError(http.StatusBadRequest, "کاربری با این ایمیل قبلاً ثبت‌نام کرده است")
	ErrInvalidCredentials = NewAppError(http.StatusUnauthorized, "ایمیل یا رمز عبور نادرست است")
	ErrUserNotFound       = NewAppError(http.StatusNotFound, "کاربر یافت نشد")
	ErrUserDisabled       = NewAppError(http.StatusForbidden, "حساب کاربری غیرفعال شده است")
	ErrPrayerNotFound     = NewAppError(http.StatusNotFound, "ختم صلوات یافت نشد")
	ErrPrayerNotActive    = NewAppError(http.StatusBadRequest, "این ختم در حال حاضر فعال نیست")
	ErrNotPrayerOwner     = NewAppError(http.StatusForbidden, "شما مجاز به ویرایش این ختم نیستید")
	ErrPrayerStatsMissing = NewAppError(http.StatusNotFound, "آمار ختم یافت نشد")
	ErrUserStatsMissing   = NewAppError(http.StatusNotFound, "آمار کاربر یافت نشد")
	ErrContentNotFound    = NewAppError(http.StatusNotFound, "محتوای مورد نظر یافت نشد")
	ErrInvalidStatus      = NewAppError(http.StatusBadRequest, "وضعیت نامعتبر است")
	ErrInvalidContentType = NewAppError(http.StatusBadRequest, "نوع محتوا نامعتبر است")
)
