package domain

import "errors"

var (
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrBookingNotPending = errors.New("booking is not in pending status")
	ErrBookingClosed     = errors.New("booking is already closed")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrDateRequired   = errors.New("trip date is required")
	ErrDateConversion = errors.New("trip date conversion failed")
	ErrInvalidDate    = errors.New("trip date is not a calendar date")
	ErrDateInPast     = errors.New("trip date is in the past")
)

var (
	ErrRouteUnavailable = errors.New("route unavailable")
)

var userMessages = []struct {
	err error
	msg string
}{
	{ErrDateRequired, "لطفا تاریخ سفر را انتخاب کنید"},
	{ErrDateConversion, "خطا در تبدیل تاریخ. لطفا تاریخ را دوباره انتخاب کنید"},
	{ErrInvalidDate, "تاریخ نامعتبر است. لطفا تاریخ را دوباره انتخاب کنید"},
	{ErrDateInPast, "تاریخ انتخاب شده گذشته است"},
	{ErrBookingNotFound, "سفر یافت نشد"},
	{ErrBookingNotPending, "وضعیت سفر قابل تغییر نیست"},
	{ErrBookingClosed, "وضعیت سفر قابل تغییر نیست"},
	{ErrValidation, "اطلاعات وارد شده معتبر نیست"},
	{ErrRouteUnavailable, "مسیریابی در حال حاضر ممکن نیست"},
}

// UserMessage returns the Persian message shown to the passenger for err,
// or the generic booking failure message.
func UserMessage(err error) string {
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "خطا در ثبت سفر"
}
