package constants

const (
	ErrCodeEventNotFound         = "EVENT_NOT_FOUND"
	ErrCodeTicketNotFound        = "TICKET_NOT_FOUND"
	ErrCodeTransactionNotFound   = "TRANSACTION_NOT_FOUND"
	ErrCodeUserNotFound          = "USER_NOT_FOUND"
	ErrCodeForbidden             = "FORBIDDEN"
	ErrCodeInvalidState          = "INVALID_STATE"
	ErrCodeInsufficientInventory = "INSUFFICIENT_INVENTORY"
	ErrCodeCouponNotFound        = "COUPON_NOT_FOUND"
	ErrCodeCouponEventMismatch   = "COUPON_EVENT_MISMATCH"
	ErrCodeValidation            = "VALIDATION_ERROR"
	ErrCodeNotificationNotFound  = "NOTIFICATION_NOT_FOUND"
	ErrCodeInvalidRequestBody    = "INVALID_REQUEST_BODY"
	ErrCodeInternalError         = "INTERNAL_ERROR"
	ErrCodeDatabase              = "DATABASE_ERROR"
)

const (
	ErrMsgEventNotFound         = "event not found"
	ErrMsgTicketNotFound        = "ticket does not belong to this event"
	ErrMsgTransactionNotFound   = "transaction not found"
	ErrMsgUserNotFound          = "user not found"
	ErrMsgForbidden             = "operation not allowed for this user"
	ErrMsgInvalidState          = "operation not valid for current transaction status"
	ErrMsgInsufficientInventory = "not enough seats available"
	ErrMsgCouponNotFound        = "coupon not found or no longer usable"
	ErrMsgCouponEventMismatch   = "coupon is bound to a different event"
	ErrMsgValidation            = "invalid request"
	ErrMsgNotificationNotFound  = "notification not found"
	ErrMsgInvalidRequestBody    = "failed to parse request body"
	ErrMsgInternalError         = "Internal server error"
)

var errorMessages = map[string]string{
	ErrCodeEventNotFound:         ErrMsgEventNotFound,
	ErrCodeTicketNotFound:        ErrMsgTicketNotFound,
	ErrCodeTransactionNotFound:   ErrMsgTransactionNotFound,
	ErrCodeUserNotFound:          ErrMsgUserNotFound,
	ErrCodeForbidden:             ErrMsgForbidden,
	ErrCodeInvalidState:          ErrMsgInvalidState,
	ErrCodeInsufficientInventory: ErrMsgInsufficientInventory,
	ErrCodeCouponNotFound:        ErrMsgCouponNotFound,
	ErrCodeCouponEventMismatch:   ErrMsgCouponEventMismatch,
	ErrCodeValidation:            ErrMsgValidation,
	ErrCodeNotificationNotFound:  ErrMsgNotificationNotFound,
	ErrCodeInvalidRequestBody:    ErrMsgInvalidRequestBody,
	ErrCodeInternalError:         ErrMsgInternalError,
}

func GetErrorMessage(code string) string {
	if msg, exists := errorMessages[code]; exists {
		return msg
	}
	return ErrMsgInternalError
}

func GetHTTPStatus(code string) int {
	switch code {
	case ErrCodeInvalidRequestBody, ErrCodeValidation:
		return 400
	case ErrCodeForbidden:
		return 403
	case ErrCodeEventNotFound, ErrCodeTicketNotFound, ErrCodeTransactionNotFound,
		ErrCodeUserNotFound, ErrCodeCouponNotFound, ErrCodeNotificationNotFound:
		return 404
	case ErrCodeInvalidState, ErrCodeInsufficientInventory:
		return 409
	case ErrCodeCouponEventMismatch:
		return 422
	case ErrCodeInternalError, ErrCodeDatabase:
		return 500
	default:
		return 500
	}
}
