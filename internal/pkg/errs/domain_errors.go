package errs

// Domain-specific sentinel errors shared by the command and query layers.
// Callers classify with errors.Is; use cases attach context with Wrap.
var (
	// Order registration
	ErrCanNotOrderNotInCart = New("can not order items that are not in the member's cart")
	ErrNotSameTotalPrice    = New("declared total price does not match the ordered items")

	// Coupon ledger
	ErrNotFoundCoupon = New("coupon not found")

	// Order deletion / lookup
	ErrNotFoundOrder          = New("order not found")
	ErrCanNotDeleteNotMyOrder = New("can not delete an order owned by another member")

	// Member lookup
	ErrNotFoundMember = New("member not found")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
