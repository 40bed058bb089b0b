package membercoupon

import "errors"

var (
	ErrInvalidUsedStatus = errors.New("invalid used status code")
	ErrCouponAlreadyUsed = errors.New("coupon already used")
)

// UsedStatus is persisted as a single character: N for unused, Y for used.
type UsedStatus string

const (
	Unused UsedStatus = "UNUSED"
	Used   UsedStatus = "USED"
)

const (
	codeUnused = "N"
	codeUsed   = "Y"
)

func MapToUsedStatus(code string) (UsedStatus, error) {
	switch code {
	case codeUnused:
		return Unused, nil
	case codeUsed:
		return Used, nil
	default:
		return "", ErrInvalidUsedStatus
	}
}

// ParseUsedStatus accepts the external name ("unused", "used") used by query filters.
func ParseUsedStatus(s string) (UsedStatus, error) {
	switch UsedStatus(s) {
	case Unused, "unused":
		return Unused, nil
	case Used, "used":
		return Used, nil
	default:
		return "", ErrInvalidUsedStatus
	}
}

func (s UsedStatus) Code() string {
	if s == Used {
		return codeUsed
	}
	return codeUnused
}

func (s UsedStatus) String() string {
	return string(s)
}
