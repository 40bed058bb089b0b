package member

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidMemberID = errors.New("member id must be positive")
	ErrInvalidEmail    = errors.New("invalid email format")
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Member is the acting customer. Members are owned by the account service;
// orders only reference them by id.
type Member struct {
	id       int64
	email    string
	nickname string
}

func NewMember(id int64, email, nickname string) (*Member, error) {
	if id <= 0 {
		return nil, ErrInvalidMemberID
	}
	email = strings.TrimSpace(email)
	if !emailRegex.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	return &Member{id: id, email: email, nickname: nickname}, nil
}

// ReconstructMember rebuilds a stored member without validation.
func ReconstructMember(id int64, email, nickname string) *Member {
	return &Member{id: id, email: email, nickname: nickname}
}

func (m *Member) IsMe(id int64) bool {
	return m.id == id
}

func (m *Member) ID() int64        { return m.id }
func (m *Member) Email() string    { return m.email }
func (m *Member) Nickname() string { return m.nickname }
