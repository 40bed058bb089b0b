//go:build unit || e2e

package builder

import (
	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"
	"github.com/java-saeng/jwp-shopping-order/internal/infra/pgq"
)

type MemberBuilder struct {
	ID       int64
	Email    string
	Nickname string
}

func NewMemberBuilder() *MemberBuilder {
	return &MemberBuilder{
		ID:       1,
		Email:    "a@a.com",
		Nickname: "member-a",
	}
}

func (b *MemberBuilder) With(mutate func(*MemberBuilder)) *MemberBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *MemberBuilder) BuildDomain() *member.Member {
	return member.ReconstructMember(b.ID, b.Email, b.Nickname)
}

func (b *MemberBuilder) BuildInfra() pgq.Members {
	return pgq.Members{
		ID:       b.ID,
		Email:    b.Email,
		Nickname: b.Nickname,
	}
}

// Fluent builder methods
func (b *MemberBuilder) WithID(id int64) *MemberBuilder {
	b.ID = id
	return b
}

func (b *MemberBuilder) WithEmail(email string) *MemberBuilder {
	b.Email = email
	return b
}
