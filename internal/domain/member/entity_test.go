//go:build unit

package member_test

import (
	"testing"

	"github.com/java-saeng/jwp-shopping-order/internal/domain/member"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMember(t *testing.T) {
	tests := []struct {
		name  string
		id    int64
		email string
		errIs error
	}{
		{name: "valid member", id: 1, email: "a@a.com"},
		{name: "email is trimmed", id: 2, email: "  b@b.com "},
		{name: "zero id", id: 0, email: "a@a.com", errIs: member.ErrInvalidMemberID},
		{name: "negative id", id: -1, email: "a@a.com", errIs: member.ErrInvalidMemberID},
		{name: "missing at sign", id: 1, email: "aa.com", errIs: member.ErrInvalidEmail},
		{name: "empty email", id: 1, email: "", errIs: member.ErrInvalidEmail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := member.NewMember(tt.id, tt.email, "nick")
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				assert.Nil(t, m)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.id, m.ID())
			assert.Equal(t, "nick", m.Nickname())
		})
	}
}

func TestMember_IsMe(t *testing.T) {
	m := member.ReconstructMember(1, "a@a.com", "a")

	assert.True(t, m.IsMe(1))
	assert.False(t, m.IsMe(2))
}
