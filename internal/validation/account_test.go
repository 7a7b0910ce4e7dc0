package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"valid password", "Str0ng!Password", true},
		{"too short", "Sh0rt!pw", false},
		{"too long", strings.Repeat("Aa1!", 40), false},
		{"no uppercase", "weak!password1", false},
		{"no lowercase", "WEAK!PASSWORD1", false},
		{"no digit", "Weak!Password", false},
		{"no special character", "WeakPassword12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
		valid    bool
	}{
		{"valid", "pin_collector-42", true},
		{"too short", "ab", false},
		{"too long", strings.Repeat("a", 31), false},
		{"invalid characters", "user name!", false},
		{"leading underscore", "_user", false},
		{"trailing hyphen", "user-", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("user@"+strings.Repeat("a", 250)+".com"))
}
