package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"Valid", "SecurePass12", false},
		{"Exactly Min Length", "Abcdefg1", false},
		{"Exactly Max Length", "A" + strings.Repeat("b", 126) + "1", false},
		{"Too Short", "Small1", true},
		{"Too Long", "A" + strings.Repeat("b", 127) + "1", true},
		{"No Upper", "securepass12", true},
		{"No Lower", "SECUREPASS12", true},
		{"No Digit", "SecurePassword", true},
		{"Unicode Characters", "ÅngstromPass12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		username string
		wantErr  bool
	}{
		{"Valid", "test_user123", false},
		{"Too Short", "tu", true},
		{"Illegal Chars", "user@123", true},
		{"Uppercase", "User123", true},
		{"Starts Dash", "-user", true},
		{"Ends Underscore", "user_", true},
		{"Reserved", "admin", true},
		{"Reserved Route Segment", "friends", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.username)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateEmail(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		email   string
		wantErr bool
	}{
		{"Valid", "test@example.com", false},
		{"Invalid Format", "not-an-email", true},
		{"Missing Domain", "user@", true},
		{"Multiple At Symbols", "user@@example.com", true},
		{"Space In Local Part", "user @example.com", true},
		{"Trailing Dot In Domain", "user@example.com.", true},
		{"Too Long", strings.Repeat("a", 250) + "@example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateEmail(tt.email)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateName(t *testing.T) {
	t.Parallel()
	assert.NoError(t, ValidateName("Casey Jones"))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", 200)))
}
