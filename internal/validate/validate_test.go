package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMobileNumber(t *testing.T) {
	assert.True(t, IsValidMobileNumber("07701234567"))
	assert.True(t, IsValidMobileNumber("9647701234567"))
	assert.False(t, IsValidMobileNumber("12345"))
	assert.False(t, IsValidMobileNumber("0770-123-4567"))
	assert.False(t, IsValidMobileNumber(""))
}

func TestSanitizeMobileNumber(t *testing.T) {
	assert.Equal(t, "9647701234567", SanitizeMobileNumber("+964 770 123 4567"))
	assert.Equal(t, "07701234567", SanitizeMobileNumber("0770-123-4567"))
	assert.Equal(t, "", SanitizeMobileNumber("abc"))
}

func TestEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.True(t, IsValidEmail("u.name+tag@sub.example.org"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail("example.com"))
}
