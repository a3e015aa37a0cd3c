package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateEmail("alice@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain"))
	assert.Error(t, ValidateEmail("two@@example.com"))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidatePassword(""))
	assert.Error(t, ValidatePassword("12345"))
	assert.NoError(t, ValidatePassword("123456"))
	assert.NoError(t, ValidatePassword("a much longer passphrase"))
}

func TestValidateCoordinates(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCoordinates(0, 0))
	assert.NoError(t, ValidateCoordinates(-90, 180))
	assert.NoError(t, ValidateCoordinates(90, -180))
	assert.Error(t, ValidateCoordinates(90.1, 0))
	assert.Error(t, ValidateCoordinates(-90.1, 0))
	assert.Error(t, ValidateCoordinates(0, 180.1))
	assert.Error(t, ValidateCoordinates(0, -180.1))
}

func TestValidateRadiusKm(t *testing.T) {
	t.Parallel()

	assert.Error(t, ValidateRadiusKm(0.4))
	assert.NoError(t, ValidateRadiusKm(0.5))
	assert.NoError(t, ValidateRadiusKm(5))
	assert.NoError(t, ValidateRadiusKm(50))
	assert.Error(t, ValidateRadiusKm(50.1))
}

func TestIsDataImageURL(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDataImageURL("data:image/png;base64,iVBORw0KGgo="))
	assert.False(t, IsDataImageURL("https://example.com/a.png"))
	assert.False(t, IsDataImageURL("data:text/plain;base64,aGVsbG8="))
}
