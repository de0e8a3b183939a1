package contracts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validForm = `{
	"title": "דירת 3 חדרים",
	"price": 2100000,
	"address": "ביאליק 7",
	"city": "רמת גן",
	"type": "Apartment",
	"bedrooms": 3,
	"area": 80,
	"description": "דירה מוארת",
	"images": ["https://example.com/a.jpg"],
	"seller_name": "רון",
	"seller_phone": "054-7654321"
}`

func TestValidateListingForm_Valid(t *testing.T) {
	assert.NoError(t, ValidateListingForm([]byte(validForm)))
}

func TestValidateListingForm_NotJSON(t *testing.T) {
	assert.ErrorIs(t, ValidateListingForm([]byte("{")), ErrInvalidJSON)
}

func TestValidateListingForm_MissingRequired(t *testing.T) {
	err := ValidateListingForm([]byte(`{"title":"x"}`))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.NotEmpty(t, ve.Errors)
	assert.Contains(t, ve.Error(), "missing properties")
}

func TestValidateListingForm_BadFields(t *testing.T) {
	body := `{"title":"x","price":-1,"address":"a","city":"c","description":"d","seller_name":"s","seller_phone":"abc","type":"Castle","bedrooms":1.5}`
	err := ValidateListingForm([]byte(body))
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	fields := map[string]bool{}
	for _, fe := range ve.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["price"])
	assert.True(t, fields["seller_phone"])
	assert.True(t, fields["type"])
	assert.True(t, fields["bedrooms"])
}
