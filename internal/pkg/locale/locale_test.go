package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"nadlan-backend/internal/domain"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₪ 3,850,000", FormatPrice(3850000))
	assert.Equal(t, "₪ 249", FormatPrice(249))
	assert.Equal(t, "₪ 1,000", FormatPrice(999.6))
	assert.Equal(t, "₪ 0", FormatPrice(0))
}

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "בית פרטי", TypeLabel(domain.TypeHouse))
	assert.Equal(t, "דירה", TypeLabel(domain.TypeApartment))
	assert.Equal(t, "Castle", TypeLabel(domain.PropertyType("Castle")))
}
