package listings

import (
	"testing"
	"time"

	"nadlan-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func sampleProperties() []domain.Property {
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	props := DemoProperties(now)
	props = append(props,
		domain.Property{ID: "3", City: "Tel Aviv-Yafo", Price: 1900000, Type: domain.TypeStudio, Bedrooms: 0},
		domain.Property{ID: "4", City: "Herzliya", Price: 9800000, Type: domain.TypeVilla, Bedrooms: 6},
		domain.Property{ID: "5", City: "Haifa", Price: -5, Type: domain.TypeApartment, Bedrooms: 2},
	)
	return props
}

func ids(ps []domain.Property) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter_CityExample(t *testing.T) {
	input := DemoProperties(time.Now())
	c := domain.DefaultFilterCriteria()
	c.City = "תל"
	assert.Equal(t, []string{"1"}, ids(Filter(input, c)))
}

func TestFilter_MinPriceExample(t *testing.T) {
	input := DemoProperties(time.Now())
	c := domain.DefaultFilterCriteria()
	c.MinPrice = 4000000
	assert.Equal(t, []string{"2"}, ids(Filter(input, c)))
}

func TestFilter_DefaultCriteriaKeepsEverythingInRange(t *testing.T) {
	input := DemoProperties(time.Now())
	out := Filter(input, domain.DefaultFilterCriteria())
	assert.Equal(t, input, out)
}

func TestFilter_CityIsCaseInsensitiveSubstring(t *testing.T) {
	c := domain.DefaultFilterCriteria()
	c.City = "tel aviv"
	assert.Equal(t, []string{"3"}, ids(Filter(sampleProperties(), c)))

	c.City = "HAIFA"
	c.MinPrice = -10
	assert.Equal(t, []string{"5"}, ids(Filter(sampleProperties(), c)))
}

func TestFilter_PriceRangeIsInclusive(t *testing.T) {
	c := domain.DefaultFilterCriteria()
	c.MinPrice = 3850000
	c.MaxPrice = 4625000
	assert.Equal(t, []string{"1", "2"}, ids(Filter(sampleProperties(), c)))
}

func TestFilter_TypeAndBedrooms(t *testing.T) {
	c := domain.DefaultFilterCriteria()
	c.Type = domain.TypeVilla
	assert.Equal(t, []string{"4"}, ids(Filter(sampleProperties(), c)))

	c = domain.DefaultFilterCriteria()
	c.MinBedrooms = 5
	assert.Equal(t, []string{"2", "4"}, ids(Filter(sampleProperties(), c)))
}

func TestFilter_EmptyResultIsNotNil(t *testing.T) {
	c := domain.DefaultFilterCriteria()
	c.City = "אילת"
	out := Filter(sampleProperties(), c)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilter_Idempotent(t *testing.T) {
	criteria := []domain.FilterCriteria{
		domain.DefaultFilterCriteria(),
		{City: "a", MinPrice: 0, MaxPrice: 5000000, Type: domain.TypeAll, MinBedrooms: 0},
		{City: "", MinPrice: 1000000, MaxPrice: 10000000, Type: domain.TypeApartment, MinBedrooms: 1},
	}
	for _, c := range criteria {
		once := Filter(sampleProperties(), c)
		assert.Equal(t, once, Filter(once, c))
	}
}

func TestFilter_PartitionsInput(t *testing.T) {
	c := domain.FilterCriteria{City: "", MinPrice: 0, MaxPrice: 5000000, Type: domain.TypeAll, MinBedrooms: 1}
	input := sampleProperties()
	kept := map[string]bool{}
	for _, p := range Filter(input, c) {
		kept[p.ID] = true
		assert.True(t, Matches(p, c))
	}
	for _, p := range input {
		if !kept[p.ID] {
			assert.False(t, Matches(p, c), p.ID)
		}
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	input := sampleProperties()
	before := append([]domain.Property(nil), input...)
	c := domain.DefaultFilterCriteria()
	c.MinBedrooms = 3
	_ = Filter(input, c)
	assert.Equal(t, before, input)
}
