package listings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"nadlan-backend/internal/domain"

	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
)

// DefaultImage is attached to listings published without photos.
const DefaultImage = "https://images.unsplash.com/photo-1560518883-ce09059eeffa?auto=format&fit=crop&w=800&q=80"

// DefaultMaxImages applies when a listing is published without a plan.
const DefaultMaxImages = 10

// FeaturedLimit caps the home-page showcase.
const FeaturedLimit = 3

var ErrTooManyImages = errors.New("Too many images for the selected plan")

type Service struct {
	Store Store
	Now   func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Search filters a snapshot of the collection.
func (s *Service) Search(ctx context.Context, c domain.FilterCriteria) ([]domain.Property, error) {
	all, err := s.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch properties: %w", err)
	}
	return Filter(all, c), nil
}

// Featured returns the first premium listings in collection order.
func (s *Service) Featured(ctx context.Context) ([]domain.Property, error) {
	all, err := s.Store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Failed to fetch properties: %w", err)
	}
	out := make([]domain.Property, 0, FeaturedLimit)
	for _, p := range all {
		if !p.IsPremium {
			continue
		}
		out = append(out, p)
		if len(out) == FeaturedLimit {
			break
		}
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	return s.Store.Get(ctx, id)
}

type CreateListingInput struct {
	Title       string
	Price       float64
	Address     string
	City        string
	Type        domain.PropertyType
	Bedrooms    *int
	Area        float64
	Description string
	Images      []string
	SellerName  string
	SellerPhone string
}

// Publish builds a new listing under plan (nil = no plan chosen) and
// prepends it to the collection.
func (s *Service) Publish(ctx context.Context, in CreateListingInput, plan *domain.PricingPlan) (*domain.Property, error) {
	maxImages := DefaultMaxImages
	premium := false
	if plan != nil {
		premium = plan.IsPremium
		if plan.MaxImages > 0 {
			maxImages = plan.MaxImages
		}
	}
	if len(in.Images) > maxImages {
		return nil, ErrTooManyImages
	}

	propType := in.Type
	if propType == "" {
		propType = domain.TypeApartment
	}
	bedrooms := 1
	if in.Bedrooms != nil {
		bedrooms = *in.Bedrooms
	}
	images := in.Images
	if len(images) == 0 {
		images = []string{DefaultImage}
	}

	p := domain.Property{
		ID:          domain.NewPropertyID(),
		Title:       in.Title,
		Price:       in.Price,
		Address:     in.Address,
		City:        in.City,
		Type:        propType,
		Bedrooms:    bedrooms,
		Bathrooms:   1,
		Area:        in.Area,
		Description: in.Description,
		Images:      datatypes.NewJSONSlice(images),
		SellerName:  in.SellerName,
		SellerPhone: in.SellerPhone,
		ListedAt:    s.now(),
		IsPremium:   premium,
	}
	if err := s.Store.Prepend(ctx, p); err != nil {
		return nil, fmt.Errorf("Failed to publish listing: %w", err)
	}
	log.Info().Str("property_id", p.ID).Str("city", p.City).Bool("premium", p.IsPremium).Msg("Listing published")
	return &p, nil
}
