package listings

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"nadlan-backend/internal/application/appstate"
	listsvc "nadlan-backend/internal/application/listings"
	"nadlan-backend/internal/application/pricing"
	"nadlan-backend/internal/contracts"
	"nadlan-backend/internal/domain"
	"nadlan-backend/internal/interfaces/handlers/visitor"
	"nadlan-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Service *listsvc.Service
}

// GET /api/v1/properties/featured
func (h *Handlers) Featured(c *fiber.Ctx) error {
	props, err := h.Service.Featured(c.Context())
	if err != nil {
		return err
	}
	return response.Success(c, "Featured properties fetched successfully", toCards(props), nil)
}

// GET /api/v1/properties/search: query params override the visitor's saved filters.
func (h *Handlers) Search(c *fiber.Ctx) error {
	cont := visitor.Load(c)
	criteria, err := overlayCriteria(c, cont.State().Filters)
	if err != nil {
		return response.BadRequest(c, err.Error(), nil)
	}

	props, err := h.Service.Search(c.Context(), criteria)
	if err != nil {
		return err
	}
	st := cont.Dispatch(appstate.FiltersChanged{Filters: criteria, Submit: c.QueryBool("submit")})
	if err := visitor.Save(c, st); err != nil {
		return err
	}
	return response.Success(c, "Properties fetched successfully", fiber.Map{
		"count":      len(props),
		"filters":    criteria,
		"properties": toCards(props),
	}, fiber.Map{"token": st.Token})
}

// parsePrice rejects NaN and infinities, which cannot be stored as JSON.
func parsePrice(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, strconv.ErrSyntax
	}
	return v, nil
}

func overlayCriteria(c *fiber.Ctx, base domain.FilterCriteria) (domain.FilterCriteria, error) {
	args := c.Context().QueryArgs()
	if args.Has("city") {
		base.City = c.Query("city")
	}
	if args.Has("min_price") {
		v, err := parsePrice(c.Query("min_price"))
		if err != nil {
			return base, errors.New("Invalid min_price")
		}
		base.MinPrice = v
	}
	if args.Has("max_price") {
		v, err := parsePrice(c.Query("max_price"))
		if err != nil {
			return base, errors.New("Invalid max_price")
		}
		base.MaxPrice = v
	}
	if args.Has("type") {
		t, err := domain.ParseFilterType(c.Query("type"))
		if err != nil {
			return base, err
		}
		base.Type = t
	}
	if args.Has("min_bedrooms") {
		v, err := strconv.Atoi(c.Query("min_bedrooms"))
		if err != nil {
			return base, errors.New("Invalid min_bedrooms")
		}
		base.MinBedrooms = v
	}
	return base, nil
}

// GET /api/v1/properties/:id
func (h *Handlers) GetByID(c *fiber.Ctx) error {
	p, err := h.Service.GetByID(c.Context(), c.Params("id"))
	if errors.Is(err, listsvc.ErrNotFound) {
		return response.NotFound(c, err.Error())
	}
	if err != nil {
		return err
	}
	return response.Success(c, "Property fetched successfully", toDetail(*p), nil)
}

type publishBody struct {
	Title       string              `json:"title"`
	Price       float64             `json:"price"`
	Address     string              `json:"address"`
	City        string              `json:"city"`
	Type        domain.PropertyType `json:"type"`
	Bedrooms    *int                `json:"bedrooms"`
	Area        float64             `json:"area"`
	Description string              `json:"description"`
	Images      []string            `json:"images"`
	SellerName  string              `json:"seller_name"`
	SellerPhone string              `json:"seller_phone"`
}

// POST /api/v1/properties: publishes under the visitor's paid plan, if any.
func (h *Handlers) Publish(c *fiber.Ctx) error {
	if err := contracts.ValidateListingForm(c.Body()); err != nil {
		var ve *contracts.ValidationError
		if errors.As(err, &ve) {
			return response.BadRequest(c, ve.Error(), fiber.Map{"fields": ve.Errors})
		}
		return response.BadRequest(c, err.Error(), nil)
	}
	var body publishBody
	if err := json.Unmarshal(c.Body(), &body); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}

	cont := visitor.Load(c)
	var plan *domain.PricingPlan
	if id := cont.State().PaidPlanID; id != "" {
		if p, err := pricing.Get(id); err == nil {
			plan = p
		}
	}

	p, err := h.Service.Publish(c.Context(), listsvc.CreateListingInput{
		Title:       body.Title,
		Price:       body.Price,
		Address:     body.Address,
		City:        body.City,
		Type:        body.Type,
		Bedrooms:    body.Bedrooms,
		Area:        body.Area,
		Description: body.Description,
		Images:      body.Images,
		SellerName:  body.SellerName,
		SellerPhone: body.SellerPhone,
	}, plan)
	if errors.Is(err, listsvc.ErrTooManyImages) {
		return response.BadRequest(c, err.Error(), nil)
	}
	if err != nil {
		return err
	}

	st := cont.Dispatch(appstate.ListingPublished{PropertyID: p.ID})
	if err := visitor.Save(c, st); err != nil {
		return err
	}
	return response.SuccessCreated(c, "Listing published successfully", toDetail(*p), fiber.Map{"token": st.Token})
}
