package navigation

import "strings"

// View names one of the fixed application screens.
type View string

const (
	ViewHome           View = "home"
	ViewSearchResults  View = "search-results"
	ViewPropertyDetail View = "property-detail"
	ViewPricing        View = "pricing"
	ViewPayment        View = "payment"
	ViewListingForm    View = "listing-form"
)

// Navigation tokens understood by Resolve.
const (
	TokenHome        = "/"
	TokenSearch      = "/search"
	TokenAddListing  = "/add-listing"
	TokenPayment     = "/payment"
	TokenListingForm = "/listing-form"

	propertyPrefix = "/property/"
)

// ViewState is a resolved screen plus its parameters. Resolve only fills
// PropertyID; PlanID is attached by the state container.
type ViewState struct {
	View       View   `json:"view"`
	PropertyID string `json:"property_id,omitempty"`
	PlanID     string `json:"plan_id,omitempty"`
}

// exactRoutes is checked in order after the property prefix.
var exactRoutes = []struct {
	token string
	view  View
}{
	{TokenAddListing, ViewPricing},
	{TokenSearch, ViewSearchResults},
	{TokenPayment, ViewPayment},
	{TokenListingForm, ViewListingForm},
}

// Resolve maps a navigation token to a view. Unknown tokens fall back to home.
func Resolve(token string) ViewState {
	if strings.HasPrefix(token, propertyPrefix) {
		return ViewState{View: ViewPropertyDetail, PropertyID: token[len(propertyPrefix):]}
	}
	for _, r := range exactRoutes {
		if token == r.token {
			return ViewState{View: r.view}
		}
	}
	return ViewState{View: ViewHome}
}

// PropertyToken builds the detail token for a property id.
func PropertyToken(id string) string {
	return propertyPrefix + id
}

// TokenFromFragment turns a location fragment ("#/search") into a token.
func TokenFromFragment(fragment string) string {
	return strings.TrimPrefix(fragment, "#")
}
