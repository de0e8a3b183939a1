// Package appstate holds a visitor's UI state as one immutable value that is
// replaced on every transition.
package appstate

import (
	"nadlan-backend/internal/application/navigation"
	"nadlan-backend/internal/domain"
)

// State is the whole per-visitor application state. It is stored in the
// session between requests.
type State struct {
	Token           string                `json:"token"`
	View            navigation.ViewState  `json:"view"`
	Filters         domain.FilterCriteria `json:"filters"`
	SelectedPlanID  string                `json:"selected_plan_id,omitempty"`
	PaidPlanID      string                `json:"paid_plan_id,omitempty"`
	LastReceiptID   string                `json:"last_receipt_id,omitempty"`
	LastPublishedID string                `json:"last_published_id,omitempty"`
}

// Initial is the state of a visitor who has not navigated yet.
func Initial() State {
	return State{
		Token:   "",
		View:    navigation.Resolve(""),
		Filters: domain.DefaultFilterCriteria(),
	}
}

// Action is a state transition.
type Action interface {
	isAction()
}

// Navigated records a resolved navigation event.
type Navigated struct {
	Token string
	View  navigation.ViewState
}

// FiltersChanged replaces the search criteria. Submit also opens the results.
type FiltersChanged struct {
	Filters domain.FilterCriteria
	Submit  bool
}

type PlanSelected struct {
	PlanID string
}

type PaymentCompleted struct {
	PlanID    string
	ReceiptID string
}

type ListingPublished struct {
	PropertyID string
}

func (Navigated) isAction()        {}
func (FiltersChanged) isAction()   {}
func (PlanSelected) isAction()     {}
func (PaymentCompleted) isAction() {}
func (ListingPublished) isAction() {}

// Reduce returns the state that follows s after a. It never mutates s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case Navigated:
		s.Token = a.Token
		s.View = a.View
	case FiltersChanged:
		s.Filters = a.Filters
	case PlanSelected:
		s.SelectedPlanID = a.PlanID
	case PaymentCompleted:
		s.PaidPlanID = a.PlanID
		s.LastReceiptID = a.ReceiptID
	case ListingPublished:
		s.LastPublishedID = a.PropertyID
	}
	s.View.PlanID = s.SelectedPlanID
	return s
}

// navigationFor is the token an action moves the visitor to, if any.
func navigationFor(a Action) (string, bool) {
	switch a := a.(type) {
	case FiltersChanged:
		return navigation.TokenSearch, a.Submit
	case PlanSelected:
		return navigation.TokenPayment, true
	case PaymentCompleted:
		return navigation.TokenListingForm, true
	case ListingPublished:
		return navigation.PropertyToken(a.PropertyID), true
	}
	return "", false
}
