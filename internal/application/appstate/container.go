package appstate

import "nadlan-backend/internal/application/navigation"

// Container owns one State and the navigator that drives its view.
type Container struct {
	state State
	nav   *navigation.Navigator
}

// NewContainer restores s and resolves its token once.
func NewContainer(s State) *Container {
	c := &Container{state: s, nav: navigation.NewNavigator(s.Token)}
	c.nav.Subscribe(func(vs navigation.ViewState) {
		c.state = Reduce(c.state, Navigated{Token: c.nav.Token(), View: vs})
	})
	return c
}

func (c *Container) State() State {
	return c.state
}

// Dispatch applies a and then any navigation it implies.
func (c *Container) Dispatch(a Action) State {
	c.state = Reduce(c.state, a)
	if token, ok := navigationFor(a); ok {
		c.nav.Navigate(token)
	}
	return c.state
}

// Navigate commits a raw token; unknown tokens land on home.
func (c *Container) Navigate(token string) State {
	c.nav.Navigate(token)
	return c.state
}
