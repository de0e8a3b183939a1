package navigation

import "sync"

// Listener receives the resolved view after each navigation event.
type Listener func(ViewState)

// Navigator holds the current token and notifies listeners when it changes.
type Navigator struct {
	mu        sync.Mutex
	token     string
	listeners map[int]Listener
	order     []int
	nextID    int

	// Tokens committed while listeners are running, delivered in order.
	pending     []string
	dispatching bool
}

func NewNavigator(initial string) *Navigator {
	return &Navigator{token: initial, listeners: make(map[int]Listener)}
}

// Subscribe registers l and runs it once with the current view.
func (n *Navigator) Subscribe(l Listener) (unsubscribe func()) {
	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.listeners[id] = l
	n.order = append(n.order, id)
	current := n.token
	n.mu.Unlock()

	l(Resolve(current))

	return func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		delete(n.listeners, id)
		for i, v := range n.order {
			if v == id {
				n.order = append(n.order[:i], n.order[i+1:]...)
				break
			}
		}
	}
}

// Navigate commits token without validating it. Listeners fire only when the
// token differs from the current one. A Navigate issued while listeners are
// running is queued and delivered after every listener has seen the current
// event, so each listener observes events in commit order and ends on the
// view of the latest token.
func (n *Navigator) Navigate(token string) {
	n.mu.Lock()
	if token == n.token {
		n.mu.Unlock()
		return
	}
	n.token = token
	n.pending = append(n.pending, token)
	if n.dispatching {
		n.mu.Unlock()
		return
	}
	n.dispatching = true
	defer func() {
		n.mu.Lock()
		n.dispatching = false
		n.pending = nil
		n.mu.Unlock()
	}()

	for len(n.pending) > 0 {
		next := n.pending[0]
		n.pending = n.pending[1:]
		ls := make([]Listener, 0, len(n.order))
		for _, id := range n.order {
			ls = append(ls, n.listeners[id])
		}
		n.mu.Unlock()

		state := Resolve(next)
		for _, l := range ls {
			l(state)
		}
		n.mu.Lock()
	}
	n.mu.Unlock()
}

func (n *Navigator) Token() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.token
}

func (n *Navigator) Current() ViewState {
	return Resolve(n.Token())
}
