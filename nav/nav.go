// Package nav decides which page is displayed. The auth-gating rule is a
// pure function over the requested page and the login flag, so it is
// testable without any rendering; the Controller layers the single
// active-page invariant and nav link visibility on top.
package nav

import "sync"

// Page names the displayable page containers.
type Page string

const (
	PageHome       Page = "home"
	PageSignIn     Page = "signin"
	PageSignUp     Page = "signup"
	PageDashboard  Page = "dashboard"
	PageChallenges Page = "challenges"
	PageRewards    Page = "rewards"
	PageProfile    Page = "profile"
	PageShareWork  Page = "shareWork"
)

var pages = map[Page]bool{
	PageHome:       true,
	PageSignIn:     true,
	PageSignUp:     true,
	PageDashboard:  true,
	PageChallenges: true,
	PageRewards:    true,
	PageProfile:    true,
	PageShareWork:  true,
}

// authPages are only reachable while anonymous.
var authPages = map[Page]bool{
	PageSignIn: true,
	PageSignUp: true,
}

// protectedPages require an authenticated session.
var protectedPages = map[Page]bool{
	PageDashboard:  true,
	PageChallenges: true,
	PageRewards:    true,
	PageProfile:    true,
}

// Known reports whether name is a displayable page.
func Known(name string) (Page, bool) {
	p := Page(name)
	return p, pages[p]
}

// EffectivePage applies the auth guard: authenticated users asking for the
// sign-in or sign-up pages land on the dashboard, anonymous users asking
// for a protected page land on sign-in.
func EffectivePage(requested Page, loggedIn bool) Page {
	if loggedIn && authPages[requested] {
		return PageDashboard
	}
	if !loggedIn && protectedPages[requested] {
		return PageSignIn
	}
	return requested
}

// LinkVisibility is the computed state of the two auth-gated nav links.
type LinkVisibility struct {
	Dashboard bool
	SignOut   bool
}

// LinksFor computes nav link visibility as a pure function of the login
// flag.
func LinksFor(loggedIn bool) LinkVisibility {
	return LinkVisibility{
		Dashboard: loggedIn,
		SignOut:   loggedIn,
	}
}

// Renderer is the rendering target the controller writes into but does
// not own. ShowPage must mark exactly the given page active and all
// others inactive.
type Renderer interface {
	ShowPage(p Page)
	SetLinks(v LinkVisibility)
}

// Controller tracks the single active page.
type Controller struct {
	mu       sync.Mutex
	renderer Renderer
	current  Page
}

// NewController creates a controller showing the home page.
func NewController(renderer Renderer) *Controller {
	c := &Controller{
		renderer: renderer,
		current:  PageHome,
	}
	renderer.ShowPage(PageHome)
	renderer.SetLinks(LinksFor(false))
	return c
}

// RequestPage resolves name against the auth guard and displays the
// effective page. Unknown names leave the active page untouched, but the
// nav link visibility is still recomputed. Repeated calls with the same
// inputs are idempotent: the displayed page does not change and no extra
// render side effects happen.
func (c *Controller) RequestPage(name string, loggedIn bool) Page {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.renderer.SetLinks(LinksFor(loggedIn))

	page, ok := Known(name)
	if !ok {
		return c.current
	}

	effective := EffectivePage(page, loggedIn)
	if effective != c.current {
		c.current = effective
		c.renderer.ShowPage(effective)
	}

	return c.current
}

// Current returns the currently displayed page.
func (c *Controller) Current() Page {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}
