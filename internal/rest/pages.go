package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/hariyo-app/hariyo/api"
	"github.com/hariyo-app/hariyo/nav"
)

// RequestPage resolves a page name through the auth guard and reports
// the effective page plus nav link visibility.
func (a *API) RequestPage(c *gin.Context) {
	loggedIn := a.loggedIn(c)
	page := a.pages.RequestPage(c.Param("name"), loggedIn)

	c.JSON(http.StatusOK, api.PageState{
		Page:  string(page),
		Links: navLinks(loggedIn),
	})
}

// LogRenderer satisfies nav.Renderer for the server, where the real page
// containers live on the client: transitions are only logged.
type LogRenderer struct{}

func (LogRenderer) ShowPage(p nav.Page) {
	log.Debug().Str("page", string(p)).Msg("Page displayed")
}

func (LogRenderer) SetLinks(v nav.LinkVisibility) {
	log.Debug().Bool("dashboard", v.Dashboard).Bool("sign_out", v.SignOut).Msg("Nav links recomputed")
}
