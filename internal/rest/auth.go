package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hariyo-app/hariyo/api"
	"github.com/hariyo-app/hariyo/board/application"
	"github.com/hariyo-app/hariyo/i18n"
	"github.com/hariyo-app/hariyo/nav"
)

// SignUp creates a session when the confirmation matches. Validation
// failures are user-recoverable: a localized warning, state unchanged.
func (a *API) SignUp(c *gin.Context) {
	proto := &api.SignUpProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := a.printer(c)
	session, err := a.sessions.SignUp(c.Request.Context(), proto.UserName, proto.Password, proto.ConfirmPassword)
	switch {
	case errors.Is(err, application.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"warning": p.Sprintf(i18n.MsgPasswordMismatch)})
		return
	case errors.Is(err, application.ErrEmptyUserName), errors.Is(err, application.ErrEmptyPassword):
		c.JSON(http.StatusBadRequest, gin.H{"warning": p.Sprintf(i18n.MsgMissingCredentials)})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	page := a.pages.RequestPage(string(nav.PageDashboard), true)
	c.JSON(http.StatusOK, api.PageState{
		Page:  string(page),
		Links: navLinks(true),
		User:  session.UserName,
	})
}

// SignIn creates a session from any non-empty credentials.
func (a *API) SignIn(c *gin.Context) {
	proto := &api.SignInProto{}
	if err := c.ShouldBindJSON(proto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := a.printer(c)
	session, err := a.sessions.SignIn(c.Request.Context(), proto.UserName, proto.Password)
	switch {
	case errors.Is(err, application.ErrEmptyUserName), errors.Is(err, application.ErrEmptyPassword):
		c.JSON(http.StatusBadRequest, gin.H{"warning": p.Sprintf(i18n.MsgMissingCredentials)})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	page := a.pages.RequestPage(string(nav.PageDashboard), true)
	c.JSON(http.StatusOK, api.PageState{
		Page:  string(page),
		Links: navLinks(true),
		User:  session.UserName,
	})
}

// SignOut clears the session and lands on the home page.
func (a *API) SignOut(c *gin.Context) {
	if err := a.sessions.SignOut(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	page := a.pages.RequestPage(string(nav.PageHome), false)
	c.JSON(http.StatusOK, api.PageState{
		Page:  string(page),
		Links: navLinks(false),
	})
}

func navLinks(loggedIn bool) api.NavLinks {
	v := nav.LinksFor(loggedIn)
	return api.NavLinks{Dashboard: v.Dashboard, SignOut: v.SignOut}
}
