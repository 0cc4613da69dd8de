package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hariyo-app/hariyo/api"
	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/i18n"
)

// GetPreferences returns the stored preferences.
func (a *API) GetPreferences(c *gin.Context) {
	prefs, err := a.prefs.GetPreferences(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, api.Preferences{
		Theme:               string(prefs.Theme),
		Language:            string(prefs.Language),
		OnboardingCompleted: prefs.OnboardingCompleted,
	})
}

// SetTheme updates the theme preference.
func (a *API) SetTheme(c *gin.Context) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	theme, err := domain.ParseTheme(body.Theme)
	if errors.Is(err, domain.ErrInvalidTheme) {
		c.JSON(http.StatusBadRequest, gin.H{"warning": a.printer(c).Sprintf(i18n.MsgInvalidTheme)})
		return
	}

	if err := a.prefs.SetTheme(c.Request.Context(), theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetLanguage updates the language preference.
func (a *API) SetLanguage(c *gin.Context) {
	var body struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	lang, err := domain.ParseLanguage(body.Language)
	if errors.Is(err, domain.ErrInvalidLanguage) {
		c.JSON(http.StatusBadRequest, gin.H{"warning": a.printer(c).Sprintf(i18n.MsgInvalidLanguage)})
		return
	}

	if err := a.prefs.SetLanguage(c.Request.Context(), lang); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// SetOnboarding marks the one-time onboarding overlay completed (or
// resets it).
func (a *API) SetOnboarding(c *gin.Context) {
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := a.prefs.SetOnboardingCompleted(c.Request.Context(), body.Completed); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
