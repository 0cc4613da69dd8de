// Package rest wires the application services to the HTTP surface.
package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/message"

	"github.com/hariyo-app/hariyo/board/application"
	"github.com/hariyo-app/hariyo/board/domain"
	"github.com/hariyo-app/hariyo/cache"
	"github.com/hariyo-app/hariyo/chat"
	"github.com/hariyo-app/hariyo/i18n"
	"github.com/hariyo-app/hariyo/nav"
)

// API holds the handler dependencies.
type API struct {
	posts    *application.PostService
	sessions *application.SessionService
	prefs    domain.PreferencesRepository
	pages    *nav.Controller
	chat     *chat.Client
	assets   *cache.Worker
}

// Deps collects everything the REST layer serves. Chat and Assets may be
// nil; their routes then respond 503 and 404 respectively.
type Deps struct {
	Posts    *application.PostService
	Sessions *application.SessionService
	Prefs    domain.PreferencesRepository
	Pages    *nav.Controller
	Chat     *chat.Client
	Assets   *cache.Worker

	// AssetOrigin is the base URL assets are proxied from.
	AssetOrigin string
}

// NewAPI registers all route groups on the router.
func NewAPI(router *gin.Engine, deps Deps) *API {
	a := &API{
		posts:    deps.Posts,
		sessions: deps.Sessions,
		prefs:    deps.Prefs,
		pages:    deps.Pages,
		chat:     deps.Chat,
		assets:   deps.Assets,
	}

	authV1 := router.Group("auth/v1")
	{
		authV1.POST("/signup", a.SignUp)
		authV1.POST("/signin", a.SignIn)
		authV1.POST("/signout", a.SignOut)
	}

	pagesV1 := router.Group("pages/v1")
	{
		pagesV1.GET("/:name", a.RequestPage)
	}

	postsV1 := router.Group("posts/v1")
	{
		postsV1.GET("/", a.ListPosts)
		postsV1.POST("/", a.CreatePost)
		postsV1.POST("/:postId/like", a.ToggleLike)
	}

	prefsV1 := router.Group("prefs/v1")
	{
		prefsV1.GET("/", a.GetPreferences)
		prefsV1.PUT("/theme", a.SetTheme)
		prefsV1.PUT("/language", a.SetLanguage)
		prefsV1.PUT("/onboarding", a.SetOnboarding)
	}

	chatV1 := router.Group("chat/v1")
	{
		chatV1.POST("/messages", a.SendChatMessage)
		chatV1.GET("/transcript", a.ChatTranscript)
	}

	registerAssets(router, a.assets, deps.AssetOrigin)

	return a
}

// printer resolves the response language: explicit lang query param
// first, then the stored preference.
func (a *API) printer(c *gin.Context) *message.Printer {
	lang := c.Query("lang")
	if lang == "" {
		prefs, err := a.prefs.GetPreferences(c.Request.Context())
		if err != nil {
			log.Error().Err(err).Msg("Failed to read language preference")
		} else {
			lang = string(prefs.Language)
		}
	}
	return i18n.Printer(lang)
}

// loggedIn reads the current session flag; failures degrade to anonymous.
func (a *API) loggedIn(c *gin.Context) bool {
	session, err := a.sessions.Current(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to read session")
		return false
	}
	return session.LoggedIn
}
