// Package persistence implements the board repositories over the shared
// key-value store. Collections are stored as JSON-encoded arrays under
// fixed keys; malformed persisted JSON degrades to the empty collection
// at this boundary instead of propagating inward.
package persistence

// Persisted key names. These are a compatibility contract with existing
// client data and must not be renamed.
const (
	keyIsLoggedIn       = "isLoggedIn"
	keyUserName         = "userName"
	keyTheme            = "theme"
	keySiteLang         = "siteLang"
	keyOnboardCompleted = "onboardCompleted"
	keyPosts            = "posts"
	keyLikedPosts       = "likedPosts"
)
