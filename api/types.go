// Package api holds the wire types shared by the REST layer and its
// clients.
package api

// Post is a community post prepared for display.
type Post struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
	Snippet         string `json:"snippet"`
	Image           string `json:"image,omitempty"`
	Likes           int    `json:"likes"`
	CreatedAt       int64  `json:"created_at"`
	Author          string `json:"author"`
	Liked           bool   `json:"liked"`
}

// PostProto is the inbound shape for creating a post.
type PostProto struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// SignUpProto is the inbound shape for sign-up.
type SignUpProto struct {
	UserName        string `json:"user_name"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SignInProto is the inbound shape for sign-in.
type SignInProto struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// PageState reports the displayed page and nav link visibility after a
// page request.
type PageState struct {
	Page  string   `json:"page"`
	Links NavLinks `json:"links"`
	User  string   `json:"user,omitempty"`
}

// NavLinks is the visibility of the auth-gated navigation links.
type NavLinks struct {
	Dashboard bool `json:"dashboard"`
	SignOut   bool `json:"sign_out"`
}

// Preferences is the wire shape of user preferences.
type Preferences struct {
	Theme               string `json:"theme"`
	Language            string `json:"language"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

// ChatMessageProto is the inbound shape for a chat turn.
type ChatMessageProto struct {
	Message string `json:"message"`
}

// ChatEntry is one transcript line.
type ChatEntry struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}
