// Package i18n holds the bilingual (English/Nepali) message catalog for
// user-facing strings. Lookups go through a message.Printer so missing
// translations fall back to English text.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for user-facing toasts and warnings.
const (
	MsgEmptyPostTitle     = "Please give your post a title."
	MsgPostCreated        = "Your work has been shared!"
	MsgFirstPost          = "Congratulations on sharing your first eco action!"
	MsgPasswordMismatch   = "Passwords do not match."
	MsgMissingCredentials = "Please fill in your name and password."
	MsgSignedIn           = "Welcome back!"
	MsgSignedUp           = "Welcome aboard!"
	MsgSignedOut          = "You have been signed out."
	MsgEmptyChatMessage   = "Type a message first."
	MsgChatBusy           = "The assistant is still replying."
	MsgChatUnreachable    = "The assistant could not be reached. Check your connection."
	MsgChatFailed         = "The assistant hit a snag. Please try again."
	MsgInvalidTheme       = "Theme must be dark or light."
	MsgInvalidLanguage    = "Language must be English or Nepali."
)

var (
	english = language.English
	nepali  = language.MustParse("ne")

	supported = []language.Tag{english, nepali}
	matcher   = language.NewMatcher(supported)
)

func init() {
	for _, entry := range []struct {
		key string
		ne  string
	}{
		{MsgEmptyPostTitle, "कृपया आफ्नो पोस्टलाई शीर्षक दिनुहोस्।"},
		{MsgPostCreated, "तपाईंको काम साझा गरियो!"},
		{MsgFirstPost, "तपाईंको पहिलो हरित कार्य साझा गर्नुभएकोमा बधाई छ!"},
		{MsgPasswordMismatch, "पासवर्डहरू मेल खाँदैनन्।"},
		{MsgMissingCredentials, "कृपया आफ्नो नाम र पासवर्ड भर्नुहोस्।"},
		{MsgSignedIn, "पुनः स्वागत छ!"},
		{MsgSignedUp, "स्वागत छ!"},
		{MsgSignedOut, "तपाईं साइन आउट हुनुभयो।"},
		{MsgEmptyChatMessage, "पहिले सन्देश लेख्नुहोस्।"},
		{MsgChatBusy, "सहायक अझै जवाफ दिँदैछ।"},
		{MsgChatUnreachable, "सहायकसँग सम्पर्क हुन सकेन। आफ्नो इन्टरनेट जाँच गर्नुहोस्।"},
		{MsgChatFailed, "सहायकमा समस्या आयो। फेरि प्रयास गर्नुहोस्।"},
		{MsgInvalidTheme, "थिम dark वा light हुनुपर्छ।"},
		{MsgInvalidLanguage, "भाषा अंग्रेजी वा नेपाली हुनुपर्छ।"},
	} {
		message.SetString(english, entry.key, entry.key)
		message.SetString(nepali, entry.key, entry.ne)
	}
}

// Tag resolves a raw language code against the supported set, falling
// back to English.
func Tag(raw string) language.Tag {
	if raw == "" {
		return english
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return english
	}
	matched, _, _ := matcher.Match(tag)
	// Matcher may return an extended tag; pin to the supported base
	base, _ := matched.Base()
	if base == mustBase(nepali) {
		return nepali
	}
	return english
}

func mustBase(tag language.Tag) language.Base {
	base, _ := tag.Base()
	return base
}

// Printer returns the message printer for a raw language code.
func Printer(raw string) *message.Printer {
	return message.NewPrinter(Tag(raw))
}
