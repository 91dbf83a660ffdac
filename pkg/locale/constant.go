package locale

import "errors"

// Locale is the context key for the request locale.
type Locale struct{}

const (
	// EN is English.
	EN = "en"
	// ES is Spanish.
	ES = "es"
	// FR is French.
	FR = "fr"
)

// LangList contains all supported language codes.
var LangList = []string{EN, ES, FR}

// DefaultLang is the default language when no valid locale is provided.
var DefaultLang = EN

// ErrLocaleNotFound is returned when the context carries no locale.
var ErrLocaleNotFound = errors.New("locale: not found in context")
