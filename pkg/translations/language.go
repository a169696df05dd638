package translations

// Language is a two-letter UI language code. Only English and Hausa are valid.
type Language string

const (
	// English is the default UI language.
	English Language = "en"
	// Hausa is the second supported UI language.
	Hausa Language = "ha"
)

// DefaultLanguage is used when a session carries no language preference.
const DefaultLanguage = English

// ParseLanguage validates a raw language code. Any value outside the
// supported set is rejected with ErrInvalidLanguage before use.
func ParseLanguage(code string) (Language, error) {
	switch Language(code) {
	case English, Hausa:
		return Language(code), nil
	default:
		return "", ErrInvalidLanguage
	}
}

// Valid reports whether the language is in the supported set.
func (l Language) Valid() bool {
	return l == English || l == Hausa
}

// DisplayName resolves the human-readable name of the language.
func (l Language) DisplayName() string {
	if l == Hausa {
		return "Hausa"
	}
	return "English"
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return string(l)
}

// Supported lists the supported languages in preference order.
func Supported() []Language {
	return []Language{English, Hausa}
}
