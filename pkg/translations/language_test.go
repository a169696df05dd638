package translations_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hausaware/langswitch/pkg/translations"
)

func TestParseLanguage(t *testing.T) {
	t.Run("accepts supported codes", func(t *testing.T) {
		lang, err := translations.ParseLanguage("en")
		require.NoError(t, err)
		assert.Equal(t, translations.English, lang)

		lang, err = translations.ParseLanguage("ha")
		require.NoError(t, err)
		assert.Equal(t, translations.Hausa, lang)
	})

	t.Run("rejects everything else", func(t *testing.T) {
		for _, code := range []string{"", "fr", "EN", "en-US", "hausa", "ha "} {
			_, err := translations.ParseLanguage(code)
			assert.ErrorIs(t, err, translations.ErrInvalidLanguage, "code %q", code)
		}
	})
}

func TestLanguage_DisplayName(t *testing.T) {
	assert.Equal(t, "English", translations.English.DisplayName())
	assert.Equal(t, "Hausa", translations.Hausa.DisplayName())
}

func TestLanguage_Valid(t *testing.T) {
	assert.True(t, translations.English.Valid())
	assert.True(t, translations.Hausa.Valid())
	assert.False(t, translations.Language("fr").Valid())
}

func TestSupported(t *testing.T) {
	assert.Equal(t, []translations.Language{translations.English, translations.Hausa}, translations.Supported())
}
