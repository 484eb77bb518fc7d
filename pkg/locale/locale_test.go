package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslator_English(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "Morning", tr.T("Morning"))
	assert.Equal(t, "I'm an Early 🐤", tr.T("I am an Early"))
}

func TestTranslator_Spanish(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator("es")
	require.NoError(t, err)

	assert.Equal(t, "Mañana", tr.T("Morning"))
	assert.Equal(t, "Lenguajes", tr.T("Languages"))
}

func TestTranslator_FallsBackToEnglish(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator("xx")
	require.NoError(t, err)

	assert.Equal(t, "xx", tr.Locale())
	assert.Equal(t, "Morning", tr.T("Morning"))
}

func TestTranslator_UnknownKeyReturnsKey(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "Nonexistent Key", tr.T("Nonexistent Key"))
}

func TestTranslator_EmptyLocaleDefaults(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator("")
	require.NoError(t, err)

	assert.Equal(t, "en", tr.Locale())
}

func TestTranslator_Tf(t *testing.T) {
	t.Parallel()

	tr, err := NewTranslator("en")
	require.NoError(t, err)

	assert.Equal(t, "I'm Most Productive on Sunday", tr.Tf("I am Most Productive on", "Sunday"))
	assert.Equal(t, "I'm Most Productive on Sunday", tr.Tf("I am Most Productive on", tr.T("Sunday")))
}
