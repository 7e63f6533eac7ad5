package i18n_test

import (
	"chat-shell/i18n"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBundle_Loads_Embedded_Catalogs(t *testing.T) {
	req := require.New(t)

	bundle, err := i18n.LoadEmbedded()

	req.NoError(err)
	req.Equal([]string{"en-US", "fr-FR"}, bundle.Locales())
}

func TestLocalizer_Renders_Named_Substitutions(t *testing.T) {
	req := require.New(t)
	bundle, err := i18n.LoadEmbedded()
	req.NoError(err)

	loc := bundle.For("en-US")
	text := loc.T("chooser.description", map[string]string{"user": "@bob:shell.chat"})

	req.Contains(text, "@bob:shell.chat")
	req.NotContains(text, "{user}")
}

func TestLocalizer_Falls_Back_To_Base_Locale(t *testing.T) {
	req := require.New(t)
	bundle, err := i18n.LoadEmbedded()
	req.NoError(err)

	// Unknown locale resolves to the base catalog
	loc := bundle.For("ko-KR")
	req.Equal("en-US", loc.Locale())

	// Unknown key stays visible as itself
	req.Equal("no.such.key", loc.T("no.such.key", nil))
}

func TestLocalizer_Matches_Language_Variants(t *testing.T) {
	req := require.New(t)
	bundle, err := i18n.LoadEmbedded()
	req.NoError(err)

	// Plain "fr" matches the fr-FR catalog
	loc := bundle.For("fr")
	req.Equal("fr-FR", loc.Locale())
	req.Equal("Démarrer une nouvelle discussion", loc.T("chooser.start_new", nil))
}
