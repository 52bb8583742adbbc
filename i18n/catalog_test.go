package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestCatalog_DefaultEnglish(t *testing.T) {
	c := NewCatalog(language.English)
	assert.Equal(t, "You must supply a value here.", c.Translate("mma.mod_data.errormustsupplyvalue"))
	assert.Equal(t, "en", c.Language().String())
}

func TestCatalog_UnknownKey(t *testing.T) {
	c := NewCatalog(language.English)
	assert.Equal(t, "mma.mod_data.nosuchstring", c.Translate("mma.mod_data.nosuchstring"))
}

func TestCatalog_FallsBackToEnglish(t *testing.T) {
	c := NewCatalog(language.German)
	assert.Equal(t, "You must supply a value here.", c.Translate("mma.mod_data.errormustsupplyvalue"))
}

func TestCatalog_Set(t *testing.T) {
	c := NewCatalog(language.Spanish)
	require.NoError(t, c.Set(language.Spanish, "mma.mod_data.errormustsupplyvalue", "Debe proporcionar un valor aquí."))
	assert.Equal(t, "Debe proporcionar un valor aquí.", c.Translate("mma.mod_data.errormustsupplyvalue"))
	assert.Equal(t, "Alternative text", c.Translate("mma.mod_data.alttext"))
}
