// Package i18n resolves message keys with golang.org/x/text message catalogs.
package i18n

import (
	"sync"

	"github.com/Station-Manager/datafields"
	"github.com/Station-Manager/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// English strings of the data module.
var defaultMessages = map[string]string{
	"mma.mod_data.errormustsupplyvalue": "You must supply a value here.",
	"mma.mod_data.alttext":              "Alternative text",
	"mma.mod_data.emptyaddform":         "You did not fill out any fields!",
	"mma.mod_data.fieldrequired":        "You must supply a value here.",
	"mma.mod_data.norecords":            "No entries in database",
}

// Catalog is a datafields.Translator. Keys missing in the catalog language are looked up
// in English, and keys missing there too resolve to themselves.
type Catalog struct {
	mu       sync.RWMutex
	tag      language.Tag
	builder  *catalog.Builder
	printer  *message.Printer
	fallback *message.Printer
}

var _ datafields.Translator = (*Catalog)(nil)

// NewCatalog returns a catalog printing in lang.
func NewCatalog(lang language.Tag) *Catalog {
	b := catalog.NewBuilder()
	for k, v := range defaultMessages {
		_ = b.SetString(language.English, k, v)
	}
	return &Catalog{
		tag:      lang,
		builder:  b,
		printer:  message.NewPrinter(lang, message.Catalog(b)),
		fallback: message.NewPrinter(language.English, message.Catalog(b)),
	}
}

// Set adds or replaces the translation of key for tag.
func (c *Catalog) Set(tag language.Tag, key, msg string) error {
	const op errors.Op = "i18n.Catalog.Set"
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.builder.SetString(tag, key, msg); err != nil {
		return errors.New(op).Err(err)
	}
	c.printer = message.NewPrinter(c.tag, message.Catalog(c.builder))
	c.fallback = message.NewPrinter(language.English, message.Catalog(c.builder))
	return nil
}

// Language returns the tag the catalog prints in.
func (c *Catalog) Language() language.Tag {
	return c.tag
}

func (c *Catalog) Translate(key string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if msg := c.printer.Sprintf(key); msg != key {
		return msg
	}
	return c.fallback.Sprintf(key)
}
