package i18n

import "errors"

var (
	// ErrNoTranslations is returned when a translator is created with an
	// empty catalog.
	ErrNoTranslations = errors.New("i18n: no translations provided")

	// ErrInvalidCatalog is returned when parsed content does not have the
	// expected language -> nested-map shape.
	ErrInvalidCatalog = errors.New("i18n: invalid translation catalog")
)
