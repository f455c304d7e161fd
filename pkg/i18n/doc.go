// Package i18n resolves the opaque localization keys emitted by the
// validation and error layers into display text.
//
// Translations are nested maps addressed by dot-separated keys
// ("auth.validation.invalidEmail"), loaded from JSON or YAML. A missing key
// falls back to the key itself by default, so untranslated keys stay visible
// in the UI instead of rendering as empty strings. Messages may contain
// {name} placeholders interpolated from the params map.
//
// Default ships the built-in English catalog covering every auth.* key this
// module emits:
//
//	tr, _ := i18n.Default()
//	msg := tr.Translate("auth.validation.invalidEmail", nil)
package i18n
