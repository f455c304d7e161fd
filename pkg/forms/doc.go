// Package forms composes the individual validation checks into per-field
// error maps for the login, register and profile forms.
//
// Each Validate call runs every field's check and collects the failures, so
// a form can highlight all invalid fields at once instead of stopping at the
// first. Error values are the same opaque localization keys the validator
// package reports. Register validation additionally returns the full
// password requirement flags for rendering a live strength checklist.
package forms
