// Package config defines the format-agnostic settings model for the
// application, along with defaults, overlay merging, and validation.
//
// `config.Settings` is the single source of truth for the `app` package.
// Concrete loading from a settings file is provided by the `hclconf`
// package; command-line overrides come from the `cli` package.
package config
