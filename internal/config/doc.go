// Package config defines the format-agnostic record model for the
// application, along with the Loader interface for reading flat records from
// various sources.
//
// The `config.Model` is the single source of truth for the forest builder.
// Concrete implementations of Loader, such as for HCL or YAML, are provided
// in separate packages.
package config
