// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// `LoadOptions` calls `validateStruct` after the option layers merge.
// The only rule in play today is `required`; path-shape or target-name
// pattern rules can be registered here if the surface grows.
package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// validateStruct returns the first validation error, or nil on success.
func validateStruct(o *Options) error {
	return v.Struct(o)
}
