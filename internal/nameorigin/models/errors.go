package models

import (
	"fmt"

	dErrors "github.com/abstract-333/name-origin-api/pkg/domain-errors"
)

// NameNotFoundError means the name-origin provider knows nothing about Name.
type NameNotFoundError struct {
	Name string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("any details about name %q not found", e.Name)
}

func (e *NameNotFoundError) ErrorCode() dErrors.Code { return dErrors.CodeNotFound }

func (e *NameNotFoundError) Detail() (string, string) { return "name", e.Name }

// CountryNotFoundError means neither the store nor the provider has Code.
type CountryNotFoundError struct {
	Code string
}

func (e *CountryNotFoundError) Error() string {
	return fmt.Sprintf("country with code %q not found", e.Code)
}

func (e *CountryNotFoundError) ErrorCode() dErrors.Code { return dErrors.CodeNotFound }

func (e *CountryNotFoundError) Detail() (string, string) { return "country_code", e.Code }
