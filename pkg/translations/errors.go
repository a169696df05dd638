package translations

import (
	"errors"
	"fmt"
)

// ErrInvalidLanguage indicates a language code outside the supported set.
var ErrInvalidLanguage = errors.New("invalid language code")

// ModuleNotFoundError indicates the requested module is absent from the
// catalog, or has no translations for the requested language.
type ModuleNotFoundError struct {
	Module string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module %q not found", e.Module)
}
