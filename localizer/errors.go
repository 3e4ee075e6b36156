package localizer

import (
	"fmt"
	"strings"
)

// UnsupportedLocaleError reports a locale whose primary tag is not in the
// catalog's supported set. It is never recovered from silently; substituting
// another locale would produce linguistically wrong output, which is worse
// than an explicit failure.
type UnsupportedLocaleError struct {
	Tag       string
	Supported []string
}

func (e *UnsupportedLocaleError) Error() string {
	return fmt.Sprintf("language %q is not supported; supported language codes: %s",
		e.Tag, strings.Join(e.Supported, " "))
}

// OperationNotRegisteredError reports a dispatch of an operation that was
// never declared in its area's registry. This is a wiring bug in the calling
// code, not a runtime/data condition.
type OperationNotRegisteredError struct {
	Area      string
	Operation string
}

func (e *OperationNotRegisteredError) Error() string {
	return fmt.Sprintf("operation %q is not registered in area %q", e.Operation, e.Area)
}

// FunctionNotLocalizedError reports a registered operation that has no
// implementation for a supported locale: a reportable localization gap.
type FunctionNotLocalizedError struct {
	Area      string
	Operation string
	Lang      string
}

func (e *FunctionNotLocalizedError) Error() string {
	return fmt.Sprintf("operation %q in area %q has not been localized for language %q",
		e.Operation, e.Area, e.Lang)
}
