package localizer

// Binding is one resolved (area, operation, locale) association: the
// concrete implementation plus the keyword parameters it declared at
// registration. A binding is valid for the duration of one dispatch; it is
// cheap to resolve and carries no mutable state.
type Binding struct {
	Area      string
	Operation string
	// Lang is the primary tag the implementation was selected for. Region
	// refinements never reach this field; "en-GB" and "en-US" both bind to
	// the "en" implementation.
	Lang string
	// Params lists the keyword parameter names the implementation accepts,
	// in declaration order.
	Params []string

	impl *registeredFunc
}

// Resolve locates the implementation of op in the named area for the given
// locale code.
//
// The checks run in a fixed order so failures are deterministic for a given
// registry state: operation declared (*OperationNotRegisteredError), primary
// tag supported (*UnsupportedLocaleError), implementation present
// (*FunctionNotLocalizedError). There is no fallback to another locale; a
// supported language missing an implementation is a reportable gap, not a
// reason to answer in the wrong language.
func (r *Registry) Resolve(areaName, op, code string) (Binding, error) {
	a := r.area(areaName)
	if a == nil {
		return Binding{}, &OperationNotRegisteredError{Area: areaName, Operation: op}
	}
	if _, ok := a.ops[op]; !ok {
		return Binding{}, &OperationNotRegisteredError{Area: areaName, Operation: op}
	}

	tag, err := ParseTag(code)
	if err != nil {
		return Binding{}, &UnsupportedLocaleError{Tag: code, Supported: r.catalog.Supported()}
	}
	if !r.catalog.IsSupported(tag.Primary) {
		return Binding{}, &UnsupportedLocaleError{Tag: code, Supported: r.catalog.Supported()}
	}

	impl, ok := a.funcs[funcKey{op: op, lang: tag.Primary}]
	if !ok {
		return Binding{}, &FunctionNotLocalizedError{Area: areaName, Operation: op, Lang: tag.Primary}
	}

	params := make([]string, len(impl.params))
	copy(params, impl.params)
	return Binding{
		Area:      areaName,
		Operation: op,
		Lang:      tag.Primary,
		Params:    params,
		impl:      impl,
	}, nil
}
