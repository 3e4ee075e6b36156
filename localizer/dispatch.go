package localizer

import (
	"context"
	"fmt"
	"reflect"

	"github.com/ChanceNCounter/lingua-franca/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Args carries a dispatch call's keyword arguments by name. Values are
// cty values so the adapter can hold heterogeneous argument sets without
// committing to any implementation's concrete input type.
type Args map[string]cty.Value

// Dispatch is the shim every top-level operation goes through. An empty
// lang selects the catalog's active locale. The supplied args are
// reconciled against the resolved implementation's declared parameters:
// keys the implementation does not declare are dropped, which lets a
// localized implementation support a subset of the top-level contract's
// keywords. The implementation's result and error pass through unchanged.
func (r *Registry) Dispatch(ctx context.Context, area, op string, primary any, lang string, args Args) (any, error) {
	if lang == "" {
		lang = r.catalog.Active().String()
	}
	binding, err := r.Resolve(area, op, lang)
	if err != nil {
		return nil, err
	}
	return binding.invoke(ctx, primary, args)
}

func (b Binding) invoke(ctx context.Context, primary any, args Args) (any, error) {
	impl := b.impl
	fnType := impl.fn.Type()

	callArgs := make([]reflect.Value, 0, fnType.NumIn())
	callArgs = append(callArgs, reflect.ValueOf(ctx))

	primaryType := fnType.In(1)
	if primary == nil {
		callArgs = append(callArgs, reflect.Zero(primaryType))
	} else {
		pv := reflect.ValueOf(primary)
		if !pv.Type().AssignableTo(primaryType) {
			return nil, fmt.Errorf("%s.%s (%s): primary argument is %T, want %s",
				b.Area, b.Operation, b.Lang, primary, primaryType)
		}
		callArgs = append(callArgs, pv)
	}

	if impl.newInput != nil {
		in, err := b.buildInput(ctx, args)
		if err != nil {
			return nil, err
		}
		callArgs = append(callArgs, reflect.ValueOf(in))
	} else if len(args) > 0 {
		ctxlog.FromContext(ctx).Debug("dropping all keyword arguments, implementation declares none",
			"area", b.Area, "operation", b.Operation, "lang", b.Lang)
	}

	results := impl.fn.Call(callArgs)
	if errv := results[1].Interface(); errv != nil {
		return nil, errv.(error)
	}
	return results[0].Interface(), nil
}

// buildInput decodes the reconciled subset of args into a fresh instance of
// the implementation's input struct. Declared parameters the caller did not
// supply keep their zero values; the top-level operations materialize their
// contract's defaults before dispatching, so a zero here means the
// implementation genuinely declared a keyword the contract does not have.
func (b Binding) buildInput(ctx context.Context, args Args) (any, error) {
	impl := b.impl
	in := impl.newInput()
	structVal := reflect.ValueOf(in).Elem()

	for name, val := range args {
		idx, ok := impl.fields[name]
		if !ok {
			ctxlog.FromContext(ctx).Debug("dropping undeclared keyword argument",
				"area", b.Area, "operation", b.Operation, "lang", b.Lang, "argument", name)
			continue
		}
		if val.IsNull() {
			continue
		}
		field := structVal.Field(idx)
		if err := gocty.FromCtyValue(val, field.Addr().Interface()); err != nil {
			return nil, fmt.Errorf("%s.%s (%s): argument %q: %w", b.Area, b.Operation, b.Lang, name, err)
		}
	}
	return in, nil
}

// Bool, Number and String build Args values without making every caller
// import cty directly.

func Bool(v bool) cty.Value { return cty.BoolVal(v) }

func Number(v float64) cty.Value { return cty.NumberFloatVal(v) }

func Int(v int) cty.Value { return cty.NumberIntVal(int64(v)) }

func String(v string) cty.Value { return cty.StringVal(v) }

// IntList converts a denominator-style int slice for the args map.
func IntList(vs []int) cty.Value {
	if len(vs) == 0 {
		return cty.ListValEmpty(cty.Number)
	}
	vals := make([]cty.Value, len(vs))
	for i, v := range vs {
		vals[i] = cty.NumberIntVal(int64(v))
	}
	return cty.ListVal(vals)
}
