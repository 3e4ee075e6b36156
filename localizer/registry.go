package localizer

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
)

// Pack is the interface a locale pack implements to plug itself in. Each
// pack registers its locale tag with the catalog and its localized
// functions with the registry; adding a new language to the library is
// adding one Pack, with no change to the top-level operations.
type Pack interface {
	Register(r *Registry)
}

// Func describes one localized implementation at registration time.
//
// Fn must have the shape
//
//	func(ctx context.Context, primary P, in *I) (R, error)
//
// or, when NewInput is nil (the implementation takes no keywords),
//
//	func(ctx context.Context, primary P) (R, error)
//
// The input struct I declares the keyword parameters the implementation
// accepts via `lingua:"name"` field tags. The declared names are recorded
// when the Func is registered; dispatch never inspects the callable again.
type Func struct {
	NewInput func() any
	Fn       any
}

// registeredFunc is the compiled form of a Func: the callable plus its
// capability descriptor.
type registeredFunc struct {
	fn       reflect.Value
	newInput func() any
	params   []string
	fields   map[string]int
}

type funcKey struct {
	op   string
	lang string
}

// Registry owns the functional areas, their operation name sets, and every
// registered localized implementation. Resolution and dispatch consult the
// attached Catalog for locale support and the active default.
type Registry struct {
	catalog *Catalog

	mu    sync.RWMutex
	areas map[string]*Area
}

// New creates an empty registry bound to a catalog.
func New(catalog *Catalog) *Registry {
	return &Registry{
		catalog: catalog,
		areas:   make(map[string]*Area),
	}
}

// Catalog returns the locale catalog this registry resolves against.
func (r *Registry) Catalog() *Catalog {
	return r.catalog
}

// Area is the handle for one functional area ("format", "parse", ...). It
// owns the set of operation names expected to be localizable within the
// area, and the implementations registered against them.
type Area struct {
	name  string
	ops   map[string]struct{}
	funcs map[funcKey]*registeredFunc
}

// DeclareArea creates the named area or returns the existing handle.
func (r *Registry) DeclareArea(name string) *Area {
	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.areas[name]; ok {
		return a
	}
	a := &Area{
		name:  name,
		ops:   make(map[string]struct{}),
		funcs: make(map[funcKey]*registeredFunc),
	}
	r.areas[name] = a
	return a
}

func (r *Registry) area(name string) *Area {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.areas[name]
}

// RegisterOperations adds operation names to the area's set. Re-registering
// a known name is a no-op so that top-level modules can declare their
// operations independently of load order.
func (a *Area) RegisterOperations(names ...string) {
	for _, name := range names {
		a.ops[name] = struct{}{}
	}
}

// Operations returns the area's declared operation names, sorted. Intended
// for introspection and tests.
func (a *Area) Operations() []string {
	names := make([]string, 0, len(a.ops))
	for name := range a.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterFunc registers a localized implementation of op for the given
// locale code (reduced to its primary tag). The operation does not have to
// be declared yet; an undeclared operation's implementations stay
// unreachable until RegisterOperations names it.
//
// A duplicate registration or a malformed Func is a programmer error in a
// locale pack and panics.
func (a *Area) RegisterFunc(op, lang string, f *Func) {
	tag, err := ParseTag(lang)
	if err != nil {
		panic(fmt.Sprintf("localizer: RegisterFunc(%s.%s): bad locale %q: %v", a.name, op, lang, err))
	}
	key := funcKey{op: op, lang: tag.Primary}
	if _, exists := a.funcs[key]; exists {
		panic(fmt.Sprintf("localizer: %s.%s already registered for language %q", a.name, op, tag.Primary))
	}
	a.funcs[key] = compileFunc(a.name, op, tag.Primary, f)
}

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// compileFunc validates the handler shape once, at registration, and
// derives the declared-parameter descriptor from the input struct's tags.
func compileFunc(area, op, lang string, f *Func) *registeredFunc {
	if f == nil || f.Fn == nil {
		panic(fmt.Sprintf("localizer: %s.%s (%s): nil implementation", area, op, lang))
	}
	fn := reflect.ValueOf(f.Fn)
	t := fn.Type()
	if t.Kind() != reflect.Func {
		panic(fmt.Sprintf("localizer: %s.%s (%s): Fn is %s, want func", area, op, lang, t.Kind()))
	}
	wantIn := 2
	if f.NewInput != nil {
		wantIn = 3
	}
	if t.NumIn() != wantIn || !t.In(0).Implements(ctxType) {
		shape := "func(ctx, primary) (result, error)"
		if f.NewInput != nil {
			shape = "func(ctx, primary, in) (result, error)"
		}
		panic(fmt.Sprintf("localizer: %s.%s (%s): Fn must be %s", area, op, lang, shape))
	}
	if t.NumOut() != 2 || !t.Out(1).Implements(errType) {
		panic(fmt.Sprintf("localizer: %s.%s (%s): Fn must return (result, error)", area, op, lang))
	}

	rf := &registeredFunc{fn: fn, newInput: f.NewInput}
	if f.NewInput == nil {
		return rf
	}

	in := f.NewInput()
	inType := reflect.TypeOf(in)
	if inType == nil || inType.Kind() != reflect.Pointer || inType.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("localizer: %s.%s (%s): NewInput must return a struct pointer", area, op, lang))
	}
	if t.In(2) != inType {
		panic(fmt.Sprintf("localizer: %s.%s (%s): Fn input parameter is %s, NewInput returns %s",
			area, op, lang, t.In(2), inType))
	}

	rf.fields = make(map[string]int)
	structType := inType.Elem()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}
		name := strings.Split(field.Tag.Get("lingua"), ",")[0]
		if name == "" || name == "-" {
			continue
		}
		rf.fields[name] = i
		rf.params = append(rf.params, name)
	}
	return rf
}
