// Package localizer is the localization registry and dispatch core.
//
// It tracks which locales and which operation names the process knows about
// (Catalog, Registry), locates the concrete per-locale implementation of an
// operation at call time (Resolve), reconciles the caller's keyword
// arguments against what that implementation declared it accepts, and owns
// the process-wide default locale used whenever a caller does not pass one
// (Dispatch).
//
// The linguistic content itself lives in locale packs (see lang/...), which
// register themselves through the Pack interface at startup. The registry
// stores an explicit (area, operation, language) -> function mapping plus a
// declared-parameter descriptor captured at registration time, so no
// reflection over callables happens on the dispatch path beyond the final
// invocation.
package localizer
