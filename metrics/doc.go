// Package metrics exposes generation counters through a private Prometheus
// registry. A *Registry satisfies builder.Observer, so it can be passed to
// builder.WithObserver and dumped afterwards in text exposition format.
package metrics
