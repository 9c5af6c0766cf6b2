// Package observe provides observability primitives for guarded trading
// operation execution.
//
// It is a pure instrumentation library: no enforcement, no transport, no
// I/O beyond exporter setup. Consumers wire the observer around the gate
// middleware to get spans, metrics, and structured logs for every admission
// decision and operation execution. Credential material is never recorded;
// well-known sensitive field keys are redacted from logs.
package observe
