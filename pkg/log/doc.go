// Package log provides a small structured logging facade so the import
// core does not depend on a concrete logging library.
//
// The CLI injects [NewZerologAdapter]; library construction defaults to
// [NewNoopLogger] so embedding waroster packages stays silent unless a
// logger is supplied.
package log
