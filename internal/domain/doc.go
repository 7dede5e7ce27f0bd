// Package domain contains the core domain entities and value objects for
// waroster.
//
// This package represents the innermost layer of the application. It has no
// dependencies on infrastructure concerns (file system, clipboard, logging)
// and contains only pure value types and business rules.
//
// # Entities
//
//   - [Number]: A validated phone number in international format
//   - [RejectedEntry]: A row that failed validation, kept for manual handling
//   - [ChangeRecord]: An (original, normalized) pair kept for audit
//   - [Result]: The outcome of processing one import file
//   - [Batch]: A bounded chunk of numbers submitted together
//   - [RunState]: Persistent progress for resuming an interrupted run
//
// # Design Principles
//
// Domain entities are:
//   - Immutable after construction (where practical)
//   - Free of infrastructure dependencies
//   - Testable without mocks or external systems
package domain
