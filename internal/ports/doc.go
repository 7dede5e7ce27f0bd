// Package ports defines the interfaces (ports) that connect the application
// layer to infrastructure adapters.
//
// Ports are the boundaries between the application core and the outside
// world. They define what the application needs from external systems
// without specifying how those needs are fulfilled.
//
// # Port Interfaces
//
//   - [RecordSource]: Reads raw phone number records from an import file
//   - [Driver]: Feeds accepted numbers to the chat-search interface
//   - [StateRepository]: Persists and loads run progress for resuming
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters) implement them with concrete
// implementations (CSV files, console prompts, clipboard, JSON state
// files). This keeps the core testable with fakes and the automation
// surface swappable.
package ports
