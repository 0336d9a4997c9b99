// Package mocks provides test doubles for ports interfaces.
//
// These mocks are designed to be simple, thread-safe, in-memory implementations
// suitable for unit testing. Each mock provides:
//
//   - Default behavior that returns reasonable test values
//   - Callback functions (xxxFn) for customizing behavior per test
//   - Helper methods for inspecting recorded calls
//
// # Usage Example
//
//	func TestMyService(t *testing.T) {
//		source := mocks.NewRowSource("fixture", domain.Row{"Grade": "B+"})
//		sink := mocks.NewReportSink()
//
//		svc := NewService(source, sink)
//		// ... test service behavior
//	}
//
// # Available Mocks
//
//   - RowSource: implements ports.RowSource
//   - ReportSink: implements ports.ReportSink
//   - Observer: implements ports.ClassificationObserver
package mocks
