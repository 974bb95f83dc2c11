package server

// Server is the lifecycle contract for the transport servers this package
// manages. RunServer blocks for the lifetime of the process; Shutdown is the
// counterpart invoked on termination signals.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown stops the server gracefully and releases its resources.
	Shutdown()
}
