package server

// Server runs the document server's transports (REST API and gRPC health)
// as one unit.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT or until a transport
	// fails, then shuts every transport down.
	RunServer()

	// Shutdown stops gRPC first, then drains HTTP.
	Shutdown()
}
