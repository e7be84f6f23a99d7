// Package server runs the document server's transports.
//
// It starts the HTTP document API and the gRPC health service, waits for a
// termination signal and shuts both down gracefully.
package server
