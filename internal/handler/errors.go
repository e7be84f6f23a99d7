package handler

import "errors"

// errNoHandlersAreCreated means the server config names neither an HTTP nor a
// gRPC address, so the document server has nothing to serve.
var errNoHandlersAreCreated = errors.New("no transport address configured for the document server")
