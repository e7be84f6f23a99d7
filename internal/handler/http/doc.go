// Package http implements the REST API of the remote document server.
//
// Routes are tenant scoped: /api/tenants/{tenant}/{kind}[/{id}] addresses
// one collection or document and POST /api/tenants/{tenant}/batch applies up
// to 500 writes atomically. The bearer token's subject must equal the path
// tenant. Trace ids, access logging and gzip are applied to every route.
package http
