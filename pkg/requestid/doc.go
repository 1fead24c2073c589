// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// The middleware attaches a short opaque ID to every inbound request: a
// well-formed client-supplied "X-Request-ID" header is reused, anything else
// is replaced with a freshly generated UUIDv4. The ID is stored in the
// request context, echoed back in the response header, and exposed to
// structured logging through LoggerExtractor, so log records emitted while
// handling one request can be correlated after the fact.
package requestid
