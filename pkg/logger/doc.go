// Package logger builds configured log/slog loggers for authkit services.
//
// New applies functional options for level, format (text or json), output
// destination, and static attributes. Context extractors registered with
// WithContextExtractors are invoked on every log call through a handler
// decorator, which is how request-scoped values such as the request
// correlation ID end up on log records without being passed around
// explicitly.
//
//	log := logger.New(
//		logger.WithProduction("authkit"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "client authorized", logger.Organization("ACME"))
//
// Attribute helpers (Error, Subject, Organization, Group) keep attribute
// keys consistent across the codebase.
package logger
