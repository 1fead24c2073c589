package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Subject records the authenticated subject under the key "subject".
// If sub is empty, it returns an empty Attr.
func Subject(sub string) slog.Attr {
	if sub == "" {
		return slog.Attr{}
	}
	return slog.String("subject", sub)
}

// Organization records the authorized organization under the key "organization".
// If org is empty, it returns an empty Attr.
func Organization(org string) slog.Attr {
	if org == "" {
		return slog.Attr{}
	}
	return slog.String("organization", org)
}
