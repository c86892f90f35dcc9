package entity

import "context"

// Logger specifies a contextual, structured logger.
// Key/value pairs follow the message, errors are passed separately.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
