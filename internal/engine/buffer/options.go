package buffer

// Logger receives diagnostics for edits that are silently absorbed,
// such as relocating the gap outside the buffer.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}

// Option is a functional option for configuring a GapBuffer.
type Option func(*GapBuffer)

// WithLogger routes buffer diagnostics to the given logger.
func WithLogger(l Logger) Option {
	return func(b *GapBuffer) {
		if l != nil {
			b.logger = l
		}
	}
}
