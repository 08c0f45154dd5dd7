package builder

// Option configures a Builder.
type Option func(*Builder)

// WithClock overrides the construction-instant clock. Tests use this to
// supply a fixed instant.
func WithClock(clock Clock) Option {
	return func(b *Builder) {
		if clock != nil {
			b.clock = clock
		}
	}
}

// WithDocumentTitle overrides the document title. An empty override is
// ignored and the title is synthesized from the source set instead.
func WithDocumentTitle(title string) Option {
	return func(b *Builder) {
		b.title = title
	}
}

// WithDocumentVersion overrides the document version. An empty override
// falls back to the fixed default.
func WithDocumentVersion(version string) Option {
	return func(b *Builder) {
		b.version = version
	}
}
