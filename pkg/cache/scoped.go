package cache

// ScopedKeyer wraps a Keyer with a prefix so separate contexts get separate
// cache namespaces. The server uses this to keep per-deck template caches
// from colliding with the shared resolve cache.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer that prepends prefix to every key the
// inner keyer generates. A nil inner falls back to the default keyer.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// TemplateKey generates a prefixed template key.
func (k *ScopedKeyer) TemplateKey(name string) string {
	return k.prefix + k.inner.TemplateKey(name)
}

// ResolveKey generates a prefixed resolution result key.
func (k *ScopedKeyer) ResolveKey(templateHash string, opts ResolveKeyOpts) string {
	return k.prefix + k.inner.ResolveKey(templateHash, opts)
}
