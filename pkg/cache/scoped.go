package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation, e.g.
// separating sizing caches per theme bundle or per tenant in serve mode.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// MeasureKey generates a prefixed measurement key.
func (k *ScopedKeyer) MeasureKey(family string, size float64, label string) string {
	return k.prefix + k.inner.MeasureKey(family, size, label)
}

// SizeKey generates a prefixed sizing-response key.
func (k *ScopedKeyer) SizeKey(specHash string, opts SizeKeyOpts) string {
	return k.prefix + k.inner.SizeKey(specHash, opts)
}
