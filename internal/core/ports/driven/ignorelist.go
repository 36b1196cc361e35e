package driven

// IgnoreList answers whether a path is excluded from TOC management.
type IgnoreList interface {
	// IsIgnored reports whether path matches any ignore pattern.
	// A missing ignore file means nothing is ignored.
	IsIgnored(path string) (bool, error)
}
