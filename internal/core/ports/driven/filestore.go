package driven

// FileStore abstracts document I/O so the core never touches the
// filesystem directly.
type FileStore interface {
	// Read returns the full contents of the file at path.
	Read(path string) (string, error)

	// WriteAtomic replaces the file at path with content in a single
	// atomic step: the content lands in a temporary file first and is
	// renamed over the target, so a crash never leaves a partial write.
	WriteAtomic(path, content string) error
}
