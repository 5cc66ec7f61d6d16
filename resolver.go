package ddir

// PathResolver converts user-supplied paths to the absolute, canonical
// form used as Describer keys. Resolution fails when the path does not
// exist; the Describer itself never touches the filesystem.
type PathResolver interface {
	Resolve(path string) (string, error)
}
