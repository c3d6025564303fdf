package repositories

// WorkspaceRepository inspects the version control state around a file.
type WorkspaceRepository interface {
	// HasUncommittedChanges reports whether the file differs from the last
	// commit of its enclosing repository, or is not tracked at all.
	HasUncommittedChanges(path string) (bool, error)
}
