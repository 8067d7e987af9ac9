// Package domain defines core entities for the Shibu command resolution
// pipeline. The domain layer is independent of infrastructure concerns and
// carries no I/O.
package domain

// RegistryEntry describes one action artifact discovered in the registry
// directory. Name is the base name of Path, case preserved, and unique
// within one snapshot.
type RegistryEntry struct {
	Name         string
	Path         string
	IsExecutable bool
}

// ArtifactKind classifies how an artifact is launched.
type ArtifactKind string

const (
	ArtifactPython ArtifactKind = "python"
	ArtifactShell  ArtifactKind = "shell"
	ArtifactBinary ArtifactKind = "binary"
)
