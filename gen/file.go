package gen

// File is one generated artefact. RelativePath is relative to the target
// package directory.
type File struct {
	RelativePath string
	Data         []byte
}
