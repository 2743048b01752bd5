package corpus

import "fmt"

// NotFoundError is returned when the corpus path does not exist.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("corpus path not found: %s", e.Path)
}

// NotADirectoryError is returned when the corpus path is a file.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("corpus path is not a directory: %s", e.Path)
}

// EmptyDirectoryError is returned when the corpus directory has no entries.
type EmptyDirectoryError struct {
	Path string
}

func (e *EmptyDirectoryError) Error() string {
	return fmt.Sprintf("corpus directory is empty: %s", e.Path)
}

// InconsistentDatasetError is returned when ids have gaps or duplicates,
// the number of meta and raw files differ, or a file is empty.
type InconsistentDatasetError struct {
	// Path is the corpus directory or the offending file
	Path string

	// Id is the offending article id, 0 if not applicable
	Id int

	Reason string
}

func (e *InconsistentDatasetError) Error() string {
	if e.Id > 0 {
		return fmt.Sprintf("inconsistent dataset %s: %s (id %d)", e.Path, e.Reason, e.Id)
	}
	return fmt.Sprintf("inconsistent dataset %s: %s", e.Path, e.Reason)
}
