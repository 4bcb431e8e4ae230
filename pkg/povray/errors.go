package povray

import "errors"

// Error classes returned by the exporter. Concrete failures wrap one of
// these, so callers can match with errors.Is.
var (
	// ErrConfig marks unusable configuration, like an unreadable
	// template file.
	ErrConfig = errors.New("configuration error")

	// ErrIO marks failed output writes, like a missing or unwritable
	// output directory. A failed write never rolls back already
	// resolved assets or corrupts previously written frames.
	ErrIO = errors.New("output error")

	// ErrState marks export calls made before the exporter is set up,
	// like exporting with no attached system or no base path.
	ErrState = errors.New("exporter not ready")
)
