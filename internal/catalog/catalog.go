// Package catalog stores the uploadable assets a session can activate:
// reference images, trace templates, and 3D model files.
//
// Catalogs are injected repositories rather than ambient shared maps,
// which keeps the rasterization core free of state-lifecycle coupling.
// Two implementations exist: a file-backed store under the user data
// directory and an in-memory store for tests and embedded use.
package catalog

import "errors"

// ErrNotFound reports an entry that does not exist in the catalog.
var ErrNotFound = errors.New("catalog: entry not found")

// ErrNoActive reports that nothing has been activated yet.
var ErrNoActive = errors.New("catalog: no active entry")

// Entry describes one stored asset.
type Entry struct {
	// Name is the caller-chosen identifier, unique within a catalog.
	Name string `json:"name"`

	// Size is the asset size in bytes.
	Size int64 `json:"size"`
}

// Repository is the create/list/activate contract shared by all
// catalogs. Implementations must be safe for concurrent use.
type Repository interface {
	// Create stores an asset under name, replacing any previous asset
	// with the same name.
	Create(name string, data []byte) error

	// List returns all entries sorted by name.
	List() ([]Entry, error)

	// Open returns the stored bytes for name, or ErrNotFound.
	Open(name string) ([]byte, error)

	// Activate marks name as the catalog's active entry, or returns
	// ErrNotFound.
	Activate(name string) error

	// Active returns the active entry, or ErrNoActive.
	Active() (Entry, error)

	// Delete removes an entry. Deleting the active entry clears the
	// activation. Missing names return ErrNotFound.
	Delete(name string) error
}
