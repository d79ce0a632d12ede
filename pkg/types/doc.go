// Package types defines the Recipe entity, the Store interface, and the
// standard error values shared by every storage backend.
package types
