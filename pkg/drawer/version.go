// Package drawer exposes build metadata for the drawer CLI.
package drawer

// Version is the current drawer release.
const Version = "0.1.0"
