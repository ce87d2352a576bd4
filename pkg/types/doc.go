// Package types defines the Todo entity, filter modes, the Backend interface,
// configuration, and the standard errors shared by every todos package.
package types
