// Package types defines the abbreviation dictionary data model: entries,
// items, modification requests, configuration and the standard error kinds
// returned by the storage layer.
package types
