// Package server runs the MediaFinder HTTP API and shuts it down gracefully
// when the application context is cancelled.
package server
