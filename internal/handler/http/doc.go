// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API of MediaFinder. Cross-cutting concerns such as session resolution,
// request tracing, access logging, metrics, and CORS are handled in this
// package before requests are delegated to the service layer.
package http
