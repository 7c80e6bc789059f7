// Package flexbox provides a flexbox layout engine for Go.
//
// Users import this single package for the common API: node construction,
// style setters, configuration and layout results. The engine itself lives
// in pkg/layout.
package flexbox
