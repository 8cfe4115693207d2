// Package utils provides the HTTP client construction and request tracing
// helpers shared by the client's transport code.
package utils
