// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - RayID: Generates a unique Request ID (RayID) for every incoming request,
//     injecting it into the context and response headers for tracing.
//
// Request logging and panic recovery are registered in the start command next to
// the RayID middleware, so that both can attach the RayID to their log lines.
package middleware
