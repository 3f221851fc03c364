// Package integrity scans the browsed bucket for objects the browser cannot serve.
//
// A single object with unrepresentable metadata fails the whole listing of its
// parent prefix, so the scan walks the bucket recursively and reports each
// offending key instead.
//
// # Checks Provided
//
//   - Bucket: the configured bucket exists and is reachable.
//   - Objects: sizes are non-negative, upload times fall between the Unix epoch
//     and the end of year 9999, and keys are valid UTF-8 so a request path can
//     reach them.
//
// The scan is exposed through the `check` command only. The browser owns every
// HTTP path, so there is no endpoint for it.
package integrity
