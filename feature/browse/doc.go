// Package browse serves a read-only view of one bucket over HTTP.
//
// A request path ending with "/" renders an HTML listing of the sub-prefixes and
// objects directly under that prefix; any other path streams the object stored
// under it. Only GET is served.
package browse
