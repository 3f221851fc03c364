package browse

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gofiber/fiber/v2"
)

// OpKind is the action chosen for a request.
type OpKind int

const (
	OpList OpKind = iota
	OpFetch
	OpReject
)

// Reject reasons.
const (
	ReasonMethodNotAllowed = "method not allowed"
	ReasonBadEncoding      = "bad path encoding"
)

// Operation is the routing decision for one request.
type Operation struct {
	Kind OpKind
	// Key is the listing prefix for OpList and the object key for OpFetch.
	Key string
	// DisplayPrefix is the listing heading, "/" at the root.
	DisplayPrefix string
	// Reason and Status describe an OpReject.
	Reason string
	Status int
}

// Resolve decides between listing, fetching and rejecting.
// rawPath is the undecoded request path. Only GET is served. A decoded path ending
// with "/" lists that prefix; anything else fetches the object stored under it.
// Beyond decoding and dropping the leading "/", keys are taken verbatim.
func Resolve(method, rawPath string) Operation {
	if method != fiber.MethodGet {
		return Operation{Kind: OpReject, Reason: ReasonMethodNotAllowed, Status: fiber.StatusBadRequest}
	}

	decoded, err := url.PathUnescape(rawPath)
	if err != nil || !utf8.ValidString(decoded) {
		return Operation{Kind: OpReject, Reason: ReasonBadEncoding, Status: fiber.StatusInternalServerError}
	}

	key := strings.TrimPrefix(decoded, "/")
	if key == "" {
		return Operation{Kind: OpList, Key: "", DisplayPrefix: "/"}
	}
	if strings.HasSuffix(key, "/") {
		return Operation{Kind: OpList, Key: key, DisplayPrefix: key}
	}
	return Operation{Kind: OpFetch, Key: key}
}
