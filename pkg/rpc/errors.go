package rpc

// ErrorKind classifies a failed call into one of the three failure sources.
type ErrorKind int

const (
	// KindTransport covers network, DNS, timeout and non-2xx HTTP failures.
	KindTransport ErrorKind = iota + 1
	// KindNode means the response envelope carried an error object; the
	// message is the node's, verbatim.
	KindNode
	// KindDecode means the envelope could not be read or the result payload
	// could not be decoded.
	KindDecode
)

// String returns a short tag for the kind, used in error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindNode:
		return "node"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the tagged failure type for all RPC calls. Instead of callers
// inspecting optional envelope fields, every failure path produces an Error
// whose Kind says where it came from. Err, when non-nil, is the underlying
// cause and is reachable through errors.Unwrap.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Kind.String() + " error: " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// newTransportError wraps a failure of the HTTP round trip itself.
func newTransportError(err error) *Error {
	return &Error{Kind: KindTransport, Message: err.Error(), Err: err}
}

// newNodeError carries a node-reported RPC error to the caller.
func newNodeError(msg string) *Error {
	return &Error{Kind: KindNode, Message: msg}
}

// newDecodeError wraps a malformed envelope or payload.
func newDecodeError(msg string, err error) *Error {
	return &Error{Kind: KindDecode, Message: msg, Err: err}
}
