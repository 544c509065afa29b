package rpc

// Request is the caller-constructed JSON-RPC payload for one call. The SDK
// forwards Method and Params as-is; it never builds or validates ABI call
// data (the caller encodes the contract arguments into CallObject.Data).
type Request struct {
	Method string  `json:"method"`
	Params []Param `json:"params"`
}

// Param is one entry of a request's params array. The set of permitted
// shapes is closed: a BlockTag scalar or a structured CallObject. Nothing
// else marshals into the params array.
type Param interface {
	isParam()
}

// BlockTag is a plain string parameter: a block tag ("latest", "pending"),
// a hex block number, or a hex-encoded address.
type BlockTag string

func (BlockTag) isParam() {}

// CallObject is the structured eth_call argument. Data carries the
// ABI-encoded function selector and arguments, built by the caller.
type CallObject struct {
	From  string `json:"from,omitempty"`
	To    string `json:"to"`
	Data  string `json:"data"`
	Value string `json:"value,omitempty"`
}

func (CallObject) isParam() {}

// request is the JSON-RPC 2.0 wire form. The id is constant: every call is
// an independent round trip over its own HTTP request, so correlation is
// never needed.
type request struct {
	JSONRPC string  `json:"jsonrpc"`
	ID      int     `json:"id"`
	Method  string  `json:"method"`
	Params  []Param `json:"params"`
}

// response is the node's envelope. Result and Error are mutually exclusive;
// absence of Error signals success.
type response struct {
	Result *string    `json:"result"`
	Error  *nodeError `json:"error"`
}

// nodeError is the error object of a failed JSON-RPC response.
type nodeError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
