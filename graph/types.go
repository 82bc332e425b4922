package graph

import "errors"

// NodeId identifies a node by its position in [0, NumNodes).
type NodeId = int32

// Weight is a non-negative edge or distance cost.
type Weight = int64

// Infinity is the sentinel "no path" weight. It is chosen so that two
// infinities can be added without overflowing a 64-bit signed integer,
// which the label-linking arithmetic throughout csp and ch relies on.
const Infinity Weight = 1<<31 - 1

// InvalidNode is the sentinel used for "no predecessor" / "no node".
const InvalidNode NodeId = -1

// Sentinel errors returned while constructing or validating a Graph.
var (
	ErrNegativeWeight  = errors.New("graph: negative edge weight")
	ErrHeadOutOfRange  = errors.New("graph: head index out of range")
	ErrFirstOutInvalid = errors.New("graph: first_out is not monotone or malformed")
	ErrSelfLoop        = errors.New("graph: self loop")
)

// Arc is one edge of a node's outgoing (or incoming, for reversed graphs) star.
type Arc struct {
	Head   NodeId
	Weight Weight
}
