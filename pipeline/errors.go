package pipeline

import "errors"

var (
	// ErrNoEntry is returned by Compile when no entry node was set.
	ErrNoEntry = errors.New("pipeline: entry node not set")

	// ErrUnknownNode is returned by Compile when an edge or the entry
	// references a node that was never added.
	ErrUnknownNode = errors.New("pipeline: unknown node")

	// ErrDuplicateNode is returned by AddNode for a name already in use.
	ErrDuplicateNode = errors.New("pipeline: duplicate node")

	// ErrNilStage is returned by AddNode for a nil stage function.
	ErrNilStage = errors.New("pipeline: nil stage")

	// ErrMultipleConditionals is returned by Compile when more than one
	// conditional edge was added; the engine supports exactly one fork.
	ErrMultipleConditionals = errors.New("pipeline: multiple conditional edges")

	// ErrConflictingEdges is returned by Compile when a node has both an
	// unconditional and a conditional outgoing edge.
	ErrConflictingEdges = errors.New("pipeline: conflicting edges")

	// ErrNoOutgoingEdge is returned by Compile when a node has no way to
	// proceed; terminal nodes must point at End explicitly.
	ErrNoOutgoingEdge = errors.New("pipeline: node has no outgoing edge")

	// ErrUnknownBranch is returned by Run when a decision function yields
	// a label with no mapped target.
	ErrUnknownBranch = errors.New("pipeline: unknown branch label")

	// ErrNodeRevisited is returned by Run when the walk reaches a node a
	// second time; every stage runs exactly once per invocation.
	ErrNodeRevisited = errors.New("pipeline: node revisited")
)
