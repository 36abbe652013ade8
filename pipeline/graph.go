package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// End is the terminal sentinel. Edges and conditional targets pointing at
// End stop the walk.
const End = "__end__"

// Stage transforms a pipeline state. Implementations must catch their own
// recoverable failures and record them in the state; see the package doc.
type Stage[S any] func(ctx context.Context, state S) S

// Condition picks a branch label from the state after its source node ran.
type Condition[S any] func(state S) string

// Graph is a mutable builder for a stage graph. It is not safe for
// concurrent use; build and Compile before sharing the Runner.
type Graph[S any] struct {
	entry       string
	nodes       map[string]Stage[S]
	edges       map[string]string
	condSources []string
	condition   Condition[S]
	condTargets map[string]string
	buildErrs   []error
}

// NewGraph creates an empty graph builder.
func NewGraph[S any]() *Graph[S] {
	return &Graph[S]{
		nodes: make(map[string]Stage[S]),
		edges: make(map[string]string),
	}
}

// AddNode registers a named stage. Name collisions and nil stages are
// reported by Compile.
func (g *Graph[S]) AddNode(name string, stage Stage[S]) *Graph[S] {
	if stage == nil {
		g.buildErrs = append(g.buildErrs, fmt.Errorf("%w: %s", ErrNilStage, name))
		return g
	}
	if _, exists := g.nodes[name]; exists {
		g.buildErrs = append(g.buildErrs, fmt.Errorf("%w: %s", ErrDuplicateNode, name))
		return g
	}
	g.nodes[name] = stage
	return g
}

// SetEntry sets the node the walk starts from.
func (g *Graph[S]) SetEntry(name string) *Graph[S] {
	g.entry = name
	return g
}

// AddEdge adds an unconditional transition. A terminal node points at End.
func (g *Graph[S]) AddEdge(from, to string) *Graph[S] {
	g.edges[from] = to
	return g
}

// AddConditionalEdge attaches the single conditional fork: after source
// runs, condition is evaluated on the updated state and the walk proceeds
// to targets[label]. One target may be End.
func (g *Graph[S]) AddConditionalEdge(source string, condition Condition[S], targets map[string]string) *Graph[S] {
	g.condSources = append(g.condSources, source)
	g.condition = condition
	g.condTargets = targets
	return g
}

// Compile validates the graph and returns an immutable Runner.
func (g *Graph[S]) Compile() (*Runner[S], error) {
	if len(g.buildErrs) > 0 {
		return nil, g.buildErrs[0]
	}
	if g.entry == "" {
		return nil, ErrNoEntry
	}
	if _, ok := g.nodes[g.entry]; !ok {
		return nil, fmt.Errorf("%w: entry %s", ErrUnknownNode, g.entry)
	}
	if len(g.condSources) > 1 {
		return nil, ErrMultipleConditionals
	}

	condSource := ""
	if len(g.condSources) == 1 {
		condSource = g.condSources[0]
		if _, ok := g.nodes[condSource]; !ok {
			return nil, fmt.Errorf("%w: conditional source %s", ErrUnknownNode, condSource)
		}
		if _, ok := g.edges[condSource]; ok {
			return nil, fmt.Errorf("%w: %s", ErrConflictingEdges, condSource)
		}
		for label, target := range g.condTargets {
			if target == End {
				continue
			}
			if _, ok := g.nodes[target]; !ok {
				return nil, fmt.Errorf("%w: conditional target %s (label %q)", ErrUnknownNode, target, label)
			}
		}
	}

	for from, to := range g.edges {
		if _, ok := g.nodes[from]; !ok {
			return nil, fmt.Errorf("%w: edge source %s", ErrUnknownNode, from)
		}
		if to != End {
			if _, ok := g.nodes[to]; !ok {
				return nil, fmt.Errorf("%w: edge target %s", ErrUnknownNode, to)
			}
		}
	}

	for name := range g.nodes {
		if _, ok := g.edges[name]; ok {
			continue
		}
		if name == condSource {
			continue
		}
		return nil, fmt.Errorf("%w: %s", ErrNoOutgoingEdge, name)
	}

	return &Runner[S]{
		entry:       g.entry,
		nodes:       g.nodes,
		edges:       g.edges,
		condSource:  condSource,
		condition:   g.condition,
		condTargets: g.condTargets,
		logger:      slog.Default().With("component", "pipeline"),
	}, nil
}

// Runner executes a compiled graph. It is immutable and safe for
// concurrent Run calls.
type Runner[S any] struct {
	entry       string
	nodes       map[string]Stage[S]
	edges       map[string]string
	condSource  string
	condition   Condition[S]
	condTargets map[string]string
	logger      *slog.Logger
}

// Run walks the graph from the entry node, applying each stage exactly
// once in sequence, and returns the final state. At the conditional
// source the decision function is evaluated on the state after the stage
// ran. Run returns an error only for graph-level defects.
func (r *Runner[S]) Run(ctx context.Context, state S) (S, error) {
	start := time.Now()
	visited := make(map[string]bool, len(r.nodes))

	current := r.entry
	for current != End {
		if visited[current] {
			return state, fmt.Errorf("%w: %s", ErrNodeRevisited, current)
		}
		visited[current] = true

		state = r.nodes[current](ctx, state)

		if current == r.condSource {
			label := r.condition(state)
			next, ok := r.condTargets[label]
			if !ok {
				return state, fmt.Errorf("%w: %q from %s", ErrUnknownBranch, label, current)
			}
			r.logger.Debug("conditional branch taken", "node", current, "label", label, "next", next)
			current = next
			continue
		}

		current = r.edges[current]
	}

	r.logger.Debug("pipeline run completed", "stages", len(visited), "duration", time.Since(start))
	return state, nil
}
