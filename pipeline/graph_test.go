package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testState struct {
	trail []string
	pass  bool
}

func appendStage(name string) Stage[*testState] {
	return func(ctx context.Context, s *testState) *testState {
		s.trail = append(s.trail, name)
		return s
	}
}

func TestRunLinearGraph(t *testing.T) {
	g := NewGraph[*testState]()
	g.AddNode("a", appendStage("a"))
	g.AddNode("b", appendStage("b"))
	g.AddNode("c", appendStage("c"))
	g.SetEntry("a")
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", End)

	runner, err := g.Compile()
	require.NoError(t, err)

	final, err := runner.Run(context.Background(), &testState{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, final.trail)
}

func TestRunConditionalBranch(t *testing.T) {
	build := func() *Graph[*testState] {
		g := NewGraph[*testState]()
		g.AddNode("check", appendStage("check"))
		g.AddNode("store", appendStage("store"))
		g.SetEntry("check")
		g.AddConditionalEdge("check", func(s *testState) string {
			if s.pass {
				return "store"
			}
			return "end"
		}, map[string]string{"store": "store", "end": End})
		g.AddEdge("store", End)
		return g
	}

	t.Run("branch taken", func(t *testing.T) {
		runner, err := build().Compile()
		require.NoError(t, err)
		final, err := runner.Run(context.Background(), &testState{pass: true})
		require.NoError(t, err)
		assert.Equal(t, []string{"check", "store"}, final.trail)
	})

	t.Run("branch to end", func(t *testing.T) {
		runner, err := build().Compile()
		require.NoError(t, err)
		final, err := runner.Run(context.Background(), &testState{pass: false})
		require.NoError(t, err)
		assert.Equal(t, []string{"check"}, final.trail)
	})
}

func TestConditionEvaluatedAfterSourceRan(t *testing.T) {
	g := NewGraph[*testState]()
	g.AddNode("flip", func(ctx context.Context, s *testState) *testState {
		s.pass = true
		return s
	})
	g.AddNode("store", appendStage("store"))
	g.SetEntry("flip")
	g.AddConditionalEdge("flip", func(s *testState) string {
		if s.pass {
			return "store"
		}
		return "end"
	}, map[string]string{"store": "store", "end": End})
	g.AddEdge("store", End)

	runner, err := g.Compile()
	require.NoError(t, err)

	// pass starts false; the stage flips it before the decision runs.
	final, err := runner.Run(context.Background(), &testState{})
	require.NoError(t, err)
	assert.Equal(t, []string{"store"}, final.trail)
}

func TestRunUnknownBranchLabel(t *testing.T) {
	g := NewGraph[*testState]()
	g.AddNode("check", appendStage("check"))
	g.SetEntry("check")
	g.AddConditionalEdge("check", func(s *testState) string {
		return "nowhere"
	}, map[string]string{"end": End})

	runner, err := g.Compile()
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), &testState{})
	assert.ErrorIs(t, err, ErrUnknownBranch)
}

func TestRunDetectsCycle(t *testing.T) {
	g := NewGraph[*testState]()
	g.AddNode("a", appendStage("a"))
	g.AddNode("b", appendStage("b"))
	g.SetEntry("a")
	g.AddEdge("a", "b")
	g.AddEdge("b", "a")

	runner, err := g.Compile()
	require.NoError(t, err)

	_, err = runner.Run(context.Background(), &testState{})
	assert.ErrorIs(t, err, ErrNodeRevisited)
}

func TestCompileValidation(t *testing.T) {
	t.Run("no entry", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", appendStage("a"))
		g.AddEdge("a", End)
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrNoEntry)
	})

	t.Run("unknown entry", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", appendStage("a"))
		g.AddEdge("a", End)
		g.SetEntry("missing")
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrUnknownNode)
	})

	t.Run("unknown edge target", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", appendStage("a"))
		g.SetEntry("a")
		g.AddEdge("a", "ghost")
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrUnknownNode)
	})

	t.Run("node without outgoing edge", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", appendStage("a"))
		g.AddNode("b", appendStage("b"))
		g.SetEntry("a")
		g.AddEdge("a", "b")
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrNoOutgoingEdge)
	})

	t.Run("duplicate node", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", appendStage("a"))
		g.AddNode("a", appendStage("a"))
		g.SetEntry("a")
		g.AddEdge("a", End)
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrDuplicateNode)
	})

	t.Run("nil stage", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", nil)
		g.SetEntry("a")
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrNilStage)
	})

	t.Run("two conditional edges", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", appendStage("a"))
		g.AddNode("b", appendStage("b"))
		g.SetEntry("a")
		cond := func(s *testState) string { return "end" }
		g.AddConditionalEdge("a", cond, map[string]string{"end": End})
		g.AddConditionalEdge("b", cond, map[string]string{"end": End})
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrMultipleConditionals)
	})

	t.Run("conditional plus unconditional on same node", func(t *testing.T) {
		g := NewGraph[*testState]()
		g.AddNode("a", appendStage("a"))
		g.AddNode("b", appendStage("b"))
		g.SetEntry("a")
		g.AddEdge("a", "b")
		g.AddEdge("b", End)
		g.AddConditionalEdge("a", func(s *testState) string { return "end" }, map[string]string{"end": End})
		_, err := g.Compile()
		assert.ErrorIs(t, err, ErrConflictingEdges)
	})
}
