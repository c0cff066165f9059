package core_test

import (
	"bytes"
	"errors"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathviz/core"
	"github.com/katalvlaran/pathviz/notify"
)

// sixNodeEdges is the reference scenario: shortest 1→6 is 1→3→5→6, cost 10.
var sixNodeEdges = []struct {
	a, b string
	cost float64
}{
	{"1", "2", 5}, {"1", "3", 4}, {"1", "4", 2},
	{"2", "3", 2}, {"2", "6", 6}, {"3", "4", 3},
	{"3", "5", 2}, {"4", "5", 6}, {"5", "6", 4},
}

// recorder collects events published by one entity.
type recorder struct {
	changes []core.ChangePayload
	errs    []*core.ValidationError
}

func (r *recorder) attach(n interface{ AddListener(*notify.Listener) }) {
	n.AddListener(notify.NewListener(notify.EventChange, func(ev notify.Event) {
		r.changes = append(r.changes, ev.Payload.(core.ChangePayload))
	}))
	n.AddListener(notify.NewListener(notify.EventError, func(ev notify.Event) {
		r.errs = append(r.errs, ev.Payload.(*core.ValidationError))
	}))
}

type GraphSuite struct {
	suite.Suite
	g   *core.Graph
	log *bytes.Buffer
}

func (s *GraphSuite) SetupTest() {
	s.log = &bytes.Buffer{}
	s.g = core.NewGraph(core.WithLogger(slog.New(slog.NewTextHandler(s.log, nil))))
}

func (s *GraphSuite) node(id string) *core.Node {
	n, err := s.g.Nodes().Create(id)
	s.Require().NoError(err)

	return n
}

func (s *GraphSuite) buildSixNodes() {
	for _, e := range sixNodeEdges {
		_, err := s.g.Edges().Connect(s.node(e.a), s.node(e.b), e.cost)
		s.Require().NoError(err)
	}
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

func (s *GraphSuite) TestCreateNodeIsIdempotent() {
	a := s.node("1")
	again := s.node("1")
	s.Same(a, again)
	s.Equal(1, s.g.Nodes().Len())
	s.Equal(core.Unreached, a.Cost())
	s.False(a.Done())
	s.Empty(a.EdgeIDs())
}

func (s *GraphSuite) TestCreateNodeRejectsBadIDs() {
	_, err := s.g.Nodes().Create("")
	s.ErrorIs(err, core.ErrEmptyNodeID)

	_, err = s.g.Nodes().Create("a-b")
	s.ErrorIs(err, core.ErrBadNodeID)
	s.Zero(s.g.Nodes().Len())
}

func (s *GraphSuite) TestSixNodeTopology() {
	s.buildSixNodes()

	s.Equal(6, s.g.Nodes().Len())
	s.Equal(9, s.g.Edges().Len())
	s.Equal([]string{"1", "2", "3", "4", "5", "6"}, s.g.Nodes().IDs())
	s.Equal([]string{"1-2", "1-3", "1-4"}, s.g.Nodes().FetchByID("1").EdgeIDs())
	s.Equal([]string{"1-3", "2-3", "3-4", "3-5"}, s.g.Nodes().FetchByID("3").EdgeIDs())

	e := s.g.Edges().FetchByNode(s.g.Nodes().FetchByID("5"), s.g.Nodes().FetchByID("3"))
	s.Require().NotNil(e)
	s.Equal("3-5", e.ID())
	s.Equal(2.0, e.Cost())
}

func (s *GraphSuite) TestEdgeSymmetryAndUniqueness() {
	a, b := s.node("2"), s.node("10")

	e1, err := s.g.Edges().Connect(a, b, 3)
	s.Require().NoError(err)
	e2, err := s.g.Edges().Connect(b, a, 7)
	s.Require().NoError(err)

	s.Same(e1, e2)
	s.Equal("2-10", e1.ID(), "integer IDs compare numerically")
	s.Equal(7.0, e1.Cost())
	s.Equal(1, s.g.Edges().Len())
	s.Equal([]string{"2-10"}, a.EdgeIDs())
	s.Equal([]string{"2-10"}, b.EdgeIDs())
	s.Equal("b-c", core.EdgeID("c", "b"))
}

func (s *GraphSuite) TestEdgeDefaultsAndOpposite() {
	a, b, c := s.node("1"), s.node("2"), s.node("3")
	e, err := s.g.Edges().Create(a, b)
	s.Require().NoError(err)

	s.Equal(core.DefaultEdgeCost, e.Cost())
	s.Empty(a.EdgeIDs(), "Create does not attach the edge")
	s.Same(b, e.Opposite(a))
	s.Same(a, e.Opposite(b))
	s.Nil(e.Opposite(c))

	s.ErrorIs(c.AddEdge(e), core.ErrNotIncident)
	s.Require().NoError(a.AddEdge(e))
	s.Require().NoError(a.AddEdge(e))
	s.Equal([]string{"1-2"}, a.EdgeIDs())
}

func (s *GraphSuite) TestCreateEdgeRejectsBadEndpoints() {
	a := s.node("1")
	_, err := s.g.Edges().Create(a, nil)
	s.ErrorIs(err, core.ErrNilNode)

	_, err = s.g.Edges().Create(a, a)
	s.ErrorIs(err, core.ErrSelfLoop)

	foreign, err := core.NewGraph().Nodes().Create("2")
	s.Require().NoError(err)
	_, err = s.g.Edges().Connect(a, foreign, 1)
	s.ErrorIs(err, core.ErrUnknownNode)
	s.Zero(s.g.Edges().Len())
}

func (s *GraphSuite) TestConnectNegativeCostLeavesGraphUnchanged() {
	n1, n2 := s.node("1"), s.node("2")

	_, err := s.g.Edges().Connect(n1, n2, -1)
	s.Require().Error(err)
	s.ErrorIs(err, core.ErrNegativeCost)
	var verr *core.ValidationError
	s.Require().True(errors.As(err, &verr))
	s.Equal(core.AttrCost, verr.Key)
	s.Equal(-1.0, verr.Value)

	s.Empty(n1.EdgeIDs())
	s.Empty(n2.EdgeIDs())
	s.Nil(s.g.Edges().FetchByNode(n1, n2))

	// An existing edge keeps its cost.
	e, err := s.g.Edges().Connect(n1, n2, 3)
	s.Require().NoError(err)
	_, err = s.g.Edges().Connect(n1, n2, -5)
	s.ErrorIs(err, core.ErrNegativeCost)
	s.Equal(3.0, e.Cost())
	s.Equal([]string{"1-2"}, n1.EdgeIDs())
	s.Same(e, s.g.Edges().FetchByNode(n1, n2))
}

func (s *GraphSuite) TestConnectRejectsBadCostBeforeCreating() {
	n1, n2, n3 := s.node("1"), s.node("2"), s.node("3")
	first, err := s.g.Edges().Connect(n1, n2, 1)
	s.Require().NoError(err)

	for _, cost := range []float64{-0.5, math.NaN(), math.Inf(1)} {
		_, err = s.g.Edges().Connect(n1, n3, cost)
		var verr *core.ValidationError
		s.Require().True(errors.As(err, &verr), "cost %v", cost)
		s.Equal(core.AttrCost, verr.Key)
	}
	s.Equal(1, s.g.Edges().Len())
	s.Equal([]*core.Edge{first}, s.g.Edges().All())
	s.Empty(n3.EdgeIDs())
}

func (s *GraphSuite) TestSmallIntegerCosts() {
	a, b := s.node("1"), s.node("2")
	e, err := s.g.Edges().Connect(a, b, 1)
	s.Require().NoError(err)

	for _, v := range []any{int8(3), int16(4), uint8(5), uint16(6)} {
		s.Require().NoError(e.Set(core.AttrCost, v), "%T", v)
		s.Require().NoError(a.Set(core.AttrCost, v), "%T", v)
		want, _ := e.Get(core.AttrCost)
		s.Equal(want, a.Cost())
	}
	s.Equal(6.0, e.Cost())
	s.ErrorIs(e.Set(core.AttrCost, int8(-1)), core.ErrNegativeCost)
}

func (s *GraphSuite) TestSetPublishesChangeAndSkipsNoOps() {
	n := s.node("1")
	var rec recorder
	rec.attach(n)

	s.Require().NoError(n.Set(core.AttrCost, 4))
	s.Require().NoError(n.Set(core.AttrCost, 4.0))
	s.Require().NoError(n.Set(core.AttrDone, true))

	s.Equal([]core.ChangePayload{
		{Name: core.AttrCost, NewValue: 4.0, OldValue: core.Unreached},
		{Name: core.AttrDone, NewValue: true, OldValue: false},
	}, rec.changes)
	s.Empty(rec.errs)
}

func (s *GraphSuite) TestSetRejectionPublishesError() {
	n := s.node("1")
	var rec recorder
	rec.attach(n)

	cases := []struct {
		key  core.Attr
		val  any
		want error
	}{
		{core.AttrCost, -3, core.ErrNegativeCost},
		{core.AttrCost, "x", core.ErrWrongType},
		{core.AttrDone, 1, core.ErrWrongType},
		{core.AttrID, "2", core.ErrReadOnly},
		{core.AttrEdges, nil, core.ErrReadOnly},
		{core.Attr("colour"), "red", core.ErrUnknownAttr},
		{core.AttrPreviousNode, "1", core.ErrSelfLoop},
		{core.AttrPreviousNode, "9", core.ErrUnknownNode},
	}
	for _, tc := range cases {
		err := n.Set(tc.key, tc.val)
		s.ErrorIs(err, tc.want, "%s=%v", tc.key, tc.val)
	}

	s.Empty(rec.changes)
	s.Require().Len(rec.errs, len(cases))
	s.Equal(core.AttrCost, rec.errs[0].Key)
	s.Equal(-3, rec.errs[0].Value)
	s.NotEmpty(rec.errs[0].Reason)
	s.Equal(core.Unreached, n.Cost())
}

func (s *GraphSuite) TestUnreachedIsAcceptedForNodes() {
	n := s.node("1")
	s.Require().NoError(n.Set(core.AttrCost, 0))
	s.Require().NoError(n.Set(core.AttrCost, core.Unreached))
	s.Equal(core.Unreached, n.Cost())
}

func (s *GraphSuite) TestEdgeSetRules() {
	a, b := s.node("1"), s.node("2")
	e, err := s.g.Edges().Connect(a, b, 2)
	s.Require().NoError(err)

	s.ErrorIs(e.Set(core.AttrCost, core.Unreached), core.ErrNegativeCost)
	s.ErrorIs(e.Set(core.AttrNodeA, "3"), core.ErrReadOnly)
	s.ErrorIs(e.Set(core.AttrDone, true), core.ErrUnknownAttr)
	s.Require().NoError(e.Set(core.AttrCost, 0))
	s.Require().NoError(e.Set(core.AttrAdoption, true))
	s.True(e.Adoption())

	v, err := e.Get(core.AttrCost)
	s.Require().NoError(err)
	s.Equal(0.0, v)
}

func (s *GraphSuite) TestPreviousNodeAcceptsNodeOrID() {
	a, b := s.node("1"), s.node("2")
	s.Require().NoError(b.Set(core.AttrPreviousNode, a))
	s.Same(a, b.PreviousNode())
	s.Require().NoError(b.Set(core.AttrPreviousNode, nil))
	s.Nil(b.PreviousNode())
	s.Require().NoError(b.Set(core.AttrPreviousNode, "1"))
	s.Equal("1", b.PreviousID())
}

func (s *GraphSuite) TestFlagConflictOnOneNode() {
	n := s.node("1")
	s.Require().NoError(n.Set(core.AttrIsStart, true))
	err := n.Set(core.AttrIsGoal, true)
	s.ErrorIs(err, core.ErrFlagConflict)
	s.True(n.IsStart())
	s.False(n.IsGoal())
}

func (s *GraphSuite) TestFlagPolicyRevert() {
	a, b := s.node("1"), s.node("2")
	var rec recorder
	rec.attach(b)

	s.Require().NoError(a.Set(core.AttrIsStart, true))
	s.Require().NoError(b.Set(core.AttrIsStart, true))

	s.True(a.IsStart())
	s.False(b.IsStart())
	s.Same(a, s.g.Nodes().Start())
	s.Equal([]core.ChangePayload{
		{Name: core.AttrIsStart, NewValue: true, OldValue: false},
		{Name: core.AttrIsStart, NewValue: false, OldValue: true},
	}, rec.changes)
	s.Contains(s.log.String(), "must set start flag to just one node")

	s.Require().NoError(b.Set(core.AttrIsGoal, true))
	s.Require().NoError(a.Set(core.AttrIsStart, false))
	c := s.node("3")
	s.Require().NoError(c.Set(core.AttrIsGoal, true))
	s.False(c.IsGoal())
	s.Same(b, s.g.Nodes().Goal())
	s.Nil(s.g.Nodes().Start())
	s.Contains(s.log.String(), "must set goal flag to just one node")
}

func (s *GraphSuite) TestFlagPolicyRevertNeverShowsTwoHolders() {
	a, b := s.node("1"), s.node("2")
	holders := func(key core.Attr) int {
		n := 0
		for _, node := range s.g.Nodes().All() {
			if (key == core.AttrIsStart && node.IsStart()) || (key == core.AttrIsGoal && node.IsGoal()) {
				n++
			}
		}
		return n
	}
	var seen []int
	b.AddListener(notify.NewListener(notify.EventChange, func(ev notify.Event) {
		seen = append(seen, holders(ev.Payload.(core.ChangePayload).Name))
	}))

	s.Require().NoError(a.Set(core.AttrIsStart, true))
	s.Require().NoError(b.Set(core.AttrIsStart, true))
	c := s.node("3")
	s.Require().NoError(c.Set(core.AttrIsGoal, true))
	s.Require().NoError(b.Set(core.AttrIsGoal, true))

	s.Equal([]int{1, 1, 1, 1}, seen)
	s.True(a.IsStart())
	s.False(b.IsStart())
	s.True(c.IsGoal())
	s.False(b.IsGoal())
}

func TestFlagPolicyReject(t *testing.T) {
	g := core.NewGraph(core.WithFlagPolicy(core.FlagPolicyReject))
	require.Equal(t, "reject", g.FlagPolicy().String())

	a, err := g.Nodes().Create("1")
	require.NoError(t, err)
	b, err := g.Nodes().Create("2")
	require.NoError(t, err)

	var rec recorder
	rec.attach(b)

	require.NoError(t, a.Set(core.AttrIsGoal, true))
	err = b.Set(core.AttrIsGoal, true)
	require.ErrorIs(t, err, core.ErrFlagTaken)
	require.False(t, b.IsGoal())
	require.Empty(t, rec.changes)
	require.Len(t, rec.errs, 1)
	require.True(t, strings.Contains(rec.errs[0].Reason, "1"))
}

func (s *GraphSuite) TestClearKeepsFlagsResetDropsThem() {
	s.buildSixNodes()
	one, three := s.g.Nodes().FetchByID("1"), s.g.Nodes().FetchByID("3")
	s.Require().NoError(one.Set(core.AttrIsStart, true))
	s.Require().NoError(three.Set(core.AttrCost, 4))
	s.Require().NoError(three.Set(core.AttrDone, true))
	s.Require().NoError(three.Set(core.AttrAdoption, true))
	s.Require().NoError(three.Set(core.AttrPreviousNode, one))
	edge := s.g.Edges().FetchByID("1-3")
	s.Require().NoError(edge.Set(core.AttrAdoption, true))

	s.Require().NoError(s.g.Clear())
	s.Equal(core.Unreached, three.Cost())
	s.False(three.Done())
	s.False(three.Adoption())
	s.Nil(three.PreviousNode())
	s.False(edge.Adoption())
	s.Equal(4.0, edge.Cost(), "edge cost survives a clear")
	s.True(one.IsStart())

	s.Require().NoError(s.g.Reset())
	s.False(one.IsStart())
}

func (s *GraphSuite) TestRemoveNodeDropsIncidentEdges() {
	s.buildSixNodes()
	three := s.g.Nodes().FetchByID("3")
	five := s.g.Nodes().FetchByID("5")
	s.Require().NoError(five.Set(core.AttrPreviousNode, three))

	s.True(s.g.Nodes().Remove(three))
	s.False(s.g.Nodes().Remove(three))
	s.False(s.g.Nodes().Has("3"))
	s.Equal(5, s.g.Edges().Len())
	s.Equal([]string{"1-2", "1-4"}, s.g.Nodes().FetchByID("1").EdgeIDs())
	s.Equal([]string{"4-5", "5-6"}, five.EdgeIDs())
	s.Nil(five.PreviousNode())
}

func (s *GraphSuite) TestRemoveNodeClearsPredecessorsInOrder() {
	hub := s.node("1")
	var order []string
	for _, id := range []string{"2", "3", "4", "5", "6", "7", "8"} {
		n := s.node(id)
		s.Require().NoError(n.Set(core.AttrPreviousNode, hub))
		n.AddListener(notify.NewListener(notify.EventChange, func(ev notify.Event) {
			order = append(order, ev.Source.(*core.Node).ID())
		}))
	}

	s.True(s.g.Nodes().Remove(hub))
	s.Equal([]string{"2", "3", "4", "5", "6", "7", "8"}, order)
}

func (s *GraphSuite) TestRemoveEdge() {
	a, b := s.node("1"), s.node("2")
	e, err := s.g.Edges().Connect(a, b, 1)
	s.Require().NoError(err)

	s.True(s.g.Edges().Remove(e))
	s.False(s.g.Edges().Remove(e))
	s.Empty(a.EdgeIDs())
	s.Empty(b.EdgeIDs())
	s.Empty(a.Edges())
}

func TestGraphsAreIndependent(t *testing.T) {
	g1, g2 := core.NewGraph(), core.NewGraph()
	a, err := g1.Nodes().Create("1")
	require.NoError(t, err)
	require.NoError(t, a.Set(core.AttrIsStart, true))

	b, err := g2.Nodes().Create("1")
	require.NoError(t, err)
	require.NoError(t, b.Set(core.AttrIsStart, true))
	require.True(t, a.IsStart())
	require.True(t, b.IsStart())
	require.NotSame(t, a, b)
}
