package peer

import (
	"reflect"

	gc "gopkg.in/check.v1"
)

var _ = gc.Suite(new(ResourceScopeTestSuite))

type ResourceScopeTestSuite struct{}

type widget struct{ n int }

func (s *ResourceScopeTestSuite) TestEnterExitRestoresWorkerTables(c *gc.C) {
	typed := TypedResources{reflect.TypeOf(widget{}): widget{n: 1}}
	keyed := KeyedResources{"k": "v"}

	c.Assert(CurrentResources(), gc.HasLen, 0)

	scope := EnterResourceScope(&typed, &keyed)
	c.Assert(typed, gc.HasLen, 0, gc.Commentf("worker's table should be swapped out while the scope is active"))
	c.Assert(CurrentResources(), gc.DeepEquals, TypedResources{reflect.TypeOf(widget{}): widget{n: 1}})
	c.Assert(CurrentKeyedResources(), gc.DeepEquals, KeyedResources{"k": "v"})

	scope.Exit()
	c.Assert(typed, gc.DeepEquals, TypedResources{reflect.TypeOf(widget{}): widget{n: 1}})
	c.Assert(keyed, gc.DeepEquals, KeyedResources{"k": "v"})
	c.Assert(CurrentResources(), gc.HasLen, 0)
}

func (s *ResourceScopeTestSuite) TestEnterPanicsIfSlotAlreadyOccupied(c *gc.C) {
	outerTyped := TypedResources{reflect.TypeOf(widget{}): widget{n: 1}}
	outerKeyed := KeyedResources{}
	outer := EnterResourceScope(&outerTyped, &outerKeyed)
	defer outer.Exit()

	innerTyped := TypedResources{reflect.TypeOf(widget{}): widget{n: 2}}
	innerKeyed := KeyedResources{}
	c.Assert(func() { EnterResourceScope(&innerTyped, &innerKeyed) }, gc.PanicMatches,
		"peer: ambient typed resource slot was not empty on scope entry")
}

func (s *ResourceScopeTestSuite) TestBindWorkerIDRestoresPrevious(c *gc.C) {
	_, ok := CurrentWorkerID()
	c.Assert(ok, gc.Equals, false)

	outer := bindWorkerID(WorkerId{JobID: 1, Index: 0, TotalPeers: 1})
	id, ok := CurrentWorkerID()
	c.Assert(ok, gc.Equals, true)
	c.Assert(id.JobID, gc.Equals, uint64(1))

	inner := bindWorkerID(WorkerId{JobID: 2, Index: 0, TotalPeers: 1})
	id, _ = CurrentWorkerID()
	c.Assert(id.JobID, gc.Equals, uint64(2))
	inner()

	id, _ = CurrentWorkerID()
	c.Assert(id.JobID, gc.Equals, uint64(1))
	outer()

	_, ok = CurrentWorkerID()
	c.Assert(ok, gc.Equals, false)
}
