// Copyright 2025 The usd-arnold Authors
// SPDX-License-Identifier: MIT

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulDoessel/usd-arnold/arnold"
	"github.com/PaulDoessel/usd-arnold/sdf"
)

func newTestNode(t *testing.T, u *arnold.Universe, entry, name string) *arnold.Node {
	t.Helper()
	n, err := u.CreateNode(entry, name)
	require.NoError(t, err)
	return n
}

func TestRegistry_ReservePath(t *testing.T) {
	r := NewRegistry(nil)
	looks := sdf.MustPath("/Looks")

	var got []string
	for _, candidate := range []string{"surf", "surf", "surf", "a.b", "a:b", "surf_2"} {
		p, err := r.ReservePath(candidate, looks)
		require.NoError(t, err)
		got = append(got, p.String())
	}
	assert.Equal(t, []string{
		"/Looks/surf",
		"/Looks/surf_1",
		"/Looks/surf_2",
		"/Looks/a_b",
		"/Looks/a_b_1",
		"/Looks/surf_2_1",
	}, got)
	assert.True(t, r.IsReserved(sdf.MustPath("/Looks/surf_1")))
}

func TestRegistry_ReservePathSkipsTakenSuffix(t *testing.T) {
	r := NewRegistry(nil)
	root := sdf.AbsoluteRoot

	p, err := r.ReservePath("x_1", root)
	require.NoError(t, err)
	assert.Equal(t, "/x_1", p.String())

	p, _ = r.ReservePath("x", root)
	assert.Equal(t, "/x", p.String())
	p, _ = r.ReservePath("x", root)
	assert.Equal(t, "/x_2", p.String())
}

func TestRegistry_ReservePathAvoidsExisting(t *testing.T) {
	existing := map[string]bool{"/Looks/surf": true, "/Looks/surf_1": true}
	r := NewRegistry(func(parent sdf.Path, name string) bool {
		p, _ := parent.AppendChild(name)
		return existing[p.String()]
	})

	p, err := r.ReservePath("surf", sdf.MustPath("/Looks"))
	require.NoError(t, err)
	assert.Equal(t, "/Looks/surf_2", p.String())
}

func TestRegistry_ReservePathSameNameDifferentParents(t *testing.T) {
	r := NewRegistry(nil)
	a, _ := r.ReservePath("surf", sdf.MustPath("/Looks/a"))
	b, _ := r.ReservePath("surf", sdf.MustPath("/Looks/b"))
	assert.Equal(t, "/Looks/a/surf", a.String())
	assert.Equal(t, "/Looks/b/surf", b.String())

	_, err := r.ReservePath("surf", sdf.MustPath("/Looks.attr"))
	assert.Error(t, err)
}

func TestRegistry_States(t *testing.T) {
	u := arnold.NewUniverse(arnold.Builtins()...)
	a := newTestNode(t, u, "flat", "a")
	b := newTestNode(t, u, "flat", "b")
	r := NewRegistry(nil)
	pa := sdf.MustPath("/Looks/a")
	pb := sdf.MustPath("/Looks/b")

	assert.Equal(t, StateUnvisited, r.State(a))
	_, ok := r.Lookup(a)
	assert.False(t, ok)

	require.NoError(t, r.Begin(a, pa))
	assert.Equal(t, StateInProgress, r.State(a))
	_, ok = r.Lookup(a)
	assert.False(t, ok, "in-progress nodes are not returned by Lookup")
	p, ok := r.Path(a)
	require.True(t, ok)
	assert.Equal(t, pa, p)

	err := r.Begin(a, pa)
	kind, _ := KindOf(err)
	assert.Equal(t, ErrCyclicDependency, kind)

	require.NoError(t, r.Begin(b, pb))
	assert.Equal(t, []*arnold.Node{a, b}, r.InProgress())

	require.NoError(t, r.Register(a, pa))
	assert.Equal(t, StateDone, r.State(a))
	p, ok = r.Lookup(a)
	require.True(t, ok)
	assert.Equal(t, pa, p)
	assert.Equal(t, []*arnold.Node{b}, r.InProgress())

	err = r.Register(a, pa)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.True(t, e.IsDuplicateRegistration())

	err = r.Begin(a, pa)
	kind, _ = KindOf(err)
	assert.Equal(t, ErrDuplicateRegistration, kind)

	assert.Equal(t, 2, r.Len())
}

func TestRegistry_RegisterWithoutBegin(t *testing.T) {
	u := arnold.NewUniverse(arnold.Builtins()...)
	n := newTestNode(t, u, "flat", "n")
	r := NewRegistry(nil)

	require.NoError(t, r.Register(n, sdf.MustPath("/n")))
	p, ok := r.Lookup(n)
	require.True(t, ok)
	assert.Equal(t, "/n", p.String())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unvisited", StateUnvisited.String())
	assert.Equal(t, "in-progress", StateInProgress.String())
	assert.Equal(t, "done", StateDone.String())
	assert.Equal(t, "unknown", State(9).String())
}
