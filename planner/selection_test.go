package planner

import (
	"testing"

	"wandr/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestViewStateLastWriteWins(t *testing.T) {
	var st ViewState

	st.Select(models.Place{ID: "a", Name: "Museum"})
	st.Select(models.Place{ID: "b", Name: "Harbor"})

	snap := st.Snapshot()
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "b", snap.Selected.ID)

	st.Hover("a")
	st.Hover("c")
	snap = st.Snapshot()
	require.NotNil(t, snap.HoveredID)
	assert.Equal(t, "c", *snap.HoveredID)
}

func TestViewStateClear(t *testing.T) {
	var st ViewState

	st.Select(models.Place{ID: "a"})
	st.Hover("a")
	st.ClearSelection()
	st.ClearHover()

	snap := st.Snapshot()
	assert.Nil(t, snap.Selected)
	assert.Nil(t, snap.HoveredID)
}

func TestViewStateSelectionAndHoverIndependent(t *testing.T) {
	var st ViewState

	st.Select(models.Place{ID: "a"})
	st.Hover("b")
	st.ClearSelection()

	snap := st.Snapshot()
	assert.Nil(t, snap.Selected)
	require.NotNil(t, snap.HoveredID)
	assert.Equal(t, "b", *snap.HoveredID)
}

func TestStateForReturnsSameInstance(t *testing.T) {
	a := stateFor("trip-1")
	b := stateFor("trip-1")
	c := stateFor("trip-2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, c)
}
