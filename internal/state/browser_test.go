package state

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/directory"
)

func loadedBrowser(t *testing.T, users []directory.User) *Browser {
	t.Helper()
	b := NewBrowser(DefaultPageSize)
	require.True(t, b.Load(users))
	return b
}

func TestNewBrowser_Defaults(t *testing.T) {
	b := NewBrowser(0)
	assert.Equal(t, DefaultPageSize, b.PageSize())
	assert.Equal(t, PhaseLoading, b.Phase())
	assert.Equal(t, "", b.Term())

	snap := b.Snapshot()
	assert.Equal(t, PhaseLoading, snap.Phase)
	assert.Equal(t, LoadingMessage, snap.Message())
	assert.False(t, snap.Controls.Visible)
	assert.Empty(t, snap.Records)

	assert.Equal(t, 3, NewBrowser(3).PageSize())
	assert.Equal(t, DefaultPageSize, NewBrowser(-4).PageSize())
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "ready", PhaseReady.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
}

func TestBrowser_EightUsersTwoPages(t *testing.T) {
	b := loadedBrowser(t, numberedUsers(8))

	snap := b.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, "", snap.Message())
	assert.Equal(t, []string{"U1", "U2", "U3", "U4", "U5", "U6"}, firstNames(snap.Records))
	assert.Equal(t, Controls{Visible: true, Page: 1, TotalPages: 2, PrevEnabled: false, NextEnabled: true}, snap.Controls)
	assert.Equal(t, "Page 1 of 2", snap.Controls.Label())
	assert.Equal(t, 8, snap.Matches)
	assert.Equal(t, 8, snap.Total)

	require.True(t, b.Next())
	snap = b.Snapshot()
	assert.Equal(t, []string{"U7", "U8"}, firstNames(snap.Records))
	assert.Equal(t, Controls{Visible: true, Page: 2, TotalPages: 2, PrevEnabled: true, NextEnabled: false}, snap.Controls)
	assert.Equal(t, "Page 2 of 2", snap.Controls.Label())
}

func TestBrowser_NextPrevNoOpAtBoundaries(t *testing.T) {
	b := loadedBrowser(t, numberedUsers(8))

	assert.False(t, b.Prev(), "Prev on page 1")
	assert.Equal(t, 1, b.Snapshot().Page)

	require.True(t, b.Next())
	assert.False(t, b.Next(), "Next on last page")
	assert.Equal(t, 2, b.Snapshot().Page)

	require.True(t, b.Prev())
	assert.Equal(t, 1, b.Snapshot().Page)
}

func TestBrowser_SearchResetsToFirstPage(t *testing.T) {
	b := loadedBrowser(t, numberedUsers(20))
	require.True(t, b.Next())
	require.True(t, b.Next())
	require.Equal(t, 3, b.Snapshot().Page)

	b.Search("u1")
	snap := b.Snapshot()
	assert.Equal(t, 1, snap.Page)
	// U1, U10..U19
	assert.Equal(t, 11, snap.Matches)
	assert.Equal(t, 2, snap.TotalPages)

	require.True(t, b.Next())
	b.Search("u1")
	assert.Equal(t, 1, b.Snapshot().Page, "re-submitting the same term also resets")
}

func TestBrowser_NoMatchesHidesControls(t *testing.T) {
	b := loadedBrowser(t, numberedUsers(8))
	b.Search("zz")

	snap := b.Snapshot()
	assert.True(t, snap.Empty())
	assert.Equal(t, NoResultsMessage, snap.Message())
	assert.Empty(t, snap.Records)
	assert.False(t, snap.Controls.Visible)
	assert.Equal(t, 0, snap.TotalPages)
	assert.False(t, b.Next())
	assert.False(t, b.Prev())

	b.Search("")
	snap = b.Snapshot()
	assert.False(t, snap.Empty())
	assert.Len(t, snap.Records, DefaultPageSize)
	assert.True(t, snap.Controls.Visible)
}

func TestBrowser_EmptyCollection(t *testing.T) {
	b := loadedBrowser(t, []directory.User{})
	snap := b.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.True(t, snap.Empty())
	assert.Equal(t, NoResultsMessage, snap.Message())
	assert.False(t, snap.Controls.Visible)
}

func TestBrowser_FailIsTerminal(t *testing.T) {
	b := NewBrowser(DefaultPageSize)
	cause := errors.New("boom")
	require.True(t, b.Fail(cause))

	snap := b.Snapshot()
	assert.Equal(t, PhaseFailed, snap.Phase)
	assert.Equal(t, FetchFailureMessage, snap.Message())
	assert.ErrorIs(t, snap.Err, cause)
	assert.Empty(t, snap.Records)
	assert.False(t, snap.Controls.Visible)

	assert.False(t, b.Load(numberedUsers(3)), "Load after Fail")
	assert.False(t, b.Fail(errors.New("again")))
	assert.Equal(t, PhaseFailed, b.Phase())
	assert.ErrorIs(t, b.Snapshot().Err, cause)
}

func TestBrowser_LoadOnlyOnce(t *testing.T) {
	b := loadedBrowser(t, numberedUsers(2))
	assert.False(t, b.Load(numberedUsers(10)))
	assert.False(t, b.Fail(errors.New("late")))
	assert.Equal(t, 2, b.Snapshot().Total)
	assert.NoError(t, b.Snapshot().Err)
}

func TestBrowser_TermEnteredWhileLoadingAppliesAfterLoad(t *testing.T) {
	b := NewBrowser(DefaultPageSize)
	b.Search("u2")
	assert.Equal(t, LoadingMessage, b.Snapshot().Message())

	require.True(t, b.Load(numberedUsers(8)))
	snap := b.Snapshot()
	assert.Equal(t, "u2", snap.Term)
	assert.Equal(t, []string{"U2"}, firstNames(snap.Records))
}

func TestBrowser_NextUsesCurrentTerm(t *testing.T) {
	b := loadedBrowser(t, numberedUsers(20))
	// Narrow to a single page; Next must not move even though the full
	// collection spans four pages.
	b.Search("u2")
	assert.False(t, b.Next())
	assert.Equal(t, 1, b.Snapshot().Page)
}

func TestBrowser_SnapshotIsIndependent(t *testing.T) {
	users := numberedUsers(8)
	b := loadedBrowser(t, users)

	// Mutating the caller's slice after Load must not leak in.
	users[0].FirstName = "Changed"
	snap := b.Snapshot()
	assert.Equal(t, "U1", snap.Records[0].FirstName)

	// Nor may mutating a snapshot.
	snap.Records[1].FirstName = "Mutated"
	snap2 := b.Snapshot()
	assert.Equal(t, "U2", snap2.Records[1].FirstName)
}

func TestBrowser_PagesPartitionFilteredView(t *testing.T) {
	users := append(sampleUsers(), numberedUsers(15)...)
	for _, term := range []string{"", "e", "u1", "ter", "zz"} {
		b := loadedBrowser(t, users)
		b.Search(term)

		var seen []directory.User
		snap := b.Snapshot()
		for {
			require.LessOrEqual(t, len(snap.Records), DefaultPageSize)
			seen = append(seen, snap.Records...)
			if !b.Next() {
				break
			}
			snap = b.Snapshot()
		}
		want := Filter(users, term)
		if len(want) == 0 {
			assert.Empty(t, seen)
			continue
		}
		if diff := cmp.Diff(want, seen); diff != "" {
			t.Fatalf("term %q: pages do not partition the view (-want +got):\n%s", term, diff)
		}
	}
}
