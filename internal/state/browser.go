package state

import (
	"fmt"

	"github.com/five82/roster/internal/directory"
)

// DefaultPageSize is the number of cards per page.
const DefaultPageSize = 6

// Messages shown in place of the card grid.
const (
	LoadingMessage      = "Loading users..."
	FetchFailureMessage = "Failed to fetch user data."
	NoResultsMessage    = "User not found. Please try again."
)

// Phase tracks where the single startup fetch stands.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Controls describes the pagination controls for the current view.
type Controls struct {
	Visible     bool
	Page        int
	TotalPages  int
	PrevEnabled bool
	NextEnabled bool
}

// Label returns "Page X of Y".
func (c Controls) Label() string {
	return fmt.Sprintf("Page %d of %d", c.Page, c.TotalPages)
}

// Snapshot is a read-only projection of the browser for rendering.
type Snapshot struct {
	Phase      Phase
	Term       string
	Records    []directory.User // current page only
	Page       int
	TotalPages int
	Matches    int // size of the filtered view
	Total      int // size of the collection
	Controls   Controls
	Err        error
}

// Empty reports a successful load whose filtered view has no records.
func (s Snapshot) Empty() bool {
	return s.Phase == PhaseReady && s.Matches == 0
}

// Message returns the text to show instead of cards, or "" when cards
// should be shown.
func (s Snapshot) Message() string {
	switch {
	case s.Phase == PhaseLoading:
		return LoadingMessage
	case s.Phase == PhaseFailed:
		return FetchFailureMessage
	case s.Empty():
		return NoResultsMessage
	default:
		return ""
	}
}

// Browser owns the collection, the search term and the page index. All
// mutation goes through its methods so the page is always reset when the
// term changes and never points past the last page.
//
// Browser is not safe for concurrent use. The UI drives it from Bubble
// Tea's update loop only.
type Browser struct {
	pageSize int
	phase    Phase
	users    []directory.User
	term     string
	page     int
	err      error
}

// NewBrowser returns a Browser in the loading phase. Non-positive page
// sizes fall back to DefaultPageSize.
func NewBrowser(pageSize int) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Browser{pageSize: pageSize, page: 1}
}

// PageSize returns the fixed page size.
func (b *Browser) PageSize() int {
	return b.pageSize
}

// Phase returns the current fetch phase.
func (b *Browser) Phase() Phase {
	return b.phase
}

// Term returns the raw search term as last entered.
func (b *Browser) Term() string {
	return b.term
}

// Load installs the fetched collection. It only takes effect while
// loading; the collection is fetched once per session. The slice is copied
// so later changes by the caller are not observed.
func (b *Browser) Load(users []directory.User) bool {
	if b.phase != PhaseLoading {
		return false
	}
	b.users = cloneUsers(users)
	b.phase = PhaseReady
	b.page = 1
	return true
}

// Fail records a fetch failure. Like Load it only applies while loading.
func (b *Browser) Fail(err error) bool {
	if b.phase != PhaseLoading {
		return false
	}
	b.users = nil
	b.err = err
	b.phase = PhaseFailed
	return true
}

// Search sets the term and resets to the first page. Re-submitting the
// current term also resets.
func (b *Browser) Search(term string) {
	b.term = term
	b.page = 1
}

// Next advances one page when not on the last page.
func (b *Browser) Next() bool {
	if b.page >= b.totalPages() {
		return false
	}
	b.page++
	return true
}

// Prev goes back one page when not on the first.
func (b *Browser) Prev() bool {
	if b.page <= 1 {
		return false
	}
	b.page--
	return true
}

// view recomputes the filtered view from the current term. It is never
// cached: controls and pages always reflect the search box as it is now.
func (b *Browser) view() []directory.User {
	if b.phase != PhaseReady {
		return nil
	}
	return Filter(b.users, b.term)
}

func (b *Browser) totalPages() int {
	return TotalPages(len(b.view()), b.pageSize)
}

// Snapshot projects the current state for rendering.
func (b *Browser) Snapshot() Snapshot {
	view := b.view()
	total := TotalPages(len(view), b.pageSize)
	snap := Snapshot{
		Phase:      b.phase,
		Term:       b.term,
		Page:       b.page,
		TotalPages: total,
		Matches:    len(view),
		Total:      len(b.users),
		Err:        b.err,
	}
	if total == 0 {
		return snap
	}
	snap.Records = cloneUsers(Page(view, b.page, b.pageSize))
	snap.Controls = Controls{
		Visible:     true,
		Page:        b.page,
		TotalPages:  total,
		PrevEnabled: b.page > 1,
		NextEnabled: b.page < total,
	}
	return snap
}

func cloneUsers(users []directory.User) []directory.User {
	if len(users) == 0 {
		return nil
	}
	dup := make([]directory.User, len(users))
	copy(dup, users)
	return dup
}
