// Package state holds the browsing logic for Roster: filtering, pagination
// and the controller that ties them to a search term and page index.
//
// # Overview
//
// Everything here is synchronous and free of I/O. The UI feeds user events
// into a Browser and renders whatever Snapshot says; it never touches the
// collection, the term or the page index directly.
//
// # Core Types
//
// Filter:
//   - Pure function over a user slice and a search term
//   - Trims and case-folds the term; blank means "no filter"
//   - Matches first or last name by substring, keeps input order
//
// TotalPages / Page:
//   - ceil(n/size), 0 for an empty view
//   - 1-based page slicing, clipped to the view
//
// Browser:
//   - Owns the collection (loaded once), the term, and the page index
//   - Search always resets the page to 1
//   - Next/Prev are no-ops at the boundaries
//
// Snapshot:
//   - Immutable projection for one render
//   - Current page records are copied
//   - Controls carry the Prev/Next enabled flags and the "Page X of Y" label
//
// # Phases
//
//	Loading ──Load(users)──→ Ready
//	   │
//	   └──Fail(err)──→ Failed
//
// Load and Fail are ignored outside the loading phase. A failed session
// stays failed; there is no retry.
//
// # Sequencing
//
// The filtered view is never cached. Snapshot, Next and Prev all recompute
// it from the current term, so the page count used to enable Next is always
// the one the user is looking at, even while the term changes on every
// keystroke.
//
// # Rendering States
//
// Snapshot.Message distinguishes the three non-card states:
//
//   - Loading: LoadingMessage
//   - Failed: FetchFailureMessage
//   - Ready with no matches: NoResultsMessage, controls hidden
package state
