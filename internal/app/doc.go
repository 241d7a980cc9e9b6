// Package app is roster's composition root.
//
// # Startup
//
//	Run(ctx, opts)
//	  ├─> prefs.Load          session flag; ErrNotLoggedIn stops here
//	  ├─> config.Load         file, ROSTER_* env, then flag overrides
//	  ├─> logging.New         JSON file logger tagged with a session id
//	  ├─> directory.NewClient HTTP client for the users endpoint
//	  └─> ui.Run              Bubble Tea program (blocks)
//
// The session check comes first so a logged-out run creates no log file and
// makes no request. Login and Logout only flip the logged_in flag in the
// preferences file; there is no credential check.
//
// # Error Handling
//
// Returned from Run:
//   - ErrNotLoggedIn
//   - invalid config file or environment values
//   - an endpoint that is not an http(s) URL
//   - Bubble Tea failing to start
//
// A failed fetch is not an error here. The UI shows it in place of the
// listing and the program keeps running until the user quits.
//
// TailLogs backs `roster logs`. It resolves the log file the same way Run
// does.
package app
