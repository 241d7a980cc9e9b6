// Package directory provides the HTTP client for the remote users endpoint.
//
// # Overview
//
// Roster reads its whole data set with a single request at startup. This
// package owns that request: it builds the URL, sets headers, decodes the
// JSON body, and projects each entry into a User value the rest of the
// program can treat as immutable.
//
// # Architecture
//
//   - client.go: Client, the Fetcher interface, and request handling
//   - types.go: wire payloads and the User record
//
// # Client Usage
//
//	client, err := directory.NewClient("https://dummyjson.com/users", logger)
//	if err != nil {
//		return fmt.Errorf("init directory client: %w", err)
//	}
//
//	users, err := client.FetchAll(ctx)
//	if err != nil {
//		// errors.Is(err, directory.ErrFetchFailed) is always true here
//	}
//
// # Wire Format
//
// The endpoint returns:
//
//	{
//	  "users": [
//	    {"firstName": "...", "lastName": "...", "email": "...", "image": "...",
//	     "company": {"name": "..."}, "address": {"city": "...", "state": "..."}}
//	  ],
//	  "total": 208, "skip": 0, "limit": 30
//	}
//
// Unknown fields are ignored. A body without a "users" array is a failure;
// an empty array is a valid, empty collection.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json
//   - Include User-Agent: roster/0.1
//   - Have a 10-second timeout
//
// # Error Handling
//
// Transport errors, non-2xx statuses, malformed JSON and a missing users
// array are reported the same way: the returned error wraps ErrFetchFailed
// and describes the underlying cause. Callers should not retry; the browser
// shows a static failure message for the rest of the session.
//
// # Testing
//
// Code that needs users should depend on Fetcher rather than *Client. Tests
// for the client itself use httptest servers.
package directory
