// Package notion implements the page store boundary against the Notion API.
//
// The Client interface is the only contract the rest of the application
// depends on: verify a database, list its pages, archive a page, create a
// page. The HTTP implementation carries the bearer credential and the fixed
// Notion-Version header on every request and treats any 2xx response as
// success.
//
// Verification failures surface as *AuthError so callers can distinguish a
// bad credential or missing database from a transient API failure (*APIError).
package notion
