// Package web serves the benefits portal over HTTP.
//
// Pages are rendered on the server with html/template and need no
// JavaScript: the catalog is a GET form, each wizard step is a POST form.
// The same operations are exposed as a small JSON API under /api. The
// wizard session ID travels in the portal_session cookie; all wizard state
// lives in the session store behind the application service.
package web
