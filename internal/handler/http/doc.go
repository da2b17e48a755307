// Package http implements the REST transport of the post board.
//
// It exposes route wiring, request handlers and middleware. Request tracing,
// access logging, metrics, request-scoped store connections, compression and
// bearer authentication are handled here before requests are delegated to
// the service layer. Failures are written as {"detail": "<message>"}.
package http
