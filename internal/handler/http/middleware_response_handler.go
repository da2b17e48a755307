// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates [http.ResponseWriter] to record the status code
// and the number of body bytes for the access log.
//
// WriteHeader is forwarded to the underlying writer exactly once; later calls
// are ignored, as the [http.ResponseWriter] contract requires.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until WriteHeader (or an implicit one via Write) is called.
	status int

	wroteHeader bool

	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly writes a 200 header first, like the standard library.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// Unwrap lets [http.ResponseController] reach the underlying writer.
func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
