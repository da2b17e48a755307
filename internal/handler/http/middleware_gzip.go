package http

import (
	"compress/gzip"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-post-board/internal/service"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipRequest transparently decompresses request bodies sent with
// "Content-Encoding: gzip". Response compression is left to chi's Compress.
func withGZipRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(r.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			writeError(w, r, fmt.Errorf("%w: invalid gzip data: %w", service.ErrInvalidDataProvided, err))
			return
		}

		r.Body = &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
			},
		}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
		w.OnClose = nil
	}
	return nil
}
