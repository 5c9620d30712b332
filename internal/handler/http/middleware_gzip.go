package http

import (
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-rest-kit/internal/fault"
	"github.com/klauspost/compress/gzip"
)

var gzipWriterPool = sync.Pool{
	New: func() any {
		w := gzip.NewWriter(nil)
		return w
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip decompresses gzip request bodies and compresses responses for
// clients that accept gzip.
func (h *Handler) withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		acceptEncoding := req.Header.Get("Accept-Encoding")
		supportsGzip := strings.Contains(acceptEncoding, "gzip")

		contentEncoding := req.Header.Get("Content-Encoding")
		isGzipRequest := strings.Contains(contentEncoding, "gzip")

		if isGzipRequest && req.Body != nil {
			gzipReader := gzipReaderPool.Get().(*gzip.Reader)
			if err := gzipReader.Reset(req.Body); err != nil {
				gzipReaderPool.Put(gzipReader)
				h.errors.Render(w, req, fault.BadRequest("Invalid gzip data.").WithErr(err))
				return
			}

			req.Body = &wrappedReadCloser{
				Reader: gzipReader,
				OnClose: func() {
					gzipReader.Close()
					gzipReaderPool.Put(gzipReader)
				},
			}
			req.Header.Del("Content-Encoding")
		}

		w.Header().Add("Vary", "Accept-Encoding")
		if !supportsGzip {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)

		gzipRW := &gzipResponseWriter{
			ResponseWriter: w,
			gzipWriter:     gzipWriter,
		}

		gzipWriter.Reset(w)

		next.ServeHTTP(gzipRW, req)
		gzipRW.finish()

		gzipWriter.Reset(io.Discard)
		gzipWriterPool.Put(gzipWriter)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

// gzipResponseWriter holds the status back until the first non-empty
// write, so bodiless responses go out without Content-Encoding.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter  *gzip.Writer
	status      int
	headerSent  bool
	compressing bool
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	if w.status == 0 {
		w.status = statusCode
	}
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	if len(data) == 0 {
		return 0, nil
	}
	if !w.headerSent {
		w.sendHeader(w.status != http.StatusNoContent && w.status != http.StatusNotModified)
	}
	if !w.compressing {
		return w.ResponseWriter.Write(data)
	}
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) sendHeader(compress bool) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	w.compressing = compress
	if compress {
		w.Header().Set("Content-Encoding", "gzip")
		w.Header().Del("Content-Length")
	}
	w.headerSent = true
	w.ResponseWriter.WriteHeader(w.status)
}

// finish sends a held back header and closes the gzip stream.
func (w *gzipResponseWriter) finish() {
	if !w.headerSent {
		w.sendHeader(false)
	}
	if w.compressing {
		w.gzipWriter.Close()
	}
}
