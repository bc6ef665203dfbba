package dataset

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	perr "wordtrends/internal/platform/errors"
)

// Opener returns a reader for a source string
type Opener interface {
	Open(ctx context.Context, src string) (io.ReadCloser, error)
}

// SourceOpener opens http(s) URLs with Client and everything else from disk
type SourceOpener struct {
	Client    *http.Client
	UserAgent string
}

// NewSourceOpener builds an opener whose http client gives up after timeout
// 0 means no client timeout; the context still applies
func NewSourceOpener(timeout time.Duration) *SourceOpener {
	return &SourceOpener{
		Client:    &http.Client{Timeout: timeout},
		UserAgent: "wordtrends",
	}
}

// Open implements Opener
// a source ending in .gz is decompressed on the fly
func (o *SourceOpener) Open(ctx context.Context, src string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if isRemote(src) {
		rc, err = o.openHTTP(ctx, src)
	} else {
		rc, err = openFile(strings.TrimPrefix(src, "file://"))
	}
	if err != nil || !strings.HasSuffix(strings.ToLower(src), ".gz") {
		return rc, err
	}
	return newGzipReader(src, rc)
}

func (o *SourceOpener) openHTTP(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeSource, "source: bad url %s", url)
	}
	if o.UserAgent != "" {
		req.Header.Set("User-Agent", o.UserAgent)
	}
	req.Header.Set("Accept", "text/csv, text/plain;q=0.9, */*;q=0.1")

	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		code := perr.ErrorCodeSource
		if perr.IsTransient(err) {
			code = perr.ErrorCodeUnavailable
		}
		return nil, perr.Wrapf(err, code, "source: GET %s", url)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, perr.FromStatus(url, resp.StatusCode)
	}
	return resp.Body, nil
}

func openFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "source: %s does not exist", path)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeSource, "source: open %s", path)
	}
	return f, nil
}

// MemOpener serves sources from memory keyed by the source string
type MemOpener map[string][]byte

// Open implements Opener
func (o MemOpener) Open(_ context.Context, src string) (io.ReadCloser, error) {
	b, ok := o[src]
	if !ok {
		return nil, perr.NotFoundf("source: %s does not exist", src)
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

// gzipReader closes the decompressor and the underlying source together
type gzipReader struct {
	*gzip.Reader
	src io.ReadCloser
}

func newGzipReader(name string, rc io.ReadCloser) (io.ReadCloser, error) {
	gz, err := gzip.NewReader(rc)
	if err != nil {
		_ = rc.Close()
		return nil, perr.Wrapf(err, perr.ErrorCodeSource, "source: %s is not gzip", name)
	}
	return &gzipReader{Reader: gz, src: rc}, nil
}

func (g *gzipReader) Close() error {
	first := g.Reader.Close()
	if err := g.src.Close(); err != nil && first == nil {
		first = err
	}
	return first
}
