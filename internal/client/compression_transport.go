package client

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
)

// acceptedEncodings is advertised on every request the caller did not set Accept-Encoding on.
const acceptedEncodings = "gzip, br, zstd"

type decoderFunc func(body io.Reader) (io.ReadCloser, error)

var decoders = map[string]decoderFunc{
	"gzip": func(body io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(body)
	},
	"br": func(body io.Reader) (io.ReadCloser, error) {
		return io.NopCloser(brotli.NewReader(body)), nil
	},
	"zstd": func(body io.Reader) (io.ReadCloser, error) {
		zr, err := zstd.NewReader(body)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	},
}

// compressionTransport negotiates gzip, brotli or zstd with the upstream and
// hands the caller a decoded body. Requests that already carry an
// Accept-Encoding header are passed through untouched, body included.
type compressionTransport struct {
	next http.RoundTripper
}

func newCompressionTransport(next http.RoundTripper) http.RoundTripper {
	if next == nil {
		next = http.DefaultTransport
	}
	return &compressionTransport{next: next}
}

func (t *compressionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("Accept-Encoding") != "" {
		return t.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("Accept-Encoding", acceptedEncodings)

	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		return resp, nil
	}

	decode, ok := decoders[outermostEncoding(resp.Header.Get("Content-Encoding"))]
	if !ok {
		return resp, nil
	}

	reader, err := decode(resp.Body)
	if err != nil {
		resp.Body.Close()
		return nil, err
	}

	resp.Body = &decodedBody{decoder: reader, raw: resp.Body}
	resp.Header.Del("Content-Encoding")
	resp.Header.Del("Content-Length")
	resp.ContentLength = -1
	resp.Uncompressed = true

	return resp, nil
}

// decodedBody closes both the decoder and the raw network body.
type decodedBody struct {
	decoder io.ReadCloser
	raw     io.ReadCloser
}

func (b *decodedBody) Read(p []byte) (int, error) {
	return b.decoder.Read(p)
}

func (b *decodedBody) Close() error {
	decErr := b.decoder.Close()
	rawErr := b.raw.Close()
	if decErr != nil {
		return decErr
	}
	return rawErr
}

// outermostEncoding returns the last coding of a Content-Encoding list, the
// one applied last by the server, lower-cased. "gzip, br" yields "br".
func outermostEncoding(header string) string {
	parts := strings.Split(header, ",")
	return strings.ToLower(strings.TrimSpace(parts[len(parts)-1]))
}
