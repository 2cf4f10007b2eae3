package linkedin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/synapse-hq/synapse/pkg/cache"
)

// rewriteTransport sends every request to the test server while keeping the
// original path.
type rewriteTransport struct {
	target *url.URL
}

func (t rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())
	out.URL.Scheme = t.target.Scheme
	out.URL.Host = t.target.Host
	return http.DefaultTransport.RoundTrip(out)
}

func newTestValidator(t *testing.T, h http.HandlerFunc, c cache.Cache) *Validator {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	target, err := url.Parse(srv.URL)
	require.NoError(t, err)
	client := &http.Client{Transport: rewriteTransport{target: target}, Timeout: 2 * time.Second}
	return NewValidator(client, c, time.Minute, nil)
}

func TestCheckShape(t *testing.T) {
	cases := []struct {
		url  string
		want error
	}{
		{"https://www.linkedin.com/in/jane-doe", nil},
		{"https://linkedin.com/in/jane-doe/", nil},
		{"http://uk.LinkedIn.com/in/j%C3%A9r%C3%B4me_x.1", nil},
		{"https://www.linkedin.com/IN/jane-doe", nil},
		{"not a url", ErrMalformedURL},
		{"", ErrMalformedURL},
		{"ftp://linkedin.com/in/jane", ErrMalformedURL},
		{"https://example.com/in/jane", ErrNotProfileURL},
		{"https://notlinkedin.com/in/jane", ErrNotProfileURL},
		{"https://www.linkedin.com/company/acme", ErrNotProfileURL},
		{"https://www.linkedin.com/in/", ErrNotProfileURL},
		{"https://www.linkedin.com/in/jane/details", ErrNotProfileURL},
	}
	for _, tc := range cases {
		t.Run(tc.url, func(t *testing.T) {
			err := CheckShape(tc.url)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateUsesOGTitle(t *testing.T) {
	var gotUA string
	v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`<html><head>
			<title>Other Name | LinkedIn</title>
			<meta property="og:title" content="Jane Doe - Game Designer - Acme | LinkedIn">
		</head><body></body></html>`))
	}, nil)

	res, err := v.Validate(context.Background(), "https://www.linkedin.com/in/jane-doe")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "Jane Doe", res.Name)
	assert.Contains(t, gotUA, "SynapseBot")
}

func TestValidateFallsBackToTitle(t *testing.T) {
	v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>John Smith | LinkedIn</title></head></html>`))
	}, nil)

	res, err := v.Validate(context.Background(), "https://www.linkedin.com/in/jsmith")
	require.NoError(t, err)
	assert.Equal(t, Result{Valid: true, Name: "John Smith"}, res)
}

func TestValidateFallsBackToSlug(t *testing.T) {
	v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, nil)

	res, err := v.Validate(context.Background(), "https://www.linkedin.com/in/mary-ann_o%27neil/")
	require.NoError(t, err)
	assert.Equal(t, Result{Valid: true, Name: "Mary Ann O'neil"}, res)
}

func TestValidateRejectsBadShapeWithoutFetching(t *testing.T) {
	var calls atomic.Int32
	v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}, nil)

	res, err := v.Validate(context.Background(), "https://example.com/in/jane")
	require.NoError(t, err)
	assert.False(t, res.Valid)
	assert.Equal(t, ReasonNotProfile, res.Reason)

	res, err = v.Validate(context.Background(), "::::")
	require.NoError(t, err)
	assert.Equal(t, ReasonInvalidURL, res.Reason)
	assert.Zero(t, calls.Load())
}

func TestValidateCachesResult(t *testing.T) {
	var calls atomic.Int32
	v := newTestValidator(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`<title>Cached Person - LinkedIn</title>`))
	}, cache.NewMemory())

	for i := 0; i < 3; i++ {
		res, err := v.Validate(context.Background(), "https://www.linkedin.com/in/cached")
		require.NoError(t, err)
		assert.Equal(t, "Cached Person", res.Name)
	}
	assert.EqualValues(t, 1, calls.Load())
}

func TestExtractNameSkipsEmptyOGTitle(t *testing.T) {
	page := `<html><head>
<meta property="og:title" content="- | LinkedIn">
<title>Jane Doe - Engineer</title>
</head></html>`
	name, err := extractName(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", name)
}

func TestExtractNameEmpty(t *testing.T) {
	name, err := extractName(strings.NewReader(`<html><body>nothing</body></html>`))
	require.NoError(t, err)
	assert.Empty(t, name)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Ada Lovelace", titleCase("ADA  lovelace"))
	assert.Equal(t, "", titleCase("   "))
}
