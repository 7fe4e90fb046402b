package snow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(n int) *int { return &n }

func newTestReport(t *testing.T) *SnowReport {
	t.Helper()
	sr, err := NewSnowReport("")
	require.NoError(t, err)
	return sr
}

func mustDoc(t *testing.T, page string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))
	require.NoError(t, err)
	return doc
}

func TestParseOps(t *testing.T) {
	tests := []struct {
		name string
		html string
		want Ops
	}{
		{
			name: "nothing recognizable",
			html: `<html><body><p>Closed for the season</p></body></html>`,
			want: Ops{},
		},
		{
			name: "json-ld item count",
			html: `<html><head>
				<script type="application/ld+json">{"@type":"ItemList","numberOfItems":148}</script>
				</head><body></body></html>`,
			want: Ops{TrailsTotal: intPtr(148)},
		},
		{
			name: "json-ld list payload uses first integer count",
			html: `<script type="application/ld+json">[{"@type":"Place"},"x",{"numberOfItems":"12"},{"numberOfItems":97},{"numberOfItems":5}]</script>`,
			want: Ops{TrailsTotal: intPtr(97)},
		},
		{
			name: "json-ld non-integer counts are ignored",
			html: `<script type="application/ld+json">{"numberOfItems":12.5}</script>
				<script type="application/ld+json">{"numberOfItems":40}</script>`,
			want: Ops{TrailsTotal: intPtr(40)},
		},
		{
			name: "invalid json-ld is skipped",
			html: `<script type="application/ld+json">{not json</script>
				<script type="application/ld+json">{"numberOfItems":3} trailing</script>
				<script type="application/ld+json">{"numberOfItems":7}</script>`,
			want: Ops{TrailsTotal: intPtr(7)},
		},
		{
			name: "text stats split across elements",
			html: `<html><body>
				<div><span>Trails Open</span><span>87</span> / <span>195</span></div>
				<div><span>Lifts</span> <b>20/31</b></div>
				<div>Base Depth: <strong>54"</strong></div>
				</body></html>`,
			want: Ops{
				BaseDepthIn: intPtr(54),
				TrailsOpen:  intPtr(87),
				TrailsTotal: intPtr(195),
				LiftsOpen:   intPtr(20),
				LiftsTotal:  intPtr(31),
			},
		},
		{
			name: "text trails override json-ld total",
			html: `<script type="application/ld+json">{"numberOfItems":150}</script>
				<p>trails 10/120</p>`,
			want: Ops{TrailsOpen: intPtr(10), TrailsTotal: intPtr(120)},
		},
		{
			name: "script and style text is not scanned",
			html: `<script>var s = "Lifts 9/9";</script><style>.x{content:"Trails 1/2"}</style>
				<p>base depth 36 in</p>`,
			want: Ops{BaseDepthIn: intPtr(36)},
		},
		{
			name: "only three digits are captured",
			html: `<p>Base depth 1234 in</p>`,
			want: Ops{BaseDepthIn: intPtr(123)},
		},
		{
			name: "non-breaking spaces separate words",
			html: `<p>Trails&nbsp;Open&nbsp;12/30</p><p>Lifts 3&nbsp;/&nbsp;5</p><p>Base&nbsp;Depth&nbsp;48&nbsp;in</p>`,
			want: Ops{
				BaseDepthIn: intPtr(48),
				TrailsOpen:  intPtr(12),
				TrailsTotal: intPtr(30),
				LiftsOpen:   intPtr(3),
				LiftsTotal:  intPtr(5),
			},
		},
		{
			name: "unicode digits and spaces",
			html: "<p>Lifts\u2003\u0661\u0662/\uff12\uff10</p>",
			want: Ops{LiftsOpen: intPtr(12), LiftsTotal: intPtr(20)},
		},
	}

	sr := newTestReport(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := sr.ParseOps(strings.NewReader(tc.html))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseOpsRemoveSelectors(t *testing.T) {
	sr := newTestReport(t)
	sr.RemoveSelectors.Classes = []string{"promo"}
	sr.RemoveSelectors.ClassKeywords = []string{"^ad-"}

	page := `<body>
		<div class="promo">Lifts 1/1</div>
		<div class="ad-banner">Base depth 99</div>
		<div class="report">Lifts 5/12</div>
	</body>`

	got, err := sr.ParseOps(strings.NewReader(page))
	require.NoError(t, err)
	assert.Equal(t, Ops{LiftsOpen: intPtr(5), LiftsTotal: intPtr(12)}, got)
}

func TestPageTextJoinsTrimmedNodes(t *testing.T) {
	sr := newTestReport(t)
	doc := mustDoc(t, "<div>  Trails\n</div><div></div><span> 5 </span><!-- Lifts 1/1 -->")
	assert.Equal(t, "Trails 5", sr.pageText(doc))
}

func TestNormalizeRune(t *testing.T) {
	assert.Equal(t, ' ', normalizeRune('\u00a0'))
	assert.Equal(t, ' ', normalizeRune('\t'))
	assert.Equal(t, ' ', normalizeRune('\x1c'))
	assert.Equal(t, '7', normalizeRune('7'))
	assert.Equal(t, '3', normalizeRune('\u0663'))     // arabic-indic
	assert.Equal(t, '9', normalizeRune('\uff19'))     // fullwidth
	assert.Equal(t, '4', normalizeRune('\U0001D7DC')) // double-struck, inside a 50-digit run
	assert.Equal(t, 'x', normalizeRune('x'))
}

func TestContainsAnyKeyword(t *testing.T) {
	assert.True(t, containsAnyKeyword("ad-slot", []string{"^ad-"}))
	assert.True(t, containsAnyKeyword("footer-ad", []string{"-ad$"}))
	assert.True(t, containsAnyKeyword("newsletter-popup", []string{"popup"}))
	assert.False(t, containsAnyKeyword("header", []string{"^ad-", "-ad$", "popup"}))
}

func TestFetchOps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("User-Agent"), "Mozilla/5.0")
		assert.Equal(t, defaultBrowserAccept, r.Header.Get("Accept"))
		if r.URL.Path != "/colorado/vail/skireport" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`<p>Lifts Open 25/31</p>`))
	}))
	defer srv.Close()

	sr := newTestReport(t)

	got, err := sr.FetchOps(context.Background(), srv.URL+"/colorado/vail/skireport")
	require.NoError(t, err)
	assert.Equal(t, Ops{LiftsOpen: intPtr(25), LiftsTotal: intPtr(31)}, got)

	_, err = sr.FetchOps(context.Background(), srv.URL+"/missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
