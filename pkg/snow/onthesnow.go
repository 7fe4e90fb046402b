package snow

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Ops는 리조트 운영 현황입니다. 찾지 못한 값은 nil로 남습니다.
type Ops struct {
	BaseDepthIn *int `json:"base_depth_in"`
	TrailsOpen  *int `json:"trails_open"`
	TrailsTotal *int `json:"trails_total"`
	LiftsOpen   *int `json:"lifts_open"`
	LiftsTotal  *int `json:"lifts_total"`
}

var (
	reTrails    = regexp.MustCompile(`(?i)Trails\s*(Open)?\s*(\d{1,3})\s*/\s*(\d{1,3})`)
	reLifts     = regexp.MustCompile(`(?i)Lifts\s*(Open)?\s*(\d{1,3})\s*/\s*(\d{1,3})`)
	reBaseDepth = regexp.MustCompile(`(?i)base\s*depth[^\d]*(\d{1,3})\s*(in|")?`)
)

// FetchOps는 OnTheSnow skireport 페이지를 받아 운영 현황을 추출합니다.
func (sr *SnowReport) FetchOps(ctx context.Context, pageURL string) (Ops, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return Ops{}, err
	}
	req.Header.Set("User-Agent", sr.OnTheSnow.UserAgent)
	req.Header.Set("Accept", sr.OnTheSnow.Accept)

	resp, err := sr.client.Do(req)
	if err != nil {
		return Ops{}, fmt.Errorf("onthesnow request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Ops{}, fmt.Errorf("onthesnow: unexpected status %s", resp.Status)
	}

	return sr.ParseOps(resp.Body)
}

// ParseOps는 JSON-LD 블록을 먼저 보고, 그 다음 본문 텍스트 패턴으로 값을 채웁니다.
// 텍스트에서 찾은 값이 JSON-LD 값보다 우선합니다.
func (sr *SnowReport) ParseOps(r io.Reader) (Ops, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return Ops{}, err
	}

	var ops Ops

	// 1) JSON-LD
	doc.Find(`script[type="application/ld+json"]`).Each(func(i int, sel *goquery.Selection) {
		if ops.TrailsTotal != nil {
			return
		}
		if n, ok := jsonLDItemCount(sel.Text()); ok {
			ops.TrailsTotal = &n
		}
	})

	// 2) 텍스트 패턴
	text := sr.pageText(doc)

	if m := reTrails.FindStringSubmatch(text); m != nil {
		ops.TrailsOpen = atoiPtr(m[2])
		ops.TrailsTotal = atoiPtr(m[3])
	}

	if m := reLifts.FindStringSubmatch(text); m != nil {
		ops.LiftsOpen = atoiPtr(m[2])
		ops.LiftsTotal = atoiPtr(m[3])
	}

	if bd := parseBaseDepth(text); bd != nil {
		ops.BaseDepthIn = bd
	}

	return ops, nil
}

func parseBaseDepth(text string) *int {
	if m := reBaseDepth.FindStringSubmatch(text); m != nil {
		return atoiPtr(m[1])
	}
	return nil
}

// jsonLDItemCount는 JSON-LD 페이로드(객체 또는 객체 배열)에서
// 처음 나오는 정수 numberOfItems를 찾습니다.
func jsonLDItemCount(raw string) (int, bool) {
	dec := json.NewDecoder(strings.NewReader(strings.TrimSpace(raw)))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return 0, false
	}
	// 뒤에 남은 데이터가 있으면 잘못된 JSON
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return 0, false
	}

	items, ok := payload.([]any)
	if !ok {
		items = []any{payload}
	}

	for _, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			continue
		}
		num, ok := obj["numberOfItems"].(json.Number)
		if !ok || strings.ContainsAny(num.String(), ".eE") {
			continue
		}
		n, err := num.Int64()
		if err != nil {
			continue
		}
		return int(n), true
	}
	return 0, false
}

// pageText는 제거 대상 요소를 걷어낸 뒤 텍스트 노드를 공백 하나로 이어 붙입니다.
func (sr *SnowReport) pageText(doc *goquery.Document) string {
	removeTagSet := make(map[string]struct{})
	for _, tag := range sr.RemoveSelectors.Tags {
		removeTagSet[strings.ToLower(tag)] = struct{}{}
	}

	removeClassSet := make(map[string]struct{})
	for _, class := range sr.RemoveSelectors.Classes {
		removeClassSet[strings.ToLower(class)] = struct{}{}
	}

	doc.Find("*").Each(func(i int, sel *goquery.Selection) {
		nodeName := goquery.NodeName(sel)

		if _, removeTag := removeTagSet[strings.ToLower(nodeName)]; removeTag {
			sel.Remove()
			return
		}

		if classAttr, exists := sel.Attr("class"); exists && nodeName != "body" {
			for _, className := range strings.Fields(classAttr) {
				lowerClass := strings.ToLower(className)
				if _, removeExactClass := removeClassSet[lowerClass]; removeExactClass ||
					containsAnyKeyword(lowerClass, sr.RemoveSelectors.ClassKeywords) {
					sel.Remove()
					return
				}
			}
		}
	})

	var parts []string
	for _, n := range doc.Nodes {
		collectText(n, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimFunc(n.Data, isTextSpace); t != "" {
			*parts = append(*parts, strings.Map(normalizeRune, t))
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}

// isTextSpace는 &nbsp; 같은 유니코드 공백과 정보 구분 문자(U+001C~U+001F)를 공백으로 봅니다.
func isTextSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// normalizeRune은 공백을 ' '로, 유니코드 십진 숫자를 ASCII 숫자로 바꿉니다.
// 정규식의 \s, \d가 ASCII만 인식하기 때문입니다.
func normalizeRune(r rune) rune {
	switch {
	case r < utf8.RuneSelf:
		if isTextSpace(r) {
			return ' '
		}
		return r
	case isTextSpace(r):
		return ' '
	case unicode.Is(unicode.Nd, r):
		// Nd 문자는 0~9가 연속된 10개 단위로 배치되어 있음
		start := r
		for unicode.Is(unicode.Nd, start-1) {
			start--
		}
		return '0' + (r-start)%10
	}
	return r
}

// 클래스 확인 함수 (^접두사, 접미사$, 그 외 부분 일치)
func containsAnyKeyword(className string, keywords []string) bool {
	for _, keyword := range keywords {
		switch {
		case strings.HasPrefix(keyword, "^"):
			if strings.HasPrefix(className, strings.TrimPrefix(keyword, "^")) {
				return true
			}
		case strings.HasSuffix(keyword, "$"):
			if strings.HasSuffix(className, strings.TrimSuffix(keyword, "$")) {
				return true
			}
		default:
			if strings.Contains(className, keyword) {
				return true
			}
		}
	}
	return false
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
