package snow

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const cmPerInch = 2.54

type forecastResponse struct {
	Hourly struct {
		Time     []string   `json:"time"`
		Snowfall []*float64 `json:"snowfall"`
	} `json:"hourly"`
}

// FetchSnowfall은 Open-Meteo 시간별 강설량에서 최근 24/72시간 적설(인치)을 계산합니다.
// 데이터가 비어 있으면 둘 다 nil을 반환합니다.
func (sr *SnowReport) FetchSnowfall(ctx context.Context, lat, lon float64) (*Inches, *Inches, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("hourly", "snowfall")
	q.Set("past_days", strconv.Itoa(sr.OpenMeteo.PastDays))
	q.Set("forecast_days", strconv.Itoa(sr.OpenMeteo.ForecastDays))
	q.Set("timezone", "UTC")

	endpoint := strings.TrimRight(sr.OpenMeteo.BaseURL, "/") + "/v1/forecast?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("User-Agent", sr.OpenMeteo.UserAgent)

	resp, err := sr.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("open-meteo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, nil, fmt.Errorf("open-meteo: unexpected status %s", resp.Status)
	}

	var data forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, nil, fmt.Errorf("open-meteo decode: %w", err)
	}

	snow24, snow72 := summarizeSnowfall(data.Hourly.Time, data.Hourly.Snowfall)
	return snow24, snow72, nil
}

func summarizeSnowfall(times []string, snowfallCM []*float64) (*Inches, *Inches) {
	n := min(len(times), len(snowfallCM))
	if n == 0 {
		return nil, nil
	}

	last24 := snowfallCM[max(0, n-24):n]
	last72 := snowfallCM[max(0, n-72):n]

	return inchesOf(last24), inchesOf(last72)
}

// null 값은 합산에서 제외
func inchesOf(values []*float64) *Inches {
	var cm float64
	for _, v := range values {
		if v != nil {
			cm += *v
		}
	}
	in := roundTenth(cm / cmPerInch)
	return &in
}

// roundTenth는 이진 값을 그대로 소수 첫째 자리로 반올림합니다(짝수 반올림).
func roundTenth(x float64) Inches {
	v, err := strconv.ParseFloat(strconv.FormatFloat(x, 'f', 1, 64), 64)
	if err != nil {
		return Inches(x)
	}
	return Inches(v)
}

// Inches는 소수점 한 자리로 직렬화되는 적설량입니다.
type Inches float64

func (in Inches) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(in), 'f', 1, 64)), nil
}
