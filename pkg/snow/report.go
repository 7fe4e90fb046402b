package snow

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const (
	ReportSource = "Open-Meteo (modeled snowfall) + OnTheSnow (ops stats best-effort)"
	ResortNotes  = "Snowfall from Open-Meteo (modeled). Ops stats best-effort from OnTheSnow skireport."
)

type ResortReport struct {
	Name        string  `json:"name"`
	Region      string  `json:"region"`
	ElevationFt int     `json:"elevation_ft"`
	Snow24hIn   *Inches `json:"snow_24h_in"`
	Snow72hIn   *Inches `json:"snow_72h_in"`
	BaseDepthIn *int    `json:"base_depth_in"`
	TrailsOpen  *int    `json:"trails_open"`
	TrailsTotal *int    `json:"trails_total"`
	LiftsOpen   *int    `json:"lifts_open"`
	LiftsTotal  *int    `json:"lifts_total"`
	ReportURL   string  `json:"report_url"`
	WebcamsURL  string  `json:"webcams_url"`
	Notes       string  `json:"notes"`
}

type Report struct {
	UpdatedAt string         `json:"updated_at"`
	Source    string         `json:"source"`
	Resorts   []ResortReport `json:"resorts"`
}

// Build는 모든 리조트의 적설량과 운영 현황을 모아 보고서를 만듭니다.
// 적설량 조회가 하나라도 실패하면 전체가 실패하고, 운영 현황 실패는 nil 값으로 대체됩니다.
// 결과 순서는 리조트 목록 순서를 따릅니다.
func (sr *SnowReport) Build(ctx context.Context) (*Report, error) {
	results := make([]ResortReport, len(sr.Resorts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(sr.Workers, len(sr.Resorts))))

	for i, resort := range sr.Resorts {
		i, resort := i, resort
		g.Go(func() error {
			rr, err := sr.buildResort(gctx, resort)
			if err != nil {
				return fmt.Errorf("%s: %w", resort.Name, err)
			}
			results[i] = rr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Report{
		UpdatedAt: formatUpdatedAt(sr.now()),
		Source:    ReportSource,
		Resorts:   results,
	}, nil
}

func (sr *SnowReport) buildResort(ctx context.Context, r Resort) (ResortReport, error) {
	sr.logger.Debug("fetching snowfall", zap.String("resort", r.Name))
	snow24, snow72, err := sr.FetchSnowfall(ctx, r.Lat, r.Lon)
	if err != nil {
		return ResortReport{}, err
	}

	ops, err := sr.FetchOps(ctx, r.OnTheSnowURL)
	if err != nil {
		sr.logger.Warn("ops stats unavailable",
			zap.String("resort", r.Name),
			zap.String("url", r.OnTheSnowURL),
			zap.Error(err))
		ops = Ops{}
	}

	sr.logger.Info("resort updated",
		zap.String("resort", r.Name),
		zap.Any("snow_24h_in", snow24),
		zap.Any("snow_72h_in", snow72))

	return ResortReport{
		Name:        r.Name,
		Region:      r.Region,
		ElevationFt: r.ElevationFt,
		Snow24hIn:   snow24,
		Snow72hIn:   snow72,
		BaseDepthIn: ops.BaseDepthIn,
		TrailsOpen:  ops.TrailsOpen,
		TrailsTotal: ops.TrailsTotal,
		LiftsOpen:   ops.LiftsOpen,
		LiftsTotal:  ops.LiftsTotal,
		ReportURL:   r.ReportURL,
		WebcamsURL:  r.WebcamsURL,
		Notes:       ResortNotes,
	}, nil
}

// formatUpdatedAt은 UTC ISO-8601 문자열을 만듭니다. 마이크로초가 0이면 생략합니다.
func formatUpdatedAt(t time.Time) string {
	t = t.UTC().Truncate(time.Microsecond)
	if t.Nanosecond() == 0 {
		return t.Format("2006-01-02T15:04:05Z")
	}
	return t.Format("2006-01-02T15:04:05.000000Z")
}

// WriteReport는 보고서를 들여쓰기된 JSON으로 path에 기록합니다.
// 임시 파일에 쓴 뒤 rename하므로 읽는 쪽은 항상 완전한 파일을 봅니다.
func WriteReport(path string, report *Report) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		tmp.Close()
		return fmt.Errorf("encode report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", path, err)
	}
	return &report, nil
}
