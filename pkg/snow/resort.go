package snow

import "fmt"

type Resort struct {
	Name         string  `yaml:"name"`
	Region       string  `yaml:"region"`
	ElevationFt  int     `yaml:"elevation_ft"`
	Lat          float64 `yaml:"lat"`
	Lon          float64 `yaml:"lon"`
	ReportURL    string  `yaml:"report_url"`
	WebcamsURL   string  `yaml:"webcams_url"`
	OnTheSnowURL string  `yaml:"onthesnow_url"`
}

// Validate는 좌표와 이름이 유효한지 검사합니다.
func (r Resort) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("resort name is empty")
	}
	if r.Lat < -90 || r.Lat > 90 {
		return fmt.Errorf("resort %q: latitude %v out of range", r.Name, r.Lat)
	}
	if r.Lon < -180 || r.Lon > 180 {
		return fmt.Errorf("resort %q: longitude %v out of range", r.Name, r.Lon)
	}
	return nil
}

// DefaultResorts는 설정 파일에 리조트 목록이 없을 때 사용하는 기본 목록입니다.
func DefaultResorts() []Resort {
	return []Resort{
		// Tahoe
		{
			Name:         "Palisades Tahoe",
			Region:       "Olympic Valley",
			ElevationFt:  6200,
			Lat:          39.1973,
			Lon:          -120.2358,
			ReportURL:    "https://www.palisadestahoe.com/mountain-information/snow-and-weather-report",
			WebcamsURL:   "https://www.palisadestahoe.com/mountain-information/webcams",
			OnTheSnowURL: "https://www.onthesnow.com/california/palisades-tahoe/skireport",
		},
		{
			Name:         "Heavenly",
			Region:       "South Lake Tahoe",
			ElevationFt:  10067,
			Lat:          38.9351,
			Lon:          -119.9390,
			ReportURL:    "https://www.skiheavenly.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.skiheavenly.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/california/heavenly-mountain-resort/skireport",
		},
		{
			Name:         "Northstar California",
			Region:       "Truckee",
			ElevationFt:  8610,
			Lat:          39.2746,
			Lon:          -120.1210,
			ReportURL:    "https://www.northstarcalifornia.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.northstarcalifornia.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/california/northstar-california/skireport",
		},
		{
			Name:         "Kirkwood",
			Region:       "Kirkwood",
			ElevationFt:  9800,
			Lat:          38.6846,
			Lon:          -120.0650,
			ReportURL:    "https://www.kirkwood.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.kirkwood.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/california/kirkwood/skireport",
		},

		// Colorado
		{
			Name:         "Vail",
			Region:       "Vail, CO",
			ElevationFt:  11570,
			Lat:          39.6403,
			Lon:          -106.3742,
			ReportURL:    "https://www.vail.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.vail.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/vail/skireport",
		},
		{
			Name:         "Beaver Creek",
			Region:       "Beaver Creek, CO",
			ElevationFt:  11440,
			Lat:          39.6042,
			Lon:          -106.5165,
			ReportURL:    "https://www.beavercreek.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.beavercreek.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/beaver-creek/skireport",
		},
		{
			Name:         "Breckenridge",
			Region:       "Breckenridge, CO",
			ElevationFt:  12998,
			Lat:          39.4817,
			Lon:          -106.0384,
			ReportURL:    "https://www.breckenridge.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.breckenridge.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/breckenridge/skireport",
		},
		{
			Name:         "Keystone",
			Region:       "Keystone, CO",
			ElevationFt:  12408,
			Lat:          39.5792,
			Lon:          -105.9347,
			ReportURL:    "https://www.keystoneresort.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.keystoneresort.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/keystone/skireport",
		},
		{
			Name:         "Arapahoe Basin",
			Region:       "Dillon, CO",
			ElevationFt:  13050,
			Lat:          39.6423,
			Lon:          -105.8717,
			ReportURL:    "https://www.arapahoebasin.com/snow-report/",
			WebcamsURL:   "https://www.arapahoebasin.com/webcams/",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/arapahoe-basin/skireport",
		},
		{
			Name:         "Copper Mountain",
			Region:       "Copper Mountain, CO",
			ElevationFt:  12313,
			Lat:          39.5022,
			Lon:          -106.1511,
			ReportURL:    "https://www.coppercolorado.com/the-mountain/mountain-information/snow-report",
			WebcamsURL:   "https://www.coppercolorado.com/the-mountain/mountain-information/webcams",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/copper-mountain/skireport",
		},
		{
			Name:         "Loveland",
			Region:       "Georgetown, CO",
			ElevationFt:  13010,
			Lat:          39.6800,
			Lon:          -105.8970,
			ReportURL:    "https://skiloveland.com/snow-report/",
			WebcamsURL:   "https://skiloveland.com/webcams/",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/loveland/skireport",
		},
		{
			Name:         "Winter Park",
			Region:       "Winter Park, CO",
			ElevationFt:  12060,
			Lat:          39.8868,
			Lon:          -105.7625,
			ReportURL:    "https://www.winterparkresort.com/the-mountain/mountain-report",
			WebcamsURL:   "https://www.winterparkresort.com/the-mountain/mountain-cams",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/winter-park-resort/skireport",
		},
		{
			Name:         "Steamboat",
			Region:       "Steamboat Springs, CO",
			ElevationFt:  10568,
			Lat:          40.4572,
			Lon:          -106.8040,
			ReportURL:    "https://www.steamboat.com/the-mountain/mountain-report",
			WebcamsURL:   "https://www.steamboat.com/the-mountain/mountain-cams",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/steamboat/skireport",
		},
		{
			Name:         "Aspen Snowmass",
			Region:       "Snowmass Village, CO",
			ElevationFt:  12510,
			Lat:          39.2097,
			Lon:          -106.9490,
			ReportURL:    "https://www.aspensnowmass.com/mountain/snow-report",
			WebcamsURL:   "https://www.aspensnowmass.com/mountain/webcams",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/aspen-snowmass/skireport",
		},
		{
			Name:         "Crested Butte",
			Region:       "Crested Butte, CO",
			ElevationFt:  12162,
			Lat:          38.8994,
			Lon:          -106.9659,
			ReportURL:    "https://www.skicb.com/the-mountain/mountain-conditions/snow-and-weather-report.aspx",
			WebcamsURL:   "https://www.skicb.com/the-mountain/mountain-conditions/mountain-cams.aspx",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/crested-butte/skireport",
		},
		{
			Name:         "Telluride",
			Region:       "Telluride, CO",
			ElevationFt:  13150,
			Lat:          37.9363,
			Lon:          -107.8466,
			ReportURL:    "https://tellurideskiresort.com/mountain/snow-report/",
			WebcamsURL:   "https://tellurideskiresort.com/mountain/webcams/",
			OnTheSnowURL: "https://www.onthesnow.com/colorado/telluride/skireport",
		},
	}
}
