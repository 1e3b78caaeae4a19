package external

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"geoclima.app/internal/ports"
	"geoclima.app/pkg/errors"
)

const (
	defaultNASAPowerBaseURL   = "https://power.larc.nasa.gov/api/temporal/daily/point"
	defaultNASAPowerCommunity = "RE"
	nasaPowerDateLayout       = "20060102"
	nasaPowerFillValue        = -999.0
)

const (
	nasaParamTemperature   = "T2M"
	nasaParamHumidity      = "RH2M"
	nasaParamWindSpeed     = "WS2M"
	nasaParamPrecipitation = "PRECTOTCORR"
)

// NASAPowerProviderAdapter implements HistoricalClimateProvider port for the NASA POWER daily point API
type NASAPowerProviderAdapter struct {
	client    *resty.Client
	baseURL   string
	community string
	logger    ports.Logger
}

// NASAPowerProviderParams holds parameters for creating the NASA POWER provider
type NASAPowerProviderParams struct {
	BaseURL   string
	Community string
	Timeout   time.Duration
	Logger    ports.Logger
}

// NASAPowerResponse represents the daily point response. Values are keyed by YYYYMMDD.
type NASAPowerResponse struct {
	Header struct {
		FillValue *float64 `json:"fill_value"`
	} `json:"header"`
	Properties struct {
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}

// NewNASAPowerProviderAdapter creates a new NASA POWER provider adapter
func NewNASAPowerProviderAdapter(params NASAPowerProviderParams) *NASAPowerProviderAdapter {
	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultNASAPowerBaseURL
	}
	community := params.Community
	if community == "" {
		community = defaultNASAPowerCommunity
	}
	timeout := params.Timeout
	if timeout <= 0 {
		timeout = defaultUpstreamTimeout
	}

	client := resty.New().
		SetHeader("Accept", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0)

	return &NASAPowerProviderAdapter{
		client:    client,
		baseURL:   baseURL,
		community: community,
		logger:    params.Logger,
	}
}

// GetDailyRecords fetches one record per day in [start, end], oldest first.
// Days with any fill value are dropped.
func (p *NASAPowerProviderAdapter) GetDailyRecords(ctx context.Context, lat, lon float64, start, end time.Time) ([]ports.DailyClimateRecord, error) {
	if end.Before(start) {
		return nil, errors.NewValidationError("end date must not precede start date")
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"parameters": nasaParamTemperature + "," + nasaParamHumidity + "," + nasaParamWindSpeed + "," + nasaParamPrecipitation,
			"community":  p.community,
			"longitude":  strconv.FormatFloat(lon, 'f', -1, 64),
			"latitude":   strconv.FormatFloat(lat, 'f', -1, 64),
			"start":      start.Format(nasaPowerDateLayout),
			"end":        end.Format(nasaPowerDateLayout),
			"format":     "JSON",
		}).
		Get(p.baseURL)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call NASA POWER", err)
	}
	if !resp.IsSuccess() {
		return nil, errors.NewExternalAPIError(fmt.Sprintf("NASA POWER returned status %d", resp.StatusCode()), nil)
	}

	var apiResp NASAPowerResponse
	if err := json.Unmarshal(resp.Body(), &apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode NASA POWER response", err)
	}

	return p.toRecords(apiResp)
}

func (p *NASAPowerProviderAdapter) toRecords(apiResp NASAPowerResponse) ([]ports.DailyClimateRecord, error) {
	series := apiResp.Properties.Parameter
	temps, ok := series[nasaParamTemperature]
	if !ok {
		return nil, errors.NewExternalAPIError("NASA POWER response is missing "+nasaParamTemperature, nil)
	}
	for _, name := range []string{nasaParamHumidity, nasaParamWindSpeed, nasaParamPrecipitation} {
		if _, ok := series[name]; !ok {
			return nil, errors.NewExternalAPIError("NASA POWER response is missing "+name, nil)
		}
	}

	fill := nasaPowerFillValue
	if apiResp.Header.FillValue != nil {
		fill = *apiResp.Header.FillValue
	}

	records := make([]ports.DailyClimateRecord, 0, len(temps))
	dropped := 0
	for key, temp := range temps {
		date, err := time.Parse(nasaPowerDateLayout, key)
		if err != nil {
			return nil, errors.NewExternalAPIError(fmt.Sprintf("NASA POWER returned malformed date %q", key), err)
		}

		humidity, okH := series[nasaParamHumidity][key]
		wind, okW := series[nasaParamWindSpeed][key]
		precip, okP := series[nasaParamPrecipitation][key]
		if !okH || !okW || !okP || isFill(fill, temp, humidity, wind, precip) {
			dropped++
			continue
		}

		records = append(records, ports.DailyClimateRecord{
			Date:            date,
			TemperatureC:    temp,
			HumidityPct:     humidity,
			WindSpeedMS:     wind,
			PrecipitationMM: precip,
		})
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})

	if dropped > 0 {
		p.logger.Debug("Dropped incomplete NASA POWER days", ports.F("dropped", dropped), ports.F("kept", len(records)))
	}
	return records, nil
}

func isFill(fill float64, values ...float64) bool {
	for _, v := range values {
		if v == fill {
			return true
		}
	}
	return false
}

// GetProviderName returns the name of this climate provider
func (p *NASAPowerProviderAdapter) GetProviderName() string {
	return "nasa-power"
}
