package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"geoclima.app/internal/core/analysis"
	"geoclima.app/internal/core/location"
)

func sampleResult() analysis.Result {
	return analysis.Result{
		RequestID:    "5f0c6a52-1d8e-4c43-9c1e-0b7b8c5b2f10",
		State:        analysis.StateDone,
		AnalysisText: "### AI Weather & Activity Analysis for Paris, France (Aug 1-3)",
		Coordinates:  location.Coordinates{Latitude: 48.8566, Longitude: 2.3522},
		LocationName: "Paris, France",
	}
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"version"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Equal(t, "geoclima dev\n", stdout.String())
}

func TestRun_ConfigEnvMasksSecrets(t *testing.T) {
	t.Setenv("MAPBOX_API_KEY", "pk.abcdefghijklmnop")
	t.Setenv("GEOCODER_PROVIDER", "mapbox")
	var stdout, stderr bytes.Buffer

	code := run(context.Background(), []string{"config", "-env"}, &stdout, &stderr)

	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout.String(), "==== ENVIRONMENT VARIABLES ====")
	assert.Contains(t, stdout.String(), "GEOCODER_PROVIDER=mapbox\n")
	assert.Contains(t, stdout.String(), "MAPBOX_API_KEY=pk.a***************\n")
	assert.NotContains(t, stdout.String(), "pk.abcdefghijklmnop")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "NoCommand", args: nil, want: "Usage: geoclima"},
		{name: "UnknownCommand", args: []string{"forecast"}, want: "Unknown command: forecast"},
		{name: "MissingPlace", args: []string{"analyze", "-date", "July 15-20", "-plans", "hiking"}, want: "invalid request"},
		{name: "BadFormat", args: []string{"analyze", "-place", "Paris", "-date", "July", "-plans", "walk", "-format", "xml"}, want: "unsupported format"},
		{name: "UnknownFlag", args: []string{"analyze", "-city", "Paris"}, want: "flag provided but not defined"},
		{name: "UnknownConfigFlag", args: []string{"config", "-verbose"}, want: "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			code := run(context.Background(), tt.args, &stdout, &stderr)

			assert.Equal(t, exitUsage, code)
			assert.Contains(t, stderr.String(), tt.want)
			assert.Empty(t, stdout.String())
		})
	}
}

func TestWriteResult_Markdown(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeResult(&buf, sampleResult(), formatMarkdown))

	assert.Contains(t, buf.String(), "### AI Weather & Activity Analysis for Paris, France (Aug 1-3)\n")
	assert.Contains(t, buf.String(), "_Location: Paris, France (")
	assert.Contains(t, buf.String(), "request 5f0c6a52-1d8e-4c43-9c1e-0b7b8c5b2f10_")
}

func TestWriteResult_JSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeResult(&buf, sampleResult(), formatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "done", decoded["state"])
	assert.Equal(t, "Paris, France", decoded["location_name"])
	assert.NotContains(t, decoded, "weather_data")
}

func TestWriteResult_YAML(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, writeResult(&buf, sampleResult(), formatYAML))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "done", decoded["state"])
	assert.Equal(t, "5f0c6a52-1d8e-4c43-9c1e-0b7b8c5b2f10", decoded["request_id"])
}

func TestWriteResult_UnknownFormat(t *testing.T) {
	assert.Error(t, writeResult(&bytes.Buffer{}, sampleResult(), "xml"))
	assert.False(t, validFormat("xml"))
}
