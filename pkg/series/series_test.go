package series

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chartkit/chartkit/pkg/errors"
)

func validSeries() Series {
	return Series{
		Title: "revenue",
		Points: []Point{
			{Label: "Q1", Value: 10},
			{Label: "Q2", Value: 25},
			{Label: "Q3", Value: 18},
		},
	}
}

func TestSeriesValidate(t *testing.T) {
	tests := []struct {
		name    string
		series  Series
		wantErr bool
	}{
		{name: "valid", series: validSeries(), wantErr: false},
		{name: "empty", series: Series{}, wantErr: true},
		{
			name:    "single point",
			series:  Series{Points: []Point{{Label: "a", Value: 1}}},
			wantErr: true,
		},
		{
			name:    "empty label",
			series:  Series{Points: []Point{{Label: "a", Value: 1}, {Label: "", Value: 2}}},
			wantErr: true,
		},
		{
			name:    "duplicate label",
			series:  Series{Points: []Point{{Label: "a", Value: 1}, {Label: "a", Value: 2}}},
			wantErr: true,
		},
		{
			name:    "control character in label",
			series:  Series{Points: []Point{{Label: "a", Value: 1}, {Label: "b\x00", Value: 2}}},
			wantErr: true,
		},
		{
			name:    "label too long",
			series:  Series{Points: []Point{{Label: "a", Value: 1}, {Label: strings.Repeat("x", 300), Value: 2}}},
			wantErr: true,
		},
		{
			name:    "NaN value",
			series:  Series{Points: []Point{{Label: "a", Value: 1}, {Label: "b", Value: math.NaN()}}},
			wantErr: true,
		},
		{
			name:    "infinite value",
			series:  Series{Points: []Point{{Label: "a", Value: 1}, {Label: "b", Value: math.Inf(1)}}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, errors.ErrCodeInvalidData) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidData)
			}
		})
	}
}

func TestSeriesValues(t *testing.T) {
	values := validSeries().Values()
	if len(values) != 3 {
		t.Fatalf("len = %d, want 3", len(values))
	}
	if values[1].Label != "Q2" || values[1].Value != 25 {
		t.Errorf("values[1] = %+v, want Q2/25", values[1])
	}
	if values[0].X != 0 || values[0].Y != 0 {
		t.Error("input values must carry no screen positions")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := Marshal(validSeries())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if got.Title != "revenue" || len(got.Points) != 3 {
		t.Errorf("round trip = %+v", got)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	if _, err := Unmarshal([]byte("{not json")); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("malformed JSON error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidFormat)
	}

	// Well-formed JSON that fails validation.
	if _, err := Unmarshal([]byte(`{"points":[{"label":"a","value":1}]}`)); !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("single point error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidData)
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "series.json")

	if err := WriteFile(path, validSeries()); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got.Points) != 3 {
		t.Errorf("read %d points, want 3", len(got.Points))
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file error code = %q, want %q", errors.GetCode(err), errors.ErrCodeNotFound)
	}
}

func TestDecodeManifest(t *testing.T) {
	src := `
[chart]
title = "revenue"
width = 640
height = 480
axes = "xy"
font_size = 14
steps = 4
anchor_zero = true
packed = true
style = "bar"

[[points]]
label = "Q1"
value = 10.0

[[points]]
label = "Q2"
value = 25.0
`
	m, err := DecodeManifest([]byte(src))
	if err != nil {
		t.Fatalf("DecodeManifest: %v", err)
	}

	if m.Chart.Title != "revenue" || m.Chart.Width != 640 || m.Chart.Steps != 4 {
		t.Errorf("chart options = %+v", m.Chart)
	}
	if !m.Chart.AnchorZero || !m.Chart.Packed || m.Chart.Style != "bar" {
		t.Errorf("chart flags = %+v", m.Chart)
	}
	if len(m.Points) != 2 || m.Points[1].Label != "Q2" {
		t.Errorf("points = %+v", m.Points)
	}

	s := m.Series()
	if s.Title != "revenue" || len(s.Points) != 2 {
		t.Errorf("Series() = %+v", s)
	}
}

func TestDecodeManifestInvalid(t *testing.T) {
	if _, err := DecodeManifest([]byte("[[[")); !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("malformed TOML error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidManifest)
	}

	single := "[[points]]\nlabel = \"only\"\nvalue = 1.0\n"
	if _, err := DecodeManifest([]byte(single)); !errors.Is(err, errors.ErrCodeInvalidData) {
		t.Errorf("single point error code = %q, want %q", errors.GetCode(err), errors.ErrCodeInvalidData)
	}
}

func TestReadManifestFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.toml")
	src := "[chart]\ntitle = \"t\"\n\n[[points]]\nlabel = \"a\"\nvalue = 1.0\n\n[[points]]\nlabel = \"b\"\nvalue = 2.0\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := ReadManifest(path)
	if err != nil {
		t.Fatalf("ReadManifest: %v", err)
	}
	if len(m.Points) != 2 {
		t.Errorf("read %d points, want 2", len(m.Points))
	}
}
