package registry

import "testing"

func TestParseDegrees(t *testing.T) {
	tests := []struct {
		name    string
		want    float64
		wantErr bool
	}{
		{name: "0.0", want: 0, wantErr: false},
		{name: "0°", want: 0, wantErr: false},
		{name: "000°00′00.0″", want: 0, wantErr: false},
		{name: "45.76260", want: 45.76260, wantErr: false},
		{name: " 45.76260 ", want: 45.76260, wantErr: false},
		{name: "45°45.756′", want: 45.76260, wantErr: false},
		{name: `45° 45.756′ 0"`, want: 45.76260, wantErr: false},
		{name: "45° 45’ 45.36", want: 45.76260, wantErr: false},
		{name: `45° 45’ 45.36"`, want: 45.76260, wantErr: false},
		{name: `45 45 45.36`, want: 45.76260, wantErr: false},
		{name: "45.76260N", want: 45.76260, wantErr: false},
		{name: "45.76260S", want: -45.76260, wantErr: false},
		{name: "45.76260E", want: 45.76260, wantErr: false},
		{name: "45.76260W", want: -45.76260, wantErr: false},
		{name: "-45.76260", want: -45.76260, wantErr: false},
		{name: "+45.76260", want: +45.76260, wantErr: false},
		{name: "", wantErr: true},
		{name: "    ", wantErr: true},
		{name: "7.2.1", wantErr: true},
		{name: "7..18", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseDegrees(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseDegrees() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("parseDegrees() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseAutoAcceptsDMSLonLat(t *testing.T) {
	p, err := ParseAuto(`42001,1,2°20'14.03"E,48°51'29.6"N`)
	if err != nil {
		t.Fatalf("ParseAuto() error = %v", err)
	}
	if p.ProjectionCode != 42001 {
		t.Errorf("ProjectionCode = %d, want 42001", p.ProjectionCode)
	}
	if delta := p.Lon - 2.3372305555555556; delta > 1e-6 || delta < -1e-6 {
		t.Errorf("Lon = %v, want ~2.3372", p.Lon)
	}
	if delta := p.Lat - 48.85822222222222; delta > 1e-6 || delta < -1e-6 {
		t.Errorf("Lat = %v, want ~48.8582", p.Lat)
	}
}
