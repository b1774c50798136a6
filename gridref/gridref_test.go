package gridref

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-crs/crs/registry"
)

func TestGridRefToLatLon(t *testing.T) {
	reg := registry.New()
	tests := []struct {
		name        string
		gridRef     string
		expectedLat float64
		expectedLon float64
	}{
		{
			name:        "SJ 92395 52997",
			expectedLat: +53.074149,
			expectedLon: -2.114964,
		},
		{
			name:        "TG 51409 13177",
			expectedLat: +52.657977,
			expectedLon: 1.716020,
		},
		{
			name:        "Movable Type Example (TL4498257869)",
			gridRef:     "TL4498257869",
			expectedLat: 52.199992,
			expectedLon: 0.119989,
		},
		{
			name:        "Cardiff (ST1784076329)",
			gridRef:     "ST1784076329",
			expectedLat: 51.479928,
			expectedLon: -3.184500,
		},
		{
			name:        "Aberdeen (NJ9439206608)",
			gridRef:     "NJ9439206608",
			expectedLat: 57.150318,
			expectedLon: -2.094323,
		},
		{
			name:        "Newlyn (SW4676028548)",
			gridRef:     "SW4676028548",
			expectedLat: 50.102910,
			expectedLon: -5.542751,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.gridRef
			if s == "" {
				s = tt.name
			}
			g, err := ParseGridRef(s)
			require.NoError(t, err)

			lat, lon, err := g.ToLatLon(reg)
			require.NoError(t, err)
			assert.InDelta(t, tt.expectedLat, lat, 0.001)
			assert.InDelta(t, tt.expectedLon, lon, 0.001)

			back, err := FromLatLon(reg, lat, lon)
			require.NoError(t, err)
			assert.InDelta(t, g.Easting, back.Easting, 1)
			assert.InDelta(t, g.Northing, back.Northing, 1)

			orig := strings.ReplaceAll(s, " ", "")
			roundTripped := strings.ReplaceAll(g.StringN(len(orig)-2), " ", "")
			assert.Equal(t, orig, roundTripped)
		})
	}
}

func TestParseGridRef(t *testing.T) {
	tests := []struct {
		s       string
		want    GridRef
		wantErr bool
	}{
		{s: "651409, 313177", want: GridRef{Easting: 651409, Northing: 313177}},
		{s: "TG 51409 13177", want: GridRef{Easting: 651409, Northing: 313177}},
		{s: "SU 0 0", want: GridRef{Easting: 400000, Northing: 100000}},
		{s: "SE095255", want: GridRef{Easting: 409500, Northing: 425500}},
		{s: "SE0849025580", want: GridRef{Easting: 408490, Northing: 425580}},
		{s: "SI095255", wantErr: true},
		{s: "ZZ095255", wantErr: true},
		{s: "S095255", wantErr: true},
		{s: "SJ95255", wantErr: true},
		{s: "SJ95X255", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := ParseGridRef(tt.s)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func ExampleGridRef() {
	gridRef, err := ParseGridRef("SW 46760 28548")
	if err != nil {
		panic(err)
	}

	fmt.Println(gridRef.StringN(8))
	fmt.Println(gridRef.StringNCompact(8))
	fmt.Println(gridRef.NumericString())

	// Output:
	// SW 4676 2854
	// SW46762854
	// 146760,28548
}
