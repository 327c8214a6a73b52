package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name    string
		spec    FilterSpec
		want    Filter
		wantErr bool
	}{
		{name: "empty mode", spec: FilterSpec{}, want: NoFilter{}},
		{name: "none", spec: FilterSpec{Mode: "none", Value: "ignored"}, want: NoFilter{}},
		{name: "city trimmed", spec: FilterSpec{Mode: "City", Value: "  Delhi "}, want: CityFilter{Value: "Delhi"}},
		{name: "area", spec: FilterSpec{Mode: "area", Value: "Koramangala"}, want: AreaFilter{Value: "Koramangala"}},
		{name: "pincode", spec: FilterSpec{Mode: "pincode", Value: "560034"}, want: PincodeFilter{Value: "560034"}},
		{
			name: "radius",
			spec: FilterSpec{Mode: "radius", Lat: ptr(12.97), Lng: ptr(77.59), RadiusKm: ptr(3.5)},
			want: RadiusFilter{Center: Point{Lat: 12.97, Lng: 77.59}, RadiusKm: 3.5},
		},
		{
			name: "radius default",
			spec: FilterSpec{Mode: "radius", Lat: ptr(12.97), Lng: ptr(77.59)},
			want: RadiusFilter{Center: Point{Lat: 12.97, Lng: 77.59}, RadiusKm: DefaultRadiusKm},
		},
		{
			name: "live is radius",
			spec: FilterSpec{Mode: "live", Lat: ptr(12.97), Lng: ptr(77.59)},
			want: RadiusFilter{Center: Point{Lat: 12.97, Lng: 77.59}, RadiusKm: DefaultRadiusKm},
		},
		{name: "unknown mode", spec: FilterSpec{Mode: "state", Value: "KA"}, wantErr: true},
		{name: "city without value", spec: FilterSpec{Mode: "city", Value: "   "}, wantErr: true},
		{name: "radius missing lng", spec: FilterSpec{Mode: "radius", Lat: ptr(12.97)}, wantErr: true},
		{name: "radius missing both", spec: FilterSpec{Mode: "radius", RadiusKm: ptr(5.0)}, wantErr: true},
		{name: "lat out of range", spec: FilterSpec{Mode: "radius", Lat: ptr(91.0), Lng: ptr(0.0)}, wantErr: true},
		{name: "lng out of range", spec: FilterSpec{Mode: "radius", Lat: ptr(0.0), Lng: ptr(-180.5)}, wantErr: true},
		{name: "nan lat", spec: FilterSpec{Mode: "radius", Lat: ptr(math.NaN()), Lng: ptr(0.0)}, wantErr: true},
		{name: "zero radius", spec: FilterSpec{Mode: "radius", Lat: ptr(0.0), Lng: ptr(0.0), RadiusKm: ptr(0.0)}, wantErr: true},
		{name: "negative radius", spec: FilterSpec{Mode: "radius", Lat: ptr(0.0), Lng: ptr(0.0), RadiusKm: ptr(-1.0)}, wantErr: true},
		{name: "infinite radius", spec: FilterSpec{Mode: "radius", Lat: ptr(0.0), Lng: ptr(0.0), RadiusKm: ptr(math.Inf(1))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFilter(tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFilter)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.Mode(), got.Mode())
		})
	}
}

func TestMatches_CityCaseInsensitive(t *testing.T) {
	f, err := ParseFilter(FilterSpec{Mode: "city", Value: "Delhi"})
	require.NoError(t, err)

	assert.True(t, Matches(Listing{ID: "1", City: "Delhi"}, f))
	assert.True(t, Matches(Listing{ID: "2", City: "delhi"}, f))
	assert.False(t, Matches(Listing{ID: "3", City: "Mumbai"}, f))
}

func TestMatches_MissingAttribute(t *testing.T) {
	l := Listing{ID: "1"}

	assert.True(t, Matches(l, NoFilter{}))
	assert.False(t, Matches(l, CityFilter{Value: "Delhi"}))
	assert.False(t, Matches(l, AreaFilter{Value: "Saket"}))
	assert.False(t, Matches(l, PincodeFilter{Value: "110017"}))
	assert.False(t, Matches(l, RadiusFilter{Center: delhi, RadiusKm: 20000}))
}

func TestMatches_AreaAndPincode(t *testing.T) {
	l := Listing{Area: "Indiranagar", PostalCode: "560038"}

	assert.True(t, Matches(l, AreaFilter{Value: "INDIRANAGAR"}))
	assert.False(t, Matches(l, AreaFilter{Value: "Indira"}), "exact match only")
	assert.True(t, Matches(l, PincodeFilter{Value: "560038"}))
	assert.False(t, Matches(l, PincodeFilter{Value: "560039"}))
}

func TestMatches_RadiusBoundary(t *testing.T) {
	p := Point{Lat: 12.9352, Lng: 77.6245}
	l := Listing{ID: "koramangala", Location: &p}
	d := HaversineKm(bangalore, p)

	assert.True(t, Matches(l, RadiusFilter{Center: bangalore, RadiusKm: d}), "listing exactly on the radius")
	assert.False(t, Matches(l, RadiusFilter{Center: bangalore, RadiusKm: d - 0.1}), "listing 0.1 km beyond the radius")
	assert.True(t, Matches(l, RadiusFilter{Center: bangalore, RadiusKm: d + 0.1}))
}
