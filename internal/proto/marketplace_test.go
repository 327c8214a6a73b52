package proto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gproto "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestServiceDescriptorMatchesGRPC(t *testing.T) {
	svc := File_citylifes_v1_marketplace_proto.Services().ByName("Marketplace")
	require.NotNil(t, svc)
	assert.Equal(t, Marketplace_ServiceDesc.ServiceName, string(svc.FullName()))
	require.Equal(t, len(Marketplace_ServiceDesc.Methods), svc.Methods().Len())

	for i, m := range Marketplace_ServiceDesc.Methods {
		assert.Equal(t, m.MethodName, string(svc.Methods().Get(i).Name()))
	}
}

func TestSponsoredFilter_UnsetCoordinatesSurviveWire(t *testing.T) {
	in := &GetSponsoredListingsRequest{Filter: &SponsoredFilter{Mode: "radius", Lat: wrapperspb.Double(0)}}

	b, err := gproto.Marshal(in)
	require.NoError(t, err)

	var out GetSponsoredListingsRequest
	require.NoError(t, gproto.Unmarshal(b, &out))
	require.NotNil(t, out.GetFilter().GetLat(), "explicit zero latitude is kept")
	assert.Zero(t, out.GetFilter().GetLat().GetValue())
	assert.Nil(t, out.GetFilter().GetLng())
	assert.Nil(t, out.GetFilter().GetRadiusKm())
}
