package client

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dmitrijs2005/citylifes/internal/client/models"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	pb "github.com/dmitrijs2005/citylifes/internal/proto"
)

func mapSlice[In, Out any](in []In, f func(In) Out) []Out {
	out := make([]Out, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

func fromPBMessage(m *pb.Message) models.Message {
	out := models.Message{
		ID:          m.GetId(),
		SenderID:    m.GetSenderId(),
		ReceiverID:  m.GetReceiverId(),
		Content:     m.GetContent(),
		CreatedAt:   fromTimestamp(m.GetCreatedAt()),
		Read:        m.GetRead(),
		Edited:      m.GetEdited(),
		EditedAt:    optionalTime(m.GetEditedAt()),
		Unavailable: m.GetUnavailable(),
	}
	if id := m.GetListingId(); id != "" {
		out.ListingID = &id
	}
	return out
}

func fromPBListing(l *pb.Listing) models.Listing {
	return models.Listing{
		ID:          l.GetId(),
		OwnerID:     l.GetOwnerId(),
		Title:       l.GetTitle(),
		ListingType: l.GetListingType(),
		City:        l.GetCity(),
		Area:        l.GetArea(),
		PinCode:     l.GetPinCode(),
		Latitude:    fromDouble(l.GetLatitude()),
		Longitude:   fromDouble(l.GetLongitude()),
		CreatedAt:   fromTimestamp(l.GetCreatedAt()),
	}
}

func fromPBCampaign(c *pb.Campaign) models.Campaign {
	return models.Campaign{
		ID:          c.GetId(),
		ListingID:   c.GetListingId(),
		Title:       c.GetTitle(),
		Status:      c.GetStatus(),
		Budget:      fromDouble(c.GetBudget()),
		Spent:       c.GetSpent(),
		Impressions: c.GetImpressions(),
		Clicks:      c.GetClicks(),
		StartDate:   optionalTime(c.GetStartDate()),
		EndDate:     optionalTime(c.GetEndDate()),
		CreatedAt:   fromTimestamp(c.GetCreatedAt()),
		UpdatedAt:   fromTimestamp(c.GetUpdatedAt()),
	}
}

func toPBFilter(f geo.FilterSpec) *pb.SponsoredFilter {
	return &pb.SponsoredFilter{
		Mode:     f.Mode,
		Value:    f.Value,
		Lat:      toDouble(f.Lat),
		Lng:      toDouble(f.Lng),
		RadiusKm: toDouble(f.RadiusKm),
	}
}

func toDouble(v *float64) *wrapperspb.DoubleValue {
	if v == nil {
		return nil
	}
	return wrapperspb.Double(*v)
}

func fromDouble(v *wrapperspb.DoubleValue) *float64 {
	if v == nil {
		return nil
	}
	f := v.GetValue()
	return &f
}

func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}

func optionalTime(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
