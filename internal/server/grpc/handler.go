package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/dmitrijs2005/citylifes/internal/geo"
	pb "github.com/dmitrijs2005/citylifes/internal/proto"
	"github.com/dmitrijs2005/citylifes/internal/server/models"
	"github.com/dmitrijs2005/citylifes/internal/server/services"
	"github.com/dmitrijs2005/citylifes/internal/strategy"
)

type MessageService interface {
	Send(ctx context.Context, senderID, receiverID, content string, listingID *string) (*services.ConversationMessage, error)
	Conversation(ctx context.Context, userID, otherID string, limit int) ([]services.ConversationMessage, error)
	Conversations(ctx context.Context, userID string) ([]services.ConversationSummary, error)
	MarkRead(ctx context.Context, userID, otherID string) (int64, error)
	Edit(ctx context.Context, userID, messageID, content string) (*services.ConversationMessage, error)
	Delete(ctx context.Context, userID, messageID string) error
}

type CampaignService interface {
	Sponsored(ctx context.Context, spec geo.FilterSpec) ([]services.SponsoredListing, error)
	RecordImpression(ctx context.Context, campaignID string) (bool, error)
	RecordClick(ctx context.Context, campaignID string) (bool, error)
	CreateCampaign(ctx context.Context, userID, listingID, title string, budget float64, endDate time.Time) (*models.Campaign, error)
	UpdateCampaignStatus(ctx context.Context, userID, campaignID string, status geo.CampaignStatus) (*models.Campaign, error)
	ListCampaigns(ctx context.Context, userID string) ([]*models.Campaign, error)
}

type LocationService interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, error)
	Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]services.NearbyListing, error)
}

type AdminService interface {
	CheckAdmin(ctx context.Context, userID string) (bool, strategy.Report)
}

type MediaService interface {
	ImageUploadURL(ctx context.Context, userID, listingID string) (string, string, error)
}

// handler implements pb.MarketplaceServer on top of the services.
type handler struct {
	pb.UnimplementedMarketplaceServer
	s *GRPCServer
}

// fail converts err to a status, logging anything that is not the
// caller's fault.
func (h *handler) fail(ctx context.Context, err error) error {
	st := toStatus(err)
	if status.Code(st) == codes.Internal {
		h.s.logger.Error(ctx, "service error", "error", err)
	}
	return st
}

func (h *handler) Ping(context.Context, *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (h *handler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.MessageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m, err := h.s.svc.Messages.Send(ctx, userID, req.GetReceiverId(), req.GetContent(), optionalString(req.GetListingId()))
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.MessageResponse{Message: toPBMessage(*m)}, nil
}

func (h *handler) GetConversation(ctx context.Context, req *pb.GetConversationRequest) (*pb.GetConversationResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	msgs, err := h.s.svc.Messages.Conversation(ctx, userID, req.GetCounterpartId(), int(req.GetLimit()))
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	out := make([]*pb.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, toPBMessage(m))
	}
	return &pb.GetConversationResponse{Messages: out}, nil
}

func (h *handler) ListConversations(ctx context.Context, _ *pb.ListConversationsRequest) (*pb.ListConversationsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	sums, err := h.s.svc.Messages.Conversations(ctx, userID)
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	out := make([]*pb.Conversation, 0, len(sums))
	for _, c := range sums {
		out = append(out, &pb.Conversation{
			CounterpartId: c.CounterpartID,
			LastMessage:   toPBMessage(c.Last),
			UnreadCount:   int32(c.Unread),
		})
	}
	return &pb.ListConversationsResponse{Conversations: out}, nil
}

func (h *handler) MarkConversationRead(ctx context.Context, req *pb.MarkConversationReadRequest) (*pb.MarkConversationReadResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	n, err := h.s.svc.Messages.MarkRead(ctx, userID, req.GetCounterpartId())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.MarkConversationReadResponse{Updated: n}, nil
}

func (h *handler) EditMessage(ctx context.Context, req *pb.EditMessageRequest) (*pb.MessageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	m, err := h.s.svc.Messages.Edit(ctx, userID, req.GetMessageId(), req.GetContent())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.MessageResponse{Message: toPBMessage(*m)}, nil
}

func (h *handler) DeleteMessage(ctx context.Context, req *pb.DeleteMessageRequest) (*pb.DeleteMessageResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.s.svc.Messages.Delete(ctx, userID, req.GetMessageId()); err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.DeleteMessageResponse{}, nil
}

func (h *handler) GetSponsoredListings(ctx context.Context, req *pb.GetSponsoredListingsRequest) (*pb.GetSponsoredListingsResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	items, err := h.s.svc.Campaigns.Sponsored(ctx, toFilterSpec(req.GetFilter()))
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	out := make([]*pb.SponsoredListing, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.SponsoredListing{
			Listing:       toPBListing(it.Listing),
			CampaignId:    it.Campaign.ID,
			DistanceKm:    optionalDouble(it.DistanceKm),
			DistanceLabel: it.DistanceLabel,
		})
	}
	return &pb.GetSponsoredListingsResponse{Listings: out}, nil
}

func (h *handler) RecordImpression(ctx context.Context, req *pb.RecordImpressionRequest) (*pb.RecordEventResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	ok, err := h.s.svc.Campaigns.RecordImpression(ctx, req.GetCampaignId())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.RecordEventResponse{Counted: ok}, nil
}

func (h *handler) RecordClick(ctx context.Context, req *pb.RecordClickRequest) (*pb.RecordEventResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	ok, err := h.s.svc.Campaigns.RecordClick(ctx, req.GetCampaignId())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.RecordEventResponse{Counted: ok}, nil
}

func (h *handler) CreateCampaign(ctx context.Context, req *pb.CreateCampaignRequest) (*pb.CampaignResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := h.s.svc.Campaigns.CreateCampaign(ctx, userID, req.GetListingId(), req.GetTitle(), req.GetBudget(), fromTimestamp(req.GetEndDate()))
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.CampaignResponse{Campaign: toPBCampaign(c)}, nil
}

func (h *handler) UpdateCampaignStatus(ctx context.Context, req *pb.UpdateCampaignStatusRequest) (*pb.CampaignResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	c, err := h.s.svc.Campaigns.UpdateCampaignStatus(ctx, userID, req.GetCampaignId(), geo.CampaignStatus(req.GetStatus()))
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.CampaignResponse{Campaign: toPBCampaign(c)}, nil
}

func (h *handler) ListCampaigns(ctx context.Context, _ *pb.ListCampaignsRequest) (*pb.ListCampaignsResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	list, err := h.s.svc.Campaigns.ListCampaigns(ctx, userID)
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	out := make([]*pb.Campaign, 0, len(list))
	for _, c := range list {
		out = append(out, toPBCampaign(c))
	}
	return &pb.ListCampaignsResponse{Campaigns: out}, nil
}

func (h *handler) ReverseGeocode(ctx context.Context, req *pb.ReverseGeocodeRequest) (*pb.ReverseGeocodeResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	res, err := h.s.svc.Location.ReverseGeocode(ctx, req.GetLat(), req.GetLng())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	if res == nil {
		return &pb.ReverseGeocodeResponse{}, nil
	}
	return &pb.ReverseGeocodeResponse{Found: true, Address: &pb.Address{
		City:             res.City,
		Area:             res.Area,
		PostalCode:       res.PostalCode,
		FormattedAddress: res.FormattedAddress,
		Region:           res.Region,
	}}, nil
}

func (h *handler) NearbyListings(ctx context.Context, req *pb.NearbyListingsRequest) (*pb.NearbyListingsResponse, error) {
	if _, err := userIDFromContext(ctx); err != nil {
		return nil, err
	}

	items, err := h.s.svc.Location.Nearby(ctx, req.GetLat(), req.GetLng(), req.GetRadiusKm())
	if err != nil {
		return nil, h.fail(ctx, err)
	}

	out := make([]*pb.NearbyListing, 0, len(items))
	for _, it := range items {
		out = append(out, &pb.NearbyListing{
			Listing:       toPBListing(it.Listing),
			DistanceKm:    it.DistanceKm,
			DistanceLabel: it.DistanceLabel,
		})
	}
	return &pb.NearbyListingsResponse{Listings: out}, nil
}

func (h *handler) CheckAdmin(ctx context.Context, _ *pb.CheckAdminRequest) (*pb.CheckAdminResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	ok, report := h.s.svc.Admin.CheckAdmin(ctx, userID)
	return &pb.CheckAdminResponse{IsAdmin: ok, Source: report.Winner}, nil
}

func (h *handler) GetImageUploadURL(ctx context.Context, req *pb.GetImageUploadURLRequest) (*pb.GetImageUploadURLResponse, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key, url, err := h.s.svc.Media.ImageUploadURL(ctx, userID, req.GetListingId())
	if err != nil {
		return nil, h.fail(ctx, err)
	}
	return &pb.GetImageUploadURLResponse{
		StorageKey: key,
		Url:        url,
		ExpiresAt:  timestamppb.New(time.Now().Add(services.UploadURLValidity)),
	}, nil
}

func toPBMessage(m services.ConversationMessage) *pb.Message {
	out := &pb.Message{
		Id:          m.ID,
		SenderId:    m.SenderID,
		ReceiverId:  m.ReceiverID,
		Content:     m.Text,
		CreatedAt:   timestamppb.New(m.CreatedAt),
		Read:        m.Read,
		Edited:      m.Edited,
		EditedAt:    optionalTimestamp(m.EditedAt),
		Unavailable: m.Unavailable,
	}
	if m.ListingID != nil {
		out.ListingId = *m.ListingID
	}
	return out
}

func toPBListing(l models.Listing) *pb.Listing {
	return &pb.Listing{
		Id:          l.ID,
		OwnerId:     l.OwnerID,
		Title:       l.Title,
		ListingType: l.ListingType,
		City:        l.City,
		Area:        l.Area,
		PinCode:     l.PinCode,
		Latitude:    optionalDouble(l.Latitude),
		Longitude:   optionalDouble(l.Longitude),
		CreatedAt:   timestamppb.New(l.CreatedAt),
	}
}

func toPBCampaign(c *models.Campaign) *pb.Campaign {
	return &pb.Campaign{
		Id:          c.ID,
		ListingId:   c.ListingID,
		Title:       c.Title,
		Status:      string(c.Status),
		Budget:      optionalDouble(c.Budget),
		Spent:       c.Spent,
		Impressions: c.Impressions,
		Clicks:      c.Clicks,
		StartDate:   optionalTimestamp(c.StartDate),
		EndDate:     optionalTimestamp(c.EndDate),
		CreatedAt:   timestamppb.New(c.CreatedAt),
		UpdatedAt:   timestamppb.New(c.UpdatedAt),
	}
}

// toFilterSpec keeps unset coordinates nil so ParseFilter can tell them
// apart from zero.
func toFilterSpec(f *pb.SponsoredFilter) geo.FilterSpec {
	return geo.FilterSpec{
		Mode:     f.GetMode(),
		Value:    f.GetValue(),
		Lat:      fromDouble(f.GetLat()),
		Lng:      fromDouble(f.GetLng()),
		RadiusKm: fromDouble(f.GetRadiusKm()),
	}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalDouble(v *float64) *wrapperspb.DoubleValue {
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

func optionalTimestamp(t *time.Time) *timestamppb.Timestamp {
	if t == nil {
		return nil
	}
	return timestamppb.New(*t)
}

// fromTimestamp maps an unset timestamp to the zero time.
func fromTimestamp(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
