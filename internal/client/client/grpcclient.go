package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/dmitrijs2005/citylifes/internal/client/config"
	"github.com/dmitrijs2005/citylifes/internal/client/models"
	"github.com/dmitrijs2005/citylifes/internal/common"
	"github.com/dmitrijs2005/citylifes/internal/geo"
	pb "github.com/dmitrijs2005/citylifes/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.MarketplaceClient
	accessToken string
	timeout     time.Duration
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to the endpoint in c.
func NewGRPCClient(c *config.Config) (*GRPCClient, error) {
	return newGRPCClient(c, grpc.WithTransportCredentials(insecure.NewCredentials()))
}

func newGRPCClient(c *config.Config, opts ...grpc.DialOption) (*GRPCClient, error) {
	s := &GRPCClient{endpointURL: c.ServerEndpointAddr, accessToken: c.AccessToken, timeout: c.RequestTimeout}

	opts = append(opts, grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	s.conn = conn
	s.client = pb.NewMarketplaceClient(conn)
	return s, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}

	return nil
}

func (s *GRPCClient) SendMessage(ctx context.Context, receiverID, content string, listingID *string) (*models.Message, error) {
	req := &pb.SendMessageRequest{ReceiverId: receiverID, Content: content}
	if listingID != nil {
		req.ListingId = *listingID
	}

	resp, err := s.client.SendMessage(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	m := fromPBMessage(resp.GetMessage())
	return &m, nil
}

func (s *GRPCClient) Conversation(ctx context.Context, counterpartID string, limit int) ([]models.Message, error) {
	req := &pb.GetConversationRequest{CounterpartId: counterpartID, Limit: int32(limit)}

	resp, err := s.client.GetConversation(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return mapSlice(resp.GetMessages(), fromPBMessage), nil
}

func (s *GRPCClient) Conversations(ctx context.Context) ([]models.Conversation, error) {
	resp, err := s.client.ListConversations(ctx, &pb.ListConversationsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return mapSlice(resp.GetConversations(), func(c *pb.Conversation) models.Conversation {
		return models.Conversation{
			CounterpartID: c.GetCounterpartId(),
			LastMessage:   fromPBMessage(c.GetLastMessage()),
			UnreadCount:   int(c.GetUnreadCount()),
		}
	}), nil
}

func (s *GRPCClient) MarkRead(ctx context.Context, counterpartID string) (int64, error) {
	resp, err := s.client.MarkConversationRead(ctx, &pb.MarkConversationReadRequest{CounterpartId: counterpartID})
	if err != nil {
		return 0, s.mapError(err)
	}
	return resp.GetUpdated(), nil
}

func (s *GRPCClient) EditMessage(ctx context.Context, messageID, content string) (*models.Message, error) {
	resp, err := s.client.EditMessage(ctx, &pb.EditMessageRequest{MessageId: messageID, Content: content})
	if err != nil {
		return nil, s.mapError(err)
	}
	m := fromPBMessage(resp.GetMessage())
	return &m, nil
}

func (s *GRPCClient) DeleteMessage(ctx context.Context, messageID string) error {
	_, err := s.client.DeleteMessage(ctx, &pb.DeleteMessageRequest{MessageId: messageID})
	return s.mapError(err)
}

func (s *GRPCClient) Sponsored(ctx context.Context, filter geo.FilterSpec) ([]models.SponsoredListing, error) {
	resp, err := s.client.GetSponsoredListings(ctx, &pb.GetSponsoredListingsRequest{Filter: toPBFilter(filter)})
	if err != nil {
		return nil, s.mapError(err)
	}
	return mapSlice(resp.GetListings(), func(l *pb.SponsoredListing) models.SponsoredListing {
		return models.SponsoredListing{
			Listing:       fromPBListing(l.GetListing()),
			CampaignID:    l.GetCampaignId(),
			DistanceKm:    fromDouble(l.GetDistanceKm()),
			DistanceLabel: l.GetDistanceLabel(),
		}
	}), nil
}

func (s *GRPCClient) RecordImpression(ctx context.Context, campaignID string) (bool, error) {
	resp, err := s.client.RecordImpression(ctx, &pb.RecordImpressionRequest{CampaignId: campaignID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetCounted(), nil
}

func (s *GRPCClient) RecordClick(ctx context.Context, campaignID string) (bool, error) {
	resp, err := s.client.RecordClick(ctx, &pb.RecordClickRequest{CampaignId: campaignID})
	if err != nil {
		return false, s.mapError(err)
	}
	return resp.GetCounted(), nil
}

func (s *GRPCClient) CreateCampaign(ctx context.Context, c *models.NewCampaign) (*models.Campaign, error) {
	req := &pb.CreateCampaignRequest{
		ListingId: c.ListingID,
		Title:     c.Title,
		Budget:    c.Budget,
		EndDate:   timestamppb.New(c.EndDate),
	}

	resp, err := s.client.CreateCampaign(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	out := fromPBCampaign(resp.GetCampaign())
	return &out, nil
}

func (s *GRPCClient) UpdateCampaignStatus(ctx context.Context, campaignID, status string) (*models.Campaign, error) {
	req := &pb.UpdateCampaignStatusRequest{CampaignId: campaignID, Status: status}

	resp, err := s.client.UpdateCampaignStatus(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	out := fromPBCampaign(resp.GetCampaign())
	return &out, nil
}

func (s *GRPCClient) Campaigns(ctx context.Context) ([]models.Campaign, error) {
	resp, err := s.client.ListCampaigns(ctx, &pb.ListCampaignsRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return mapSlice(resp.GetCampaigns(), fromPBCampaign), nil
}

// ReverseGeocode returns nil without error when nothing was found.
func (s *GRPCClient) ReverseGeocode(ctx context.Context, lat, lng float64) (*geo.GeocodeResult, error) {
	resp, err := s.client.ReverseGeocode(ctx, &pb.ReverseGeocodeRequest{Lat: lat, Lng: lng})
	if err != nil {
		return nil, s.mapError(err)
	}
	if !resp.GetFound() {
		return nil, nil
	}
	a := resp.GetAddress()
	return &geo.GeocodeResult{
		City:             a.GetCity(),
		Area:             a.GetArea(),
		PostalCode:       a.GetPostalCode(),
		FormattedAddress: a.GetFormattedAddress(),
		Region:           a.GetRegion(),
	}, nil
}

func (s *GRPCClient) Nearby(ctx context.Context, lat, lng, radiusKm float64) ([]models.NearbyListing, error) {
	req := &pb.NearbyListingsRequest{Lat: lat, Lng: lng, RadiusKm: radiusKm}

	resp, err := s.client.NearbyListings(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	return mapSlice(resp.GetListings(), func(l *pb.NearbyListing) models.NearbyListing {
		return models.NearbyListing{
			Listing:       fromPBListing(l.GetListing()),
			DistanceKm:    l.GetDistanceKm(),
			DistanceLabel: l.GetDistanceLabel(),
		}
	}), nil
}

func (s *GRPCClient) CheckAdmin(ctx context.Context) (*models.AdminStatus, error) {
	resp, err := s.client.CheckAdmin(ctx, &pb.CheckAdminRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.AdminStatus{IsAdmin: resp.GetIsAdmin(), Source: resp.GetSource()}, nil
}

func (s *GRPCClient) ImageUploadURL(ctx context.Context, listingID string) (*models.UploadURL, error) {
	resp, err := s.client.GetImageUploadURL(ctx, &pb.GetImageUploadURLRequest{ListingId: listingID})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &models.UploadURL{
		StorageKey: resp.GetStorageKey(),
		URL:        resp.GetUrl(),
		ExpiresAt:  fromTimestamp(resp.GetExpiresAt()),
	}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return fmt.Errorf("%w: %s", ErrUnauthorized, st.Message())
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.NotFound:
		return ErrNotFound
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalid, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
