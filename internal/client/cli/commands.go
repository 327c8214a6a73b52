package cli

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/citylifes/internal/client/models"
	"github.com/dmitrijs2005/citylifes/internal/geo"
)

type command struct {
	usage   string
	minArgs int
	run     func(ctx context.Context, a *App, args []string) (any, error)
}

var commands = map[string]command{
	"ping": {"", 0, func(ctx context.Context, a *App, _ []string) (any, error) {
		if err := a.api.Ping(ctx); err != nil {
			return nil, err
		}
		return map[string]string{"status": "OK"}, nil
	}},

	"send": {"<receiver> <text> [listing]", 2, func(ctx context.Context, a *App, args []string) (any, error) {
		var listing *string
		if len(args) > 2 {
			listing = &args[2]
		}
		return a.api.SendMessage(ctx, args[0], args[1], listing)
	}},
	"conversation": {"<counterpart> [limit]", 1, func(ctx context.Context, a *App, args []string) (any, error) {
		limit := 0
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, fmt.Errorf("%w: limit: %v", ErrUsage, err)
			}
			limit = n
		}
		return a.api.Conversation(ctx, args[0], limit)
	}},
	"conversations": {"", 0, func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.api.Conversations(ctx)
	}},
	"read": {"<counterpart>", 1, func(ctx context.Context, a *App, args []string) (any, error) {
		n, err := a.api.MarkRead(ctx, args[0])
		if err != nil {
			return nil, err
		}
		return map[string]int64{"updated": n}, nil
	}},
	"edit": {"<message> <text>", 2, func(ctx context.Context, a *App, args []string) (any, error) {
		return a.api.EditMessage(ctx, args[0], args[1])
	}},
	"delete": {"<message>", 1, func(ctx context.Context, a *App, args []string) (any, error) {
		return nil, a.api.DeleteMessage(ctx, args[0])
	}},

	"sponsored": {"[none | city <name> | area <name> | pincode <code> | radius <lat> <lng> [km]]", 0,
		func(ctx context.Context, a *App, args []string) (any, error) {
			spec, err := filterFromArgs(args)
			if err != nil {
				return nil, err
			}
			return a.api.Sponsored(ctx, spec)
		}},
	"impression": {"<campaign>", 1, func(ctx context.Context, a *App, args []string) (any, error) {
		counted, err := a.api.RecordImpression(ctx, args[0])
		return models.EventResult{Counted: counted}, err
	}},
	"click": {"<campaign>", 1, func(ctx context.Context, a *App, args []string) (any, error) {
		counted, err := a.api.RecordClick(ctx, args[0])
		return models.EventResult{Counted: counted}, err
	}},
	"campaigns": {"", 0, func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.api.Campaigns(ctx)
	}},
	"campaign-create": {"<listing> <title> <budget> <end YYYY-MM-DD>", 4,
		func(ctx context.Context, a *App, args []string) (any, error) {
			budget, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return nil, fmt.Errorf("%w: budget: %v", ErrUsage, err)
			}
			end, err := parseDate(args[3])
			if err != nil {
				return nil, err
			}
			return a.api.CreateCampaign(ctx, &models.NewCampaign{
				ListingID: args[0], Title: args[1], Budget: budget, EndDate: end,
			})
		}},
	"campaign-status": {"<campaign> <active|paused|completed>", 2,
		func(ctx context.Context, a *App, args []string) (any, error) {
			return a.api.UpdateCampaignStatus(ctx, args[0], args[1])
		}},

	"geocode": {"<lat> <lng>", 2, func(ctx context.Context, a *App, args []string) (any, error) {
		lat, lng, err := parseLatLng(args)
		if err != nil {
			return nil, err
		}
		res, err := a.api.ReverseGeocode(ctx, lat, lng)
		if err != nil {
			return nil, err
		}
		return models.GeocodeLookup{Found: res != nil, Address: res}, nil
	}},
	"nearby": {"<lat> <lng> [km]", 2, func(ctx context.Context, a *App, args []string) (any, error) {
		lat, lng, err := parseLatLng(args)
		if err != nil {
			return nil, err
		}
		var radius float64
		if len(args) > 2 {
			if radius, err = parseFloat("radius", args[2]); err != nil {
				return nil, err
			}
		}
		return a.api.Nearby(ctx, lat, lng, radius)
	}},
	"admin": {"", 0, func(ctx context.Context, a *App, _ []string) (any, error) {
		return a.api.CheckAdmin(ctx)
	}},
	"upload-url": {"<listing>", 1, func(ctx context.Context, a *App, args []string) (any, error) {
		return a.api.ImageUploadURL(ctx, args[0])
	}},
}

func (a *App) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.out, "Available commands:")
	for _, name := range names {
		fmt.Fprintf(a.out, "  %s %s\n", name, commands[name].usage)
	}
}

func filterFromArgs(args []string) (geo.FilterSpec, error) {
	if len(args) == 0 {
		return geo.FilterSpec{Mode: string(geo.ModeNone)}, nil
	}

	spec := geo.FilterSpec{Mode: strings.ToLower(args[0])}
	switch geo.Mode(spec.Mode) {
	case geo.ModeNone:
	case geo.ModeCity, geo.ModeArea, geo.ModePincode:
		if len(args) < 2 {
			return spec, fmt.Errorf("%w: %s needs a value", ErrUsage, spec.Mode)
		}
		spec.Value = strings.Join(args[1:], " ")
	case geo.ModeRadius:
		lat, lng, err := parseLatLng(args[1:])
		if err != nil {
			return spec, err
		}
		spec.Lat, spec.Lng = &lat, &lng
		if len(args) > 3 {
			km, err := parseFloat("radius", args[3])
			if err != nil {
				return spec, err
			}
			spec.RadiusKm = &km
		}
	default:
		// Left to the server, which knows the accepted aliases.
		if len(args) > 1 {
			spec.Value = strings.Join(args[1:], " ")
		}
	}
	return spec, nil
}

func parseLatLng(args []string) (float64, float64, error) {
	if len(args) < 2 {
		return 0, 0, fmt.Errorf("%w: need <lat> <lng>", ErrUsage)
	}
	lat, err := parseFloat("lat", args[0])
	if err != nil {
		return 0, 0, err
	}
	lng, err := parseFloat("lng", args[1])
	if err != nil {
		return 0, 0, err
	}
	return lat, lng, nil
}

func parseFloat(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrUsage, name, err)
	}
	return v, nil
}

// parseDate accepts a calendar date, taken as the end of that day in UTC,
// or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.Add(24*time.Hour - time.Second), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: end date %q", ErrUsage, s)
	}
	return t, nil
}
