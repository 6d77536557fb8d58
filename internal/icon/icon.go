// Package icon resolves the icon shown for an activity type.
package icon

import "github.com/activitylist/activitylist/internal/model"

// Icon identifies an icon asset and the glyph used to draw it in a terminal.
type Icon struct {
	Name  string
	Glyph string
}

var icons = map[model.ActivityType]Icon{
	model.ActivityUndefined:        {Name: "undefined", Glyph: "•"},
	model.ActivityGame:             {Name: "game", Glyph: "🎮"},
	model.ActivityGym:              {Name: "gym", Glyph: "🏋"},
	model.ActivityFight:            {Name: "fight", Glyph: "🥊"},
	model.ActivityAirplane:         {Name: "airplane", Glyph: "✈"},
	model.ActivityShop:             {Name: "shop", Glyph: "🛒"},
	model.ActivityBaseball:         {Name: "baseball", Glyph: "⚾"},
	model.ActivityAmericanFootball: {Name: "american-football", Glyph: "🏈"},
	model.ActivitySkiing:           {Name: "skiing", Glyph: "⛷"},
	model.ActivitySwimming:         {Name: "swimming", Glyph: "🏊"},
}

// Service looks icons up by activity type.
type Service struct{}

// Image returns the icon for kind; unknown kinds get the undefined icon.
func (Service) Image(kind model.ActivityType) Icon {
	if ic, ok := icons[kind]; ok {
		return ic
	}
	return icons[model.ActivityUndefined]
}

// Name returns the asset name for kind.
func Name(kind model.ActivityType) string {
	return Service{}.Image(kind).Name
}
