package model

import (
	"fmt"
	"strings"
)

// ActivityType classifies a tasks list or a task item and selects its icon.
type ActivityType int

// Activity types. The set is closed.
const (
	ActivityUndefined ActivityType = iota
	ActivityGame
	ActivityGym
	ActivityFight
	ActivityAirplane
	ActivityShop
	ActivityBaseball
	ActivityAmericanFootball
	ActivitySkiing
	ActivitySwimming
)

// ActivityTypes lists every activity type in declaration order.
var ActivityTypes = []ActivityType{
	ActivityUndefined,
	ActivityGame,
	ActivityGym,
	ActivityFight,
	ActivityAirplane,
	ActivityShop,
	ActivityBaseball,
	ActivityAmericanFootball,
	ActivitySkiing,
	ActivitySwimming,
}

var activityNames = map[ActivityType]string{
	ActivityUndefined:        "undefined",
	ActivityGame:             "game",
	ActivityGym:              "gym",
	ActivityFight:            "fight",
	ActivityAirplane:         "airplane",
	ActivityShop:             "shop",
	ActivityBaseball:         "baseball",
	ActivityAmericanFootball: "american_football",
	ActivitySkiing:           "skiing",
	ActivitySwimming:         "swimming",
}

// String returns the lower snake case name of the type.
func (t ActivityType) String() string {
	if name, ok := activityNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ActivityType(%d)", int(t))
}

// Valid reports whether t is one of the declared activity types.
func (t ActivityType) Valid() bool {
	_, ok := activityNames[t]
	return ok
}

// ParseActivityType resolves a name such as "airplane" or
// "american-football" to its ActivityType.
func ParseActivityType(s string) (ActivityType, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for t, n := range activityNames {
		if n == name {
			return t, nil
		}
	}
	return ActivityUndefined, fmt.Errorf("unknown activity type %q", s)
}
