package store

import "github.com/activitylist/activitylist/internal/model"

// activityCode returns the persisted code of t. Unknown values are stored as
// the undefined code.
func activityCode(t model.ActivityType) int64 {
	switch t {
	case model.ActivityGame:
		return 1
	case model.ActivityGym:
		return 2
	case model.ActivityFight:
		return 3
	case model.ActivityAirplane:
		return 4
	case model.ActivityShop:
		return 5
	case model.ActivityBaseball:
		return 6
	case model.ActivityAmericanFootball:
		return 7
	case model.ActivitySkiing:
		return 8
	case model.ActivitySwimming:
		return 9
	default:
		return 0
	}
}

// codeOf returns the column value for t.
func codeOf(t model.ActivityType) Code {
	return Code{Int64: activityCode(t), Valid: true}
}

// activityFromCode maps a persisted code back to its ActivityType. ok is
// false for codes outside the known range.
func activityFromCode(code int64) (t model.ActivityType, ok bool) {
	switch code {
	case 0:
		return model.ActivityUndefined, true
	case 1:
		return model.ActivityGame, true
	case 2:
		return model.ActivityGym, true
	case 3:
		return model.ActivityFight, true
	case 4:
		return model.ActivityAirplane, true
	case 5:
		return model.ActivityShop, true
	case 6:
		return model.ActivityBaseball, true
	case 7:
		return model.ActivityAmericanFootball, true
	case 8:
		return model.ActivitySkiing, true
	case 9:
		return model.ActivitySwimming, true
	default:
		return model.ActivityUndefined, false
	}
}
