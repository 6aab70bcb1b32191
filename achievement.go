package main

// Achievement definitions
type AchievementDef struct {
	ID          string
	Name        string
	Description string
}

var Achievements = []AchievementDef{
	{"first_blood", "First Blood", "Get your first kill"},
	{"exterminator", "Exterminator", "Reach 100 total kills"},
	{"centurion", "Centurion", "Reach 1000 total kills"},
	{"wave_5", "Getting Warm", "Survive to wave 5"},
	{"wave_10", "Veteran", "Survive to wave 10"},
	{"wave_20", "Legend", "Survive to wave 20"},
	{"rampage", "Rampage", "Get 50 kills in a single run"},
	{"regular", "Regular", "Finish 25 runs"},
	{"hoarder", "Hoarder", "Bank 1000 credits lifetime"},
	{"survivor", "Survivor", "Play for 1 hour total"},
}

// CheckAchievements checks if any new achievements should be unlocked
// after a run. Returns the newly unlocked definitions.
func CheckAchievements(db *DB, playerID int64, summary GameOverMsg) []AchievementDef {
	if db == nil {
		return nil
	}

	stats, err := db.GetStats(playerID)
	if err != nil || stats == nil {
		return nil
	}

	existing, err := db.GetAchievements(playerID)
	if err != nil {
		return nil
	}
	has := make(map[string]bool, len(existing))
	for _, a := range existing {
		has[a] = true
	}

	var unlocked []AchievementDef

	check := func(id string) bool {
		if has[id] {
			return false
		}
		switch id {
		case "first_blood":
			return stats.Kills >= 1
		case "exterminator":
			return stats.Kills >= 100
		case "centurion":
			return stats.Kills >= 1000
		case "wave_5":
			return stats.BestWave >= 5
		case "wave_10":
			return stats.BestWave >= 10
		case "wave_20":
			return stats.BestWave >= 20
		case "rampage":
			return summary.Kills >= 50
		case "regular":
			return stats.Runs >= 25
		case "hoarder":
			return stats.Credits >= 1000
		case "survivor":
			return stats.Playtime >= 3600
		}
		return false
	}

	for _, def := range Achievements {
		if check(def.ID) {
			if newlyUnlocked, err := db.UnlockAchievement(playerID, def.ID); err == nil && newlyUnlocked {
				unlocked = append(unlocked, def)
			}
		}
	}

	return unlocked
}
