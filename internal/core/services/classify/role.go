package classify

// Role labels, mutually exclusive
const (
	RoleWicketKeeper = "Wicket-keeper"
	RoleAllRounder   = "All-rounder"
	RoleBowler       = "Bowler"
	RoleBatsman      = "Batsman"
)

// RoleInput carries the combined career figures a role is inferred from.
// Missing stats must already be zeroed by the caller.
type RoleInput struct {
	Runs           int
	BattingAverage float64
	Wickets        int
	BowlingAverage float64
	Dismissals     int
	Stumpings      int
}

// Role infers a player's primary role. Rules apply in precedence order and
// the first match wins: keeping evidence beats all-rounder numbers, which
// beat bowling workload. A keeper with all-rounder figures is still a
// Wicket-keeper.
func Role(in RoleInput) string {
	if in.Stumpings > 5 || (in.Dismissals > 20 && in.Stumpings > 0) {
		return RoleWicketKeeper
	}

	if (in.Runs > 1000 && in.Wickets > 20) ||
		(in.BattingAverage > 25 && in.BowlingAverage > 0 && in.BowlingAverage < 35 && in.Wickets > 10) {
		return RoleAllRounder
	}

	// More wickets than runs per hundred marks a frontline bowler
	if (float64(in.Wickets) > float64(in.Runs)/100 && in.Wickets > 50) || in.Wickets > 100 {
		return RoleBowler
	}

	return RoleBatsman
}
