package models

// categoryCatalog is the full set of guessable stats. Keys line up with the
// Player stat fields; a subset is sampled into each daily game.
var categoryCatalog = []StatCategory{
	{Key: "points_per_game", DisplayName: "Points Per Game"},
	{Key: "assists_per_game", DisplayName: "Assists Per Game"},
	{Key: "rebounds_per_game", DisplayName: "Rebounds Per Game"},
	{Key: "blocks_per_game", DisplayName: "Blocks Per Game"},
	{Key: "steals_per_game", DisplayName: "Steals Per Game"},
	{Key: "turnovers_per_game", DisplayName: "Turnovers Per Game"},
	{Key: "field_goal_percentage", DisplayName: "Field Goal Percentage"},
	{Key: "three_point_percentage", DisplayName: "Three Point Percentage"},
	{Key: "free_throw_percentage", DisplayName: "Free Throw Percentage"},
	{Key: "effective_field_goal_percentage", DisplayName: "Effective Field Goal Percentage"},
	{Key: "three_pointers_per_game", DisplayName: "Three Pointers Per Game"},
	{Key: "minutes_played_per_game", DisplayName: "Minutes Played Per Game"},
	{Key: "player_efficiency_rating", DisplayName: "Player Efficiency Rating"},
	{Key: "box_plus_minus", DisplayName: "Box Plus Minus"},
	{Key: "usage_rate", DisplayName: "Usage Rate"},
	{Key: "total_minutes_played", DisplayName: "Total Minutes Played"},
	{Key: "total_points", DisplayName: "Total Points"},
	{Key: "total_rebounds", DisplayName: "Total Rebounds"},
	{Key: "total_assists", DisplayName: "Total Assists"},
	{Key: "total_field_goals", DisplayName: "Total Field Goals"},
	{Key: "total_three_pointers", DisplayName: "Total Three Pointers"},
	{Key: "total_steals", DisplayName: "Total Steals"},
	{Key: "total_blocks", DisplayName: "Total Blocks"},
	{Key: "total_turnovers", DisplayName: "Total Turnovers"},
	{Key: "triple_doubles", DisplayName: "Triple Doubles"},
}

// CategoryCatalog returns a copy of the full category catalog.
func CategoryCatalog() []StatCategory {
	catalog := make([]StatCategory, len(categoryCatalog))
	copy(catalog, categoryCatalog)
	return catalog
}
