package scrape

// ReconcileTrades collapses the multiple rows a traded player gets (one per
// team plus a season-aggregate row with the empty-team sentinel) into exactly
// one row per distinct player name.
//
// When both an aggregate row and team rows exist, the aggregate row's stats
// win and its team becomes the last team-specific row's team; source order is
// chronological, so last means current team. Otherwise the last row of the
// group stands as-is. Output preserves first-seen name order.
func ReconcileTrades(rows []StatRow) []StatRow {
	type group struct {
		aggregate *StatRow
		lastTeam  *StatRow
		lastAny   *StatRow
	}

	var order []string
	groups := make(map[string]*group)

	for i := range rows {
		row := &rows[i]
		g, ok := groups[row.PlayerName]
		if !ok {
			g = &group{}
			groups[row.PlayerName] = g
			order = append(order, row.PlayerName)
		}
		if row.TeamAbbr == "" {
			g.aggregate = row
		} else {
			g.lastTeam = row
		}
		g.lastAny = row
	}

	out := make([]StatRow, 0, len(order))
	for _, name := range order {
		g := groups[name]
		if g.aggregate != nil && g.lastTeam != nil {
			merged := *g.aggregate
			merged.TeamAbbr = g.lastTeam.TeamAbbr
			out = append(out, merged)
		} else {
			out = append(out, *g.lastAny)
		}
	}

	return out
}
