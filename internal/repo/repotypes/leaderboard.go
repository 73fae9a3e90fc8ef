package repotypes

type LeaderboardFilter struct {
	Limit int
}
