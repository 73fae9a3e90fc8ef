package pgdb

import (
	"github.com/steptrek/steptrek/internal/repo/repotypes"
)

const DefaultLeaderboardLimit = 10

func BuildLeaderboardLimit(filter repotypes.LeaderboardFilter) uint64 {
	limit := uint64(DefaultLeaderboardLimit)
	if filter.Limit > 0 {
		limit = uint64(filter.Limit)
	}
	return limit
}
