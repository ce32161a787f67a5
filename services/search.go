package services

import (
	"strings"

	"dispatch-service/models"
)

// SearchMatches 比赛搜索
//
// 空查询返回全部比赛；否则按主队、客队或联赛做不区分大小写的
// 子串匹配（OR 语义），保持原始顺序，不做排序打分。
func SearchMatches(matches []models.Match, query string) []models.Match {
	if query == "" {
		return matches
	}

	q := strings.ToLower(query)
	out := []models.Match{}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(m.HomeTeam), q) ||
			strings.Contains(strings.ToLower(m.AwayTeam), q) ||
			strings.Contains(strings.ToLower(m.League), q) {
			out = append(out, m)
		}
	}
	return out
}
