package web

import (
	"net/http"

	"github.com/gorilla/mux"

	"dispatch-service/services"
)

// handleSearchMatches 比赛搜索，q 为空时返回全部
func (s *Server) handleSearchMatches(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches := services.SearchMatches(s.repo.Matches(), query)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matches": matches,
	})
}

// handleSelectMatch 选中比赛并刷新报价
//
// 模拟行情拉取：短暂延迟后返回扰动过的报价，同时广播给
// 订阅了该比赛的 WebSocket 客户端。客户端中途断开时
// context 取消，本次刷新直接丢弃。
func (s *Server) handleSelectMatch(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	matchID := vars["match_id"]

	odds, err := s.odds.RefreshForMatch(r.Context(), matchID)
	if err != nil {
		if r.Context().Err() != nil {
			// 客户端已离开，无人接收结果
			return
		}
		writeError(w, err)
		return
	}

	s.wsHub.Broadcast(&WSMessage{
		Type:    "odds_refresh",
		MatchID: matchID,
		Data:    odds,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"matchId": matchID,
		"odds":    odds,
	})
}
