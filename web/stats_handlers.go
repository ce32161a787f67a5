package web

import "net/http"

// handleDashboardStats 看板首页统计
func (s *Server) handleDashboardStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"stats":   s.stats.Dashboard(),
	})
}

// handleBookmakerStats 分析页面按博彩公司的汇总
func (s *Server) handleBookmakerStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":    true,
		"bookmakers": s.stats.Bookmakers(),
	})
}
