package web

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"dispatch-service/services"
)

// handleGetTickets 票据历史
//
// q 和 status 两个过滤器按交集组合，汇总指标对过滤后的
// 结果集重新计算。
func (s *Server) handleGetTickets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("q")
	status := query.Get("status")
	if status == "" {
		status = "all"
	}

	filtered := services.FilterTickets(s.repo.Tickets(), search, status)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tickets": filtered,
		"summary": services.SummarizeTickets(filtered),
	})
}

// handleGetTicketsByRange 按日期闭区间过滤票据
func (s *Server) handleGetTicketsByRange(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start := query.Get("start")
	end := query.Get("end")
	if start == "" || end == "" {
		http.Error(w, "start and end are required", http.StatusBadRequest)
		return
	}

	tickets := services.TicketsByDateRange(s.repo.Tickets(), start, end)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"tickets": tickets,
	})
}

// handleExportTickets 导出当前过滤结果为 CSV
func (s *Server) handleExportTickets(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	search := query.Get("q")
	status := query.Get("status")
	if status == "" {
		status = "all"
	}

	filtered := services.FilterTickets(s.repo.Tickets(), search, status)

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="tickets.csv"`)

	cw := csv.NewWriter(w)
	cw.Write([]string{"id", "match", "bookmaker", "odds", "stake", "status", "sent_at", "result", "profit"})
	for _, t := range filtered {
		result := ""
		if t.Result != nil {
			result = *t.Result
		}
		profit := ""
		if t.Profit != nil {
			profit = fmt.Sprintf("%.2f", *t.Profit)
		}
		cw.Write([]string{
			t.ID,
			t.Match,
			t.Bookmaker,
			fmt.Sprintf("%.2f", t.Odds),
			fmt.Sprintf("%.2f", t.Stake),
			string(t.Status),
			t.SentAt,
			result,
			profit,
		})
	}
	cw.Flush()
}
