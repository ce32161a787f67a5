package web

import (
	"encoding/json"
	"net/http"

	"dispatch-service/services"
)

// handleDispatch 派票
//
// 快照比赛+报价生成 pending 票据，渲染模板后投递到店铺通道，
// 成功则广播 ticket_sent 事件。
func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var req services.DispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := s.dispatch.Dispatch(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}

	s.wsHub.Broadcast(&WSMessage{
		Type:    "ticket_sent",
		MatchID: result.Ticket.MatchID,
		Data:    result.Ticket,
	})

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"ticket":  result.Ticket,
		"shop":    result.Shop,
		"message": result.Message,
	})
}
