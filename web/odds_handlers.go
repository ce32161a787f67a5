package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// handleGetOdds 返回当前基准报价
func (s *Server) handleGetOdds(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"odds":    s.odds.Current(),
	})
}

type stakeRequest struct {
	Stake float64 `json:"stake"`
}

// handleUpdateStake 修改某博彩公司的注额（仅会话内存）
func (s *Server) handleUpdateStake(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookmakerID := vars["bookmaker_id"]

	var req stakeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := s.repo.UpdateStake(bookmakerID, req.Stake); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"odds":    s.odds.Current(),
	})
}
