package web

import (
	"encoding/json"
	"net/http"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// handleLogin 登录
//
// 成功返回账号信息；邮箱不存在和密码错误统一返回 401，
// 响应形状不可区分。
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	account, err := s.auth.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	s.logger.Info().Str("email", account.Email).Str("role", string(account.Role)).Msg("login ok")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    account,
	})
}
