package web

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"dispatch-service/models"
)

// handleGetUsers 用户列表，q 按姓名或邮箱过滤
func (s *Server) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	query := strings.ToLower(r.URL.Query().Get("q"))

	accounts := s.repo.Accounts()
	if query != "" {
		filtered := []models.Account{}
		for _, a := range accounts {
			if strings.Contains(strings.ToLower(a.Name), query) ||
				strings.Contains(strings.ToLower(a.Email), query) {
				filtered = append(filtered, a)
			}
		}
		accounts = filtered
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"users":   accounts,
	})
}

type addUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// handleAddUser 新增用户，姓名和邮箱必填
func (s *Server) handleAddUser(w http.ResponseWriter, r *http.Request) {
	var req addUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	account, err := s.repo.AddAccount(req.Name, req.Email, models.Role(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"user":    account,
	})
}

// handleDeleteUser 删除用户
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.repo.DeleteAccount(vars["user_id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// handleToggleUser 切换用户 active/inactive
func (s *Server) handleToggleUser(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	account, err := s.repo.ToggleAccountStatus(vars["user_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"user":    account,
	})
}
