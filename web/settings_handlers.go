package web

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"dispatch-service/models"
	"dispatch-service/services"
)

// 店铺和消息模板的管理接口。增删改只作用于内存集合，
// 校验失败返回 400 且不产生部分写入。

// handleGetShops 店铺列表
func (s *Server) handleGetShops(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"shops":   s.repo.Shops(),
	})
}

type addShopRequest struct {
	Name           string  `json:"name"`
	TelegramChatID string  `json:"telegramChatId"`
	WhatsAppNumber string  `json:"whatsappNumber"`
	DefaultStake   float64 `json:"defaultStake"`
}

// handleAddShop 新增店铺，名称和 Telegram Chat ID 必填
func (s *Server) handleAddShop(w http.ResponseWriter, r *http.Request) {
	var req addShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	shop, err := s.repo.AddShop(req.Name, req.TelegramChatID, req.WhatsAppNumber, req.DefaultStake)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"shop":    shop,
	})
}

// handleDeleteShop 删除店铺
func (s *Server) handleDeleteShop(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.repo.DeleteShop(vars["shop_id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

// handleToggleShop 切换店铺启用状态
func (s *Server) handleToggleShop(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	shop, err := s.repo.ToggleShop(vars["shop_id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"shop":    shop,
	})
}

// handleGetTemplates 模板列表
func (s *Server) handleGetTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":   true,
		"templates": s.repo.Templates(),
	})
}

type addTemplateRequest struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Type    string `json:"type"`
}

// handleAddTemplate 新增模板，名称和内容必填
func (s *Server) handleAddTemplate(w http.ResponseWriter, r *http.Request) {
	var req addTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	template, err := s.repo.AddTemplate(req.Name, req.Content, models.TemplateType(req.Type))
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success":  true,
		"template": template,
	})
}

// handleDeleteTemplate 删除模板
func (s *Server) handleDeleteTemplate(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := s.repo.DeleteTemplate(vars["template_id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

type previewTemplateRequest struct {
	TemplateID string `json:"templateId"`
	TicketID   string `json:"ticketId"`
}

// handlePreviewTemplate 用历史票据预览模板渲染结果
func (s *Server) handlePreviewTemplate(w http.ResponseWriter, r *http.Request) {
	var req previewTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	template, err := s.repo.TemplateByID(req.TemplateID)
	if err != nil {
		writeError(w, err)
		return
	}

	for _, t := range s.repo.Tickets() {
		if t.ID == req.TicketID {
			writeJSON(w, http.StatusOK, map[string]interface{}{
				"success": true,
				"preview": services.RenderTemplate(template.Content, t),
			})
			return
		}
	}
	writeError(w, services.ErrNotFound)
}
