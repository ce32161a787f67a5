package web

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"dispatch-service/config"
	"dispatch-service/services"
)

// Server 看板后端 HTTP 服务
type Server struct {
	config     config.Config
	logger     zerolog.Logger
	repo       *services.Repository
	auth       *services.Authenticator
	odds       *services.OddsService
	stats      *services.StatsService
	dispatch   *services.DispatchService
	wsHub      *Hub
	httpServer *http.Server
	upgrader   websocket.Upgrader
}

// NewServer 创建服务器
func NewServer(
	cfg config.Config,
	logger zerolog.Logger,
	repo *services.Repository,
	auth *services.Authenticator,
	odds *services.OddsService,
	stats *services.StatsService,
	dispatch *services.DispatchService,
	hub *Hub,
) *Server {
	return &Server{
		config:   cfg,
		logger:   logger,
		repo:     repo,
		auth:     auth,
		odds:     odds,
		stats:    stats,
		dispatch: dispatch,
		wsHub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // 前端跨域访问，生产环境需要收紧
			},
		},
	}
}

// Start 启动服务器
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s.httpServer.ListenAndServe()
}

// routes 组装路由和中间件
func (s *Server) routes() http.Handler {
	router := mux.NewRouter()

	// API路由
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")

	// 登录
	api.HandleFunc("/auth/login", s.handleLogin).Methods("POST")

	// 比赛搜索和选中
	api.HandleFunc("/matches", s.handleSearchMatches).Methods("GET")
	api.HandleFunc("/matches/{match_id}/select", s.handleSelectMatch).Methods("POST")

	// 报价
	api.HandleFunc("/odds", s.handleGetOdds).Methods("GET")
	api.HandleFunc("/odds/{bookmaker_id}/stake", s.handleUpdateStake).Methods("PUT")

	// 票据历史
	api.HandleFunc("/tickets", s.handleGetTickets).Methods("GET")
	api.HandleFunc("/tickets/range", s.handleGetTicketsByRange).Methods("GET")
	api.HandleFunc("/tickets/export", s.handleExportTickets).Methods("GET")

	// 派票
	api.HandleFunc("/dispatch", s.handleDispatch).Methods("POST")

	// 统计
	api.HandleFunc("/stats/dashboard", s.handleDashboardStats).Methods("GET")
	api.HandleFunc("/stats/bookmakers", s.handleBookmakerStats).Methods("GET")

	// 店铺配置
	api.HandleFunc("/shops", s.handleGetShops).Methods("GET")
	api.HandleFunc("/shops", s.handleAddShop).Methods("POST")
	api.HandleFunc("/shops/{shop_id}", s.handleDeleteShop).Methods("DELETE")
	api.HandleFunc("/shops/{shop_id}/toggle", s.handleToggleShop).Methods("POST")

	// 消息模板
	api.HandleFunc("/templates", s.handleGetTemplates).Methods("GET")
	api.HandleFunc("/templates", s.handleAddTemplate).Methods("POST")
	api.HandleFunc("/templates/{template_id}", s.handleDeleteTemplate).Methods("DELETE")
	api.HandleFunc("/templates/preview", s.handlePreviewTemplate).Methods("POST")

	// 用户管理
	api.HandleFunc("/users", s.handleGetUsers).Methods("GET")
	api.HandleFunc("/users", s.handleAddUser).Methods("POST")
	api.HandleFunc("/users/{user_id}", s.handleDeleteUser).Methods("DELETE")
	api.HandleFunc("/users/{user_id}/toggle", s.handleToggleUser).Methods("POST")

	// WebSocket路由
	router.HandleFunc("/ws", s.handleWebSocket)

	// CORS配置
	c := cors.New(cors.Options{
		AllowedOrigins:   s.config.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	return c.Handler(router)
}

// Stop 停止服务器
func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server shutdown error")
	}
}

// handleHealth 健康检查
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Unix(),
	})
}
