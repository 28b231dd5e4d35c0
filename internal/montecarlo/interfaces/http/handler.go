// Package http 定价服务的 HTTP 接口层
package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wyfcoding/pkg/response"

	"github.com/wyfcoding/optionpricing/internal/montecarlo/application"
	"github.com/wyfcoding/optionpricing/internal/montecarlo/domain"
)

// SimulationRequest 按需定价请求。无风险利率和到期时间由本接口固定，
// 不接受调用方传值，字段名沿用历史调用契约。
type SimulationRequest struct {
	NumberOfPaths   int     `json:"numberOfPaths"`
	UnderlyingPrice float64 `json:"underlyingPrice"`
	StrikePrice     float64 `json:"strikePrice"`
	Volatility      float64 `json:"volatility"`
}

// Handler 定价 HTTP 处理器
type Handler struct {
	app *application.PricingApplicationService
	// 本接口固定的无风险利率与到期时间
	riskFreeRate float64
	maturity     float64
	maxPaths     int
}

// NewHandler 创建处理器并注册路由
func NewHandler(r *gin.Engine, app *application.PricingApplicationService, riskFreeRate, maturity float64, maxPaths int) *Handler {
	h := &Handler{
		app:          app,
		riskFreeRate: riskFreeRate,
		maturity:     maturity,
		maxPaths:     maxPaths,
	}
	v1 := r.Group("/api/v1/pricing")
	{
		v1.POST("/simulations", h.Simulate)
		v1.GET("/simulations", h.List)
		v1.GET("/simulations/:id", h.Get)
	}
	return h
}

// Simulate 执行一次定价运行
func (h *Handler) Simulate(c *gin.Context) {
	var req SimulationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorType":    "InvalidJSON",
			"errorMessage": "Failed to parse input JSON",
		})
		return
	}
	if h.maxPaths > 0 && req.NumberOfPaths > h.maxPaths {
		c.JSON(http.StatusBadRequest, gin.H{
			"errorType":    "InvalidRequest",
			"errorMessage": "numberOfPaths exceeds the allowed maximum",
		})
		return
	}

	cmd := application.RunSimulationCommand{
		RequestID:       c.GetHeader("X-Request-ID"),
		Source:          domain.RunSourceHTTP,
		NumberOfPaths:   req.NumberOfPaths,
		UnderlyingPrice: req.UnderlyingPrice,
		StrikePrice:     req.StrikePrice,
		RiskFreeRate:    h.riskFreeRate,
		Volatility:      req.Volatility,
		Maturity:        h.maturity,
	}
	dto, err := h.app.RunSimulation(c.Request.Context(), cmd)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// Get 获取单次定价运行
func (h *Handler) Get(c *gin.Context) {
	dto, err := h.app.GetRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto)
}

// List 列出最近的定价运行
func (h *Handler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	dtos, err := h.app.ListRuns(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dtos)
}
