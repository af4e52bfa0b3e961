package controller

import (
	"context"
	"net/http"

	"qa_kb_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (bool, error)
}

type AuthController struct {
	AuthService TokenValidator
}

func NewAuthController(authService TokenValidator) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Token string `json:"token" form:"token"`
}

// Login godoc
// @Summary 令牌登录
// @Description 令牌存在即登录成功；令牌无效不是错误，返回 success=false
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body LoginRequest true "访问令牌"
// @Success 200 {object} util.OutcomeResponse
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{Message: "Invalid token."})
		return
	}

	ok, err := c.AuthService.ValidateToken(ctx.Request.Context(), req.Token)
	if err != nil {
		util.LogError(ctx, "Token lookup failed", err)
		util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{Message: "Error querying the database."})
		return
	}
	if !ok {
		util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{Message: "Invalid token."})
		return
	}

	util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{Success: true, Message: "Login successful."})
}
