package controller

import (
	"errors"

	"qa_kb_backend/internal/service"
	"qa_kb_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuestionGenerator interface {
	Generate(in service.GenerateQuestionsInput) ([]string, error)
}

type QuestionController struct {
	Generator QuestionGenerator
}

func NewQuestionController(g QuestionGenerator) *QuestionController {
	return &QuestionController{Generator: g}
}

// swagger:model GenerateQuestionsRequest
type GenerateQuestionsRequest struct {
	Contexts          []string `json:"contexts"`
	NumberOfQuestions int      `json:"numberOfQuestions"`
	QuestionTypes     []string `json:"questionTypes"`
}

type GenerateQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// GenerateQuestions godoc
// @Summary 生成候选问题
// @Description 用问题类型前缀拼接上下文，生成指定数量的问题
// @Tags QA
// @Accept json
// @Produce json
// @Param body body GenerateQuestionsRequest true "上下文、数量和问题类型"
// @Success 200 {object} GenerateQuestionsResponse
// @Failure 400 {object} util.MessageResponse
// @Router /api/generate-questions [post]
func (c *QuestionController) GenerateQuestions(ctx *gin.Context) {
	var req GenerateQuestionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	questions, err := c.Generator.Generate(service.GenerateQuestionsInput{
		Contexts:      req.Contexts,
		Count:         req.NumberOfQuestions,
		QuestionTypes: req.QuestionTypes,
	})
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err, util.MsgServerError)
		return
	}

	util.Success(ctx, GenerateQuestionsResponse{Questions: questions})
}
