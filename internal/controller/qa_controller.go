package controller

import (
	"context"
	"errors"
	"net/http"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/service"
	"qa_kb_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QAWriter interface {
	CreateQuestionAnswer(ctx context.Context, in service.CreateQAInput) (*service.CreateQAResult, error)
	ReviseAnswer(ctx context.Context, in service.ReviseAnswerInput) (*service.ReviseAnswerResult, error)
	UpdateAnswerText(ctx context.Context, answerID, text string) error
}

type QAController struct {
	Service QAWriter
}

func NewQAController(s QAWriter) *QAController {
	return &QAController{Service: s}
}

// CreateQARequest contextData 为空时使用单个 docId + paragId
// swagger:model CreateQARequest
type CreateQARequest struct {
	QuestionText string               `json:"questionText" form:"questionText"`
	AnswerText   string               `json:"answerText" form:"answerText"`
	ContextData  []model.ParagraphRef `json:"contextData" form:"-"`
	DocID        model.FlexibleID     `json:"docId" form:"docId"`
	ParagID      model.FlexibleID     `json:"paragId" form:"paragId"`
}

func (r *CreateQARequest) paragraphs() []model.ParagraphRef {
	if len(r.ContextData) > 0 {
		return r.ContextData
	}
	if r.DocID != 0 || r.ParagID != 0 {
		return []model.ParagraphRef{{DocID: r.DocID, ParagID: r.ParagID}}
	}
	return nil
}

// SaveAnswerRequest 新文本取 newAnswer，兼容 answerText；答案用 answerId 或 questionId(+contextId) 定位
// swagger:model SaveAnswerRequest
type SaveAnswerRequest struct {
	NewAnswer   string               `json:"newAnswer" form:"newAnswer"`
	AnswerText  string               `json:"answerText" form:"answerText"`
	ContextData []model.ParagraphRef `json:"contextData" form:"-"`
	AnswerID    string               `json:"answerId" form:"answerId"`
	QuestionID  model.FlexibleID     `json:"questionId" form:"questionId"`
	ContextID   string               `json:"contextId" form:"contextId"`
}

// swagger:model UpdateAnswerRequest
type UpdateAnswerRequest struct {
	AnswerID  string `json:"answerId" form:"answerId"`
	NewAnswer string `json:"newAnswer" form:"newAnswer"`
}

// CreateQuestionAnswer godoc
// @Summary 新建问题和答案
// @Description 在一个事务内写入问题、上下文段落、答案以及问答关联
// @Tags QA
// @Accept json
// @Produce json
// @Param body body CreateQARequest true "问题、答案和上下文"
// @Success 200 {object} util.OutcomeResponse
// @Failure 400 {object} util.OutcomeResponse
// @Router /create-question-answer [post]
func (c *QAController) CreateQuestionAnswer(ctx *gin.Context) {
	var req CreateQARequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.Outcome(ctx, http.StatusBadRequest, util.OutcomeResponse{Message: err.Error()})
		return
	}

	res, err := c.Service.CreateQuestionAnswer(ctx.Request.Context(), service.CreateQAInput{
		QuestionText: req.QuestionText,
		AnswerText:   req.AnswerText,
		Paragraphs:   req.paragraphs(),
	})
	if err != nil {
		if errors.Is(err, util.ErrValidation) {
			util.Outcome(ctx, http.StatusBadRequest, util.OutcomeResponse{Message: err.Error()})
			return
		}
		// 事务失败时两个创建路由都以 200 + success:false 响应
		util.LogError(ctx, "Create question/answer transaction failed", err)
		util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{Message: util.MsgOperationFailed})
		return
	}

	util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{
		Success:    true,
		Message:    "New question and answer saved successfully.",
		QuestionID: res.QuestionID,
		AnswerID:   res.AnswerID,
		ContextID:  res.ContextID,
	})
}

// SaveAnswer godoc
// @Summary 修改答案并替换上下文
// @Description 分配新的上下文ID写入段落，并让答案指向新上下文；旧上下文保留
// @Tags QA
// @Accept json
// @Produce json
// @Param body body SaveAnswerRequest true "新答案和上下文"
// @Success 200 {object} util.OutcomeResponse
// @Failure 400 {object} util.OutcomeResponse
// @Failure 500 {object} util.OutcomeResponse
// @Router /save-answer [post]
func (c *QAController) SaveAnswer(ctx *gin.Context) {
	var req SaveAnswerRequest
	if err := ctx.ShouldBind(&req); err != nil {
		util.Outcome(ctx, http.StatusBadRequest, util.OutcomeResponse{Message: err.Error()})
		return
	}

	if req.QuestionID < 0 {
		util.Outcome(ctx, http.StatusBadRequest, util.OutcomeResponse{Message: "questionId must be a positive integer"})
		return
	}

	text := req.NewAnswer
	if text == "" {
		text = req.AnswerText
	}

	res, err := c.Service.ReviseAnswer(ctx.Request.Context(), service.ReviseAnswerInput{
		AnswerID:         req.AnswerID,
		QuestionID:       uint(req.QuestionID),
		CurrentContextID: req.ContextID,
		Text:             text,
		Paragraphs:       req.ContextData,
	})
	switch {
	case err == nil:
		util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{
			Success:   true,
			Message:   "Answer and context updated successfully",
			AnswerID:  res.AnswerID,
			ContextID: res.ContextID,
		})
	case errors.Is(err, util.ErrValidation):
		util.Outcome(ctx, http.StatusBadRequest, util.OutcomeResponse{Message: err.Error()})
	case errors.Is(err, util.ErrAnswerNotFound):
		util.Outcome(ctx, http.StatusOK, util.OutcomeResponse{Message: "Answer not found"})
	default:
		util.LogError(ctx, "Save answer transaction failed", err)
		util.Outcome(ctx, http.StatusInternalServerError, util.OutcomeResponse{Message: "Failed to update answer and context"})
	}
}

// UpdateAnswer godoc
// @Summary 修改答案文本
// @Tags QA
// @Accept json
// @Produce json
// @Param body body UpdateAnswerRequest true "答案ID和新文本"
// @Success 200 {object} util.MessageResponse
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /api/updateAnswer [post]
func (c *QAController) UpdateAnswer(ctx *gin.Context) {
	var req UpdateAnswerRequest
	if err := ctx.ShouldBind(&req); err != nil || req.AnswerID == "" || req.NewAnswer == "" {
		util.BadRequest(ctx, "Missing answerId or newAnswer in request")
		return
	}

	err := c.Service.UpdateAnswerText(ctx.Request.Context(), req.AnswerID, req.NewAnswer)
	switch {
	case err == nil:
		util.Success(ctx, util.MessageResponse{Message: "Answer updated successfully"})
	case errors.Is(err, util.ErrValidation):
		util.BadRequest(ctx, "Missing answerId or newAnswer in request")
	case errors.Is(err, util.ErrAnswerNotFound):
		// 未命中不算错误
		util.Success(ctx, util.MessageResponse{Message: "Answer not found"})
	default:
		util.LogInternalError(ctx, err, "Error updating answer")
	}
}
