package controller

import (
	"context"
	"strconv"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type KnowledgeQuerier interface {
	SearchQuestions(ctx context.Context, term string) ([]model.QuestionSearchRow, error)
	GetContext(ctx context.Context, contextID string) ([]model.ContextParagraph, error)
	ListDocuments(ctx context.Context) ([]model.Document, error)
	ListParagraphs(ctx context.Context, docID *int64) ([]model.Paragraph, error)
}

type KnowledgeController struct {
	Service KnowledgeQuerier
}

func NewKnowledgeController(s KnowledgeQuerier) *KnowledgeController {
	return &KnowledgeController{Service: s}
}

// SearchQuestions godoc
// @Summary 检索问题
// @Description 按问题文本子串匹配（不区分大小写），最多返回 100 条
// @Tags 知识库
// @Produce json
// @Param s query string false "检索词"
// @Success 200 {array} model.QuestionSearchRow
// @Failure 500 {object} util.MessageResponse
// @Router /api/questions [get]
func (c *KnowledgeController) SearchQuestions(ctx *gin.Context) {
	rows, err := c.Service.SearchQuestions(ctx.Request.Context(), ctx.Query("s"))
	if err != nil {
		util.LogInternalError(ctx, err, "Error fetching Questions")
		return
	}
	util.Success(ctx, rows)
}

// GetContext godoc
// @Summary 获取上下文段落
// @Tags 知识库
// @Produce json
// @Param contextId path string true "上下文ID"
// @Success 200 {array} model.ContextParagraph
// @Failure 500 {object} util.MessageResponse
// @Router /api/context/{contextId} [get]
func (c *KnowledgeController) GetContext(ctx *gin.Context) {
	rows, err := c.Service.GetContext(ctx.Request.Context(), ctx.Param("contextId"))
	if err != nil {
		util.LogInternalError(ctx, err, "Error fetching Context")
		return
	}
	util.Success(ctx, rows)
}

// GetDocuments godoc
// @Summary 文档列表
// @Tags 知识库
// @Produce json
// @Success 200 {array} model.Document
// @Failure 500 {object} util.MessageResponse
// @Router /api/getDocuments [get]
func (c *KnowledgeController) GetDocuments(ctx *gin.Context) {
	docs, err := c.Service.ListDocuments(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err, util.MsgServerError)
		return
	}
	util.Success(ctx, docs)
}

// GetParagraphs godoc
// @Summary 段落列表
// @Description 不传 docId 时返回全部段落
// @Tags 知识库
// @Produce json
// @Param docId query int false "文档ID"
// @Success 200 {array} model.Paragraph
// @Failure 400 {object} util.MessageResponse
// @Failure 500 {object} util.MessageResponse
// @Router /api/getParagraphs [get]
func (c *KnowledgeController) GetParagraphs(ctx *gin.Context) {
	var docID *int64
	if raw := ctx.Query("docId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			util.BadRequest(ctx, "Invalid docId")
			return
		}
		docID = &id
	}

	paragraphs, err := c.Service.ListParagraphs(ctx.Request.Context(), docID)
	if err != nil {
		util.LogInternalError(ctx, err, util.MsgServerError)
		return
	}
	util.Success(ctx, paragraphs)
}
