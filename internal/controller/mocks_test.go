package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var ErrMockStore = errors.New("store error")

type MockQAWriter struct {
	CreateFunc     func(ctx context.Context, in service.CreateQAInput) (*service.CreateQAResult, error)
	ReviseFunc     func(ctx context.Context, in service.ReviseAnswerInput) (*service.ReviseAnswerResult, error)
	UpdateTextFunc func(ctx context.Context, answerID, text string) error
}

func (m *MockQAWriter) CreateQuestionAnswer(ctx context.Context, in service.CreateQAInput) (*service.CreateQAResult, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, in)
	}
	return &service.CreateQAResult{}, nil
}

func (m *MockQAWriter) ReviseAnswer(ctx context.Context, in service.ReviseAnswerInput) (*service.ReviseAnswerResult, error) {
	if m.ReviseFunc != nil {
		return m.ReviseFunc(ctx, in)
	}
	return &service.ReviseAnswerResult{}, nil
}

func (m *MockQAWriter) UpdateAnswerText(ctx context.Context, answerID, text string) error {
	if m.UpdateTextFunc != nil {
		return m.UpdateTextFunc(ctx, answerID, text)
	}
	return nil
}

type MockKnowledgeQuerier struct {
	SearchFunc     func(ctx context.Context, term string) ([]model.QuestionSearchRow, error)
	ContextFunc    func(ctx context.Context, contextID string) ([]model.ContextParagraph, error)
	DocumentsFunc  func(ctx context.Context) ([]model.Document, error)
	ParagraphsFunc func(ctx context.Context, docID *int64) ([]model.Paragraph, error)
}

func (m *MockKnowledgeQuerier) SearchQuestions(ctx context.Context, term string) ([]model.QuestionSearchRow, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, term)
	}
	return []model.QuestionSearchRow{}, nil
}

func (m *MockKnowledgeQuerier) GetContext(ctx context.Context, contextID string) ([]model.ContextParagraph, error) {
	if m.ContextFunc != nil {
		return m.ContextFunc(ctx, contextID)
	}
	return []model.ContextParagraph{}, nil
}

func (m *MockKnowledgeQuerier) ListDocuments(ctx context.Context) ([]model.Document, error) {
	if m.DocumentsFunc != nil {
		return m.DocumentsFunc(ctx)
	}
	return []model.Document{}, nil
}

func (m *MockKnowledgeQuerier) ListParagraphs(ctx context.Context, docID *int64) ([]model.Paragraph, error) {
	if m.ParagraphsFunc != nil {
		return m.ParagraphsFunc(ctx, docID)
	}
	return []model.Paragraph{}, nil
}

type MockTokenValidator struct {
	ValidateFunc func(ctx context.Context, token string) (bool, error)
}

func (m *MockTokenValidator) ValidateToken(ctx context.Context, token string) (bool, error) {
	if m.ValidateFunc != nil {
		return m.ValidateFunc(ctx, token)
	}
	return false, nil
}

type MockPinger struct {
	PingFunc func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.PingFunc != nil {
		return m.PingFunc(ctx)
	}
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
