package service

import (
	"fmt"
	"math/rand"
	"strings"

	"qa_kb_backend/internal/util"
)

// QuestionGenerator 用问题类型前缀和上下文拼出候选问题，供录入时参考
type QuestionGenerator struct {
	pick func(n int) int
}

func NewQuestionGenerator() *QuestionGenerator {
	return &QuestionGenerator{pick: rand.Intn}
}

type GenerateQuestionsInput struct {
	Contexts      []string
	Count         int
	QuestionTypes []string
}

// Generate 第 i 个问题使用 contexts[i % len(contexts)]，前缀从 questionTypes 中随机选取
func (g *QuestionGenerator) Generate(in GenerateQuestionsInput) ([]string, error) {
	if len(in.Contexts) == 0 {
		return nil, fmt.Errorf("%w: contexts must not be empty", util.ErrValidation)
	}
	if len(in.QuestionTypes) == 0 {
		return nil, fmt.Errorf("%w: questionTypes must not be empty", util.ErrValidation)
	}
	if in.Count < 1 || in.Count > util.MaxGeneratedQuestions {
		return nil, fmt.Errorf("%w: numberOfQuestions must be between 1 and %d", util.ErrValidation, util.MaxGeneratedQuestions)
	}

	questions := make([]string, 0, in.Count)
	for i := 0; i < in.Count; i++ {
		prefix := strings.TrimSpace(in.QuestionTypes[g.pick(len(in.QuestionTypes))])
		subject := strings.TrimSpace(in.Contexts[i%len(in.Contexts)])
		questions = append(questions, fmt.Sprintf("%s %s?", prefix, subject))
	}
	return questions, nil
}
