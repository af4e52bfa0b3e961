package service

import (
	"context"
	"errors"
	"fmt"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/repository"

	"gorm.io/gorm"
)

var ErrMockStore = errors.New("mock store error")

// memoryStore 内存版 QAStore，事务失败时恢复快照
type memoryStore struct {
	questions map[uint]string
	nextQID   uint
	contexts  []model.ContextRow
	answers   map[string]model.Answer
	links     []model.QALink
	sequences map[string]int64

	// FailOn 指定某个操作返回 ErrMockStore
	FailOn       string
	Transactions int
	Calls        []string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		questions: map[uint]string{},
		nextQID:   1,
		answers:   map[string]model.Answer{},
		sequences: map[string]int64{},
	}
}

type memorySnapshot struct {
	questions map[uint]string
	nextQID   uint
	contexts  []model.ContextRow
	answers   map[string]model.Answer
	links     []model.QALink
	sequences map[string]int64
}

func (m *memoryStore) snapshot() memorySnapshot {
	s := memorySnapshot{
		questions: map[uint]string{},
		nextQID:   m.nextQID,
		contexts:  append([]model.ContextRow(nil), m.contexts...),
		answers:   map[string]model.Answer{},
		links:     append([]model.QALink(nil), m.links...),
		sequences: map[string]int64{},
	}
	for k, v := range m.questions {
		s.questions[k] = v
	}
	for k, v := range m.answers {
		s.answers[k] = v
	}
	for k, v := range m.sequences {
		s.sequences[k] = v
	}
	return s
}

func (m *memoryStore) restore(s memorySnapshot) {
	m.questions = s.questions
	m.nextQID = s.nextQID
	m.contexts = s.contexts
	m.answers = s.answers
	m.links = s.links
	m.sequences = s.sequences
}

func (m *memoryStore) WithTransaction(ctx context.Context, fn func(tx repository.QATx) error) error {
	m.Transactions++
	snap := m.snapshot()
	if err := fn(&memoryTx{m: m}); err != nil {
		m.restore(snap)
		return err
	}
	return nil
}

func (m *memoryStore) UpdateAnswerText(ctx context.Context, answerID, text string) (int64, error) {
	if err := m.call("UpdateAnswerText"); err != nil {
		return 0, err
	}
	a, ok := m.answers[answerID]
	if !ok {
		return 0, nil
	}
	a.Text = text
	m.answers[answerID] = a
	return 1, nil
}

func (m *memoryStore) call(op string) error {
	m.Calls = append(m.Calls, op)
	if m.FailOn == op {
		return fmt.Errorf("%s: %w", op, ErrMockStore)
	}
	return nil
}

func (m *memoryStore) contextRowsFor(contextID string) []model.ContextRow {
	var rows []model.ContextRow
	for _, r := range m.contexts {
		if r.ContextID == contextID {
			rows = append(rows, r)
		}
	}
	return rows
}

func (m *memoryStore) addAnswer(id, text, contextID string) {
	m.answers[id] = model.Answer{ID: id, Text: text, ContextID: contextID}
}

type memoryTx struct {
	m *memoryStore
}

func (t *memoryTx) CreateQuestion(text string) (uint, error) {
	if err := t.m.call("CreateQuestion"); err != nil {
		return 0, err
	}
	id := t.m.nextQID
	t.m.nextQID++
	t.m.questions[id] = text
	return id, nil
}

func (t *memoryTx) AllocateNumber(family model.IDFamily, floor int64) (int64, error) {
	if err := t.m.call("AllocateNumber:" + family.Name); err != nil {
		return 0, err
	}

	var ids []string
	switch family.Name {
	case model.ContextFamily.Name:
		for _, r := range t.m.contexts {
			ids = append(ids, r.ContextID)
		}
	case model.AnswerFamily.Name:
		for id := range t.m.answers {
			ids = append(ids, id)
		}
	}

	var latest int64
	for _, id := range ids {
		n, err := family.Parse(id)
		if err != nil {
			return 0, err
		}
		if n > latest {
			latest = n
		}
	}

	next := repository.NextNumber(latest, t.m.sequences[family.Name], floor)
	t.m.sequences[family.Name] = next
	return next, nil
}

func (t *memoryTx) CreateContextRows(rows []model.ContextRow) error {
	if err := t.m.call("CreateContextRows"); err != nil {
		return err
	}
	t.m.contexts = append(t.m.contexts, rows...)
	return nil
}

func (t *memoryTx) CreateAnswer(answer *model.Answer) error {
	if err := t.m.call("CreateAnswer"); err != nil {
		return err
	}
	if _, exists := t.m.answers[answer.ID]; exists {
		return fmt.Errorf("duplicate answer %s", answer.ID)
	}
	t.m.answers[answer.ID] = *answer
	return nil
}

func (t *memoryTx) LinkQuestionAnswer(link *model.QALink) error {
	if err := t.m.call("LinkQuestionAnswer"); err != nil {
		return err
	}
	t.m.links = append(t.m.links, *link)
	return nil
}

func (t *memoryTx) UpdateAnswer(answerID, text, contextID string) (int64, error) {
	if err := t.m.call("UpdateAnswer"); err != nil {
		return 0, err
	}
	a, ok := t.m.answers[answerID]
	if !ok {
		return 0, nil
	}
	a.Text = text
	a.ContextID = contextID
	t.m.answers[answerID] = a
	return 1, nil
}

func (t *memoryTx) FindAnswerIDByQuestion(questionID uint, contextID string) (string, error) {
	if err := t.m.call("FindAnswerIDByQuestion"); err != nil {
		return "", err
	}
	for _, l := range t.m.links {
		if l.QuestionID != questionID {
			continue
		}
		a, ok := t.m.answers[l.AnswerID]
		if !ok {
			continue
		}
		if contextID == "" || a.ContextID == contextID {
			return a.ID, nil
		}
	}
	return "", gorm.ErrRecordNotFound
}
