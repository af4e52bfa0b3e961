package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	docs       []model.Document
	paragraphs []model.Paragraph
	calls      int
	err        error
}

func (w *recordingWriter) ImportReference(ctx context.Context, docs []model.Document, paragraphs []model.Paragraph) error {
	w.calls++
	w.docs = docs
	w.paragraphs = paragraphs
	return w.err
}

const referenceYAML = `
documents:
  - id: 1
    title: Handbook
    paragraphs:
      - id: 1
        text: Welcome.
      - id: 2
        text: Leave policy.
  - id: 2
    title: FAQ
`

func TestReferenceImport(t *testing.T) {
	w := &recordingWriter{}
	imp := NewReferenceImporter(w)

	nDocs, nParags, err := imp.Import(context.Background(), strings.NewReader(referenceYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, nDocs)
	assert.Equal(t, 2, nParags)

	assert.Equal(t, []model.Document{{DocID: 1, Title: "Handbook"}, {DocID: 2, Title: "FAQ"}}, w.docs)
	assert.Equal(t, []model.Paragraph{
		{DocID: 1, ParagID: 1, ParagText: "Welcome."},
		{DocID: 1, ParagID: 2, ParagText: "Leave policy."},
	}, w.paragraphs)
}

func TestReferenceImportRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero doc id", "documents:\n  - id: 0\n    title: x\n"},
		{"duplicate doc", "documents:\n  - id: 1\n  - id: 1\n"},
		{"negative paragraph", "documents:\n  - id: 1\n    paragraphs:\n      - id: -2\n"},
		{"duplicate paragraph", "documents:\n  - id: 1\n    paragraphs:\n      - id: 3\n      - id: 3\n"},
		{"unknown field", "documents:\n  - id: 1\n    name: x\n"},
		{"not yaml", "documents: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &recordingWriter{}
			_, _, err := NewReferenceImporter(w).Import(context.Background(), strings.NewReader(tt.yaml))
			assert.ErrorIs(t, err, util.ErrValidation)
			assert.Zero(t, w.calls)
		})
	}
}

func TestReferenceImportEmptyInput(t *testing.T) {
	w := &recordingWriter{}
	nDocs, _, err := NewReferenceImporter(w).Import(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Zero(t, nDocs)
	assert.Zero(t, w.calls)
}

func TestReferenceImportStoreError(t *testing.T) {
	w := &recordingWriter{err: errors.New("boom")}
	_, _, err := NewReferenceImporter(w).Import(context.Background(), strings.NewReader(referenceYAML))
	require.Error(t, err)
	assert.NotErrorIs(t, err, util.ErrValidation)
}
