package service

import (
	"context"
	"fmt"
	"io"

	"qa_kb_backend/internal/model"
	"qa_kb_backend/internal/util"
	"qa_kb_backend/pkg/logger"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ReferenceData 参考文档的 YAML 结构：
//
//	documents:
//	  - id: 1
//	    title: 员工手册
//	    paragraphs:
//	      - id: 1
//	        text: ...
type ReferenceData struct {
	Documents []ReferenceDocument `yaml:"documents"`
}

type ReferenceDocument struct {
	ID         int64                `yaml:"id"`
	Title      string               `yaml:"title"`
	Paragraphs []ReferenceParagraph `yaml:"paragraphs"`
}

type ReferenceParagraph struct {
	ID   int64  `yaml:"id"`
	Text string `yaml:"text"`
}

type ReferenceWriter interface {
	ImportReference(ctx context.Context, docs []model.Document, paragraphs []model.Paragraph) error
}

type ReferenceImporter struct {
	Repo ReferenceWriter
}

func NewReferenceImporter(repo ReferenceWriter) *ReferenceImporter {
	return &ReferenceImporter{Repo: repo}
}

func ParseReferenceData(r io.Reader) (*ReferenceData, error) {
	var data ReferenceData
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&data); err != nil {
		if err == io.EOF {
			return &data, nil
		}
		return nil, fmt.Errorf("%w: %v", util.ErrValidation, err)
	}
	return &data, nil
}

// Rows 转换为表记录，文档ID和段落ID必须为正数且不能重复
func (d *ReferenceData) Rows() ([]model.Document, []model.Paragraph, error) {
	docs := make([]model.Document, 0, len(d.Documents))
	var paragraphs []model.Paragraph

	seenDocs := make(map[int64]bool, len(d.Documents))
	for _, doc := range d.Documents {
		if doc.ID <= 0 {
			return nil, nil, fmt.Errorf("%w: document id must be positive, got %d", util.ErrValidation, doc.ID)
		}
		if seenDocs[doc.ID] {
			return nil, nil, fmt.Errorf("%w: duplicate document id %d", util.ErrValidation, doc.ID)
		}
		seenDocs[doc.ID] = true
		docs = append(docs, model.Document{DocID: doc.ID, Title: doc.Title})

		seenParags := make(map[int64]bool, len(doc.Paragraphs))
		for _, p := range doc.Paragraphs {
			if p.ID <= 0 {
				return nil, nil, fmt.Errorf("%w: document %d: paragraph id must be positive, got %d", util.ErrValidation, doc.ID, p.ID)
			}
			if seenParags[p.ID] {
				return nil, nil, fmt.Errorf("%w: document %d: duplicate paragraph id %d", util.ErrValidation, doc.ID, p.ID)
			}
			seenParags[p.ID] = true
			paragraphs = append(paragraphs, model.Paragraph{DocID: doc.ID, ParagID: p.ID, ParagText: p.Text})
		}
	}
	return docs, paragraphs, nil
}

// Import 解析并写入参考文档，返回写入的文档数和段落数
func (s *ReferenceImporter) Import(ctx context.Context, r io.Reader) (int, int, error) {
	data, err := ParseReferenceData(r)
	if err != nil {
		return 0, 0, err
	}
	docs, paragraphs, err := data.Rows()
	if err != nil {
		return 0, 0, err
	}
	if len(docs) == 0 {
		return 0, 0, nil
	}

	if err := s.Repo.ImportReference(ctx, docs, paragraphs); err != nil {
		return 0, 0, fmt.Errorf("import reference data: %w", err)
	}

	logger.Log.Info("Reference data imported",
		zap.Int("documents", len(docs)),
		zap.Int("paragraphs", len(paragraphs)),
	)
	return len(docs), len(paragraphs), nil
}
