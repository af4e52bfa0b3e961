// 导入参考文档和段落（documents / doc_parag）
//
// 文档和段落由外部维护，服务本身只读；首次部署或资料更新后用此脚本导入。
// 主键已存在的记录会被覆盖。
//
// 用法: go run scripts/import_reference.go data/reference.yaml

package main

import (
	"context"
	"log"
	"os"

	"qa_kb_backend/internal/config"
	"qa_kb_backend/internal/repository"
	"qa_kb_backend/internal/service"
	"qa_kb_backend/pkg/database"
	"qa_kb_backend/pkg/logger"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("用法: go run scripts/import_reference.go <reference.yaml>")
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		log.Fatalf("无法读取数据文件: %v", err)
	}
	defer f.Close()

	importer := service.NewReferenceImporter(repository.NewKnowledgeRepository(db))
	docs, paragraphs, err := importer.Import(context.Background(), f)
	if err != nil {
		log.Fatalf("导入失败: %v", err)
	}
	log.Printf("完成！文档 %d 篇，段落 %d 条", docs, paragraphs)
}
