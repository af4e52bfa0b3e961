// @title QA 知识库后端 API
// @version 1.0
// @description 问答知识库的检索、编辑和令牌登录接口。

// @host localhost:2000
// @BasePath /

package main

import (
	"context"
	"fmt"
	"os"

	"qa_kb_backend/internal/app"
	"qa_kb_backend/internal/config"
	"qa_kb_backend/internal/repository"
	"qa_kb_backend/pkg/database"
	"qa_kb_backend/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func main() {
	var (
		configDir   string
		migrate     bool
		migrateOnly bool
	)

	rootCmd := &cobra.Command{
		Use:   "qa-kb-backend",
		Short: "QA knowledge-base HTTP backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			// 设置迁移标志
			cfg.ForceMigrate = migrate || migrateOnly
			cfg.MigrateOnly = migrateOnly

			application := app.NewApp(cfg)
			defer logger.Log.Sync()

			// 迁移完成后直接退出
			if migrateOnly {
				logger.Log.Info("数据库迁移完成，退出程序")
				return nil
			}

			application.Run()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configDir, "config", "configs", "配置文件目录")
	rootCmd.Flags().BoolVar(&migrate, "migrate", false, "启动时强制执行数据库迁移（即使是 release 模式）")
	rootCmd.Flags().BoolVar(&migrateOnly, "migrate-only", false, "只执行数据库迁移，完成后退出")

	rootCmd.AddCommand(issueTokenCmd(&configDir))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// issueTokenCmd 生成并写入一个新的访问令牌
func issueTokenCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "issue-token",
		Short: "Generate an access token and store it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(*configDir)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			db, err := database.InitDB(&cfg.Database, false)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}

			token := uuid.NewString()
			if err := repository.NewTokenRepository(db).Create(context.Background(), token); err != nil {
				return fmt.Errorf("store token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
