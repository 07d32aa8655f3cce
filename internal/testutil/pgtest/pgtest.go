// Package pgtest 为集成测试启动一次性的 PostgreSQL 容器，Docker 不可用时相关测试被跳过。
package pgtest

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"utube/internal/config"
	"utube/internal/infra/database"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

var (
	shared  *gorm.DB
	skipMsg string
)

// Run 在 TestMain 中调用：启动容器、建表、执行测试、销毁容器
func Run(m *testing.M) int {
	ctx := context.Background()

	container, db, err := start(ctx)
	if err != nil {
		skipMsg = fmt.Sprintf("postgres container unavailable: %v", err)
	} else {
		shared = db
	}

	code := m.Run()

	if db != nil {
		_ = database.Close(db)
	}
	if container != nil {
		_ = container.Terminate(ctx)
	}
	return code
}

// Tx 返回一个事务句柄，测试结束时回滚
func Tx(t *testing.T) *gorm.DB {
	t.Helper()
	if shared == nil {
		if skipMsg == "" {
			skipMsg = "postgres container not started, call pgtest.Run from TestMain"
		}
		t.Skip(skipMsg)
	}

	tx := shared.Begin()
	if tx.Error != nil {
		t.Fatalf("begin transaction: %v", tx.Error)
	}
	t.Cleanup(func() { tx.Rollback() })
	return tx
}

func start(ctx context.Context) (testcontainers.Container, *gorm.DB, error) {
	if os.Getenv("UTUBE_SKIP_DOCKER_TESTS") != "" {
		return nil, nil, fmt.Errorf("UTUBE_SKIP_DOCKER_TESTS is set")
	}

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "postgres",
			"POSTGRES_USER":     "postgres",
			"POSTGRES_DB":       "utube_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, nil, err
	}

	host, err := container.Host(ctx)
	if err != nil {
		return container, nil, err
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container, nil, err
	}

	db, err := database.Open(&config.DatabaseConfig{
		Host:     host,
		Port:     port.Int(),
		User:     "postgres",
		Password: "postgres",
		DBName:   "utube_test",
		SSLMode:  "disable",
	})
	if err != nil {
		return container, nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return container, db, err
	}
	return container, db, nil
}
