package helpers

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/Ritik5Prasad/Reelzzz-server/internal/config"
)

const (
	mysqlImage    = "mysql:8.4"
	mysqlDatabase = "reelzzz_test"
	mysqlUser     = "reelzzz"
	mysqlPassword = "reelzzz_test_pw"
	mysqlRootPw   = "root_test_pw"
)

// MySQLContainer wraps a throwaway MySQL container for integration
// tests.
type MySQLContainer struct {
	Container testcontainers.Container
	Host      string
	Port      string
}

// Terminate stops and removes the container.
func (m *MySQLContainer) Terminate(t *testing.T) {
	t.Helper()
	if m.Container != nil {
		if err := m.Container.Terminate(context.Background()); err != nil {
			t.Logf("Failed to terminate MySQL container: %v", err)
		}
	}
}

// StartMySQLContainer starts a MySQL container and waits until it
// accepts connections.
func StartMySQLContainer(t *testing.T) *MySQLContainer {
	t.Helper()
	ctx := context.Background()

	tcpPort, err := nat.NewPort("tcp", "3306")
	if err != nil {
		t.Fatalf("Failed to create DB port: %v", err)
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        mysqlImage,
			ExposedPorts: []string{string(tcpPort)},
			Env: map[string]string{
				"MYSQL_ROOT_PASSWORD": mysqlRootPw,
				"MYSQL_DATABASE":      mysqlDatabase,
				"MYSQL_USER":          mysqlUser,
				"MYSQL_PASSWORD":      mysqlPassword,
			},
			WaitingFor: wait.ForListeningPort(tcpPort).WithStartupTimeout(120 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("Failed to start MySQL container: %v", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to get container host: %v", err)
	}
	port, err := container.MappedPort(ctx, tcpPort)
	if err != nil {
		container.Terminate(ctx)
		t.Fatalf("Failed to get mapped port: %v", err)
	}

	mc := &MySQLContainer{Container: container, Host: host, Port: port.Port()}
	mc.waitReady(t)
	return mc
}

// waitReady polls with the raw driver until the server answers queries;
// the listening port can come up before init finishes.
func (m *MySQLContainer) waitReady(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", mysqlUser, mysqlPassword, m.Host, m.Port, mysqlDatabase)
	deadline := time.Now().Add(60 * time.Second)
	for time.Now().Before(deadline) {
		db, err := sql.Open("mysql", dsn)
		if err == nil {
			if err := db.Ping(); err == nil {
				db.Close()
				return
			}
			db.Close()
		}
		time.Sleep(2 * time.Second)
	}
	m.Terminate(t)
	t.Fatal("MySQL container never became ready")
}

// Config returns a service config pointed at the container.
func (m *MySQLContainer) Config() *config.Config {
	cfg := TestConfig()
	cfg.DBType = "mysql"
	cfg.DBHost = m.Host
	cfg.DBPort = m.Port
	cfg.DBDatabase = mysqlDatabase
	cfg.DBUser = mysqlUser
	cfg.DBPassword = mysqlPassword
	cfg.DBConnectionLimit = 5
	return cfg
}
