// containers.go
//
// Property management dashboard service for small landlords
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of gestorinmo.
// gestorinmo is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// gestorinmo is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with gestorinmo.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package devenv starts throwaway database and Authorizer containers for
// local development and integration tests.
package devenv

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	"github.com/localnerve/gestorinmo/internal/config"
	"github.com/localnerve/gestorinmo/internal/database"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Options describes the containers to start
type Options struct {
	DBType     string
	DBImage    string
	DBName     string
	DBUser     string
	DBPassword string

	// Authorizer is skipped when AuthzImage is empty
	AuthzImage       string
	AuthzPort        string
	AuthzClientID    string
	AuthzAdminSecret string

	Logf func(format string, args ...interface{})
}

// OptionsFromEnv reads Options from the same variables the server uses, plus DB_IMAGE and AUTHZ_*
func OptionsFromEnv() Options {
	return Options{
		DBType:           getEnv("DB_TYPE", "postgres"),
		DBImage:          os.Getenv("DB_IMAGE"),
		DBName:           getEnv("DB_DATABASE", "gestorinmo"),
		DBUser:           getEnv("DB_USER", "gestorinmo"),
		DBPassword:       getEnv("DB_PASSWORD", "gestorinmo"),
		AuthzImage:       os.Getenv("AUTHZ_IMAGE"),
		AuthzPort:        getEnv("AUTHZ_PORT", "8080"),
		AuthzClientID:    os.Getenv("AUTHZ_CLIENT_ID"),
		AuthzAdminSecret: os.Getenv("AUTHZ_ADMIN_SECRET"),
	}
}

// Containers holds the started containers and how to reach them from the host
type Containers struct {
	Network    *testcontainers.DockerNetwork
	DB         testcontainers.Container
	Authorizer testcontainers.Container

	DBHost   string
	DBPort   string
	AuthzURL string
	opts     Options
}

// Start creates a network and starts the database, then the Authorizer when configured.
// Containers already started are terminated when a later one fails.
func Start(ctx context.Context, opts Options) (*Containers, error) {
	if opts.Logf == nil {
		opts.Logf = func(string, ...interface{}) {}
	}
	if opts.DBImage == "" {
		opts.DBImage = defaultImage(opts.DBType)
	}

	c := &Containers{opts: opts}

	nw, err := network.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create network: %w", err)
	}
	c.Network = nw

	if err := c.startDB(ctx); err != nil {
		_ = c.Terminate(context.Background())
		return nil, err
	}
	if opts.AuthzImage != "" {
		if err := c.startAuthorizer(ctx); err != nil {
			_ = c.Terminate(context.Background())
			return nil, err
		}
	}
	return c, nil
}

func (c *Containers) startDB(ctx context.Context) error {
	port, env, dataDir, err := dbSettings(c.opts)
	if err != nil {
		return err
	}
	c.logImage(ctx, c.opts.DBImage)

	dbContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        c.opts.DBImage,
			ExposedPorts: []string{string(port)},
			Env:          env,
			Networks:     []string{c.Network.Name},
			NetworkAliases: map[string][]string{
				c.Network.Name: {"db"},
			},
			HostConfigModifier: func(hostConfig *container.HostConfig) {
				hostConfig.Tmpfs = map[string]string{dataDir: "rw"}
			},
			WaitingFor: wait.ForSQL(port, sqlDriver(c.opts.DBType), func(host string, mapped nat.Port) string {
				return dsn(c.config(host, mapped.Port()))
			}).WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start database: %w", err)
	}
	c.DB = dbContainer

	host, err := dbContainer.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get database host: %w", err)
	}
	mapped, err := dbContainer.MappedPort(ctx, port)
	if err != nil {
		return fmt.Errorf("failed to get database port: %w", err)
	}
	c.DBHost = host
	c.DBPort = mapped.Port()
	c.opts.Logf("database %s ready at %s:%s", c.opts.DBType, c.DBHost, c.DBPort)
	return nil
}

func (c *Containers) startAuthorizer(ctx context.Context) error {
	port, err := nat.NewPort("tcp", c.opts.AuthzPort)
	if err != nil {
		return fmt.Errorf("invalid Authorizer port: %w", err)
	}
	c.logImage(ctx, c.opts.AuthzImage)

	authz, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        c.opts.AuthzImage,
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     c.opts.AuthzClientID,
				"PORT":          c.opts.AuthzPort,
				"DATABASE_TYPE": "sqlite",
				"DATABASE_URL":  "/tmp/authorizer.db",
				"ADMIN_SECRET":  c.opts.AuthzAdminSecret,
				"ROLES":         "admin,user",
				"DEFAULT_ROLES": "user",
			},
			Networks:   []string{c.Network.Name},
			WaitingFor: wait.ForListeningPort(port).WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		return fmt.Errorf("failed to start Authorizer: %w", err)
	}
	c.Authorizer = authz

	host, err := authz.Host(ctx)
	if err != nil {
		return fmt.Errorf("failed to get Authorizer host: %w", err)
	}
	mapped, err := authz.MappedPort(ctx, port)
	if err != nil {
		return fmt.Errorf("failed to get Authorizer port: %w", err)
	}
	c.AuthzURL = fmt.Sprintf("http://%s:%s", host, mapped.Port())
	c.opts.Logf("authorizer ready at %s", c.AuthzURL)
	return nil
}

// Config returns a server configuration pointing at the started containers
func (c *Containers) Config() *config.Config {
	cfg := c.config(c.DBHost, c.DBPort)
	cfg.AuthzURL = c.AuthzURL
	cfg.AuthzClientID = c.opts.AuthzClientID
	return cfg
}

func (c *Containers) config(host, port string) *config.Config {
	return &config.Config{
		Environment:       "development",
		DBType:            c.opts.DBType,
		DBHost:            host,
		DBPort:            port,
		DBDatabase:        c.opts.DBName,
		DBUser:            c.opts.DBUser,
		DBPassword:        c.opts.DBPassword,
		DBConnectionLimit: 5,
		SyncInterval:      5 * time.Second,
	}
}

// Terminate stops every started container and removes the network
func (c *Containers) Terminate(ctx context.Context) error {
	var errs []error
	if c.Authorizer != nil {
		if err := c.Authorizer.Terminate(ctx); err != nil {
			errs = append(errs, fmt.Errorf("terminate Authorizer: %w", err))
		}
	}
	if c.DB != nil {
		if err := c.DB.Terminate(ctx); err != nil {
			errs = append(errs, fmt.Errorf("terminate database: %w", err))
		}
	}
	if c.Network != nil {
		if err := c.Network.Remove(ctx); err != nil {
			errs = append(errs, fmt.Errorf("remove network: %w", err))
		}
	}
	return errors.Join(errs...)
}

// logImage reports whether an image has to be pulled first
func (c *Containers) logImage(ctx context.Context, imageName string) {
	exists, err := imageExists(ctx, imageName)
	switch {
	case err != nil:
		c.opts.Logf("could not list local images: %v", err)
	case !exists:
		c.opts.Logf("pulling %s", imageName)
	}
}

func imageExists(ctx context.Context, imageName string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}
	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == imageName {
				return true, nil
			}
		}
	}
	return false, nil
}

// dbSettings returns the container port, environment and data directory for a database type
func dbSettings(opts Options) (nat.Port, map[string]string, string, error) {
	switch opts.DBType {
	case "postgres":
		return "5432/tcp", map[string]string{
			"POSTGRES_DB":       opts.DBName,
			"POSTGRES_USER":     opts.DBUser,
			"POSTGRES_PASSWORD": opts.DBPassword,
		}, "/var/lib/postgresql/data", nil
	case "mysql", "mariadb":
		return "3306/tcp", map[string]string{
			"MARIADB_DATABASE":      opts.DBName,
			"MARIADB_USER":          opts.DBUser,
			"MARIADB_PASSWORD":      opts.DBPassword,
			"MARIADB_ROOT_PASSWORD": opts.DBPassword,
		}, "/var/lib/mysql", nil
	}
	return "", nil, "", fmt.Errorf("no container support for DB_TYPE %q", opts.DBType)
}

func defaultImage(dbType string) string {
	if dbType == "mysql" || dbType == "mariadb" {
		return "mariadb:11"
	}
	return "postgres:17-alpine"
}

func sqlDriver(dbType string) string {
	if dbType == "postgres" {
		return "pgx"
	}
	return "mysql"
}

func dsn(cfg *config.Config) string {
	if cfg.DBType == "postgres" {
		return database.PostgresDSN(cfg)
	}
	return database.MySQLDSN(cfg)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
