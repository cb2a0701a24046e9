package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/gestorinmo/internal/devenv"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Run a throwaway gestorinmo database, and an Authorizer when AUTHZ_IMAGE is set,
with the environment variables from the .env file.

Usage:

devdb [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

Recognized variables: DB_TYPE (postgres, mysql, mariadb), DB_IMAGE, DB_DATABASE,
DB_USER, DB_PASSWORD, AUTHZ_IMAGE, AUTHZ_PORT, AUTHZ_CLIENT_ID, AUTHZ_ADMIN_SECRET

example
  devdb -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	} else {
		log.Printf("No environment file specified, using current environment variables\n")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	opts := devenv.OptionsFromEnv()
	opts.Logf = log.Printf
	containers, err := devenv.Start(ctx, opts)
	cancel()
	if err != nil {
		log.Fatalf("Failed to start containers: %v\n", err)
	}

	// Paste into the server environment
	cfg := containers.Config()
	env := map[string]string{
		"DB_TYPE":     cfg.DBType,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_DATABASE": cfg.DBDatabase,
		"DB_USER":     cfg.DBUser,
		"DB_PASSWORD": cfg.DBPassword,
	}
	if cfg.AuthzURL != "" {
		env["AUTHZ_URL"] = cfg.AuthzURL
		env["AUTHZ_CLIENT_ID"] = cfg.AuthzClientID
	}
	out, err := godotenv.Marshal(env)
	if err != nil {
		log.Fatalf("Failed to format environment: %v\n", err)
	}
	fmt.Println(out)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating containers...\n", sig)
	if err := containers.Terminate(context.Background()); err != nil {
		log.Printf("Failed to terminate containers: %v\n", err)
	}
}
