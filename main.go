package main

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"soapbox/app/config"
	"soapbox/app/filter"
	"soapbox/app/repositories"
	"soapbox/app/routes"
	"soapbox/pkg/logger"
)

const cliVersion = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("soapbox version %s\n", cliVersion)
	case "check":
		check(os.Args[2:])
	case "serve":
		serve()
	case "db":
		handleDBCommand(os.Args[2:])
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	helpText := `Usage: soapbox <command> [options]
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the comment service (SOAPBOX_ADDR, SOAPBOX_DB_PATH).
  check <text>                   Run the content filter against text and print the verdict.
  db <init|clean|backup|restore> Manage the comment database.
`
	fmt.Println(helpText)
}

// check runs the content filter from the command line. Exit status 1 means
// the text was flagged, which makes it usable from scripts.
func check(args []string) {
	if len(args) < 1 {
		fmt.Println("Error: text to check is required")
		os.Exit(1)
	}

	verdict := filter.Check(strings.Join(args, " "))
	if verdict.IsClean {
		fmt.Println("clean")
		return
	}
	for _, violation := range verdict.Violations {
		fmt.Println(violation)
	}
	os.Exit(1)
}

// serve starts the comment service.
func serve() {
	cfg := config.Load()
	log := logger.New()

	db, err := repositories.Open(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open comment store")
	}
	defer db.Close()

	router := routes.SetupRoutes(db, log)

	log.Info().Str("addr", cfg.Addr).Str("db", cfg.DBPath).Msg("starting comment service")
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
