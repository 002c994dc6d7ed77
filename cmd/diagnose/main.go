// Command diagnose inspects and optionally repairs the consistency state of a
// vendor account, addressed by phone number.
//
// Usage:
//
//	diagnose <phone> [--fix]
//
// Exit codes: 0 on success, 1 when diagnosis or repair failed, 2 on usage error.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"meatly/config"
	logs "meatly/internal/infra/log"
	"meatly/internal/infra/persistence/postgres"
	"meatly/internal/usecase/impl"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"gorm.io/gorm"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("diagnose", flag.ContinueOnError)
	fix := flags.Bool("fix", false, "repair the account when an orphaned state is found")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: diagnose <phone> [--fix]")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return exitUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()

		return exitUsage
	}
	phone := flags.Arg(0)

	cfg, err := config.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)

		return exitError
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)

		return exitError
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to PostgreSQL:", err)

		return exitError
	}
	db = db.Session(&gorm.Session{SkipDefaultTransaction: true})
	defer closeDB(db)

	uc := impl.NewDiagnosticsService(impl.DiagnosticsServiceParams{
		IdentityRepo: postgres.NewIdentityRepository(db),
		ProfileRepo:  postgres.NewProfileRepository(db),
		ShopRepo:     postgres.NewShopRepository(db),
		SessionRepo:  postgres.NewSessionRepository(db),
		ActivityRepo: postgres.NewActivityRepository(db),
		Logger:       logger,
	})

	ctx := context.Background()

	report, err := uc.Diagnose(ctx, phone)
	if err != nil {
		fmt.Fprintln(os.Stderr, "diagnosis failed:", err)

		return exitError
	}

	fmt.Printf("phone:          %s\n", report.Phone)
	fmt.Printf("classification: %s\n", report.Classification)
	fmt.Printf("identity:       %s\n", presence(report.Identity != nil))
	fmt.Printf("profile:        %s\n", presence(report.Profile != nil))

	if !*fix {
		return exitOK
	}

	result, err := uc.Repair(ctx, phone)
	if err != nil {
		fmt.Fprintln(os.Stderr, "repair failed:", err)

		return exitError
	}

	for _, step := range result.Steps {
		if step.Err != nil {
			fmt.Printf("repair %-14s FAILED: %v\n", step.Target, step.Err)

			continue
		}
		fmt.Printf("repair %-14s ok\n", step.Target)
	}

	if !result.Succeeded() {
		return exitError
	}

	fmt.Println("repair complete")

	return exitOK
}

func presence(exists bool) string {
	if exists {
		return "present"
	}

	return "missing"
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	sqlDB.Close()
}
