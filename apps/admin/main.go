package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/admissions"
	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/core/student"
	emailsvc "github.com/trezcool/unitrack/services/email"
	logsvc "github.com/trezcool/unitrack/services/logger"
	"github.com/trezcool/unitrack/storage/database"
	"github.com/trezcool/unitrack/storage/database/inmem"
	sqlxrepos "github.com/trezcool/unitrack/storage/database/sqlx"
)

func main() {
	conf := core.NewConfig()

	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug)

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	college.InitValidators(validate, translator)

	cli := commandLine{
		conf:     conf,
		validate: validate,
		out:      os.Stdout,
	}

	// set up storage
	var (
		collegeRepo college.Repository
		studentRepo student.Repository
	)
	switch conf.Database.Engine {
	case "postgres":
		if err := database.CreateIfNotExist(conf); err != nil {
			logger.Fatal(fmt.Sprintf("creating database: %v", err), err)
		}
		db, err := database.Open(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("opening database: %v", err), err)
		}
		defer db.Close()

		cli.db = db.DB
		collegeRepo = sqlxrepos.NewCollegeRepository(db)
		studentRepo = sqlxrepos.NewStudentRepository(db)
	case "memory":
		logger.Warn("Using the in-memory database: changes are lost on exit")
		db := inmemdb.Open()
		collegeRepo = inmemdb.NewCollegeRepository(db)
		studentRepo = inmemdb.NewStudentRepository(db)
	default:
		logger.Fatal(fmt.Sprintf("unknown database engine %q", conf.Database.Engine))
	}

	if conf.Debug {
		cli.mailSvc = emailsvc.NewConsoleService(conf, os.Stdout)
	} else {
		cli.mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	cli.collegeSvc = college.NewService(collegeRepo)
	cli.studentSvc = student.NewService(studentRepo)
	cli.admissionsSvc = admissions.NewService(admissions.NewEngine(conf), cli.collegeSvc, cli.studentSvc)

	// start CLI
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Error(fmt.Sprintf("%s failed", os.Args[1]), err)
			if vErrs, ok := errors.Cause(err).(validator.ValidationErrors); ok {
				for fld, msg := range core.TranslateErrors(vErrs, translator) {
					fmt.Printf("  %s: %s\n", fld, msg)
				}
			}
		}
		os.Exit(1)
	}
}
