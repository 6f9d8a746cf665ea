package main

import (
	"database/sql"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/unitrack/core"
	"github.com/trezcool/unitrack/core/admissions"
	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/core/student"
)

var (
	errHelp       = errors.New("help provided")
	errNoDatabase = errors.New("migrate requires the postgres database engine")
)

type commandLine struct {
	conf          *core.Config
	db            *sql.DB // nil with the in-memory engine
	validate      *validator.Validate
	collegeSvc    *college.Service
	studentSvc    *student.Service
	admissionsSvc *admissions.Service
	mailSvc       core.EmailService
	out           io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  seed -file PATH - create or update colleges from a YAML file")
	fmt.Fprintln(cli.out, "  addstudent -name NAME -email EMAIL [-gpa GPA] [-sat SCORE] [-act SCORE] - create a student")
	fmt.Fprintln(cli.out, "  token -email EMAIL [-send] - print or email an API token for a student")
	fmt.Fprintln(cli.out, "  estimate -email EMAIL -college ID[,ID...] [-send] - rank a student's chances at colleges")
	fmt.Fprintln(cli.out, "  migrate COMMAND [ARGS...] - run a goose command (up, down, status, ...) on the database")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedFile := seedCmd.String("file", "", "The YAML file listing the colleges.")

	addStudentCmd := flag.NewFlagSet("addstudent", flag.ExitOnError)
	addStudentName := addStudentCmd.String("name", "", "The student's name.")
	addStudentEmail := addStudentCmd.String("email", "", "The student's email.")
	addStudentGPA := addStudentCmd.Float64("gpa", 0, "The student's GPA, on a 4.0 scale. Unknown if 0.")
	addStudentSAT := addStudentCmd.Int("sat", 0, "The student's SAT score. Unknown if 0.")
	addStudentACT := addStudentCmd.Int("act", 0, "The student's ACT score. Unknown if 0.")

	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	tokenEmail := tokenCmd.String("email", "", "The student's email.")
	tokenSend := tokenCmd.Bool("send", false, "Email the token to the student instead of printing it.")

	estimateCmd := flag.NewFlagSet("estimate", flag.ExitOnError)
	estimateEmail := estimateCmd.String("email", "", "The student's email.")
	estimateColleges := estimateCmd.String("college", "", "Comma-separated college IDs.")
	estimateSend := estimateCmd.Bool("send", false, "Also email the report to the student.")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *seedFile == "" {
			seedCmd.Usage()
			return errHelp
		}
		return cli.seed(*seedFile)
	case "addstudent":
		if err := addStudentCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addStudentName == "" || *addStudentEmail == "" {
			addStudentCmd.Usage()
			return errHelp
		}
		return cli.addStudent(*addStudentName, *addStudentEmail, *addStudentGPA, *addStudentSAT, *addStudentACT)
	case "token":
		if err := tokenCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *tokenEmail == "" {
			tokenCmd.Usage()
			return errHelp
		}
		return cli.token(*tokenEmail, *tokenSend)
	case "estimate":
		if err := estimateCmd.Parse(args[2:]); err != nil {
			return err
		}
		ids := splitIDs(*estimateColleges)
		if *estimateEmail == "" || len(ids) == 0 {
			estimateCmd.Usage()
			return errHelp
		}
		return cli.estimate(*estimateEmail, *estimateSend, ids...)
	case "migrate":
		if len(args) < 3 {
			cli.printUsage()
			return errHelp
		}
		return cli.migrate(args[2:])
	default:
		cli.printUsage()
		return errHelp
	}
}

func splitIDs(val string) []string {
	var ids []string
	for _, id := range strings.Split(val, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
