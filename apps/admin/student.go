package main

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	echoapi "github.com/trezcool/unitrack/apps/api/echo"
	"github.com/trezcool/unitrack/core/admissions"
	"github.com/trezcool/unitrack/core/student"
)

// addStudent creates a student; zero scores are left unknown.
func (cli *commandLine) addStudent(name, email string, gpa float64, sat, act int) error {
	ctx := context.Background()
	ns := student.NewStudent{
		Name:     name,
		Email:    email,
		GPA:      null.NewFloat64(gpa, gpa != 0),
		SATScore: null.NewInt(sat, sat != 0),
		ACTScore: null.NewInt(act, act != 0),
	}
	if err := ns.Validate(ctx, cli.validate, cli.studentSvc); err != nil {
		return err
	}

	stdt, err := cli.studentSvc.Create(ctx, ns)
	if err != nil {
		return errors.Wrap(err, "creating student")
	}
	fmt.Fprintf(cli.out, "student created: %s\n", stdt.ID)
	return nil
}

func (cli *commandLine) token(email string, send bool) error {
	ctx := context.Background()
	stdt, err := cli.studentSvc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	token, err := echoapi.GenerateToken(cli.conf, stdt)
	if err != nil {
		return err
	}
	if !send {
		fmt.Fprintln(cli.out, token)
		return nil
	}

	msg := student.NewTokenEmail(stdt, token, cli.conf.Server.JWTExpirationDelta)
	if err = cli.mailSvc.SendMessages(ctx, msg); err != nil {
		return errors.Wrap(err, "sending token")
	}
	fmt.Fprintf(cli.out, "token sent to %s\n", stdt.Email)
	return nil
}

func (cli *commandLine) estimate(email string, send bool, collegeIDs ...string) error {
	ctx := context.Background()
	stdt, err := cli.studentSvc.GetByEmail(ctx, email)
	if err != nil {
		return err
	}

	ests, err := cli.admissionsSvc.Rank(ctx, stdt.ID, collegeIDs...)
	if err != nil {
		return err
	}
	for _, est := range ests {
		fmt.Fprintf(cli.out, "%3d%%  %-6s  %s\n", est.Chance, est.Category, est.CollegeName)
		fmt.Fprintf(cli.out, "      %s\n", est.Recommendation)
	}

	if send {
		if err = cli.mailSvc.SendMessages(ctx, admissions.NewReportEmail(stdt, ests)); err != nil {
			return errors.Wrap(err, "sending report")
		}
		fmt.Fprintf(cli.out, "report sent to %s\n", stdt.Email)
	}
	return nil
}
