package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/unitrack/core/college"
)

// seedFile is the layout of a seed file:
//
//   colleges:
//     - name: Harvard University
//       state: MA
//       acceptance_rate: 3.4
//       average_gpa: 3.9
//       sat_p25: 1480
//       sat_p75: 1580
type seedFile struct {
	Colleges []seedCollege `yaml:"colleges"`
}

type seedCollege struct {
	Name           string   `yaml:"name"`
	State          string   `yaml:"state"`
	AcceptanceRate float64  `yaml:"acceptance_rate"`
	AverageGPA     *float64 `yaml:"average_gpa"`
	SATP25         *int     `yaml:"sat_p25"`
	SATP75         *int     `yaml:"sat_p75"`
	ACTP25         *int     `yaml:"act_p25"`
	ACTP75         *int     `yaml:"act_p75"`
}

func (sc seedCollege) newCollege() college.NewCollege {
	return college.NewCollege{
		Name:           sc.Name,
		State:          sc.State,
		AcceptanceRate: sc.AcceptanceRate,
		AverageGPA:     null.Float64FromPtr(sc.AverageGPA),
		SATP25:         null.IntFromPtr(sc.SATP25),
		SATP75:         null.IntFromPtr(sc.SATP75),
		ACTP25:         null.IntFromPtr(sc.ACTP25),
		ACTP75:         null.IntFromPtr(sc.ACTP75),
	}
}

func readSeedFile(path string) (seedFile, error) {
	var data seedFile

	f, err := os.Open(path)
	if err != nil {
		return data, errors.Wrap(err, "opening seed file")
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&data); err != nil {
		return data, errors.Wrap(err, "decoding seed file")
	}
	return data, nil
}

// seed creates or updates (by name) every college of the file.
// The whole file is validated before anything is written.
func (cli *commandLine) seed(path string) error {
	data, err := readSeedFile(path)
	if err != nil {
		return err
	}
	if len(data.Colleges) == 0 {
		return errors.New("no colleges to seed")
	}

	colleges := make([]college.NewCollege, 0, len(data.Colleges))
	for i, sc := range data.Colleges {
		nc := sc.newCollege()
		if err = nc.Validate(cli.validate); err != nil {
			return errors.Wrapf(err, "college #%d (%s)", i+1, sc.Name)
		}
		colleges = append(colleges, nc)
	}

	var created, updated int
	ctx := context.Background()
	for _, nc := range colleges {
		_, isNew, err := cli.collegeSvc.Upsert(ctx, nc)
		if err != nil {
			return errors.Wrapf(err, "saving %s", nc.Name)
		}
		if isNew {
			created++
		} else {
			updated++
		}
	}
	fmt.Fprintf(cli.out, "colleges created: %d, updated: %d\n", created, updated)
	return nil
}
