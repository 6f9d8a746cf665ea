package main

import "github.com/trezcool/unitrack/storage/database"

var runMigrationFunc = database.RunMigration // mockable

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		return errNoDatabase
	}
	return runMigrationFunc(cli.db, args[0], args[1:]...)
}
