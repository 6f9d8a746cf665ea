package inmemdb

import (
	"sync"

	"github.com/trezcool/unitrack/core/college"
	"github.com/trezcool/unitrack/core/student"
)

type (
	DB struct {
		college *collegeTable
		student *studentTable
	}

	collegeTable struct {
		sync.RWMutex
		table map[string]*college.College
	}

	studentTable struct {
		sync.RWMutex
		table map[string]*student.Student
	}
)

func Open() *DB {
	return &DB{
		college: &collegeTable{table: make(map[string]*college.College)},
		student: &studentTable{table: make(map[string]*student.Student)},
	}
}

// Reset drops every row. Used by tests.
func (db *DB) Reset() {
	db.college.Lock()
	db.college.table = make(map[string]*college.College)
	db.college.Unlock()

	db.student.Lock()
	db.student.table = make(map[string]*student.Student)
	db.student.Unlock()
}
