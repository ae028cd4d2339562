// Package demodb is the in-memory store used when no NocoDB instance is
// configured. It keeps the whole dashboard usable for evaluation and tests.
package demodb

import (
	"sync"

	"github.com/vedsagar/educrm/core/activity"
	"github.com/vedsagar/educrm/core/batch"
	"github.com/vedsagar/educrm/core/category"
	"github.com/vedsagar/educrm/core/comm"
	"github.com/vedsagar/educrm/core/fees"
	"github.com/vedsagar/educrm/core/performance"
	"github.com/vedsagar/educrm/core/student"
)

type (
	DB struct {
		student    *studentTable
		batch      *batchTable
		category   *categoryTable
		payment    *paymentTable
		test       *testTable
		score      *scoreTable
		template   *templateTable
		commLog    *commLogTable
		activities *activityTable
	}

	studentTable struct {
		sync.RWMutex
		table map[int]*student.Student
		pk    int
	}
	batchTable struct {
		sync.RWMutex
		table map[int]*batch.Batch
		pk    int
	}
	categoryTable struct {
		sync.RWMutex
		table map[int]*category.Category
		pk    int
	}
	paymentTable struct {
		sync.RWMutex
		table map[int]*fees.Payment
		pk    int
	}
	testTable struct {
		sync.RWMutex
		table map[int]*performance.Test
		pk    int
	}
	scoreTable struct {
		sync.RWMutex
		table map[int]*performance.Score
		pk    int
	}
	templateTable struct {
		sync.RWMutex
		table map[int]*comm.Template
		pk    int
	}
	commLogTable struct {
		sync.RWMutex
		table map[int]*comm.Log
		pk    int
	}
	activityTable struct {
		sync.RWMutex
		table map[int]*activity.Activity
		pk    int
	}
)

func Open() (*DB, error) {
	db := &DB{
		student:    &studentTable{table: make(map[int]*student.Student)},
		batch:      &batchTable{table: make(map[int]*batch.Batch)},
		category:   &categoryTable{table: make(map[int]*category.Category)},
		payment:    &paymentTable{table: make(map[int]*fees.Payment)},
		test:       &testTable{table: make(map[int]*performance.Test)},
		score:      &scoreTable{table: make(map[int]*performance.Score)},
		template:   &templateTable{table: make(map[int]*comm.Template)},
		commLog:    &commLogTable{table: make(map[int]*comm.Log)},
		activities: &activityTable{table: make(map[int]*activity.Activity)},
	}
	return db, nil
}
