package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogStatus_Valid(t *testing.T) {
	assert.True(t, LogStatusActive.Valid())
	assert.True(t, LogStatusPendingApproval.Valid())
	assert.True(t, LogStatusPaid.Valid())
	assert.True(t, LogStatusRejected.Valid())
	assert.False(t, LogStatus("OPEN").Valid())
	assert.False(t, LogStatus("").Valid())
}

func TestLogStatus_Terminal(t *testing.T) {
	assert.False(t, LogStatusActive.Terminal())
	assert.False(t, LogStatusPendingApproval.Terminal())
	assert.True(t, LogStatusPaid.Terminal())
	assert.True(t, LogStatusRejected.Terminal())
}

func TestStartTimerRequest_Validate(t *testing.T) {
	req := StartTimerRequest{JobID: "job-1", WorkerID: "worker-1"}
	assert.NoError(t, req.Validate())

	req = StartTimerRequest{WorkerID: "worker-1"}
	assert.Error(t, req.Validate())

	req = StartTimerRequest{JobID: "job-1", WorkerID: "   "}
	assert.Error(t, req.Validate())

	req = StartTimerRequest{JobID: "job-1", WorkerID: "worker-1", HourlyRate: -100}
	assert.Error(t, req.Validate())
}

func TestStopTimerRequest_Validate(t *testing.T) {
	req := StopTimerRequest{WorkerID: "worker-1"}
	assert.NoError(t, req.Validate())

	req = StopTimerRequest{}
	assert.Error(t, req.Validate())
}

func TestCreateJobRequest_Validate(t *testing.T) {
	req := CreateJobRequest{EmployerID: "emp-1", Title: "Data migration", HourlyRate: 4500}
	assert.NoError(t, req.Validate())

	req = CreateJobRequest{Title: "Data migration", HourlyRate: 4500}
	assert.Error(t, req.Validate())

	req = CreateJobRequest{EmployerID: "emp-1", HourlyRate: 4500}
	assert.Error(t, req.Validate())

	req = CreateJobRequest{EmployerID: "emp-1", Title: "Data migration"}
	assert.Error(t, req.Validate())
}
