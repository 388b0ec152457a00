// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/edulog/etugon/internal/model"
)

// ReportService is the report half of the backend contract.
type ReportService interface {
	ListReports(ctx context.Context) ([]model.Report, error)
	SubmitReport(ctx context.Context, req model.CreateReportRequest) (*model.Report, error)
	UpdateStatus(ctx context.Context, reportID int, status model.Status) error
}

// AccountService is the account half of the backend contract.
type AccountService interface {
	Login(ctx context.Context, req model.LoginRequest) (*model.LoginResponse, error)
	Signup(ctx context.Context, req model.SignupRequest) (*model.User, error)
}

// Backend combines both halves.
type Backend interface {
	ReportService
	AccountService
}

// PhotoUploader turns local photo paths into URLs the backend can store.
type PhotoUploader interface {
	Upload(ctx context.Context, paths []string) ([]string, error)
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
