package service

import (
	"context"

	"github.com/jjCode01/xer-pro/internal/contract"
	"github.com/jjCode01/xer-pro/internal/schedule"
)

type ScheduleService interface {
	Open(ctx context.Context, src contract.Source) (*schedule.Schedule, error)
}

type AnalyzeService interface {
	Analyze(ctx context.Context, req contract.AnalyzeRequest) (*contract.AnalyzeResponse, error)
}

type CompareService interface {
	Compare(ctx context.Context, req contract.CompareRequest) (*contract.CompareResponse, error)
}
