package app

import (
	"context"

	"github.com/jjCode01/xer-pro/internal/schedule"
)

type OpenScheduleUseCase interface {
	Open(ctx context.Context, src Source) (*schedule.Schedule, error)
}

type AnalyzeUseCase interface {
	Analyze(ctx context.Context, req AnalyzeRequest) (*AnalyzeResponse, error)
}

type CompareUseCase interface {
	Compare(ctx context.Context, req CompareRequest) (*CompareResponse, error)
}
