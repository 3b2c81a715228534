package contract

import "github.com/jjCode01/xer-pro/internal/app"

type AnalyzeRequest = app.AnalyzeRequest

func NewAnalyzeRequest(path string) AnalyzeRequest {
	return app.NewAnalyzeRequest(path)
}

type AnalyzeResponse = app.AnalyzeResponse
