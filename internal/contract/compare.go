package contract

import "github.com/jjCode01/xer-pro/internal/app"

type CompareRequest = app.CompareRequest

func NewCompareRequest(first, second string) CompareRequest {
	return app.NewCompareRequest(first, second)
}

type CompareResponse = app.CompareResponse
