package api

import "github.com/openepi/covid-dashboard/dataset"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1010: "invalid parameters",

		2000: "upstream data source error",
		2001: dataset.ErrMissingSeries.Error(),
		2002: dataset.ErrMisalignedSeries.Error(),
	}

	errorInternalServer    = errorJSON(999)
	errorInvalidParameters = errorJSON(1010)

	errorUpstreamSource   = errorJSON(2000)
	errorMissingSeries    = errorJSON(2001)
	errorMisalignedSeries = errorJSON(2002)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

func errorJSON(code int64) ErrorResponse {
	return ErrorResponse{
		Code:    code,
		Message: errorMessageMap[code],
	}
}
