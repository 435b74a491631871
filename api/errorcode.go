package api

import (
	"github.com/bitmark-inc/tbtrend/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",

		1100: store.ErrUnknownRegion.Error(),
		1101: "data file not found",
		1102: "malformed data file",
		1103: "resistance data without incidence year",
	}

	errorInternalServer    = errorJSON(999)
	errorInvalidParameters = errorJSON(1010)

	errorUnknownRegion  = errorJSON(1100)
	errorMissingFile    = errorJSON(1101)
	errorMalformedInput = errorJSON(1102)
	errorOrphanYear     = errorJSON(1103)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
