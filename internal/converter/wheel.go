package converter

import (
	"cases_backend/internal/api/dto/wheel"
	"cases_backend/internal/model"
)

func ToWheelSpinResponse(res model.WheelResult) wheel.SpinResponse {
	return wheel.SpinResponse{
		Prize:   res.Prize,
		Balance: res.Balance,
	}
}

func ToWheelStatusResponse(status model.WheelStatus) wheel.StatusResponse {
	return wheel.StatusResponse{
		Available: status.Available,
		Remaining: status.Remaining,
	}
}
