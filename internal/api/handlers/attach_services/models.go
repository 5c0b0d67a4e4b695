package attach_services

import attachServices "github.com/m04kA/SMC-ShiftService/internal/usecase/attach_services"

// AttachServicesRequest HTTP request model
type AttachServicesRequest struct {
	ServiceIDs []int64 `json:"serviceIds"`
}

// AttachServicesResponse HTTP response model
type AttachServicesResponse struct {
	ShiftID         int64   `json:"shiftId"`
	ServiceIDs      []int64 `json:"serviceIds"`
	DerivedShiftIDs []int64 `json:"derivedShiftIds"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *attachServices.Response) *AttachServicesResponse {
	out := &AttachServicesResponse{
		ShiftID:         resp.ShiftID,
		ServiceIDs:      resp.ServiceIDs,
		DerivedShiftIDs: resp.DerivedShiftIDs,
	}
	if out.ServiceIDs == nil {
		out.ServiceIDs = []int64{}
	}
	if out.DerivedShiftIDs == nil {
		out.DerivedShiftIDs = []int64{}
	}
	return out
}
