package statement

import "github.com/joseph-ayodele/docfields/constants"

// Record is one billable service line of a tariff statement.
type Record struct {
	Date         string `json:"date"` // DD/MM/YYYY, as printed
	Name         string `json:"name"`
	RG           string `json:"rg"`
	TractorPlate string `json:"tractor_plate,omitempty"`
	TrailerPlate string `json:"trailer_plate,omitempty"`
	Value        string `json:"value"` // "R$ <number>", as printed

	// Role is the trailing hauler category; parsed but not part of the output.
	Role string `json:"-"`
}

// Report is the statement result object written for the caller.
type Report struct {
	Status   constants.ResultStatus `json:"status"`
	Message  string                 `json:"message"`
	Services []Record               `json:"services"`
}

// SuccessMessage is attached to every successful statement report.
const SuccessMessage = "Statement services extracted successfully."

func NewReport(records []Record) Report {
	return Report{
		Status:   constants.StatusSuccess,
		Message:  SuccessMessage,
		Services: records,
	}
}
