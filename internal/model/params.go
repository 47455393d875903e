package model

import "errors"

// ControlParameters are the four user-supplied scalars that drive a
// generation pass. They are pure inputs; no component mutates them.
// Units:
// - CO2Price: $/ton CO2e, 0..1000
// - YearsToReduce: years to cut annual emissions by >90%, 0..100
// - InterventionTemp: °C above pre-industrial at which interventions start, 1.0..3.0
// - InterventionDuration: years from start to finish of interventions, 0..100
type ControlParameters struct {
	CO2Price             float64
	YearsToReduce        int
	InterventionTemp     float64
	InterventionDuration int
}

// DefaultControlParameters mirrors the dashboard's initial slider positions.
func DefaultControlParameters() ControlParameters {
	return ControlParameters{
		CO2Price:             50,
		YearsToReduce:        30,
		InterventionTemp:     1.5,
		InterventionDuration: 20,
	}
}

func (p ControlParameters) Validate() error {
	if p.CO2Price < 0 || p.CO2Price > 1000 {
		return errors.New("CO2Price must be in [0, 1000]")
	}
	if p.YearsToReduce < 0 || p.YearsToReduce > 100 {
		return errors.New("YearsToReduce must be in [0, 100]")
	}
	if p.InterventionTemp < 1.0 || p.InterventionTemp > 3.0 {
		return errors.New("InterventionTemp must be in [1.0, 3.0]")
	}
	if p.InterventionDuration < 0 || p.InterventionDuration > 100 {
		return errors.New("InterventionDuration must be in [0, 100]")
	}
	return nil
}
