package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes enumerated or free-form text parameters.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single configured value exposed by a simulation.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the current set of parameters exposed by a sim.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterProvider is implemented by sims that can describe their config.
type ParameterProvider interface {
	Parameters() ParameterSnapshot
}

// Lookup returns the parameter stored under key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// IntParam builds an integer parameter.
func IntParam(key, label string, value int) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.Itoa(value)}
}

// Int64Param builds an integer parameter from an int64.
func Int64Param(key, label string, value int64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeInt, Value: strconv.FormatInt(value, 10)}
}

// FloatParam builds a floating-point parameter.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}

// BoolParam builds a boolean parameter.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeBool, Value: strconv.FormatBool(value)}
}

// StringParam builds a text parameter.
func StringParam(key, label, value string) Parameter {
	return Parameter{Key: key, Label: label, Type: ParamTypeString, Value: value}
}
