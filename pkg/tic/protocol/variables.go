package protocol

import "github.com/robotalks/tic.go/pkg/tic/codec"

// GetVariable is the command code of a variable block read.
const GetVariable uint8 = 0xa1

// GetVariableAndClearErrors reads variables and clears the
// "errors occurred" bits.
const GetVariableAndClearErrors uint8 = 0xa2

// VariableKind identifies an entry of the variable table.
type VariableKind int

// Variables, in the order of the device memory map.
const (
	// General status
	VarOperationState VariableKind = iota
	VarMiscFlags
	VarErrorStatus
	// VarErrorsOccurred is named "errors_occurred", formerly "error_occured".
	VarErrorsOccurred

	// Step planning
	VarPlanningMode
	VarTargetPosition
	VarTargetVelocity
	VarStartingSpeed
	VarMaxSpeed
	VarMaxDeceleration
	VarMaxAcceleration
	VarCurrentPosition
	VarCurrentVelocity
	VarActingTargetPosition
	VarTimeSinceLastStep

	// Other
	VarDeviceReset
	VarVinVoltage
	VarUptime
	VarEncoderPosition
	VarRCPulse
	VarAnalogReadingSCL
	VarAnalogReadingSDA
	VarAnalogReadingTX
	VarAnalogReadingRX
	VarDigitalReadings
	VarPinStates
	VarStepMode
	VarCurrentLimit
	VarDecayMode
	VarInputState
	VarInputAfterAveraging
	VarInputAfterHysteresis
	VarInputAfterScaling

	// T249-only
	VarLastMotorDriverError
	VarAGCMode
	VarAGCBottomCurrentLimit
	VarAGCCurrentBoostSteps
	VarAGCFrequencyLimit

	// 36v4-only
	VarLastHPDriverErrors

	numVariables
)

var variables = [numVariables]MemorySpec{
	// General status
	VarOperationState: {Name: "operation_state", Offset: 0x00, Length: 1, Decoder: codec.Unsigned},
	VarMiscFlags:      {Name: "misc_flags", Offset: 0x01, Length: 1, Decoder: codec.Raw},
	VarErrorStatus:    {Name: "error_status", Offset: 0x02, Length: 2, Decoder: codec.Raw},
	VarErrorsOccurred: {Name: "errors_occurred", Offset: 0x04, Length: 4, Decoder: codec.Raw},

	// Step planning
	VarPlanningMode:         {Name: "planning_mode", Offset: 0x09, Length: 1, Decoder: codec.Unsigned},
	VarTargetPosition:       {Name: "target_position", Offset: 0x0a, Length: 4, Decoder: codec.Signed},
	VarTargetVelocity:       {Name: "target_velocity", Offset: 0x0e, Length: 4, Decoder: codec.Signed},
	VarStartingSpeed:        {Name: "starting_speed", Offset: 0x12, Length: 4, Decoder: codec.Unsigned},
	VarMaxSpeed:             {Name: "max_speed", Offset: 0x16, Length: 4, Decoder: codec.Unsigned},
	VarMaxDeceleration:      {Name: "max_deceleration", Offset: 0x1a, Length: 4, Decoder: codec.Unsigned},
	VarMaxAcceleration:      {Name: "max_acceleration", Offset: 0x1e, Length: 4, Decoder: codec.Unsigned},
	VarCurrentPosition:      {Name: "current_position", Offset: 0x22, Length: 4, Decoder: codec.Signed},
	VarCurrentVelocity:      {Name: "current_velocity", Offset: 0x26, Length: 4, Decoder: codec.Signed},
	VarActingTargetPosition: {Name: "acting_target_position", Offset: 0x2a, Length: 4, Decoder: codec.Signed},
	VarTimeSinceLastStep:    {Name: "time_since_last_step", Offset: 0x2e, Length: 4, Decoder: codec.Unsigned},

	// Other
	VarDeviceReset:          {Name: "device_reset", Offset: 0x32, Length: 1, Decoder: codec.Unsigned},
	VarVinVoltage:           {Name: "vin_voltage", Offset: 0x33, Length: 2, Decoder: codec.Unsigned},
	VarUptime:               {Name: "uptime", Offset: 0x35, Length: 4, Decoder: codec.Unsigned},
	VarEncoderPosition:      {Name: "encoder_position", Offset: 0x39, Length: 4, Decoder: codec.Signed},
	VarRCPulse:              {Name: "rc_pulse", Offset: 0x3d, Length: 2, Decoder: codec.Unsigned},
	VarAnalogReadingSCL:     {Name: "analog_reading_scl", Offset: 0x3f, Length: 2, Decoder: codec.Unsigned},
	VarAnalogReadingSDA:     {Name: "analog_reading_sda", Offset: 0x41, Length: 2, Decoder: codec.Unsigned},
	VarAnalogReadingTX:      {Name: "analog_reading_tx", Offset: 0x43, Length: 2, Decoder: codec.Unsigned},
	VarAnalogReadingRX:      {Name: "analog_reading_rx", Offset: 0x45, Length: 2, Decoder: codec.Unsigned},
	VarDigitalReadings:      {Name: "digital_readings", Offset: 0x47, Length: 1, Decoder: codec.Raw},
	VarPinStates:            {Name: "pin_states", Offset: 0x48, Length: 1, Decoder: codec.Raw},
	VarStepMode:             {Name: "step_mode", Offset: 0x49, Length: 1, Decoder: codec.Unsigned},
	VarCurrentLimit:         {Name: "current_limit", Offset: 0x4a, Length: 1, Decoder: codec.Unsigned},
	VarDecayMode:            {Name: "decay_mode", Offset: 0x4b, Length: 1, Decoder: codec.Unsigned, Models: exceptHP},
	VarInputState:           {Name: "input_state", Offset: 0x4c, Length: 1, Decoder: codec.Unsigned},
	VarInputAfterAveraging:  {Name: "input_after_averaging", Offset: 0x4d, Length: 2, Decoder: codec.Unsigned},
	VarInputAfterHysteresis: {Name: "input_after_hysteresis", Offset: 0x4f, Length: 2, Decoder: codec.Unsigned},
	VarInputAfterScaling:    {Name: "input_after_scaling", Offset: 0x51, Length: 4, Decoder: codec.Signed},

	// T249-only
	VarLastMotorDriverError:  {Name: "last_motor_driver_error", Offset: 0x55, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},
	VarAGCMode:               {Name: "agc_mode", Offset: 0x56, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},
	VarAGCBottomCurrentLimit: {Name: "agc_bottom_current_limit", Offset: 0x57, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},
	VarAGCCurrentBoostSteps:  {Name: "agc_current_boost_steps", Offset: 0x58, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},
	VarAGCFrequencyLimit:     {Name: "agc_frequency_limit", Offset: 0x59, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},

	// 36v4-only
	VarLastHPDriverErrors: {Name: "last_hp_driver_errors", Offset: 0xff, Length: 1, Decoder: codec.Raw, Models: only36v4},
}

// Spec returns the table entry of k.
func (k VariableKind) Spec() MemorySpec {
	return variables[k]
}

// IsValid reports whether k is in the table.
func (k VariableKind) IsValid() bool {
	return k >= 0 && k < numVariables
}

// String implements fmt.Stringer.
func (k VariableKind) String() string {
	if !k.IsValid() {
		return "invalid variable"
	}
	return variables[k].Name
}

// Variables lists all variable kinds in table order.
func Variables() []VariableKind {
	kinds := make([]VariableKind, numVariables)
	for n := range kinds {
		kinds[n] = VariableKind(n)
	}
	return kinds
}

var variablesByName = indexByName(variables[:])

// VariableByName looks up a variable by its name, e.g. "current_position".
func VariableByName(name string) (VariableKind, bool) {
	n, ok := variablesByName[name]
	return VariableKind(n), ok
}
