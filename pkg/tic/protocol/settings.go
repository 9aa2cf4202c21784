package protocol

import "github.com/robotalks/tic.go/pkg/tic/codec"

// GetSetting is the command code of a setting block read.
const GetSetting uint8 = 0xa8

// SettingKind identifies an entry of the setting table.
//
// Several settings are bit fields of the same byte and share an offset.
type SettingKind int

// Settings, grouped as in the device documentation.
const (
	SettingControlMode SettingKind = iota

	// Miscellaneous
	SettingDisableSafeStart
	SettingIgnoreErrLineHigh
	SettingAutoClearDriverError
	SettingNeverSleep
	SettingVinCalibration

	// Soft error response
	SettingSoftErrorResponse
	SettingSoftErrorPosition
	SettingCurrentLimitDuringError

	// Serial
	SettingSerialBaudRate
	SettingSerialEnableAltDeviceNumber
	SettingSerial14BitDeviceNumber
	SettingSerialResponseDelay
	SettingSerialCommandTimeout
	SettingSerialCRCForCommands
	SettingSerialCRCForResponses
	SettingSerial7BitResponses

	// Encoder
	SettingEncoderPrescaler
	SettingEncoderPostscaler
	SettingEncoderUnlimited

	// Input conditioning
	SettingInputAveragingEnabled
	SettingInputHysteresis

	// RC and analog scaling
	SettingInputInvert
	SettingInputMax
	SettingOutputMax
	SettingInputNeutralMax
	SettingInputNeutralMin
	SettingInputMin
	SettingOutputMin
	SettingInputScalingDegree

	// Pin Configuration
	SettingSCLConfig
	SettingSCLPinFunction
	SettingSCLEnableAnalog
	SettingSCLEnablePullUp
	SettingSCLActiveHigh
	SettingSCLKillSwitch
	SettingSCLLimitSwitchForward
	SettingSCLLimitSwitchReverse
	SettingSDAConfig
	SettingSDAPinFunction
	SettingSDAEnableAnalog
	SettingSDAEnablePullUp
	SettingSDAActiveHigh
	SettingSDAKillSwitch
	SettingSDALimitSwitchForward
	SettingSDALimitSwitchReverse
	SettingTXConfig
	SettingTXPinFunction
	SettingTXEnableAnalog
	SettingTXActiveHigh
	SettingTXKillSwitch
	SettingTXLimitSwitchForward
	SettingTXLimitSwitchReverse
	SettingRXConfig
	SettingRXPinFunction
	SettingRXEnableAnalog
	SettingRXActiveHigh
	SettingRXKillSwitch
	SettingRXLimitSwitchForward
	SettingRXLimitSwitchReverse
	SettingRCConfig
	SettingRCActiveHigh
	SettingRCKillSwitch
	SettingRCLimitSwitchForward
	SettingRCLimitSwitchReverse

	// Motor
	SettingInvertMotorDirection
	SettingMaxSpeed
	SettingStartingSpeed
	SettingMaxAcceleration
	SettingMaxDeceleration
	SettingStepMode
	SettingCurrentLimit
	SettingDecayMode

	// Homing
	SettingAutoHoming
	SettingAutoHomingForward
	SettingHomingSpeedTowards
	SettingHomingSpeedAway

	// T249-only
	SettingAGCMode
	SettingAGCBottomCurrentLimit
	SettingAGCCurrentBoostSteps
	SettingAGCFrequencyLimit

	// 36v4-only
	SettingHPEnableUnrestrictedCurrentLimits
	SettingHPFixedOffTime
	SettingHPCurrentTripBlankingTime
	SettingHPEnableAdaptiveBlankingTime
	SettingHPMixedDecayTransitionTime
	SettingHPDecayMode

	numSettings
)

var settings = [numSettings]MemorySpec{
	SettingControlMode: {Name: "control_mode", Offset: 0x01, Length: 1, Decoder: codec.Unsigned},

	// Miscellaneous
	SettingDisableSafeStart:     {Name: "disable_safe_start", Offset: 0x03, Length: 1, Decoder: codec.Bit(0)},
	SettingIgnoreErrLineHigh:    {Name: "ignore_err_line_high", Offset: 0x04, Length: 1, Decoder: codec.Bit(0)},
	SettingAutoClearDriverError: {Name: "auto_clear_driver_error", Offset: 0x08, Length: 1, Decoder: codec.Bit(0)},
	SettingNeverSleep:           {Name: "never_sleep", Offset: 0x02, Length: 1, Decoder: codec.Bit(0)},
	SettingVinCalibration:       {Name: "vin_calibration", Offset: 0x14, Length: 2, Decoder: codec.Signed},

	// Soft error response
	SettingSoftErrorResponse:       {Name: "soft_error_response", Offset: 0x53, Length: 1, Decoder: codec.Unsigned},
	SettingSoftErrorPosition:       {Name: "soft_error_position", Offset: 0x54, Length: 4, Decoder: codec.Signed},
	SettingCurrentLimitDuringError: {Name: "current_limit_during_error", Offset: 0x31, Length: 1, Decoder: codec.Unsigned},

	// Serial
	SettingSerialBaudRate:              {Name: "serial_baud_rate", Offset: 0x06, Length: 2, Decoder: codec.Unsigned},
	SettingSerialEnableAltDeviceNumber: {Name: "serial_enable_alt_device_number", Offset: 0x6a, Length: 1, Decoder: codec.Bit(7)},
	SettingSerial14BitDeviceNumber:     {Name: "serial_14bit_device_number", Offset: 0x0b, Length: 1, Decoder: codec.Bit(3)},
	SettingSerialResponseDelay:         {Name: "serial_response_delay", Offset: 0x5e, Length: 1, Decoder: codec.Unsigned},
	SettingSerialCommandTimeout:        {Name: "serial_command_timeout", Offset: 0x09, Length: 2, Decoder: codec.Unsigned},
	SettingSerialCRCForCommands:        {Name: "serial_crc_for_commands", Offset: 0x0b, Length: 1, Decoder: codec.Bit(0)},
	SettingSerialCRCForResponses:       {Name: "serial_crc_for_responses", Offset: 0x0b, Length: 1, Decoder: codec.Bit(1)},
	SettingSerial7BitResponses:         {Name: "serial_7bit_responses", Offset: 0x0b, Length: 1, Decoder: codec.Bit(2)},

	// Encoder
	SettingEncoderPrescaler:  {Name: "encoder_prescaler", Offset: 0x58, Length: 4, Decoder: codec.Unsigned},
	SettingEncoderPostscaler: {Name: "encoder_postscaler", Offset: 0x37, Length: 4, Decoder: codec.Unsigned},
	SettingEncoderUnlimited:  {Name: "encoder_unlimited", Offset: 0x5c, Length: 1, Decoder: codec.Bit(0)},

	// Input conditioning
	SettingInputAveragingEnabled: {Name: "input_averaging_enabled", Offset: 0x2e, Length: 1, Decoder: codec.Bit(0)},
	SettingInputHysteresis:       {Name: "input_hysteresis", Offset: 0x2f, Length: 2, Decoder: codec.Unsigned},

	// RC and analog scaling
	SettingInputInvert:        {Name: "input_invert", Offset: 0x21, Length: 1, Decoder: codec.Bit(0)},
	SettingInputMax:           {Name: "input_max", Offset: 0x28, Length: 2, Decoder: codec.Unsigned},
	SettingOutputMax:          {Name: "output_max", Offset: 0x32, Length: 4, Decoder: codec.Signed},
	SettingInputNeutralMax:    {Name: "input_neutral_max", Offset: 0x26, Length: 2, Decoder: codec.Unsigned},
	SettingInputNeutralMin:    {Name: "input_neutral_min", Offset: 0x24, Length: 2, Decoder: codec.Unsigned},
	SettingInputMin:           {Name: "input_min", Offset: 0x22, Length: 2, Decoder: codec.Unsigned},
	SettingOutputMin:          {Name: "output_min", Offset: 0x2a, Length: 4, Decoder: codec.Signed},
	SettingInputScalingDegree: {Name: "input_scaling_degree", Offset: 0x20, Length: 1, Decoder: codec.Unsigned},

	// Pin Configuration
	SettingSCLConfig:             {Name: "scl_config", Offset: 0x3b, Length: 1, Decoder: codec.Raw},
	SettingSCLPinFunction:        {Name: "scl_pin_function", Offset: 0x3b, Length: 1, Decoder: codec.Bits(0, 3)},
	SettingSCLEnableAnalog:       {Name: "scl_enable_analog", Offset: 0x3b, Length: 1, Decoder: codec.Bit(6)},
	SettingSCLEnablePullUp:       {Name: "scl_enable_pull_up", Offset: 0x3b, Length: 1, Decoder: codec.Bit(7)},
	SettingSCLActiveHigh:         {Name: "scl_active_high", Offset: 0x36, Length: 1, Decoder: codec.Bit(0)},
	SettingSCLKillSwitch:         {Name: "scl_kill_switch", Offset: 0x5d, Length: 1, Decoder: codec.Bit(0)},
	SettingSCLLimitSwitchForward: {Name: "scl_limit_switch_forward", Offset: 0x5f, Length: 1, Decoder: codec.Bit(0)},
	SettingSCLLimitSwitchReverse: {Name: "scl_limit_switch_reverse", Offset: 0x60, Length: 1, Decoder: codec.Bit(0)},
	SettingSDAConfig:             {Name: "sda_config", Offset: 0x3c, Length: 1, Decoder: codec.Raw},
	SettingSDAPinFunction:        {Name: "sda_pin_function", Offset: 0x3c, Length: 1, Decoder: codec.Bits(0, 3)},
	SettingSDAEnableAnalog:       {Name: "sda_enable_analog", Offset: 0x3c, Length: 1, Decoder: codec.Bit(6)},
	SettingSDAEnablePullUp:       {Name: "sda_enable_pull_up", Offset: 0x3c, Length: 1, Decoder: codec.Bit(7)},
	SettingSDAActiveHigh:         {Name: "sda_active_high", Offset: 0x36, Length: 1, Decoder: codec.Bit(1)},
	SettingSDAKillSwitch:         {Name: "sda_kill_switch", Offset: 0x5d, Length: 1, Decoder: codec.Bit(1)},
	SettingSDALimitSwitchForward: {Name: "sda_limit_switch_forward", Offset: 0x5f, Length: 1, Decoder: codec.Bit(1)},
	SettingSDALimitSwitchReverse: {Name: "sda_limit_switch_reverse", Offset: 0x60, Length: 1, Decoder: codec.Bit(1)},
	SettingTXConfig:              {Name: "tx_config", Offset: 0x3d, Length: 1, Decoder: codec.Raw},
	SettingTXPinFunction:         {Name: "tx_pin_function", Offset: 0x3d, Length: 1, Decoder: codec.Bits(0, 3)},
	SettingTXEnableAnalog:        {Name: "tx_enable_analog", Offset: 0x3d, Length: 1, Decoder: codec.Bit(6)},
	SettingTXActiveHigh:          {Name: "tx_active_high", Offset: 0x36, Length: 1, Decoder: codec.Bit(2)},
	SettingTXKillSwitch:          {Name: "tx_kill_switch", Offset: 0x5d, Length: 1, Decoder: codec.Bit(2)},
	SettingTXLimitSwitchForward:  {Name: "tx_limit_switch_forward", Offset: 0x5f, Length: 1, Decoder: codec.Bit(2)},
	SettingTXLimitSwitchReverse:  {Name: "tx_limit_switch_reverse", Offset: 0x60, Length: 1, Decoder: codec.Bit(2)},
	SettingRXConfig:              {Name: "rx_config", Offset: 0x3e, Length: 1, Decoder: codec.Raw},
	SettingRXPinFunction:         {Name: "rx_pin_function", Offset: 0x3e, Length: 1, Decoder: codec.Bits(0, 3)},
	SettingRXEnableAnalog:        {Name: "rx_enable_analog", Offset: 0x3e, Length: 1, Decoder: codec.Bit(6)},
	SettingRXActiveHigh:          {Name: "rx_active_high", Offset: 0x36, Length: 1, Decoder: codec.Bit(3)},
	SettingRXKillSwitch:          {Name: "rx_kill_switch", Offset: 0x5d, Length: 1, Decoder: codec.Bit(3)},
	SettingRXLimitSwitchForward:  {Name: "rx_limit_switch_forward", Offset: 0x5f, Length: 1, Decoder: codec.Bit(3)},
	SettingRXLimitSwitchReverse:  {Name: "rx_limit_switch_reverse", Offset: 0x60, Length: 1, Decoder: codec.Bit(3)},
	SettingRCConfig:              {Name: "rc_config", Offset: 0x3f, Length: 1, Decoder: codec.Raw},
	SettingRCActiveHigh:          {Name: "rc_active_high", Offset: 0x36, Length: 1, Decoder: codec.Bit(4)},
	SettingRCKillSwitch:          {Name: "rc_kill_switch", Offset: 0x5d, Length: 1, Decoder: codec.Bit(4)},
	SettingRCLimitSwitchForward:  {Name: "rc_limit_switch_forward", Offset: 0x5f, Length: 1, Decoder: codec.Bit(4)},
	SettingRCLimitSwitchReverse:  {Name: "rc_limit_switch_reverse", Offset: 0x60, Length: 1, Decoder: codec.Bit(4)},

	// Motor
	SettingInvertMotorDirection: {Name: "invert_motor_direction", Offset: 0x1b, Length: 1, Decoder: codec.Bit(0)},
	SettingMaxSpeed:             {Name: "max_speed", Offset: 0x47, Length: 4, Decoder: codec.Unsigned},
	SettingStartingSpeed:        {Name: "starting_speed", Offset: 0x43, Length: 4, Decoder: codec.Unsigned},
	SettingMaxAcceleration:      {Name: "max_acceleration", Offset: 0x4f, Length: 4, Decoder: codec.Unsigned},
	SettingMaxDeceleration:      {Name: "max_deceleration", Offset: 0x4b, Length: 4, Decoder: codec.Unsigned},
	SettingStepMode:             {Name: "step_mode", Offset: 0x41, Length: 1, Decoder: codec.Unsigned},
	SettingCurrentLimit:         {Name: "current_limit", Offset: 0x40, Length: 1, Decoder: codec.Unsigned},
	SettingDecayMode:            {Name: "decay_mode", Offset: 0x42, Length: 1, Decoder: codec.Unsigned},

	// Homing
	SettingAutoHoming:         {Name: "auto_homing", Offset: 0x02, Length: 1, Decoder: codec.Bit(1)},
	SettingAutoHomingForward:  {Name: "auto_homing_forward", Offset: 0x03, Length: 1, Decoder: codec.Bit(2)},
	SettingHomingSpeedTowards: {Name: "homing_speed_towards", Offset: 0x61, Length: 4, Decoder: codec.Unsigned},
	SettingHomingSpeedAway:    {Name: "homing_speed_away", Offset: 0x65, Length: 4, Decoder: codec.Unsigned},

	// T249-only
	SettingAGCMode:               {Name: "agc_mode", Offset: 0x6c, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},
	SettingAGCBottomCurrentLimit: {Name: "agc_bottom_current_limit", Offset: 0x6d, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},
	SettingAGCCurrentBoostSteps:  {Name: "agc_current_boost_steps", Offset: 0x6e, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},
	SettingAGCFrequencyLimit:     {Name: "agc_frequency_limit", Offset: 0x6f, Length: 1, Decoder: codec.Unsigned, Models: onlyT249},

	// 36v4-only
	SettingHPEnableUnrestrictedCurrentLimits: {Name: "hp_enable_unrestricted_current_limits", Offset: 0x6c, Length: 1, Decoder: codec.Bit(0), Models: only36v4},
	SettingHPFixedOffTime:                    {Name: "hp_fixed_off_time", Offset: 0xf6, Length: 1, Decoder: codec.Unsigned, Models: only36v4},
	SettingHPCurrentTripBlankingTime:         {Name: "hp_current_trip_blanking_time", Offset: 0xf8, Length: 1, Decoder: codec.Unsigned, Models: only36v4},
	SettingHPEnableAdaptiveBlankingTime:      {Name: "hp_enable_adaptive_blanking_time", Offset: 0xf9, Length: 1, Decoder: codec.Bit(0), Models: only36v4},
	SettingHPMixedDecayTransitionTime:        {Name: "hp_mixed_decay_transition_time", Offset: 0xfa, Length: 1, Decoder: codec.Unsigned, Models: only36v4},
	SettingHPDecayMode:                       {Name: "hp_decay_mode", Offset: 0xfb, Length: 1, Decoder: codec.Unsigned, Models: only36v4},
}

// Spec returns the table entry of k.
func (k SettingKind) Spec() MemorySpec {
	return settings[k]
}

// IsValid reports whether k is in the table.
func (k SettingKind) IsValid() bool {
	return k >= 0 && k < numSettings
}

// String implements fmt.Stringer.
func (k SettingKind) String() string {
	if !k.IsValid() {
		return "invalid setting"
	}
	return settings[k].Name
}

// Settings lists all setting kinds in table order.
func Settings() []SettingKind {
	kinds := make([]SettingKind, numSettings)
	for n := range kinds {
		kinds[n] = SettingKind(n)
	}
	return kinds
}

var settingsByName = indexByName(settings[:])

// SettingByName looks up a setting by its name, e.g. "control_mode".
func SettingByName(name string) (SettingKind, bool) {
	n, ok := settingsByName[name]
	return SettingKind(n), ok
}
