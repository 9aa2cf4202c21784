package protocol

import "github.com/robotalks/tic.go/pkg/tic/codec"

// CommandKind identifies an entry of the command table.
type CommandKind int

// Commands.
const (
	CmdSetTargetPosition CommandKind = iota
	CmdSetTargetVelocity
	CmdHaltAndSetPosition
	CmdHaltAndHold
	CmdGoHome
	CmdResetCommandTimeout
	CmdDeenergize
	CmdEnergize
	CmdExitSafeStart
	CmdEnterSafeStart
	CmdReset
	CmdClearDriverError
	CmdSetMaxSpeed
	CmdSetStartingSpeed
	CmdSetMaxAcceleration
	CmdSetMaxDeceleration
	CmdSetStepMode
	CmdSetCurrentLimit
	CmdSetDecayMode
	CmdSetAGCOption

	numCommands
)

var commands = [numCommands]CommandSpec{
	CmdSetTargetPosition:   {Name: "set_target_position", Code: 0xe0, Format: codec.FormatBits32},
	CmdSetTargetVelocity:   {Name: "set_target_velocity", Code: 0xe3, Format: codec.FormatBits32},
	CmdHaltAndSetPosition:  {Name: "halt_and_set_position", Code: 0xec, Format: codec.FormatBits32},
	CmdHaltAndHold:         {Name: "halt_and_hold", Code: 0x89, Format: codec.FormatNone},
	CmdGoHome:              {Name: "go_home", Code: 0x97, Format: codec.FormatBits7},
	CmdResetCommandTimeout: {Name: "reset_command_timeout", Code: 0x8c, Format: codec.FormatNone},
	CmdDeenergize:          {Name: "deenergize", Code: 0x86, Format: codec.FormatNone},
	CmdEnergize:            {Name: "energize", Code: 0x85, Format: codec.FormatNone},
	CmdExitSafeStart:       {Name: "exit_safe_start", Code: 0x83, Format: codec.FormatNone},
	CmdEnterSafeStart:      {Name: "enter_safe_start", Code: 0x8f, Format: codec.FormatNone},
	CmdReset:               {Name: "reset", Code: 0xb0, Format: codec.FormatNone},
	CmdClearDriverError:    {Name: "clear_driver_error", Code: 0x8a, Format: codec.FormatNone},
	CmdSetMaxSpeed:         {Name: "set_max_speed", Code: 0xe6, Format: codec.FormatBits32},
	CmdSetStartingSpeed:    {Name: "set_starting_speed", Code: 0xe5, Format: codec.FormatBits32},
	CmdSetMaxAcceleration:  {Name: "set_max_acceleration", Code: 0xea, Format: codec.FormatBits32},
	CmdSetMaxDeceleration:  {Name: "set_max_deceleration", Code: 0xe9, Format: codec.FormatBits32},
	CmdSetStepMode:         {Name: "set_step_mode", Code: 0x94, Format: codec.FormatBits7},
	CmdSetCurrentLimit:     {Name: "set_current_limit", Code: 0x91, Format: codec.FormatBits7},
	CmdSetDecayMode:        {Name: "set_decay_mode", Code: 0x92, Format: codec.FormatBits7},
	CmdSetAGCOption:        {Name: "set_agc_option", Code: 0x98, Format: codec.FormatBits7},
}

// Spec returns the table entry of k.
func (k CommandKind) Spec() CommandSpec {
	return commands[k]
}

// IsValid reports whether k is in the table.
func (k CommandKind) IsValid() bool {
	return k >= 0 && k < numCommands
}

// String implements fmt.Stringer.
func (k CommandKind) String() string {
	if !k.IsValid() {
		return "invalid command"
	}
	return commands[k].Name
}

// Commands lists all command kinds in table order.
func Commands() []CommandKind {
	kinds := make([]CommandKind, numCommands)
	for n := range kinds {
		kinds[n] = CommandKind(n)
	}
	return kinds
}

var commandsByName = func() map[string]CommandKind {
	m := make(map[string]CommandKind, numCommands)
	for n, spec := range commands {
		m[spec.Name] = CommandKind(n)
	}
	return m
}()

// CommandByName looks up a command by its name, e.g. "energize".
func CommandByName(name string) (CommandKind, bool) {
	k, ok := commandsByName[name]
	return k, ok
}
