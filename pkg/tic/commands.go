package tic

import "github.com/robotalks/tic.go/pkg/tic/protocol"

// SetTargetPosition starts moving to position in microsteps.
func (d *Device) SetTargetPosition(position int32) error {
	return d.Command(protocol.CmdSetTargetPosition, int64(position))
}

// SetTargetVelocity starts moving at velocity in microsteps per 10000 s.
func (d *Device) SetTargetVelocity(velocity int32) error {
	return d.Command(protocol.CmdSetTargetVelocity, int64(velocity))
}

// HaltAndSetPosition stops abruptly and sets the current position.
func (d *Device) HaltAndSetPosition(position int32) error {
	return d.Command(protocol.CmdHaltAndSetPosition, int64(position))
}

// HaltAndHold stops abruptly and keeps the motor energized.
func (d *Device) HaltAndHold() error {
	return d.Command(protocol.CmdHaltAndHold, 0)
}

// Homing directions of GoHome.
const (
	HomeReverse uint8 = 0
	HomeForward uint8 = 1
)

// GoHome starts the homing procedure in direction.
func (d *Device) GoHome(direction uint8) error {
	return d.Command(protocol.CmdGoHome, int64(direction))
}

// ResetCommandTimeout keeps the command timeout from expiring.
func (d *Device) ResetCommandTimeout() error {
	return d.Command(protocol.CmdResetCommandTimeout, 0)
}

// Deenergize disables the motor driver.
func (d *Device) Deenergize() error {
	return d.Command(protocol.CmdDeenergize, 0)
}

// Energize re-enables the motor driver after Deenergize.
func (d *Device) Energize() error {
	return d.Command(protocol.CmdEnergize, 0)
}

// ExitSafeStart allows the motor to start moving.
func (d *Device) ExitSafeStart() error {
	return d.Command(protocol.CmdExitSafeStart, 0)
}

// EnterSafeStart stops the motor as if safe start were triggered.
func (d *Device) EnterSafeStart() error {
	return d.Command(protocol.CmdEnterSafeStart, 0)
}

// Reset reloads settings and clears errors. The device may not answer for a
// short while afterwards.
func (d *Device) Reset() error {
	return d.Command(protocol.CmdReset, 0)
}

// ClearDriverError clears a latched motor driver error.
func (d *Device) ClearDriverError() error {
	return d.Command(protocol.CmdClearDriverError, 0)
}

// SetMaxSpeed temporarily overrides the max speed, in microsteps per 10000 s.
func (d *Device) SetMaxSpeed(speed uint32) error {
	return d.Command(protocol.CmdSetMaxSpeed, int64(speed))
}

// SetStartingSpeed temporarily overrides the starting speed.
func (d *Device) SetStartingSpeed(speed uint32) error {
	return d.Command(protocol.CmdSetStartingSpeed, int64(speed))
}

// SetMaxAcceleration is in microsteps per 100 s².
func (d *Device) SetMaxAcceleration(accel uint32) error {
	return d.Command(protocol.CmdSetMaxAcceleration, int64(accel))
}

// SetMaxDeceleration is in microsteps per 100 s².
func (d *Device) SetMaxDeceleration(decel uint32) error {
	return d.Command(protocol.CmdSetMaxDeceleration, int64(decel))
}

// SetStepMode temporarily overrides the step mode.
func (d *Device) SetStepMode(mode uint8) error {
	return d.Command(protocol.CmdSetStepMode, int64(mode))
}

// SetCurrentLimit takes a model specific current limit code.
func (d *Device) SetCurrentLimit(code uint8) error {
	return d.Command(protocol.CmdSetCurrentLimit, int64(code))
}

// SetDecayMode temporarily overrides the decay mode.
func (d *Device) SetDecayMode(mode uint8) error {
	return d.Command(protocol.CmdSetDecayMode, int64(mode))
}

// SetAGCOption configures automatic gain control (T249 only).
func (d *Device) SetAGCOption(option uint8) error {
	return d.Command(protocol.CmdSetAGCOption, int64(option))
}
