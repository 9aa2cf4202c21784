// Package device exposes Tic commands, variables and settings as shell commands.
package device

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/tic.go/pkg/cli/sh"
	"github.com/robotalks/tic.go/pkg/telemetry"
	"github.com/robotalks/tic.go/pkg/tic"
	"github.com/robotalks/tic.go/pkg/tic/codec"
	"github.com/robotalks/tic.go/pkg/tic/protocol"
)

// ParseCommandValue parses the argument of a command according to its format.
func ParseCommandValue(k protocol.CommandKind, args []string) (int64, error) {
	spec := k.Spec()
	if spec.Format == codec.FormatNone {
		if len(args) > 0 {
			return 0, fmt.Errorf("%s takes no argument", spec.Name)
		}
		return 0, nil
	}
	if len(args) != 1 {
		return 0, fmt.Errorf("%s requires VALUE", spec.Name)
	}
	val, err := strconv.ParseInt(args[0], 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid VALUE: %v", err)
	}
	return val, nil
}

func commandHelp(k protocol.CommandKind) string {
	switch k.Spec().Format {
	case codec.FormatBits7:
		return "VALUE(0..127)"
	case codec.FormatBits32:
		return "VALUE(32-bit)"
	}
	return ""
}

// CommandCmds creates one shell command per device command.
func CommandCmds() []*ishell.Cmd {
	kinds := protocol.Commands()
	cmds := make([]*ishell.Cmd, 0, len(kinds))
	for _, k := range kinds {
		kind := k
		cmds = append(cmds, &ishell.Cmd{
			Name: kind.String(),
			Help: commandHelp(kind),
			Func: sh.MustBeOpen(func(c *ishell.Context) {
				val, err := ParseCommandValue(kind, c.Args)
				if err != nil {
					c.Err(err)
					return
				}
				if err := sh.DeviceFrom(c).Command(kind, val); err != nil {
					c.Err(err)
					return
				}
				sh.Print(c, "OK")
			}),
		})
	}
	return cmds
}

// ReadNamed reads one value by name or several into a map.
func ReadNamed(names []string, read func(string) (interface{}, error)) (interface{}, error) {
	if len(names) == 1 {
		return read(names[0])
	}
	values := make(map[string]interface{}, len(names))
	for _, name := range names {
		val, err := read(name)
		if err != nil {
			return nil, err
		}
		values[name] = val
	}
	return values, nil
}

// ReadRaw reads a raw block of "vars" or "settings" memory.
func ReadRaw(dev *tic.Device, area string, args []string) ([]byte, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("OFFSET and LENGTH required")
	}
	offset, err := strconv.ParseUint(args[0], 0, 8)
	if err != nil {
		return nil, fmt.Errorf("invalid OFFSET: %v", err)
	}
	length, err := strconv.ParseUint(args[1], 0, 8)
	if err != nil || length == 0 {
		return nil, fmt.Errorf("invalid LENGTH: %s", args[1])
	}
	switch area {
	case "vars", "variables":
		return dev.ReadVariables(uint8(offset), int(length))
	case "settings":
		return dev.ReadSettings(uint8(offset), int(length))
	}
	return nil, fmt.Errorf("unknown memory area %q", area)
}

// Dump takes a snapshot and encodes it, binary formats as hex.
func Dump(dev telemetry.DeviceReader, format telemetry.Format) (string, error) {
	snap, err := telemetry.Take(dev, true)
	if err != nil {
		return "", err
	}
	data, err := snap.Encode(format)
	if err != nil {
		return "", err
	}
	if format.Binary() {
		return hex.EncodeToString(data), nil
	}
	return string(data), nil
}

// ListModels maps model names to vendor:product IDs, all models when names
// is empty.
func ListModels(names []string) (map[string]interface{}, error) {
	models := protocol.Models
	if len(names) > 0 {
		models = make([]protocol.Model, 0, len(names))
		for _, name := range names {
			m, ok := protocol.ModelByName(name)
			if !ok {
				return nil, fmt.Errorf("unknown model %q", name)
			}
			models = append(models, m)
		}
	}
	ids := make(map[string]interface{}, len(models))
	for _, m := range models {
		ids[m.String()] = fmt.Sprintf("%04x:%04x", protocol.VendorID, m.ProductID())
	}
	return ids, nil
}

func readCmd(name string, aliases []string, help string, read func(*tic.Device) func(string) (interface{}, error)) *ishell.Cmd {
	return &ishell.Cmd{
		Name:    name,
		Aliases: aliases,
		Help:    help,
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("NAME required"))
				return
			}
			val, err := ReadNamed(c.Args, read(sh.DeviceFrom(c)))
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, val)
		}),
	}
}

var (
	// GetCmd reads variables.
	GetCmd = readCmd("get", []string{"g"}, "VARIABLE...", func(dev *tic.Device) func(string) (interface{}, error) {
		return dev.VariableByName
	})

	// GetAndClearCmd reads variables and clears the latched errors.
	GetAndClearCmd = readCmd("get-and-clear", nil, "VARIABLE...", func(dev *tic.Device) func(string) (interface{}, error) {
		return func(name string) (interface{}, error) {
			k, ok := protocol.VariableByName(name)
			if !ok {
				return nil, fmt.Errorf("%w: variable %q", tic.ErrUnknownName, name)
			}
			return dev.VariableAndClearErrors(k)
		}
	})

	// SettingCmd reads settings.
	SettingCmd = readCmd("setting", []string{"s"}, "SETTING...", func(dev *tic.Device) func(string) (interface{}, error) {
		return dev.SettingByName
	})

	// VarsCmd reads all variables.
	VarsCmd = ishell.Cmd{
		Name: "vars",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			vars, err := sh.DeviceFrom(c).Variables()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, vars)
		}),
	}

	// SettingsCmd reads all settings.
	SettingsCmd = ishell.Cmd{
		Name: "settings",
		Help: "",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			settings, err := sh.DeviceFrom(c).Settings()
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, settings)
		}),
	}

	// RawCmd reads raw memory.
	RawCmd = ishell.Cmd{
		Name: "raw",
		Help: "vars|settings OFFSET LENGTH",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) == 0 {
				c.Err(fmt.Errorf("vars or settings required"))
				return
			}
			data, err := ReadRaw(sh.DeviceFrom(c), c.Args[0], c.Args[1:])
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, data)
		}),
	}

	// DumpCmd prints a snapshot of all variables and settings.
	DumpCmd = ishell.Cmd{
		Name: "dump",
		Help: "[json|yaml|cbor|protobuf]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			format := telemetry.FormatYAML
			if len(c.Args) > 0 {
				format = telemetry.Format(c.Args[0])
			}
			out, err := Dump(sh.DeviceFrom(c), format)
			if err != nil {
				c.Err(err)
				return
			}
			c.Println(out)
		}),
	}

	// ModelsCmd lists the known models with their USB IDs.
	ModelsCmd = ishell.Cmd{
		Name: "models",
		Help: "[MODEL...]",
		Func: func(c *ishell.Context) {
			models, err := ListModels(c.Args)
			if err != nil {
				c.Err(err)
				return
			}
			sh.Print(c, models)
		},
	}
)

func init() {
	sh.AddCmds(CommandCmds()...)
	sh.AddCmds(
		GetCmd,
		GetAndClearCmd,
		SettingCmd,
		&VarsCmd,
		&SettingsCmd,
		&RawCmd,
		&DumpCmd,
		&ModelsCmd,
	)
}
