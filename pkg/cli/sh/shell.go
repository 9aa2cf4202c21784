// Package sh provides an interactive shell to operate a Tic.
package sh

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/tic.go/pkg/env"
	"github.com/robotalks/tic.go/pkg/telemetry"
	"github.com/robotalks/tic.go/pkg/tic"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	OutputJSON  bool
	AutoOpen    bool

	Shell  *ishell.Shell
	Config *env.Config
	Handle *env.Handle
}

const (
	shellKey     = "$shell"
	closedPrompt = "[closed] > "
)

var (
	// flags

	evalOnly   bool
	outputJSON bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
	flag.BoolVar(&outputJSON, "json", outputJSON, "Print output in JSON.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *env.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,
		OutputJSON:  outputJSON,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// DeviceFrom gets the open device from ishell context.
func DeviceFrom(c *ishell.Context) *tic.Device {
	return ShellFrom(c).Handle.Device
}

// MustBeOpen wraps command func requires an open device.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		if ShellFrom(c).Handle == nil {
			c.Err(fmt.Errorf("device not open"))
			return
		}
		fn(c)
	}
}

// WithAutoOpen sets AutoOpen.
func (s *Shell) WithAutoOpen(en bool) *Shell {
	s.AutoOpen = en
	return s
}

// Open opens the device using Config.
func (s *Shell) Open() error {
	h, err := s.Config.Open()
	if err != nil {
		return err
	}
	s.Close()
	s.Handle = h
	s.Shell.SetPrompt(fmt.Sprintf("[%s] > ", s.Config.Transport))
	return nil
}

// Close closes the current device.
func (s *Shell) Close() {
	if s.Handle != nil {
		s.Handle.Close()
		s.Handle = nil
		s.Shell.SetPrompt(closedPrompt)
	}
}

// Print prints a result according to OutputJSON.
func Print(c *ishell.Context, val interface{}) {
	var out strings.Builder
	if err := Format(&out, ShellFrom(c).OutputJSON, val); err != nil {
		c.Err(err)
		return
	}
	c.Print(out.String())
}

// Format writes val as JSON or as human readable text.
func Format(w io.Writer, asJSON bool, val interface{}) error {
	if asJSON {
		out, err := json.Marshal(jsonValue(val))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	if m, ok := val.(map[string]interface{}); ok {
		for _, key := range telemetry.SortedKeys(m) {
			if _, err := fmt.Fprintf(w, "%s: %s\n", key, textValue(m[key])); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintln(w, textValue(val))
	return err
}

func textValue(val interface{}) string {
	if b, ok := val.([]byte); ok {
		return "0x" + hex.EncodeToString(b)
	}
	return fmt.Sprint(val)
}

func jsonValue(val interface{}) interface{} {
	switch v := val.(type) {
	case []byte:
		return hex.EncodeToString(v)
	case map[string]interface{}:
		m := make(map[string]interface{}, len(v))
		for key, item := range v {
			m[key] = jsonValue(item)
		}
		return m
	}
	return val
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	if s.AutoOpen {
		if err := s.Open(); err != nil {
			log.Fatalf("open %s device failed: %v", s.Config.Transport, err)
		}
	}
	defer s.Close()

	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// OpenCmd opens the device, optionally switching transport.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[serial|i2c|usb]",
		Func: func(c *ishell.Context) {
			s := ShellFrom(c)
			if len(c.Args) > 0 {
				s.Config.Transport = strings.ToLower(c.Args[0])
			}
			if err := s.Open(); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes the device.
	CloseCmd = ishell.Cmd{
		Name: "close",
		Help: "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(env.MustNewConfig()).WithAutoOpen(true).Run(flag.Args()...)
}
