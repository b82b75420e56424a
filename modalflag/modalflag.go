// This file is part of titanpatch.
//
// titanpatch is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// titanpatch is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with titanpatch.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"io"
	"strings"
)

const modeSeparator = "/"

// Modes parses a command line made of modes, each mode having its own flags
// and arguments. For example:
//
//	titanpatch VERIFY -patch tick.json chess.exe
//
// Output must be set for help messages to be seen.
type Modes struct {
	Output io.Writer

	// flags for the current mode. replaced by NewArgs() and NewMode()
	flags  *flag.FlagSet
	parsed bool

	args    []string
	argsIdx int

	// modes that can follow the current flags. the first is the default
	subModes []string

	// every mode selected so far. never reset
	trail []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.trail) == 0 {
		return ""
	}
	return md.trail[len(md.trail)-1]
}

// Path returns every selected mode, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.trail, modeSeparator)
}

// NewArgs sets the arguments to be parsed and starts the first mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode starts a new set of flags and sub-modes. Arguments not yet consumed
// by Parse() are carried over.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
}

// AdditionalHelp is printed after the flag and mode summary when help is
// requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed is true if Parse() has been called since the last NewArgs() or
// NewMode(), whether or not it succeeded.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// parsing succeeded. if sub-modes were added then Mode() is the selected
	// mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error returned alongside describes the problem
	ParseError
)

// Parse the flags of the current mode. If sub-modes have been added then the
// first non-flag argument selects the next mode. An argument that is not a
// sub-mode selects the default sub-mode and is left for RemainingArgs().
//
// A flag that is not recognised is an error unless sub-modes have been added.
// In that case the default sub-mode is selected and the flag is left for that
// mode to parse.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err == flag.ErrHelp {
		hw.Help(md.Output, md.Path(), md.subModes, md.additionalHelp)
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	if err != nil {
		md.trail = append(md.trail, md.subModes[0])
	} else {
		md.trail = append(md.trail, md.selectMode())
	}

	return ParseContinue, nil
}

// selectMode returns the sub-mode named by the first remaining argument,
// consuming it, or the default sub-mode if it does not name one.
func (md *Modes) selectMode() string {
	arg := strings.ToUpper(md.flags.Arg(0))
	for _, m := range md.subModes {
		if m == arg {
			md.argsIdx++
			return m
		}
	}
	return md.subModes[0]
}

// RemainingArgs returns the arguments after the flags of the current mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns a single argument from RemainingArgs(). An empty string is
// returned if there is no such argument.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes adds to the modes that can be selected by the next Parse(). The
// first sub-mode is the default. Modes are upper case and matched case
// insensitively.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
