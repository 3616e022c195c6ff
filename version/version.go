// This file is part of goomba.
//
// goomba is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// goomba is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with goomba.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. The version number is
// set at link time:
//
//	go build -ldflags "-X github.com/Theomund/goomba/version.number=v0.1.0" ./cmd/goomba
//
// Without a version number the version is "unreleased" if the build carries
// vcs information and "local" otherwise.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "goomba"

// set by the linker
var number string

// Version returns the version string and the vcs revision. The revision is
// suffixed with "+dirty" if the source had uncommitted changes.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionString(false), "no revision information"
	}
	return fromSettings(info.Settings)
}

func versionString(vcs bool) string {
	switch {
	case number != "":
		return number
	case vcs:
		return "unreleased"
	}
	return "local"
}

func fromSettings(settings []debug.BuildSetting) (string, string) {
	var vcs, modified bool
	revision := "no revision information"

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	return versionString(vcs), revision
}

// String returns the application name and version in a single line.
func String() string {
	v, r := Version()
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}
