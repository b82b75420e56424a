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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// OverrideEnv is the name of the environment variable that can be used to
// override values in the prefs file. The format of the variable is a list of
// key/value pairs:
//
//	TITANPATCH_PREFS="fov::110; fullscreen::false"
const OverrideEnv = "TITANPATCH_PREFS"

var overrides struct {
	crit  sync.Mutex
	stack []map[string]string
}

// SizeOverrideStack returns the number of groups that have been added with
// PushOverrides().
func SizeOverrideStack() int {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()
	return len(overrides.stack)
}

// PopOverrides forgets the most recent group added by PushOverrides().
//
// Returns the unused overrides of the group as a string in the same format
// given to PushOverrides(). Keys are sorted.
func PopOverrides() string {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()

	if len(overrides.stack) == 0 {
		return ""
	}

	popped := overrides.stack[len(overrides.stack)-1]
	overrides.stack = overrides.stack[:len(overrides.stack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s::%s; ", key, popped[key]))
	}

	return strings.TrimSuffix(s.String(), "; ")
}

// PushOverrides parses a string of key/value pairs and adds it as a new
// group. Malformed pairs are ignored.
func PushOverrides(prefs string) {
	grp := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			grp[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	overrides.crit.Lock()
	defer overrides.crit.Unlock()
	overrides.stack = append(overrides.stack, grp)
}

// GetOverride returns the value for the key from the most recent group. The
// value is deleted when it is returned.
func GetOverride(key string) (string, bool) {
	overrides.crit.Lock()
	defer overrides.crit.Unlock()

	if len(overrides.stack) == 0 {
		return "", false
	}

	grp := overrides.stack[len(overrides.stack)-1]
	if v, ok := grp[key]; ok {
		delete(grp, key)
		return v, true
	}

	return "", false
}
