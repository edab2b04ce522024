package cpu

import (
	"math/big"
	"regexp"
	"strconv"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var presetRegister = regexp.MustCompile(`^r([0-9]+)$`)

// ParsePresets evaluates a Starlark script and returns the values it assigns
// to the globals r0 through r9, for example:
//
//	r0 = 1 << 100
//	r1 = r0 // 3
//
// Other globals are ignored, so the script may define helpers.
func ParsePresets(script string) (preset map[int]*big.Int, err error) {
	thread := starlark.Thread{Name: "presets"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"REGISTER_COUNT": starlark.MakeInt(REGISTER_COUNT),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, "presets", script, pred)
	if err != nil {
		err = &ErrPreset{Name: "script", Err: err}
		return
	}

	preset = make(map[int]*big.Int)
	for name, value := range dict {
		match := presetRegister.FindStringSubmatch(name)
		if match == nil {
			continue
		}

		reg, _ := strconv.Atoi(match[1])
		if reg >= REGISTER_COUNT {
			err = &ErrPreset{Name: name, Err: ErrRegisterInvalid}
			return
		}

		st_int, ok := value.(starlark.Int)
		if !ok {
			err = &ErrPreset{Name: name, Err: ErrPresetNotInt}
			return
		}

		preset[reg] = st_int.BigInt()
	}

	return
}
