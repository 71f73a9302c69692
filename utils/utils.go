// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package utils

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/hashing"
	"github.com/ava-labs/avalanchego/utils/perms"
	"github.com/onsi/ginkgo/v2/formatter"
)

var ErrInvalidBalance = errors.New("invalid balance")

func ToID(bytes []byte) ids.ID {
	return ids.ID(hashing.ComputeHash256Array(bytes))
}

func InitSubDirectory(rootPath string, name string) (string, error) {
	p := path.Join(rootPath, name)
	return p, os.MkdirAll(p, perms.ReadWriteExecute)
}

// Outf prints [format] to stdout, expanding color tags such as "{{green}}".
func Outf(format string, args ...interface{}) {
	s := formatter.F(format, args...)
	fmt.Fprint(formatter.ColorableStdOut, s)
}

// FormatBalance renders [bal] as a decimal string with [decimals] fractional
// digits.
func FormatBalance(bal uint64, decimals uint8) string {
	s := strconv.FormatUint(bal, 10)
	if decimals == 0 {
		return s
	}
	d := int(decimals)
	if len(s) <= d {
		s = strings.Repeat("0", d-len(s)+1) + s
	}
	return s[:len(s)-d] + "." + s[len(s)-d:]
}

// ParseBalance is the inverse of FormatBalance. Inputs with more than
// [decimals] fractional digits are rejected.
func ParseBalance(bal string, decimals uint8) (uint64, error) {
	whole, frac, _ := strings.Cut(bal, ".")
	if len(whole) == 0 && len(frac) == 0 {
		return 0, ErrInvalidBalance
	}
	if len(frac) > int(decimals) {
		return 0, ErrInvalidBalance
	}
	digits := whole + frac + strings.Repeat("0", int(decimals)-len(frac))
	for _, c := range digits {
		if c < '0' || c > '9' {
			return 0, ErrInvalidBalance
		}
	}
	v, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0, ErrInvalidBalance
	}
	return v, nil
}
