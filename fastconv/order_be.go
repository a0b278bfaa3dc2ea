//go:build mips || mips64 || ppc64 || s390x

package fastconv

import "github.com/wippyai/rtbase/target"

const native = target.BigEndian
