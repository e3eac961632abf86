// Package keymap maps symbolic key names to Windows virtual-key codes and to
// robotgo key names.
package keymap

import "strings"

// Virtual-key codes used by the login sequence.
const (
	VKBack      uint16 = 0x08
	VKTab       uint16 = 0x09
	VKReturn    uint16 = 0x0D
	VKSpace     uint16 = 0x20
	VKHome      uint16 = 0x24
	VKLeft      uint16 = 0x25
	VKUp        uint16 = 0x26
	VKRight     uint16 = 0x27
	VKDown      uint16 = 0x28
	VKDelete    uint16 = 0x2E
	VKHelp      uint16 = 0x2F
	VKMultiply  uint16 = 0x6A
	VKAdd       uint16 = 0x6B
	VKSeparator uint16 = 0x6C
	VKSubtract  uint16 = 0x6D
	VKDecimal   uint16 = 0x6E
	VKDivide    uint16 = 0x6F
)

var named = map[string]uint16{
	"+":      VKAdd,
	"-":      VKSubtract,
	"*":      VKMultiply,
	"/":      VKDivide,
	"|":      VKSeparator,
	".":      VKDecimal,
	"del":    VKDelete,
	"delete": VKDelete,
	"back":   VKBack,
	"help":   VKHelp,
	"home":   VKHome,
	"left":   VKLeft,
	"right":  VKRight,
	"down":   VKDown,
	"up":     VKUp,
	"tab":    VKTab,
	" ":      VKSpace,
	"enter":  VKReturn,
}

// robotgo spells a few keys differently.
var robotNames = map[string]string{
	"back":   "backspace",
	"del":    "delete",
	"delete": "delete",
	"home":   "home",
	"left":   "left",
	"right":  "right",
	"down":   "down",
	"up":     "up",
	"tab":    "tab",
	" ":      "space",
	"enter":  "enter",
	"+":      "+",
	"-":      "-",
	"*":      "*",
	"/":      "/",
	"|":      "|",
	".":      ".",
}

// Code returns the virtual-key code for name, or 0 when there is none.
// Single ASCII letters map case-insensitively to 'A'..'Z', digits to '0'..'9'.
func Code(name string) uint16 {
	if len(name) == 1 {
		c := name[0]
		switch {
		case c >= 'a' && c <= 'z':
			return uint16(c - ('a' - 'A'))
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			return uint16(c)
		}
	}
	return named[strings.ToLower(name)]
}

// RobotName returns the robotgo key name for name, or "" when unsupported.
func RobotName(name string) string {
	if len(name) == 1 {
		c := name[0]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			return name
		}
		if c >= 'A' && c <= 'Z' {
			return strings.ToLower(name)
		}
	}
	return robotNames[strings.ToLower(name)]
}
