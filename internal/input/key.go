// Package input tracks keyboard state for the game loop and reads key
// events from a line-oriented source.
package input

import (
	"fmt"
	"strings"
)

// Key is the type of keyboard keys.
type Key int

// Keyboard keys.
const (
	KeyUnknown Key = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	KeySpace
	KeyReturn
	KeyTab
	KeyEsc
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

var keyNames [keyCount]string

var keyByName map[string]Key

func init() {
	keyNames[KeyUnknown] = "unknown"
	for k := Key0; k <= Key9; k++ {
		keyNames[k] = string(rune('0' + k - Key0))
	}
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('a' + k - KeyA))
	}
	for k := KeyF1; k <= KeyF12; k++ {
		keyNames[k] = fmt.Sprintf("f%d", k-KeyF1+1)
	}
	keyNames[KeySpace] = "space"
	keyNames[KeyReturn] = "enter"
	keyNames[KeyTab] = "tab"
	keyNames[KeyEsc] = "esc"
	keyNames[KeyBackspace] = "backspace"
	keyNames[KeyUp] = "up"
	keyNames[KeyDown] = "down"
	keyNames[KeyLeft] = "left"
	keyNames[KeyRight] = "right"

	keyByName = make(map[string]Key, len(keyNames)+2)
	for k := Key0; k < keyCount; k++ {
		keyByName[keyNames[k]] = k
	}
	keyByName["return"] = KeyReturn
	keyByName["escape"] = KeyEsc
}

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return keyNames[KeyUnknown]
	}
	return keyNames[k]
}

// ParseKey returns the Key named s. Names are case-insensitive.
func ParseKey(s string) (Key, error) {
	if k, ok := keyByName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return KeyUnknown, fmt.Errorf("unknown key %q", s)
}

// UnmarshalText implements encoding.TextUnmarshaler so keys can be
// named directly in configuration files.
func (k *Key) UnmarshalText(text []byte) error {
	v, err := ParseKey(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
