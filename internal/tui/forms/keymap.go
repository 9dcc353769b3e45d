// Package forms builds the huh forms the board opens as overlays.
// Every form binds its fields to pointers into state.FormState so the
// staged values survive until submit.
package forms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// formKeyMap extends the default huh keymap so shift+enter also
// inserts a newline in text fields, alongside alt+enter and ctrl+j.
func formKeyMap() *huh.KeyMap {
	keymap := huh.NewDefaultKeyMap()

	keymap.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter / alt+enter / ctrl+j", "new line"),
	)

	return keymap
}
