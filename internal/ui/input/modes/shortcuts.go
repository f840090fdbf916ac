package modes

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/ui/input/types"
	"folio/internal/ui/services/search"
	"folio/internal/ui/state"
)

// ToggleKey opens and closes the palette from anywhere
const ToggleKey = "ctrl+k"

var modifierOrder = map[string]int{"ctrl": 0, "alt": 1, "shift": 2}

var modifierAliases = map[string]string{
	"control": "ctrl",
	"ctl":     "ctrl",
	"^":       "ctrl",
	"option":  "alt",
	"opt":     "alt",
	"meta":    "alt",
	"⌥":       "alt",
	"⇧":       "shift",
}

// NormalizeShortcut canonicalizes a shortcut string so "Alt-1", "option+1"
// and "alt+1" compare equal. Modifiers are sorted ctrl, alt, shift.
func NormalizeShortcut(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == '+' || r == '-' || r == ' ' })
	if len(fields) == 0 {
		return s
	}

	key := fields[len(fields)-1]
	var mods []string
	seen := map[string]bool{}
	for _, f := range fields[:len(fields)-1] {
		if alias, ok := modifierAliases[f]; ok {
			f = alias
		}
		if !seen[f] {
			seen[f] = true
			mods = append(mods, f)
		}
	}
	sort.SliceStable(mods, func(i, j int) bool {
		oi, iok := modifierOrder[mods[i]]
		oj, jok := modifierOrder[mods[j]]
		if !iok {
			oi = len(modifierOrder)
		}
		if !jok {
			oj = len(modifierOrder)
		}
		return oi < oj
	})
	return strings.Join(append(mods, key), "+")
}

// MatchShortcut finds the suggestion bound to key
func MatchShortcut(suggestions []search.Suggestion, key string) (search.Suggestion, bool) {
	want := NormalizeShortcut(key)
	if want == "" {
		return search.Suggestion{}, false
	}
	for _, s := range suggestions {
		if s.Shortcut != "" && NormalizeShortcut(s.Shortcut) == want {
			return s, true
		}
	}
	return search.Suggestion{}, false
}

// globalKeys handles keys that mean the same thing in every mode
func globalKeys(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	key := msg.String()
	switch key {
	case "ctrl+c":
		return []types.Action{types.QuitAction{Force: true}}, true
	case ToggleKey:
		return []types.Action{types.PaletteKeyAction{Key: state.KeyToggle}}, true
	}

	// plain characters are never shortcuts; they belong to text fields
	if msg.Type == tea.KeyRunes && !msg.Alt {
		return nil, false
	}
	if s, ok := MatchShortcut(ctx.Suggestions(), key); ok {
		return []types.Action{types.ShortcutAction{ID: s.ID}}, true
	}
	return nil, false
}
