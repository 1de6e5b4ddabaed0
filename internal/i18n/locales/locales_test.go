package locales

import "testing"

// Every locale must carry the same message IDs so a language switch can
// never drop a remediation block.
func TestLocaleKeyParity(t *testing.T) {
	for id := range MessagesEnUS {
		if _, ok := MessagesZhCN[id]; !ok {
			t.Errorf("zh-CN is missing message %q", id)
		}
	}
	for id := range MessagesZhCN {
		if _, ok := MessagesEnUS[id]; !ok {
			t.Errorf("en-US is missing message %q", id)
		}
	}
}

func TestLocaleValuesNotEmpty(t *testing.T) {
	locales := map[string]map[string]string{
		"en-US": MessagesEnUS,
		"zh-CN": MessagesZhCN,
	}
	for name, messages := range locales {
		if len(messages) == 0 {
			t.Fatalf("locale %s has no messages", name)
		}
		for id, value := range messages {
			if value == "" {
				t.Errorf("locale %s message %q is empty", name, id)
			}
		}
	}
}
