package normalize

import "testing"

func TestClean(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation stripped", "Wow... Loved this place.", "wow loved this place"},
		{"negation preserved", "Crust is not good.", "crust is not good"},
		{"whitespace collapsed", "  so   much \t space\n", "so much space"},
		{"empty", "", ""},
		{"only noise", "!?!... ---", ""},
		{"apostrophe", "Wasn't tasty.", "wasnt tasty"},
		{"digits kept", "Waited 45 minutes!", "waited 45 minutes"},
		{"markdown link keeps text", "[great food](https://example.com/menu)", "great food"},
		{"bare url dropped", "see https://example.com for the menu", "see for the menu"},
		{"markdown emphasis", "The *best* pasta **ever**", "the best pasta ever"},
		{"unicode letters kept", "Crème brûlée was fine", "crème brûlée was fine"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Clean(c.in); got != c.want {
				t.Errorf("Clean(%q) = %q, expected %q", c.in, got, c.want)
			}
		})
	}
}

func TestCleanIsIdempotent(t *testing.T) {
	inputs := []string{
		"Wow... Loved this place.",
		"The *best* pasta **ever**",
		"  so   much   space  ",
	}
	for _, in := range inputs {
		once := Clean(in)
		if twice := Clean(once); twice != once {
			t.Errorf("Clean not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}
