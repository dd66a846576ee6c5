package enrich

import "testing"

func TestRemoveEmoji_IdentityOnPlainText(t *testing.T) {
	t.Parallel()

	for _, s := range []string{
		"",
		"Hello, world! 123",
		"Job hunting tips & tricks <here>",
		"नौकरी की तलाश जारी है",
	} {
		if got := RemoveEmoji(s); got != s {
			t.Fatalf("RemoveEmoji(%q)=%q, want unchanged", s, got)
		}
	}
}

func TestRemoveEmoji_StripsEmojiRanges(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"Great day! \U0001F600\U0001F680", "Great day! "},               // emoticon + transport
		{"proud moment \U0001F1EE\U0001F1F3", "proud moment "},           // flag pair
		{"cut here ✂ done", "cut here  done"},                       // dingbat
		{"circled Ⓜ and bright ☀", "circled  and bright "},     // enclosed range sweeps these in
		{"mixed\U0001F389text\U0001F449here", "mixedtexthere"},           // pictograph + hand symbol
	}
	for _, tc := range cases {
		if got := RemoveEmoji(tc.in); got != tc.want {
			t.Fatalf("RemoveEmoji(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestRemoveEmoji_Idempotent(t *testing.T) {
	t.Parallel()

	in := "Launch \U0001F680 day \U0001F600 with flags \U0001F1EE\U0001F1F3!"
	once := RemoveEmoji(in)
	twice := RemoveEmoji(once)
	if once != twice {
		t.Fatalf("not idempotent: once=%q twice=%q", once, twice)
	}
}
