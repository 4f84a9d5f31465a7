package main

import (
	"strings"
	"testing"
)

func runMenuInput(t *testing.T, input string) string {
	t.Helper()

	cfg, stdout, _ := newTestConfig(t, input, nil)
	if err := run([]string{"cipherkit", "menu"}, cfg); err != nil {
		t.Fatalf("run(menu) error = %v", err)
	}
	return stdout.String()
}

func TestMenu(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "exit",
			input: "9\n",
			want:  []string{"CRYPTOGRAPHY MENU", "Enter choice: "},
		},
		{
			name:  "caesar encrypt",
			input: "1\nHELLO\n3\n9\n",
			want:  []string{"Welcome To Caesar Encryption", "Enter a String to Encrypt: ", "Enter K: ", "KHOOR\n"},
		},
		{
			name:  "caesar decrypt keeps spaces",
			input: "2\nKHOOR ZRUOG\n3\n9\n",
			want:  []string{"Welcome To Caesar Decryption", "HELLO WORLD\n"},
		},
		{
			name:  "affine encrypt",
			input: "3\nHELLO\n5\n8\n9\n",
			want:  []string{"Welcome To Affine Encryption", "Enter a: ", "Enter b: ", "RCLLA\n"},
		},
		{
			name:  "affine decrypt",
			input: "4\nRCLLA\n5\n8\n9\n",
			want:  []string{"Welcome To Affine Decryption", "HELLO\n"},
		},
		{
			name:  "affine invalid key returns to menu",
			input: "3\nHELLO\n4\n8\n1\nHELLO\n3\n9\n",
			want:  []string{"Error: affine: invalid key: a = 4 is not coprime with 26", "KHOOR\n"},
		},
		{
			name:  "rsa setup",
			input: "5\n61\n53\n17\n9\n",
			want:  []string{"n = 3233", "phi = 3120", "d = 2753", "Letters per block: 2"},
		},
		{
			name:  "rsa encrypt",
			input: "7\n61\n53\n17\nHELLO\n9\n",
			want:  []string{"Welcome To RSA Encryption", "Enter prime p: ", "Enter public key e: ", "Letters per block: 2", "328:2 474:2 2549:1"},
		},
		{
			name:  "rsa encrypt invalid exponent",
			input: "7\n61\n53\n2\n9\n",
			want:  []string{"Error: rsa: invalid public exponent"},
		},
		{
			name:  "rsa encrypt non-letter",
			input: "7\n61\n53\n17\nHI THERE\n9\n",
			want:  []string{"Error: non-letter in RSA input"},
		},
		{
			name:  "rsa decrypt",
			input: "8\n61\n53\n17\n3\n328:2\n474:2\n2549:1\n9\n",
			want:  []string{"Welcome To RSA Decryption", "Enter cipher block 3: ", "Decrypted Text: HELLO\n"},
		},
		{
			name:  "rsa decrypt untagged",
			input: "8\n61\n53\n17\n3\n328\n474\n2549\n9\n",
			want:  []string{"Decrypted Text: HELLO\n"},
		},
		{
			name:  "rsa decrypt re-prompts malformed block",
			input: "8\n61\n53\n17\n1\nabc\n2549:1\n9\n",
			want:  []string{"Invalid block.", "Decrypted Text: O\n"},
		},
		{
			name:  "rsa decrypt negative count",
			input: "8\n61\n53\n17\n-1\n9\n",
			want:  []string{"Error: malformed block: negative block count -1"},
		},
		{
			name:  "derive keys",
			input: "6\nswordfish\n9\n",
			want:  []string{"Welcome To Key Derivation", "Caesar K: ", "Affine a: ", "Affine b: "},
		},
		{
			name:  "derive empty passphrase",
			input: "6\n\n9\n",
			want:  []string{"Error: invalid passphrase"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := runMenuInput(t, tt.input)
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output missing %q:\n%s", w, out)
				}
			}
		})
	}
}

func TestMenu_InvalidOption(t *testing.T) {
	out := runMenuInput(t, "x\n0\n10\n1\nHELLO\n3\n9\n")

	if got := strings.Count(out, "Invalid Option. Try again: "); got != 3 {
		t.Errorf("re-prompted %d times, want 3:\n%s", got, out)
	}
	if !strings.Contains(out, "KHOOR\n") {
		t.Errorf("output missing KHOOR:\n%s", out)
	}
}

func TestMenu_InvalidNumber(t *testing.T) {
	out := runMenuInput(t, "1\nHELLO\nthree\n3\n9\n")

	if !strings.Contains(out, "Invalid number. Try again.") {
		t.Errorf("output missing re-prompt:\n%s", out)
	}
	if !strings.Contains(out, "KHOOR\n") {
		t.Errorf("output missing KHOOR:\n%s", out)
	}
}

func TestMenu_EndOfInput(t *testing.T) {
	for _, input := range []string{"", "1\n", "1\nHELLO\n", "7\n61\n53\n", "8\n61\n53\n17\n2\n328:2\n"} {
		cfg, _, _ := newTestConfig(t, input, nil)
		if err := run([]string{"cipherkit", "menu"}, cfg); err != nil {
			t.Errorf("run(menu) with input %q error = %v", input, err)
		}
	}
}

func TestMenu_RSADecrypt_HugeBlockCount(t *testing.T) {
	// Blocks are read until input ends; the count alone allocates nothing.
	out := runMenuInput(t, "8\n61\n53\n17\n1125899906842624\n328:2\n474:2\n")

	if !strings.Contains(out, "Enter cipher block 2: ") {
		t.Errorf("output missing second block prompt:\n%s", out)
	}
	if strings.Contains(out, "Decrypted Text") {
		t.Errorf("decrypted before all blocks were read:\n%s", out)
	}
}

func TestMenu_RSADecrypt_OversizedLetterCount(t *testing.T) {
	out := runMenuInput(t, "8\n61\n53\n17\n1\n5:2305843009213693952\n5:3\n9\n")

	if !strings.Contains(out, "Invalid block. Use VALUE or VALUE:LETTERS.") {
		t.Errorf("output missing block re-prompt:\n%s", out)
	}
	if !strings.Contains(out, "Error: ") || !strings.Contains(out, "malformed block") {
		t.Errorf("output missing malformed block error:\n%s", out)
	}
}

func TestMenu_CRLFInput(t *testing.T) {
	out := runMenuInput(t, "1\r\nHELLO\r\n3\r\n9\r\n")

	if !strings.Contains(out, "KHOOR\n") {
		t.Errorf("output missing KHOOR:\n%s", out)
	}
}
