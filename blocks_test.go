package cipherkit

import (
	"errors"
	"testing"
)

func TestBlock_String(t *testing.T) {
	tests := []struct {
		block Block
		want  string
	}{
		{Block{Value: 328, Letters: 2}, "328:2"},
		{Block{Value: 2549}, "2549"},
		{Block{Value: 0, Letters: 1}, "0:1"},
	}

	for _, tt := range tests {
		if got := tt.block.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.block, got, tt.want)
		}
	}
}

func TestParseBlock(t *testing.T) {
	tests := []struct {
		in   string
		want Block
	}{
		{"328:2", Block{Value: 328, Letters: 2}},
		{"2549", Block{Value: 2549}},
		{" 17:1 ", Block{Value: 17, Letters: 1}},
		{"18446744073709551615", Block{Value: 18446744073709551615}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseBlock(tt.in)
			if err != nil {
				t.Fatalf("ParseBlock(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseBlock(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseBlock_Errors(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "12:", "12:x", "12:0", "12:-3", ":2", "18446744073709551616", "5:11", "5:2305843009213693952"} {
		t.Run(in, func(t *testing.T) {
			if _, err := ParseBlock(in); !errors.Is(err, ErrMalformedBlock) {
				t.Errorf("ParseBlock(%q) error = %v, want ErrMalformedBlock", in, err)
			}
		})
	}
}

func TestParseBlocks_RoundTripsString(t *testing.T) {
	blocks, err := RSAEncrypt("ATTACKATDAWN", 17, 3233)
	if err != nil {
		t.Fatalf("RSAEncrypt() error = %v", err)
	}

	fields := make([]string, len(blocks))
	for i, b := range blocks {
		fields[i] = b.String()
	}

	parsed, err := ParseBlocks(fields)
	if err != nil {
		t.Fatalf("ParseBlocks() error = %v", err)
	}
	if len(parsed) != len(blocks) {
		t.Fatalf("ParseBlocks() returned %d blocks, want %d", len(parsed), len(blocks))
	}
	for i := range blocks {
		if parsed[i] != blocks[i] {
			t.Errorf("block %d = %+v, want %+v", i, parsed[i], blocks[i])
		}
	}
}

func TestParseBlocks_StopsAtFirstError(t *testing.T) {
	blocks, err := ParseBlocks([]string{"1:1", "bad", "3"})
	if !errors.Is(err, ErrMalformedBlock) {
		t.Errorf("ParseBlocks() error = %v, want ErrMalformedBlock", err)
	}
	if blocks != nil {
		t.Errorf("ParseBlocks() = %v, want nil", blocks)
	}
}

func TestValues(t *testing.T) {
	got := Values([]Block{{Value: 1, Letters: 2}, {Value: 3}})
	if len(got) != 2 || got[0] != 1 || got[1] != 3 {
		t.Errorf("Values() = %v, want [1 3]", got)
	}
}
