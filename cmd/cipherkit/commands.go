package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	cipherkit "github.com/cipherkit/cipherkit-go"
)

type TextOutput struct {
	Text string `json:"text"`
}

type RSAKeyOutput struct {
	N               uint64 `json:"n"`
	Phi             uint64 `json:"phi"`
	E               uint64 `json:"e"`
	D               uint64 `json:"d"`
	LettersPerBlock int    `json:"lettersPerBlock,omitempty"`
}

type RSAEncryptOutput struct {
	LettersPerBlock int      `json:"lettersPerBlock"`
	Blocks          []string `json:"blocks"`
}

type DeriveOutput struct {
	Salt        string `json:"salt,omitempty"`
	CaesarShift int    `json:"caesarShift"`
	AffineA     int    `json:"affineA"`
	AffineB     int    `json:"affineB"`
}

func (a *app) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr())
	return fs
}

func (a *app) runCaesar(args []string) error {
	fs := a.newFlagSet("caesar")
	k := fs.Int("k", 0, "shift")
	decrypt := fs.Bool("d", false, "decrypt instead of encrypt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := strings.Join(fs.Args(), " ")
	a.log.Debug("caesar", "decrypt", *decrypt, "length", len(text))

	if *decrypt {
		return a.writeJSON(TextOutput{Text: cipherkit.CaesarDecrypt(text, *k)})
	}
	return a.writeJSON(TextOutput{Text: cipherkit.CaesarEncrypt(text, *k)})
}

func (a *app) runAffine(args []string) error {
	fs := a.newFlagSet("affine")
	ka := fs.Int("a", 1, "multiplier, coprime with 26")
	kb := fs.Int("b", 0, "offset")
	decrypt := fs.Bool("d", false, "decrypt instead of encrypt")
	if err := fs.Parse(args); err != nil {
		return err
	}

	text := strings.Join(fs.Args(), " ")
	a.log.Debug("affine", "decrypt", *decrypt, "length", len(text))

	transform := cipherkit.AffineEncrypt
	if *decrypt {
		transform = cipherkit.AffineDecrypt
	}

	out, err := transform(text, *ka, *kb)
	if err != nil {
		return err
	}
	return a.writeJSON(TextOutput{Text: out})
}

func (a *app) runRSASetup(args []string) error {
	fs := a.newFlagSet("rsa-setup")
	p := fs.Uint64("p", 0, "prime p")
	q := fs.Uint64("q", 0, "prime q")
	e := fs.Uint64("e", 0, "public exponent")
	if err := fs.Parse(args); err != nil {
		return err
	}

	key, err := cipherkit.RSASetup(*p, *q, *e)
	if err != nil {
		return err
	}

	out := RSAKeyOutput{N: key.N, Phi: key.Phi, E: key.E, D: key.D}
	if l, err := cipherkit.LettersPerBlock(key.N); err == nil {
		out.LettersPerBlock = l
	} else {
		a.log.Warn("modulus cannot hold a letter", "n", key.N)
	}
	return a.writeJSON(out)
}

func (a *app) runRSAEncrypt(args []string) error {
	fs := a.newFlagSet("rsa-encrypt")
	p := fs.Uint64("p", 0, "prime p")
	q := fs.Uint64("q", 0, "prime q")
	n := fs.Uint64("n", 0, "modulus, instead of -p and -q")
	e := fs.Uint64("e", 0, "public exponent")
	untagged := fs.Bool("untagged", false, "omit letter counts from blocks")
	if err := fs.Parse(args); err != nil {
		return err
	}

	modulus := *n
	if modulus == 0 {
		key, err := cipherkit.RSASetup(*p, *q, *e)
		if err != nil {
			return err
		}
		modulus = key.N
	}

	letters, err := cipherkit.LettersPerBlock(modulus)
	if err != nil {
		return err
	}

	var opts []cipherkit.RSAOption
	if *untagged {
		opts = append(opts, cipherkit.WithUntaggedBlocks())
	}

	blocks, err := cipherkit.RSAEncrypt(strings.Join(fs.Args(), " "), *e, modulus, opts...)
	if err != nil {
		return err
	}
	a.log.Debug("rsa encrypt", "lettersPerBlock", letters, "blocks", len(blocks))

	return a.writeJSON(RSAEncryptOutput{LettersPerBlock: letters, Blocks: formatBlocks(blocks)})
}

func (a *app) runRSADecrypt(args []string) error {
	fs := a.newFlagSet("rsa-decrypt")
	p := fs.Uint64("p", 0, "prime p")
	q := fs.Uint64("q", 0, "prime q")
	e := fs.Uint64("e", 0, "public exponent")
	n := fs.Uint64("n", 0, "modulus, with -d instead of -p -q -e")
	d := fs.Uint64("d", 0, "private exponent, with -n")
	if err := fs.Parse(args); err != nil {
		return err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	modulus, private := *n, *d
	if set["n"] || set["d"] {
		if modulus == 0 || private == 0 {
			return fmt.Errorf("rsa-decrypt: -n and -d must both be positive\n%s", usage)
		}
	} else {
		key, err := cipherkit.RSASetup(*p, *q, *e)
		if err != nil {
			return err
		}
		modulus, private = key.N, key.D
	}

	blocks, err := cipherkit.ParseBlocks(fs.Args())
	if err != nil {
		return err
	}
	a.log.Debug("rsa decrypt", "blocks", len(blocks))

	text, err := cipherkit.RSADecrypt(blocks, private, modulus)
	if err != nil {
		return err
	}
	return a.writeJSON(TextOutput{Text: text})
}

func (a *app) runDerive(args []string) error {
	fs := a.newFlagSet("derive")
	passphrase := fs.String("passphrase", "", "passphrase to derive keys from")
	saltHex := fs.String("salt", "", "hex salt (default: "+envSalt+", else random)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	salt, err := a.deriveSalt(*saltHex)
	if err != nil {
		return err
	}

	k, err := cipherkit.DeriveCaesarShift(*passphrase, salt)
	if err != nil {
		return err
	}
	ka, kb, err := cipherkit.DeriveAffineKey(*passphrase, salt)
	if err != nil {
		return err
	}

	return a.writeJSON(DeriveOutput{
		Salt:        hex.EncodeToString(salt),
		CaesarShift: k,
		AffineA:     ka,
		AffineB:     kb,
	})
}

// deriveSalt prefers the flag, then the configured salt, then a fresh
// random one.
func (a *app) deriveSalt(flagHex string) ([]byte, error) {
	if flagHex != "" {
		salt, err := hex.DecodeString(flagHex)
		if err != nil {
			return nil, fmt.Errorf("salt: %w", err)
		}
		return salt, nil
	}
	if len(a.settings.salt) > 0 {
		return a.settings.salt, nil
	}
	return cipherkit.NewSalt()
}

func (a *app) writeJSON(v any) error {
	if err := json.NewEncoder(a.cfg.Stdout).Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func (a *app) stderr() io.Writer {
	if a.cfg.Stderr == nil {
		return io.Discard
	}
	return a.cfg.Stderr
}

func formatBlocks(blocks []cipherkit.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.String()
	}
	return out
}
