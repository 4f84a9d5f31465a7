package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	cipherkit "github.com/cipherkit/cipherkit-go"
)

const (
	choiceCaesarEncrypt = 1
	choiceCaesarDecrypt = 2
	choiceAffineEncrypt = 3
	choiceAffineDecrypt = 4
	choiceRSASetup      = 5
	choiceDeriveKeys    = 6
	choiceRSAEncrypt    = 7
	choiceRSADecrypt    = 8
	choiceExit          = 9
)

const menuText = `
******** CRYPTOGRAPHY MENU ********
1. Caesar Encrypt
2. Caesar Decrypt
3. Affine Encrypt
4. Affine Decrypt
5. RSA Setup
6. Derive Keys
7. RSA Encrypt
8. RSA Decrypt
9. Exit
`

// runMenu loops over the interactive menu until Exit or end of input.
// Cipher errors are printed and the menu is shown again.
func (a *app) runMenu() error {
	p := newPrompter(a.cfg.Stdin, a.cfg.Stdout)
	out := a.cfg.Stdout

	for {
		fmt.Fprint(out, menuText)
		choice, err := p.choice("Enter choice: ", choiceCaesarEncrypt, choiceExit)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if choice == choiceExit {
			return nil
		}

		a.log.Debug("menu", "choice", choice)

		err = a.menuAction(choice, p)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
		}
	}
}

func (a *app) menuAction(choice int, p *prompter) error {
	switch choice {
	case choiceCaesarEncrypt:
		return a.menuCaesar(p, false)
	case choiceCaesarDecrypt:
		return a.menuCaesar(p, true)
	case choiceAffineEncrypt:
		return a.menuAffine(p, false)
	case choiceAffineDecrypt:
		return a.menuAffine(p, true)
	case choiceRSASetup:
		return a.menuRSASetup(p)
	case choiceDeriveKeys:
		return a.menuDerive(p)
	case choiceRSAEncrypt:
		return a.menuRSAEncrypt(p)
	case choiceRSADecrypt:
		return a.menuRSADecrypt(p)
	}
	return nil
}

func banner(w io.Writer, title string) {
	const rule = "**********************************************************"
	fmt.Fprintf(w, "%s\n           Welcome To %s\n%s\n", rule, title, rule)
}

func (a *app) menuCaesar(p *prompter, decrypt bool) error {
	verb := "Encrypt"
	if decrypt {
		verb = "Decrypt"
	}
	banner(a.cfg.Stdout, "Caesar "+verb+"ion")

	text, err := p.line("Enter a String to " + verb + ": ")
	if err != nil {
		return err
	}
	k, err := p.readInt("Enter K: ")
	if err != nil {
		return err
	}

	if decrypt {
		fmt.Fprintln(a.cfg.Stdout, cipherkit.CaesarDecrypt(text, k))
	} else {
		fmt.Fprintln(a.cfg.Stdout, cipherkit.CaesarEncrypt(text, k))
	}
	return nil
}

func (a *app) menuAffine(p *prompter, decrypt bool) error {
	verb, transform := "Encrypt", cipherkit.AffineEncrypt
	if decrypt {
		verb, transform = "Decrypt", cipherkit.AffineDecrypt
	}
	banner(a.cfg.Stdout, "Affine "+verb+"ion")

	text, err := p.line("Enter a String to " + verb + ": ")
	if err != nil {
		return err
	}
	ka, err := p.readInt("Enter a: ")
	if err != nil {
		return err
	}
	kb, err := p.readInt("Enter b: ")
	if err != nil {
		return err
	}

	out, err := transform(text, ka, kb)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.cfg.Stdout, out)
	return nil
}

func (a *app) readRSAKey(p *prompter) (*cipherkit.RSAKey, error) {
	pv, err := p.readUint("Enter prime p: ")
	if err != nil {
		return nil, err
	}
	qv, err := p.readUint("Enter prime q: ")
	if err != nil {
		return nil, err
	}
	ev, err := p.readUint("Enter public key e: ")
	if err != nil {
		return nil, err
	}
	return cipherkit.RSASetup(pv, qv, ev)
}

func (a *app) menuRSASetup(p *prompter) error {
	banner(a.cfg.Stdout, "RSA Setup")

	key, err := a.readRSAKey(p)
	if err != nil {
		return err
	}

	out := a.cfg.Stdout
	fmt.Fprintf(out, "n = %d\nphi = %d\nd = %d\n", key.N, key.Phi, key.D)
	if l, err := cipherkit.LettersPerBlock(key.N); err == nil {
		fmt.Fprintf(out, "Letters per block: %d\n", l)
	}
	return nil
}

func (a *app) menuDerive(p *prompter) error {
	banner(a.cfg.Stdout, "Key Derivation")

	passphrase, err := p.line("Enter passphrase: ")
	if err != nil {
		return err
	}

	k, err := cipherkit.DeriveCaesarShift(passphrase, a.settings.salt)
	if err != nil {
		return err
	}
	ka, kb, err := cipherkit.DeriveAffineKey(passphrase, a.settings.salt)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.cfg.Stdout, "Caesar K: %d\nAffine a: %d\nAffine b: %d\n", k, ka, kb)
	return nil
}

func (a *app) menuRSAEncrypt(p *prompter) error {
	banner(a.cfg.Stdout, "RSA Encryption")

	key, err := a.readRSAKey(p)
	if err != nil {
		return err
	}
	text, err := p.line("Enter plaintext (CAPITAL LETTERS ONLY): ")
	if err != nil {
		return err
	}
	text = strings.TrimSpace(text)

	letters, err := cipherkit.LettersPerBlock(key.N)
	if err != nil {
		return err
	}
	blocks, err := key.Encrypt(text)
	if err != nil {
		return err
	}
	a.log.Debug("rsa encrypt", "lettersPerBlock", letters, "blocks", len(blocks))

	out := a.cfg.Stdout
	fmt.Fprintf(out, "\nLetters per block: %d\n", letters)
	fmt.Fprintf(out, "\nEncrypted Blocks:\n%s\n", strings.Join(formatBlocks(blocks), " "))
	return nil
}

func (a *app) menuRSADecrypt(p *prompter) error {
	banner(a.cfg.Stdout, "RSA Decryption")

	key, err := a.readRSAKey(p)
	if err != nil {
		return err
	}

	count, err := p.readInt("Enter number of cipher blocks: ")
	if err != nil {
		return err
	}
	if count < 0 {
		return fmt.Errorf("%w: negative block count %d", cipherkit.ErrMalformedBlock, count)
	}

	var blocks []cipherkit.Block
	for i := 1; i <= count; i++ {
		b, err := a.readBlock(p, i)
		if err != nil {
			return err
		}
		blocks = append(blocks, b)
	}

	text, err := key.Decrypt(blocks)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.cfg.Stdout, "Decrypted Text: %s\n", text)
	return nil
}

// readBlock prompts for block i until it parses.
func (a *app) readBlock(p *prompter, i int) (cipherkit.Block, error) {
	for {
		s, err := p.line(fmt.Sprintf("Enter cipher block %d: ", i))
		if err != nil {
			return cipherkit.Block{}, err
		}
		b, err := cipherkit.ParseBlock(s)
		if err == nil {
			return b, nil
		}
		fmt.Fprintln(a.cfg.Stdout, "Invalid block. Use VALUE or VALUE:LETTERS.")
	}
}
