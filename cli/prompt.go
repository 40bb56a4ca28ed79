package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the input ends before a valid answer.
var ErrInputClosed = errors.New("entrada encerrada")

// IntRule restricts accepted integers. Nil fields are not checked.
type IntRule struct {
	Valid []int
	Min   *int
	Max   *int
}

func bound(n int) *int { return &n }

// Prompter asks questions on out and reads answers from in, repeating the
// question until the answer is valid.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// ReadLine prints msg and returns the trimmed answer.
func (p *Prompter) ReadLine(msg string) (string, error) {
	fmt.Fprint(p.out, msg)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *Prompter) ReadInt(msg string, rule IntRule) (int, error) {
	for {
		answer, err := p.ReadLine(msg)
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(p.out, "Digite um número inteiro válido.")
			continue
		}
		if len(rule.Valid) > 0 && !slices.Contains(rule.Valid, n) {
			fmt.Fprintf(p.out, "Valor inválido. Use: %v\n", sortedCopy(rule.Valid))
			continue
		}
		if rule.Min != nil && n < *rule.Min {
			fmt.Fprintf(p.out, "Valor inválido. Mínimo: %d\n", *rule.Min)
			continue
		}
		if rule.Max != nil && n > *rule.Max {
			fmt.Fprintf(p.out, "Valor inválido. Máximo: %d\n", *rule.Max)
			continue
		}
		return n, nil
	}
}

// ReadYesNo accepts s/sim/y/yes and n/nao/não/no, case-insensitive.
func (p *Prompter) ReadYesNo(msg string) (bool, error) {
	for {
		answer, err := p.ReadLine(msg)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "s", "sim", "y", "yes":
			return true, nil
		case "n", "nao", "não", "no":
			return false, nil
		}
		fmt.Fprintln(p.out, "Responda com S/N.")
	}
}

func sortedCopy(v []int) []int {
	out := slices.Clone(v)
	slices.Sort(out)
	return out
}
