// Package driver runs the interactive prompt loop: five labelled numbers in,
// call and put prices out.
package driver

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/contactkeval/bsm-pricer/internal/logger"
	"github.com/contactkeval/bsm-pricer/internal/pricing"
	"github.com/contactkeval/bsm-pricer/internal/validation"
)

// Prompt labels, in the order the values are read.
const (
	LabelSpot   = "Stock Price:"
	LabelStrike = "Strike:"
	LabelRate   = "Interest Rate:"
	LabelExpiry = "Time to Maturity:"
	LabelVol    = "Volatility:"
)

// ErrMalformedInput is matched by every *ParseError.
var ErrMalformedInput = errors.New("malformed numeric input")

// ParseError reports a value that could not be read as a decimal number.
type ParseError struct {
	Label string // prompt the value answered
	Input string // offending text; empty when input ended early
	Err   error
}

func (e *ParseError) Error() string {
	label := strings.TrimSuffix(e.Label, ":")
	if e.Err == io.ErrUnexpectedEOF {
		return fmt.Sprintf("%s: missing value", label)
	}
	return fmt.Sprintf("%s: %q is not a number", label, e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrMalformedInput }

// Driver reads the five pricing inputs from a text stream and writes the quote.
type Driver struct {
	in     *bufio.Scanner
	out    io.Writer
	pricer *pricing.Pricer
}

// New returns a Driver reading from in and writing prompts and results to out.
// A nil pricer selects the default standard-normal pricer.
func New(in io.Reader, out io.Writer, pricer *pricing.Pricer) *Driver {
	if pricer == nil {
		pricer = pricing.NewPricer(nil)
	}
	return &Driver{in: bufio.NewScanner(in), out: out, pricer: pricer}
}

// Run prompts for S, K, r, T and σ, prices them and prints
// "Call = <C>" and "Put = <P>".
func (d *Driver) Run() error {
	in, err := d.readInputs()
	if err != nil {
		return err
	}
	logger.Debugf("read inputs %+v", in)

	if err := validation.ValidateInputs(in); err != nil {
		return err
	}

	q := d.pricer.Price(in)
	logger.Tracef("quote %+v", q)

	if _, err := fmt.Fprintf(d.out, "Call = %v\nPut = %v\n", q.Call, q.Put); err != nil {
		return fmt.Errorf("writing quote: %w", err)
	}
	return nil
}

func (d *Driver) readInputs() (pricing.Inputs, error) {
	var in pricing.Inputs
	fields := []struct {
		label string
		dst   *float64
	}{
		{LabelSpot, &in.Spot},
		{LabelStrike, &in.Strike},
		{LabelRate, &in.Rate},
		{LabelExpiry, &in.Expiry},
		{LabelVol, &in.Vol},
	}

	for _, f := range fields {
		v, err := d.prompt(f.label)
		if err != nil {
			return pricing.Inputs{}, err
		}
		*f.dst = v
	}
	return in, nil
}

func (d *Driver) prompt(label string) (float64, error) {
	if _, err := fmt.Fprintln(d.out, label); err != nil {
		return 0, fmt.Errorf("writing prompt: %w", err)
	}

	if !d.in.Scan() {
		if err := d.in.Err(); err != nil {
			return 0, fmt.Errorf("reading %s %w", label, err)
		}
		return 0, &ParseError{Label: label, Err: io.ErrUnexpectedEOF}
	}

	text := strings.TrimSpace(d.in.Text())
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &ParseError{Label: label, Input: text, Err: err}
	}
	return v, nil
}
