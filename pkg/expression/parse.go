package expression

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type parser struct {
	in      []byte
	offset  int
	no      int
	current rune
}

func NewParser(in string) *parser {
	p := &parser{
		in: []byte(in),
	}
	p.Next()
	return p
}

func (s *parser) Next() rune {
	if s.offset >= len(s.in) {
		s.current = 0
		return 0
	}
	r, size := utf8.DecodeRune(s.in[s.offset:])
	s.current = r
	if r == utf8.RuneError {
		return r
	}
	s.offset += size
	s.no++
	return r
}

func (s *parser) ParseRune(r rune) error {
	if s.SkipBlank() != r {
		return s.Errorf("%q expected", string(r))
	}
	s.Next()
	return nil
}

func (s *parser) Current() rune {
	return s.current
}

func (s *parser) Position() int {
	return s.no
}

func (s *parser) Errorf(msg string, args ...interface{}) error {
	return fmt.Errorf("%q %d: %s", string(s.in), s.Position(), fmt.Sprintf(msg, args...))
}

func (s *parser) SkipBlank() rune {
	n := s.Current()
	for unicode.IsSpace(n) {
		n = s.Next()
	}
	return n
}

////////////////////////////////////////////////////////////////////////////////

func (s *parser) parseExpression() (*Node, error) {
	return s.parseLevel0()
}

func (s *parser) parseOperand() (*Node, error) {
	n := s.SkipBlank()
	switch {
	case unicode.IsDigit(n):
		return s.parseNumber()
	case unicode.IsLetter(n):
		return s.parseNameOrCall()
	case n == '(':
		s.Next()
		e, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		err = s.ParseRune(')')
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, s.Errorf("unexpected character %q for operand", string(n))
	}
}

func (s *parser) parseNumber() (*Node, error) {
	n := s.SkipBlank()
	if !unicode.IsDigit(n) {
		return nil, s.Errorf("number must start with a digit, but found %q", string(n))
	}
	num := ""
	for unicode.IsDigit(n) {
		num += string(n)
		n = s.Next()
	}
	if n == '.' {
		num += string(n)
		n = s.Next()
		if !unicode.IsDigit(n) {
			return nil, s.Errorf("fraction must be a sequence of digits, but found %q", string(n))
		}
		for unicode.IsDigit(n) {
			num += string(n)
			n = s.Next()
		}
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, s.Errorf("invalid number %q: %s", num, err)
	}
	return NewValueNode(v), nil
}

func (s *parser) parseName() (string, error) {
	n := s.SkipBlank()
	if !unicode.IsLetter(n) {
		return "", s.Errorf("variable name must start with letter, but found %q", string(n))
	}
	name := ""
	for {
		name = name + string(n)
		n = s.Next()
		if !unicode.IsDigit(n) && !unicode.IsLetter(n) && n != '_' {
			break
		}
	}
	return name, nil
}

func (s *parser) parseNameOrCall() (*Node, error) {
	name, err := s.parseName()
	if err != nil {
		return nil, err
	}
	if s.SkipBlank() != '(' {
		return NewOperandNode(name), nil
	}
	s.Next()
	var args []*Node
	for {
		a, err := s.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, a)
		if s.SkipBlank() != ',' {
			break
		}
		s.Next()
	}
	err = s.ParseRune(')')
	if err != nil {
		return nil, err
	}
	return NewOperatorNode(name, args...), nil
}

func (s *parser) parseLevel0() (*Node, error) {
	o1, err := s.parseLevel1()
	if err != nil {
		return nil, err
	}
	for {
		switch s.SkipBlank() {
		case '+', '-':
			op := s.Current()
			s.Next()
			o2, err := s.parseLevel1()
			if err != nil {
				return nil, err
			}
			o1 = NewOperatorNode(string(op), o1, o2)
		default:
			return o1, nil
		}
	}
}

func (s *parser) parseLevel1() (*Node, error) {
	o1, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch s.SkipBlank() {
		case '/', '*':
			op := s.Current()
			s.Next()
			o2, err := s.parseUnary()
			if err != nil {
				return nil, err
			}
			o1 = NewOperatorNode(string(op), o1, o2)
		default:
			return o1, nil
		}
	}
}

// parseUnary handles sign prefixes. Negated literals are folded,
// other operands are multiplied by -1.
func (s *parser) parseUnary() (*Node, error) {
	sign := 1.0
	n := s.SkipBlank()
	for n == '-' || n == '+' {
		if n == '-' {
			sign = -sign
		}
		s.Next()
		n = s.SkipBlank()
	}
	o, err := s.parsePower()
	if err != nil {
		return nil, err
	}
	if sign > 0 {
		return o, nil
	}
	if o.Value != nil {
		return NewValueNode(-*o.Value), nil
	}
	return NewOperatorNode("*", NewValueNode(-1), o), nil
}

// parsePower parses right associative exponentiation.
func (s *parser) parsePower() (*Node, error) {
	base, err := s.parseOperand()
	if err != nil {
		return nil, err
	}
	if s.SkipBlank() != '^' {
		return base, nil
	}
	s.Next()
	exp, err := s.parseUnary()
	if err != nil {
		return nil, err
	}
	return NewOperatorNode("^", base, exp), nil
}

func Parse(in string) (*Node, error) {
	p := NewParser(in)

	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if p.SkipBlank() != 0 {
		return nil, p.Errorf("unexpected character %q", string(p.Current()))
	}
	return n, nil
}
