// Package console is the line-oriented text interface of the game.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"hexagon/game"
	"hexagon/storage"
	"hexagon/utils"
)

// ErrInputClosed is returned when the input ends while waiting for an answer.
var ErrInputClosed = errors.New("input closed")

type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	store  storage.Store
	colors bool
}

type Option func(c *Console)

// WithColors turns ANSI colours for the pawns on or off.
func WithColors(enabled bool) Option {
	return func(c *Console) {
		c.colors = enabled
	}
}

// New reads whitespace separated answers from in and writes everything to out.
func New(in io.Reader, out io.Writer, store storage.Store, options ...Option) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	c := &Console{
		in:    scanner,
		out:   out,
		store: store,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// ask repeats question until valid accepts the answer.
func (c *Console) ask(question string, valid func(answer string) bool) (string, error) {
	for attempt := 0; ; attempt++ {
		if attempt > 0 {
			c.println("Invalid input")
		}
		c.println(question)

		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return "", fmt.Errorf("%w: %w", ErrInputClosed, err)
			}
			return "", ErrInputClosed
		}

		answer := c.in.Text()
		if valid(answer) {
			c.println()
			return answer, nil
		}
	}
}

func (c *Console) choose(question string, answers ...string) (string, error) {
	return c.ask(question, func(answer string) bool {
		return utils.FindIndex(answers, answer) >= 0
	})
}

// askMoveUnit reads a 1-based row and column.
func (c *Console) askMoveUnit() (game.MoveUnit, error) {
	row, err := c.askNumber("Enter the row:", game.IsRowValid)
	if err != nil {
		return game.MoveUnit{}, err
	}
	column, err := c.askNumber("Enter the column:", game.IsUIColumnValid)
	if err != nil {
		return game.MoveUnit{}, err
	}
	return game.MoveUnit{Row: row, UIColumn: column}, nil
}

func (c *Console) askNumber(question string, valid func(int) bool) (int, error) {
	answer, err := c.ask(question, func(answer string) bool {
		n, err := strconv.Atoi(answer)
		return err == nil && valid(n-1)
	})
	if err != nil {
		return 0, err
	}
	n, _ := strconv.Atoi(answer)
	return n - 1, nil
}
