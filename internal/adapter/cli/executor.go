package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Aplet123/kctf-pow/internal/entity"
	"github.com/Aplet123/kctf-pow/internal/service"
)

// ErrUsage is returned for an unknown verb or a malformed command line.
var ErrUsage = errors.New(`could not parse arguments
usage:
  solve a challenge:               kctfpow solve <challenge>
  check a solution from stdin:     kctfpow check <challenge>
  generate a random challenge:     kctfpow gen [difficulty]
  generate, then check from stdin: kctfpow ask [difficulty]`)

// ErrVerificationFailed reports a well-formed but incorrect solution.
var ErrVerificationFailed = errors.New("challenge verification failed")

// Executor maps command-line verbs onto the proof-of-work service.
// Stdout carries protocol text only (challenges, solutions and the
// correct/incorrect verdict); diagnostics go to the logger.
type Executor struct {
	log          *slog.Logger
	pow          PoW
	in           *bufio.Reader
	out          io.Writer
	defaultDiff  uint32
	solveTimeout time.Duration
}

func NewExecutor(log *slog.Logger, pow PoW, in io.Reader, out io.Writer, defaultDifficulty uint32, solveTimeout time.Duration) *Executor {
	return &Executor{
		log:          log,
		pow:          pow,
		in:           bufio.NewReader(in),
		out:          out,
		defaultDiff:  defaultDifficulty,
		solveTimeout: solveTimeout,
	}
}

func (e *Executor) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}
	switch args[0] {
	case "solve":
		if len(args) != 2 {
			return ErrUsage
		}
		return e.solve(ctx, args[1])
	case "check":
		if len(args) != 2 {
			return ErrUsage
		}
		return e.check(ctx, args[1])
	case "gen":
		if len(args) > 2 {
			return ErrUsage
		}
		difficulty, err := e.difficultyArg(args[1:])
		if err != nil {
			return err
		}
		_, err = e.gen(difficulty)
		return err
	case "ask":
		if len(args) > 2 {
			return ErrUsage
		}
		difficulty, err := e.difficultyArg(args[1:])
		if err != nil {
			return err
		}
		return e.ask(ctx, difficulty)
	default:
		return ErrUsage
	}
}

func (e *Executor) solve(ctx context.Context, challenge string) error {
	ch, err := service.DecodeChallenge(challenge)
	if err != nil {
		return fmt.Errorf("decode challenge: %w", err)
	}

	ctx, cancel := e.workCtx(ctx)
	defer cancel()

	var solution string
	start := time.Now()
	if err := e.wait(ctx, func() { solution = e.pow.Solve(ch) }); err != nil {
		return fmt.Errorf("solve abandoned: %w", err)
	}
	e.log.Debug("challenge solved", "difficulty", ch.Difficulty, "took", time.Since(start).String())

	fmt.Fprintln(e.out, solution)
	return nil
}

func (e *Executor) check(ctx context.Context, challenge string) error {
	ch, err := service.DecodeChallenge(challenge)
	if err != nil {
		return fmt.Errorf("decode challenge: %w", err)
	}
	solution, err := e.readSolution()
	if err != nil {
		return err
	}
	return e.verify(ctx, ch, solution)
}

func (e *Executor) gen(difficulty uint32) (entity.Challenge, error) {
	ch, err := e.pow.NewChallenge(difficulty)
	if err != nil {
		return entity.Challenge{}, fmt.Errorf("new challenge: %w", err)
	}
	e.log.Debug("challenge issued", "difficulty", ch.Difficulty)
	fmt.Fprintln(e.out, service.EncodeChallenge(ch))
	return ch, nil
}

func (e *Executor) ask(ctx context.Context, difficulty uint32) error {
	ch, err := e.gen(difficulty)
	if err != nil {
		return err
	}
	solution, err := e.readSolution()
	if err != nil {
		return err
	}
	return e.verify(ctx, ch, solution)
}

// verify recomputes the challenge and maps the outcome onto stdout text and
// the exit policy: correct -> nil, incorrect -> ErrVerificationFailed.
func (e *Executor) verify(ctx context.Context, ch entity.Challenge, solution string) error {
	ctx, cancel := e.workCtx(ctx)
	defer cancel()

	var (
		ok       bool
		checkErr error
	)
	start := time.Now()
	if err := e.wait(ctx, func() { ok, checkErr = e.pow.Check(ch, solution) }); err != nil {
		return fmt.Errorf("check abandoned: %w", err)
	}
	if checkErr != nil {
		return fmt.Errorf("check solution: %w", checkErr)
	}
	e.log.Debug("solution checked", "difficulty", ch.Difficulty, "ok", ok, "took", time.Since(start).String())

	if !ok {
		fmt.Fprintln(e.out, "incorrect")
		return ErrVerificationFailed
	}
	fmt.Fprintln(e.out, "correct")
	return nil
}

// wait runs fn on its own goroutine and waits for it or for ctx. The work
// loop has no suspension points, so cancellation abandons the computation
// and leaves the goroutine to finish on its own.
func (e *Executor) wait(ctx context.Context, fn func()) error {
	done := make(chan struct{})
	go func() {
		defer close(done)
		fn()
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (e *Executor) workCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.solveTimeout > 0 {
		return context.WithTimeout(ctx, e.solveTimeout)
	}
	return context.WithCancel(ctx)
}

func (e *Executor) difficultyArg(rest []string) (uint32, error) {
	if len(rest) == 0 {
		return e.defaultDiff, nil
	}
	n, err := strconv.ParseUint(rest[0], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("difficulty is not a valid 32-bit unsigned integer: %q", rest[0])
	}
	return uint32(n), nil
}

// readSolution reads one line from stdin. EOF with a non-empty partial line
// is fine (piped input without a trailing newline).
func (e *Executor) readSolution() (string, error) {
	line, err := e.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read solution: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errors.New("empty solution on stdin")
	}
	return line, nil
}
