package cli

import "github.com/Aplet123/kctf-pow/internal/entity"

//go:generate mockgen -source=interfaces.go -destination=./cli_mock.go -package=cli

type PoW interface {
	NewChallenge(difficulty uint32) (entity.Challenge, error)
	Solve(ch entity.Challenge) string
	Check(ch entity.Challenge, solution string) (bool, error)
}
