package config

import (
	"os"
	"testing"
	"time"
)

func TestParse_Defaults_WhenEnvMissing(t *testing.T) {
	t.Setenv("POW_DIFFICULTY", "")
	t.Setenv("SOLVE_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg := Parse()

	// atou32(...) с пустым => дефолт 50
	if cfg.PoWDifficulty != 50 {
		t.Fatalf("PoWDifficulty=%d; want 50", cfg.PoWDifficulty)
	}
	// при пустом SOLVE_TIMEOUT используется дефолт "0s" = без ограничения
	if cfg.SolveTimeout != 0 {
		t.Fatalf("SolveTimeout=%v; want 0", cfg.SolveTimeout)
	}
	// дефолт LOG_LEVEL
	if cfg.LogLevel != "info" {
		t.Fatalf("LogLevel=%q; want info", cfg.LogLevel)
	}
}

func TestParse_ValidValues(t *testing.T) {
	t.Setenv("SOLVE_TIMEOUT", "1500ms")
	t.Setenv("POW_DIFFICULTY", "17")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Parse()

	if cfg.SolveTimeout != 1500*time.Millisecond {
		t.Fatalf("SolveTimeout=%v; want 1500ms", cfg.SolveTimeout)
	}
	if cfg.PoWDifficulty != 17 {
		t.Fatalf("PoWDifficulty=%d; want 17", cfg.PoWDifficulty)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("LogLevel=%q; want debug", cfg.LogLevel)
	}
}

func TestParse_InvalidValues_CurrentBehavior(t *testing.T) {
	// Невалидные строки: ParseDuration ошибки игнорит -> ноль.
	t.Setenv("SOLVE_TIMEOUT", "oops")
	// Невалидная сложность -> atou32 вернёт дефолт 50
	t.Setenv("POW_DIFFICULTY", "abc")

	// Остальные пустые
	os.Unsetenv("LOG_LEVEL")

	cfg := Parse()

	if cfg.SolveTimeout != 0 {
		t.Fatalf("SolveTimeout=%v; want 0 (текущее поведение при невалидном значении)", cfg.SolveTimeout)
	}
	if cfg.PoWDifficulty != 50 {
		t.Fatalf("PoWDifficulty=%d; want дефолт 50 при невалидной строке", cfg.PoWDifficulty)
	}
}

func TestParse_NegativeDifficulty_FallsBackToDefault(t *testing.T) {
	// ParseUint отвергает знак, поэтому отрицательное значение = дефолт
	t.Setenv("POW_DIFFICULTY", "-3")

	cfg := Parse()

	if cfg.PoWDifficulty != 50 {
		t.Fatalf("PoWDifficulty=%d; want 50", cfg.PoWDifficulty)
	}
}
