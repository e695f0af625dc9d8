package constraint

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	s, err := Parse("pop; jobs", "25; 10.5")
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d", s.Len())
	}
	if s.Names[0] != "pop" || s.Names[1] != "jobs" {
		t.Errorf("names = %v", s.Names)
	}
	if s.Capacities[1] != 10.5 {
		t.Errorf("capacities = %v", s.Capacities)
	}
}

func TestParseEmpty(t *testing.T) {
	s, err := Parse("  ", "whatever")
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 0 {
		t.Errorf("empty names must give the empty spec, got %v", s)
	}
}

func TestParseLengthMismatch(t *testing.T) {
	if _, err := Parse("pop;jobs", "25"); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestParseBadCapacity(t *testing.T) {
	if _, err := Parse("pop", "lots"); !errors.Is(err, ErrBadCapacity) {
		t.Errorf("err = %v, want ErrBadCapacity", err)
	}
}

func TestNewNegativeCapacity(t *testing.T) {
	if _, err := New([]string{"pop"}, []float64{-1}); !errors.Is(err, ErrNegativeCapacity) {
		t.Errorf("err = %v, want ErrNegativeCapacity", err)
	}
}

func TestValidate(t *testing.T) {
	s, err := New([]string{"pop", "jobs"}, []float64{1, 2})
	if err != nil {
		t.Fatal(err)
	}
	has := func(name string) bool { return name == "pop" }
	if err := s.Validate(has); !errors.Is(err, ErrUnknownColumn) {
		t.Errorf("err = %v, want ErrUnknownColumn", err)
	}
	has = func(string) bool { return true }
	if err := s.Validate(has); err != nil {
		t.Errorf("err = %v", err)
	}
}

func TestSatisfiedAndDeficient(t *testing.T) {
	s, err := New([]string{"pop", "jobs"}, []float64{25, 10})
	if err != nil {
		t.Fatal(err)
	}

	ok, err := s.Satisfied([]float64{30, 10})
	if err != nil || !ok {
		t.Errorf("Satisfied = %v, %v", ok, err)
	}
	ok, err = s.Satisfied([]float64{30, 9})
	if err != nil || ok {
		t.Errorf("Satisfied = %v, %v, want false", ok, err)
	}
	bad, err := s.Deficient([]float64{30, 9})
	if err != nil || !bad {
		t.Errorf("Deficient = %v, %v, want true", bad, err)
	}
	if _, err := s.Satisfied([]float64{30}); !errors.Is(err, ErrDimension) {
		t.Errorf("err = %v, want ErrDimension", err)
	}
}

func TestEmptySpecVacuouslySatisfied(t *testing.T) {
	var s Spec
	ok, err := s.Satisfied(nil)
	if err != nil || !ok {
		t.Errorf("empty spec: Satisfied = %v, %v", ok, err)
	}
	bad, err := s.Deficient(nil)
	if err != nil || bad {
		t.Errorf("empty spec: Deficient = %v, %v", bad, err)
	}
}
