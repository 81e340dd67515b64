package filter

import (
	"strings"
	"testing"

	"github.com/kailas-cloud/catalog/internal/domain/facet"
)

func TestNewRange_Valid(t *testing.T) {
	tests := []struct {
		name             string
		bounds           []Bound
		gt, gte, lt, lte bool
	}{
		{"gt only", []Bound{Gt(1)}, true, false, false, false},
		{"gte only", []Bound{Gte(0)}, false, true, false, false},
		{"lt only", []Bound{Lt(10)}, false, false, true, false},
		{"lte only", []Bound{Lte(100)}, false, false, false, true},
		{"gt+lte", []Bound{Gt(0), Lte(10)}, true, false, false, true},
		{"gte+lt", []Bound{Gte(0), Lt(10)}, false, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewRange(tt.bounds...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (r.GT() != nil) != tt.gt {
				t.Error("GT() mismatch")
			}
			if (r.GTE() != nil) != tt.gte {
				t.Error("GTE() mismatch")
			}
			if (r.LT() != nil) != tt.lt {
				t.Error("LT() mismatch")
			}
			if (r.LTE() != nil) != tt.lte {
				t.Error("LTE() mismatch")
			}
		})
	}
}

func TestNewRange_Errors(t *testing.T) {
	tests := []struct {
		name    string
		bounds  []Bound
		wantErr string
	}{
		{"no boundary", nil, "at least one"},
		{"gt and gte", []Bound{Gt(1), Gte(1)}, "gt and gte"},
		{"lt and lte", []Bound{Lt(1), Lte(1)}, "lt and lte"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRange(tt.bounds...)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q", err)
			}
		})
	}
}

func TestMustRange_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustRange()
}

func TestRange_Contains(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		v    float64
		want bool
	}{
		{"lt below", MustRange(Lt(50)), 49.99, true},
		{"lt at bound", MustRange(Lt(50)), 50, false},
		{"gte at bound", MustRange(Gte(50), Lte(100)), 50, true},
		{"lte at bound", MustRange(Gte(50), Lte(100)), 100, true},
		{"lte above", MustRange(Gte(50), Lte(100)), 100.01, false},
		{"gt at bound", MustRange(Gt(100), Lte(200)), 100, false},
		{"gt above", MustRange(Gt(100), Lte(200)), 100.01, true},
		{"gt open ended", MustRange(Gt(200)), 1e9, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Contains(tt.v); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestBucketed_UnknownBucket(t *testing.T) {
	p := Bucketed(testBuckets, func(i item) float64 { return i.price })
	if p(item{price: 5}, facet.NewOptionSet("free")) {
		t.Error("unknown bucket id should not match")
	}
	if !p(item{price: 5}, facet.NewOptionSet("free", "cheap")) {
		t.Error("known bucket should still match alongside an unknown one")
	}
}
