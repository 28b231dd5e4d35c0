package domain

import (
	"math"
	"testing"
)

func TestBlackScholes_ReferenceCase(t *testing.T) {
	res := CalculateBlackScholes(referenceParams(1))

	call := res.CallPrice.InexactFloat64()
	put := res.PutPrice.InexactFloat64()
	if !almostEqual(call, 10.450583572185565, 1e-9) {
		t.Fatalf("call mismatch: got=%v", call)
	}
	if !almostEqual(put, 5.573526022256971, 1e-9) {
		t.Fatalf("put mismatch: got=%v", put)
	}
}

func TestBlackScholes_PutCallParity(t *testing.T) {
	p := referenceParams(1)
	res := CalculateBlackScholes(p)

	left := res.CallPrice.InexactFloat64() - res.PutPrice.InexactFloat64()
	right := p.S - p.K*math.Exp(-p.R*p.T)
	if !almostEqual(left, right, 1e-9) {
		t.Fatalf("parity mismatch: left=%v right=%v", left, right)
	}
}

func TestBlackScholes_ZeroVolatility(t *testing.T) {
	p := referenceParams(1)
	p.V = 0
	p.K = 120

	res := CalculateBlackScholes(p)
	forward := p.S * math.Exp(p.R*p.T)
	discount := math.Exp(-p.R * p.T)

	if got, want := res.CallPrice.InexactFloat64(), math.Max(forward-p.K, 0)*discount; !almostEqual(got, want, 1e-12) {
		t.Fatalf("zero-vol call mismatch: got=%v want=%v", got, want)
	}
	if got, want := res.PutPrice.InexactFloat64(), math.Max(p.K-forward, 0)*discount; !almostEqual(got, want, 1e-12) {
		t.Fatalf("zero-vol put mismatch: got=%v want=%v", got, want)
	}
}
