package math

import "github.com/ajroetker/go-softbf16/bf16"

// Poly3 evaluates the cubic c0 + c1*x + c2*x^2 + c3*x^3 in bf16.
// Using Horner's method: c0 + x*(c1 + x*(c2 + x*c3))
// Every Mul and Add truncates, so the error grows with each step.
func Poly3(x, c0, c1, c2, c3 bf16.BF16) bf16.BF16 {
	t := bf16.Add(c2, bf16.Mul(c3, x)) // c2 + c3*x
	t = bf16.Add(c1, bf16.Mul(t, x))   // c1 + t*x
	t = bf16.Add(c0, bf16.Mul(t, x))   // c0 + t*x
	return t
}
