/*
Copyright the rsacore contributors. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package bigmod implements constant-time modular arithmetic on natural
// numbers, sized for RSA workloads. Values are operated on as fixed-length
// limb slices so that execution time and memory access patterns depend only
// on the announced length of the operands, never on their values.
package bigmod

import (
	"math/bits"

	"github.com/pkg/errors"
)

const (
	// _W is the number of bits we use for each limb. The top bit of every
	// limb is kept clear between operations so Montgomery multiplication can
	// accumulate carries without overflowing a double-width product.
	_W = bits.UintSize - 1
	// _MASK selects _W bits from a full machine word.
	_MASK = (1 << _W) - 1
)

// choice represents a constant-time boolean. The value of choice is always
// either 1 or 0. We use an int instead of bool in order to make decisions in
// constant time by turning it into a mask.
type choice uint

func not(c choice) choice { return 1 ^ c }

const yes = choice(1)

// ctSelect returns x if on == 1, and y if on == 0. The execution time of this
// function does not depend on its inputs. If on is any value besides 1 or 0,
// the result is undefined.
func ctSelect(on choice, x, y uint) uint {
	// When on == 1, mask is 0b111..., otherwise mask is 0b000...
	mask := -uint(on)
	// When mask is all zeros, we just have y, otherwise, y cancels with itself.
	return y ^ (mask & (y ^ x))
}

// ctEq returns 1 if x == y, and 0 otherwise. The execution time of this
// function does not depend on its inputs.
func ctEq(x, y uint) choice {
	// If x != y, then either x - y or y - x will generate a carry.
	_, c1 := bits.Sub(x, y, 0)
	_, c2 := bits.Sub(y, x, 0)
	return not(choice(c1 | c2))
}

// ctGeq returns 1 if x >= y, and 0 otherwise. The execution time of this
// function does not depend on its inputs.
func ctGeq(x, y uint) choice {
	// If x < y, then x - y generates a carry.
	_, carry := bits.Sub(x, y, 0)
	return not(choice(carry))
}

// div calculates (hi:lo / d, hi:lo % d), like bits.Div. Unlike bits.Div, the
// execution time of this function does not depend on its inputs.
//
// Furthermore, this function does not panic in exceptional situations, to
// avoid leaking information. If d = 0 or d <= hi, both return values are
// undefined. Constant time selection should be used to handle these edge
// cases.
func div(hi, lo, d uint) (quo uint, rem uint) {
	// The rough idea is to iterate from high to low bits b, and check if we
	// can remove d << b from hi:lo. If so, mark that bit of the quotient as
	// set. Whatever value we're left with after all of these subtractions is
	// then our remainder. This is similar to pen-and-paper division, one bit
	// at a time.
	for i := bits.UintSize - 1; i >= 0; i-- {
		quo <<= 1
		j := bits.UintSize - i
		w := (hi << j) | (lo >> i)
		// If w >= d, then we can remove d. hi >> i is the bit right above the
		// MSB of w. If it's set, we should also remove d.
		sel := ctGeq(w, d) | choice(hi>>i)
		hi2 := (w - d) >> j
		lo2 := lo - (d << i)
		hi = ctSelect(sel, hi2, hi)
		lo = ctSelect(sel, lo2, lo)
		quo |= uint(sel)
	}
	rem = lo
	return
}

// Nat represents an arbitrary natural number.
//
// Each Nat has an announced length, which is the number of limbs it has
// stored. Operations on this number are allowed to leak this length, but will
// not leak any information about the values contained in those limbs.
type Nat struct {
	// limbs is a little-endian representation in base 2^_W. The top bit of
	// every limb is always unset between operations.
	limbs []uint
}

// NewNat returns a new Nat with no allocated storage. It must be sized with
// Mod or ExpandFor before use in most operations.
func NewNat() *Nat {
	return &Nat{}
}

// expand expands x to n limbs, leaving its value unchanged.
func (x *Nat) expand(n int) *Nat {
	if n < len(x.limbs) {
		panic("bigmod: internal error: shrinking nat")
	}
	if cap(x.limbs) < n {
		newLimbs := make([]uint, n)
		copy(newLimbs, x.limbs)
		x.limbs = newLimbs
		return x
	}
	extraLimbs := x.limbs[len(x.limbs):n]
	for i := range extraLimbs {
		extraLimbs[i] = 0
	}
	x.limbs = x.limbs[:n]
	return x
}

// reset returns a zero Nat of n limbs, reusing x's storage if possible.
func (x *Nat) reset(n int) *Nat {
	if cap(x.limbs) < n {
		x.limbs = make([]uint, n)
		return x
	}
	for i := range x.limbs {
		x.limbs[i] = 0
	}
	x.limbs = x.limbs[:n]
	return x
}

// set assigns x = y, expanding x as needed.
func (x *Nat) set(y *Nat) *Nat {
	x.reset(len(y.limbs))
	copy(x.limbs, y.limbs)
	return x
}

// clone returns a new Nat with the same value and announced length as x.
func (x *Nat) clone() *Nat {
	out := &Nat{make([]uint, len(x.limbs))}
	copy(out.limbs, x.limbs)
	return out
}

// Clone returns an independent copy of x with the same value and announced
// length.
func (x *Nat) Clone() *Nat {
	return x.clone()
}

// NatFromBytes converts a big-endian byte slice into a Nat.
//
// The announced length of the output depends on the length of bytes, not on
// the numeric value; leading zero bytes are preserved in the announced size.
func NatFromBytes(bytes []byte) *Nat {
	bitSize := len(bytes) * 8
	requiredLimbs := (bitSize + _W - 1) / _W
	if requiredLimbs == 0 {
		requiredLimbs = 1
	}

	out := &Nat{make([]uint, requiredLimbs)}
	outI := 0
	shift := 0
	for i := len(bytes) - 1; i >= 0; i-- {
		bi := bytes[i]
		out.limbs[outI] |= uint(bi) << shift
		shift += 8
		if shift >= _W {
			shift -= _W
			out.limbs[outI] &= _MASK
			outI++
			// When bitSize is an exact multiple of _W the last crossing
			// carries no bits, and there is no limb to put them in.
			if outI < requiredLimbs {
				out.limbs[outI] = uint(bi) >> (8 - shift)
			}
		}
	}
	return out
}

// FillBytes writes x to bytes as a big-endian integer, left-padded with
// zeroes to the exact length of the buffer. It returns an error if the value
// of x does not fit.
func (x *Nat) FillBytes(bytes []byte) error {
	for i := range bytes {
		bytes[i] = 0
	}
	shift := 0
	outI := len(bytes) - 1
	for i, limb := range x.limbs {
		remainingBits := _W
		for remainingBits >= 8 {
			if outI < 0 {
				if limb != 0 || i < len(x.limbs)-1 {
					return errors.New("bigmod: value does not fit the output buffer")
				}
				return nil
			}
			bytes[outI] |= byte(limb) << shift
			consumed := 8 - shift
			limb >>= consumed
			remainingBits -= consumed
			shift = 0
			outI--
		}
		if outI < 0 {
			if limb != 0 || i < len(x.limbs)-1 {
				return errors.New("bigmod: value does not fit the output buffer")
			}
			return nil
		}
		bytes[outI] = byte(limb)
		shift = remainingBits
	}
	return nil
}

// Equal reports whether x == y. Two values with different announced lengths
// are never equal, even when they are numerically identical; the caller is
// responsible for normalizing the lengths first if numeric equality is
// intended. The comparison itself runs in constant time for a given pair of
// lengths.
func (x *Nat) Equal(y *Nat) bool {
	if len(x.limbs) != len(y.limbs) {
		return false
	}
	return x.cmpEq(y) == yes
}

// cmpEq returns 1 if x == y, and 0 otherwise.
//
// Both operands must have the same announced length.
func (x *Nat) cmpEq(y *Nat) choice {
	equal := yes
	for i := 0; i < len(x.limbs) && i < len(y.limbs); i++ {
		equal &= ctEq(x.limbs[i], y.limbs[i])
	}
	return equal
}

// cmpGeq returns 1 if x >= y, and 0 otherwise.
//
// Both operands must have the same announced length.
func (x *Nat) cmpGeq(y *Nat) choice {
	var c uint
	for i := 0; i < len(x.limbs) && i < len(y.limbs); i++ {
		c = (x.limbs[i] - y.limbs[i] - c) >> _W
	}
	// If there was a carry, then subtracting y underflowed, so x is not
	// greater than or equal to y.
	return not(choice(c))
}

// assign sets x <- y if on == 1, and does nothing otherwise.
//
// Both operands must have the same announced length.
func (x *Nat) assign(on choice, y *Nat) *Nat {
	for i := 0; i < len(x.limbs) && i < len(y.limbs); i++ {
		x.limbs[i] = ctSelect(on, y.limbs[i], x.limbs[i])
	}
	return x
}

// add computes x += y if on == 1, and does nothing otherwise. It returns the
// carry of the addition regardless of on.
//
// Both operands must have the same announced length.
func (x *Nat) add(on choice, y *Nat) (c uint) {
	for i := 0; i < len(x.limbs) && i < len(y.limbs); i++ {
		res := x.limbs[i] + y.limbs[i] + c
		x.limbs[i] = ctSelect(on, res&_MASK, x.limbs[i])
		c = res >> _W
	}
	return
}

// sub computes x -= y if on == 1, and does nothing otherwise. It returns the
// borrow of the subtraction regardless of on.
//
// Both operands must have the same announced length.
func (x *Nat) sub(on choice, y *Nat) (c uint) {
	for i := 0; i < len(x.limbs) && i < len(y.limbs); i++ {
		res := x.limbs[i] - y.limbs[i] - c
		x.limbs[i] = ctSelect(on, res&_MASK, x.limbs[i])
		c = res >> _W
	}
	return
}

// mulSub calculates x -= q * m, producing a full-width borrow value.
//
// Both Nat operands must have the same length. q may use all of its bits.
func (x *Nat) mulSub(q uint, m *Nat) (cc uint) {
	for i := range x.limbs {
		hi, lo := bits.Mul(q, m.limbs[i])
		lo, cc = bits.Add(lo, cc, 0)
		hi += cc
		cc = (hi << 1) | (lo >> _W)
		res := x.limbs[i] - (lo & _MASK)
		cc += res >> _W
		x.limbs[i] = res & _MASK
	}
	return
}

// Modulus is used for modular arithmetic, precomputing relevant constants.
//
// Moduli are assumed to be odd numbers. Moduli can also leak the exact number
// of bits needed to store their value, and are stored without padding. Their
// actual value is still kept secret.
type Modulus struct {
	// The underlying natural number for this modulus.
	//
	// This is stored without any padding, and shouldn't alias with any other
	// natural number being used.
	nat     *Nat
	leading int  // number of leading zeros in the top limb of the modulus
	m0inv   uint // -nat.limbs[0]⁻¹ mod 2^_W
}

// minusInverseModW computes -x⁻¹ mod 2^_W with x odd.
//
// This operation is used to precompute a constant involved in Montgomery
// multiplication.
func minusInverseModW(x uint) uint {
	// Every iteration of this loop doubles the least-significant bits of
	// correct inverse in y. The first three bits are already correct (1⁻¹ = 1,
	// 3⁻¹ = 3, 5⁻¹ = 5, and 7⁻¹ = 7 mod 8), so doubling five times is enough
	// for 61 bits (and wastes only one iteration for 31 bits).
	//
	// See https://crypto.stackexchange.com/a/47496.
	y := x
	for i := 0; i < 5; i++ {
		y = y * (2 - x*y)
	}
	return (1 << _W) - (y & _MASK)
}

// NewModulusFromBytes creates a Modulus from a big-endian byte slice. The
// input must be a nonzero odd number.
func NewModulusFromBytes(b []byte) (*Modulus, error) {
	if len(b) == 0 {
		return nil, errors.New("bigmod: modulus must not be zero")
	}
	if b[len(b)-1]&1 == 0 {
		return nil, errors.New("bigmod: modulus must be odd")
	}
	return newModulus(NatFromBytes(b)), nil
}

// newModulus creates a Modulus from a Nat.
//
// The Nat should be odd and nonzero, and the number of significant bits in
// the number should be leakable. The Nat shouldn't be reused.
func newModulus(nat *Nat) *Modulus {
	m := &Modulus{}
	m.nat = nat
	size := len(m.nat.limbs)
	for size > 1 && m.nat.limbs[size-1] == 0 {
		size--
	}
	m.nat.limbs = m.nat.limbs[:size]
	m.leading = _W - bitLen(m.nat.limbs[size-1])
	m.m0inv = minusInverseModW(m.nat.limbs[0])
	return m
}

// BitLen returns the size of m in bits.
func (m *Modulus) BitLen() int {
	return len(m.nat.limbs)*_W - m.leading
}

// Size returns the size of m in bytes.
func (m *Modulus) Size() int {
	return (m.BitLen() + 7) / 8
}

// Nat returns the modulus value itself, as a Nat. The returned value must not
// be modified.
func (m *Modulus) Nat() *Nat {
	return m.nat
}

// bitLen is a version of bits.Len that only leaks the bit length of n, but
// not its value. bits.Len and bits.LeadingZeros use a lookup table for the
// low-order bits on some architectures.
func bitLen(n uint) int {
	var len int
	// We assume, here and elsewhere, that comparison to zero is constant time
	// with respect to different non-zero values.
	for n != 0 {
		len++
		n >>= 1
	}
	return len
}

// shiftIn calculates x = x << _W + y mod m.
//
// This assumes that x is already reduced mod m, and that y < 2^_W.
func (x *Nat) shiftIn(y uint, m *Modulus) *Nat {
	checkReduced(m, x)
	if y > _MASK {
		panic("bigmod: internal error: shiftIn input out of bounds")
	}

	size := len(m.nat.limbs)
	if size == 1 {
		// In this case, we need to calculate x:y mod m which is what div
		// returns. div expects fully saturated limbs, though. We know d != 0
		// and d > hi because d = m.
		_, r := div(x.limbs[0]>>1, (x.limbs[0]<<_W)|y, m.nat.limbs[0])
		x.limbs[0] = r
		return x
	}

	// We want to shift y into x, and then divide by m to get the remainder.
	// We start with a good estimate, using the top 2*_W bits of x (a1:a0),
	// and the top _W bits of m (b0).

	// The actual shift: move the limbs of x up, then insert y.
	hi := x.limbs[size-1] // the top limb of x, pre-shift
	for i := size - 1; i > 0; i-- {
		x.limbs[i] = x.limbs[i-1]
	}
	x.limbs[0] = y

	a1 := ((hi << m.leading) | (x.limbs[size-1] >> (_W - m.leading))) & _MASK
	a0 := ((x.limbs[size-1] << m.leading) | (x.limbs[size-2] >> (_W - m.leading))) & _MASK
	b0 := ((m.nat.limbs[size-1] << m.leading) | (m.nat.limbs[size-2] >> (_W - m.leading))) & _MASK

	// We want to use a1:a0 / b0 - 1 as our estimate. If that subtraction
	// would underflow, we use 0. The result can't overflow: a1 > b0 is
	// impossible because x < m, and if a1 = b0 the quotient will be 1<<_W
	// and the subtraction will bring it back in range.
	q, _ := div(a1>>1, (a1<<_W)|a0, b0)
	q = ctSelect(ctEq(q, 0), 0, q-1)

	// q is off by +- 1, so we subtract q * m, and then either add or
	// subtract m, based on the result.
	cc := x.mulSub(q, m.nat)
	// If the carry from the subtraction is greater than the limb of x we've
	// shifted out, then we've underflowed, and need to add in m.
	under := not(ctGeq(hi, cc))
	// For us to be too large, we first need to not be too low, as per the
	// previous flag. Then, if the lower limbs of x are still larger, or the
	// top limb of x differs from the carry, we are too large and need to
	// subtract m.
	stillBigger := x.cmpGeq(m.nat)
	over := not(under) & (stillBigger | not(ctEq(cc, hi)))
	x.add(under, m.nat)
	x.sub(over, m.nat)
	return x
}

// Mod calculates out = x mod m.
//
// This works regardless how large the value of x is.
//
// The output will be resized to the announced size of m and overwritten.
func (out *Nat) Mod(x *Nat, m *Modulus) *Nat {
	out.reset(len(m.nat.limbs))
	// Working our way from the most significant to the least significant
	// limb, we can insert each limb at the least significant position,
	// shifting all previous limbs left by _W. This way each limb will get
	// shifted by the correct number of bits. We can insert at least N - 1
	// limbs without overflowing m. After that, we need to reduce every time
	// we shift.
	i := len(x.limbs) - 1
	// For the first N - 1 limbs we can skip the actual shifting and position
	// them at the shifted position, which starts at min(N - 2, i).
	start := len(m.nat.limbs) - 2
	if i < start {
		start = i
	}
	for j := start; j >= 0; j-- {
		out.limbs[j] = x.limbs[i]
		i--
	}
	// We shift in the remaining limbs, reducing modulo m each time.
	for i >= 0 {
		out.shiftIn(x.limbs[i], m)
		i--
	}
	return out
}

// ExpandFor ensures x has the right announced size to work with operations
// modulo m.
//
// The value of x must already be reduced modulo m.
func (x *Nat) ExpandFor(m *Modulus) *Nat {
	return x.expand(len(m.nat.limbs))
}

// ModSub computes x = x - y mod m.
//
// The reduction amounts to a single conditional add of m, which is valid
// whenever x - y is in the range (-m, m); both operands being reduced
// modulo m guarantees it. The announced length of both operands must be the
// same as the modulus.
func (x *Nat) ModSub(y *Nat, m *Modulus) *Nat {
	checkReduced(m, x, y)
	underflow := x.sub(yes, y)
	// If the subtraction underflowed, add m.
	x.add(choice(underflow), m.nat)
	return x
}

// ModAdd computes x = x + y mod m.
//
// The announced length of both operands must be the same as the modulus.
// Both operands must already be reduced modulo m.
func (x *Nat) ModAdd(y *Nat, m *Modulus) *Nat {
	checkReduced(m, x, y)
	overflow := x.add(yes, y)
	underflow := not(x.cmpGeq(m.nat)) // x < m

	// Three cases are possible:
	//
	//   - overflow = 0, underflow = 0
	//
	// In this case, addition fits in our limbs, but we can still subtract
	// away m without an underflow, so we need to perform the subtraction to
	// reduce our result.
	//
	//   - overflow = 0, underflow = 1
	//
	// The addition fits in our limbs, but we can't subtract m without
	// underflowing. The result is already reduced.
	//
	//   - overflow = 1, underflow = 1
	//
	// The addition does not fit in our limbs, and the subtraction's borrow
	// would cancel out with the addition's carry. We need to subtract m to
	// reduce our result.
	//
	// The overflow = 1, underflow = 0 case is not possible, because y is at
	// most m - 1, and if adding m - 1 overflows, then subtracting m must
	// necessarily underflow.
	needSubtraction := ctEq(overflow, uint(underflow))

	x.sub(needSubtraction, m.nat)
	return x
}

// MontgomeryRepresentation calculates x = x * R mod m, with R = 2^(_W * n)
// and n = len(m.nat.limbs).
//
// Faster Montgomery multiplication replaces standard modular multiplication
// for numbers in this representation.
//
// This assumes that x is already reduced mod m.
func (x *Nat) MontgomeryRepresentation(m *Modulus) *Nat {
	checkReduced(m, x)
	for i := 0; i < len(m.nat.limbs); i++ {
		x.shiftIn(0, m) // x = x * 2^_W mod m
	}
	return x
}

// MontgomeryMul calculates out = x * y / R mod m, with R = 2^(_W * n) and
// n = len(m.nat.limbs).
//
// All inputs must have the same announced length as the modulus, be reduced
// modulo m, and must not alias out.
//
// When exactly one operand is in the Montgomery domain, the R factors cancel
// and the result is the plain modular product of the plain operand and the
// Montgomery operand's underlying value.
func (out *Nat) MontgomeryMul(x *Nat, y *Nat, m *Modulus) *Nat {
	checkReduced(m, x, y)
	out.reset(len(m.nat.limbs))

	overflow := uint(0)
	// The different loops are over the same size, but we use different
	// conditions to help the compiler elide bounds checking.
	for i := 0; i < len(x.limbs); i++ {
		f := ((out.limbs[0] + x.limbs[i]*y.limbs[0]) * m.m0inv) & _MASK
		var carry uint
		for j := 0; j < len(y.limbs) && j < len(m.nat.limbs) && j < len(out.limbs); j++ {
			// z = out[j] + x[i] * y[j] + f * m[j] + carry
			hi, lo := bits.Mul(x.limbs[i], y.limbs[j])
			zLo, c := bits.Add(out.limbs[j], lo, 0)
			zHi, _ := bits.Add(0, hi, c)
			hi, lo = bits.Mul(f, m.nat.limbs[j])
			zLo, c = bits.Add(zLo, lo, 0)
			zHi, _ = bits.Add(zHi, hi, c)
			zLo, c = bits.Add(zLo, carry, 0)
			zHi, _ = bits.Add(zHi, 0, c)
			if j > 0 {
				out.limbs[j-1] = zLo & _MASK
			}
			carry = (zLo >> _W) | (zHi << 1)
		}
		z := overflow + carry
		out.limbs[len(out.limbs)-1] = z & _MASK
		overflow = z >> _W
	}
	underflow := not(out.cmpGeq(m.nat))
	// See ModAdd for how overflow, underflow, and needSubtraction relate.
	needSubtraction := ctEq(overflow, uint(underflow))
	out.sub(needSubtraction, m.nat)
	return out
}

// Exp calculates out = x^e mod m.
//
// The exponent e is represented in big-endian order. The output will be
// resized to the size of m and overwritten. x must already be reduced modulo
// m. The execution time depends only on the announced lengths of the
// operands and the length of e, making this suitable for secret exponents.
func (out *Nat) Exp(x *Nat, e []byte, m *Modulus) *Nat {
	checkReduced(m, x)
	size := len(m.nat.limbs)
	out.reset(size)

	// We use 4-bit windows. For an RSA workload, 4-bit windows are faster
	// than 2-bit windows, but use an extra 12 nats worth of scratch space.
	// Using window sizes that don't divide 8 is more awkward to implement.
	table := make([]*Nat, 15) // table[i] = x ^ (i+1), Montgomery encoded
	table[0] = x.clone().MontgomeryRepresentation(m)
	for i := 1; i < len(table); i++ {
		table[i] = NewNat().reset(size)
		table[i].MontgomeryMul(table[i-1], table[0], m)
	}

	selected := NewNat().reset(size)
	out.limbs[0] = 1
	out.MontgomeryRepresentation(m)
	scratch := NewNat().reset(size)
	for _, b := range e {
		for _, j := range []int{4, 0} {
			// Square four times.
			scratch.MontgomeryMul(out, out, m)
			out.MontgomeryMul(scratch, scratch, m)
			scratch.MontgomeryMul(out, out, m)
			out.MontgomeryMul(scratch, scratch, m)

			// Select x^k in constant time from the table.
			k := uint((b >> j) & 0b1111)
			for i := range table {
				selected.assign(ctEq(k, uint(i+1)), table[i])
			}

			// Multiply by x^k, discarding the result if k = 0.
			scratch.MontgomeryMul(out, selected, m)
			out.assign(not(ctEq(k, 0)), scratch)
		}
	}

	// By Montgomery multiplying with 1 not in the Montgomery domain, we
	// convert out back to a plain value, because it works out to dividing
	// by R.
	one := NewNat().reset(size)
	one.limbs[0] = 1
	scratch.MontgomeryMul(out, one, m)
	return out.set(scratch)
}

// ExpShortVarTime calculates out = x^e mod m.
//
// The exponent e is a plain machine word. Unlike Exp, the execution time
// depends on the value of e, so it must only be used with public exponents.
// x must already be reduced modulo m, and e must not be zero.
func (out *Nat) ExpShortVarTime(x *Nat, e uint64, m *Modulus) *Nat {
	checkReduced(m, x)
	if e == 0 {
		panic("bigmod: internal error: ExpShortVarTime with zero exponent")
	}
	size := len(m.nat.limbs)

	xR := x.clone().MontgomeryRepresentation(m)
	out.set(xR)
	scratch := NewNat().reset(size)

	// A simple square-and-multiply chain is fine here: the exponent is
	// public, at most 33 bits, and almost always 65537.
	for i := bits.Len64(e) - 2; i >= 0; i-- {
		scratch.MontgomeryMul(out, out, m)
		out.set(scratch)
		if e>>uint(i)&1 == 1 {
			scratch.MontgomeryMul(out, xR, m)
			out.set(scratch)
		}
	}

	one := NewNat().reset(size)
	one.limbs[0] = 1
	scratch.MontgomeryMul(out, one, m)
	return out.set(scratch)
}

func checkReduced(m *Modulus, xs ...*Nat) {
	for _, x := range xs {
		if len(x.limbs) != len(m.nat.limbs) {
			panic("bigmod: internal error: operand does not match modulus size")
		}
		if x.cmpGeq(m.nat) == yes {
			panic("bigmod: internal error: operand out of range")
		}
	}
}
