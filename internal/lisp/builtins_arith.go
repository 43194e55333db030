// Copyright 2020 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD
// license that can be found in the LICENSE file.

package lisp

// Arithmetic primitives. Grounded on the teacher's add/sub
// (lisp1_5/math.go), which fold a variadic argument list with +/-;
// rewritten here to destructure and type-check through Matcher instead
// of the teacher's hand-rolled loop over a Go slice of LISP values.

// primPlus implements `(+ n1 n2 ...)`, summing zero or more numbers.
// With zero arguments it returns 0, the additive identity.
func primPlus(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, As(KindNumber, "number").Eval().Rest())
	if err != nil {
		return nil, err
	}
	nums := results[0].([]any)
	sum := 0.0
	for _, n := range nums {
		sum += n.(float64)
	}
	return Number(sum, call), nil
}

// primMinus implements `(- n1 n2 ...)`. One argument negates it; two or
// more subtract every later argument from the first.
func primMinus(env *Env, call Location, args *Item) (*Item, error) {
	results, err := Destructure(env, call, args, As(KindNumber, "number").Eval().Rest())
	if err != nil {
		return nil, err
	}
	nums := results[0].([]any)
	if len(nums) == 0 {
		return nil, NewArityError(call, 1, 0, true)
	}
	if len(nums) == 1 {
		return Number(-nums[0].(float64), call), nil
	}
	diff := nums[0].(float64)
	for _, n := range nums[1:] {
		diff -= n.(float64)
	}
	return Number(diff, call), nil
}
